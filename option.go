/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apierrors

// Option is a functional option applied when constructing a variant.
type Option func(*options)

type options struct {
	data      any
	hasData   bool
	cause     error
	skipStack bool
}

// WithData attaches an opaque payload. The value is stored as-is and never
// inspected; WithData(nil) records an explicit nil payload.
func WithData(v any) Option {
	return func(o *options) {
		o.data = v
		o.hasData = true
	}
}

// WithCause attaches the underlying error (a transport failure, a decode
// error) so it stays reachable through errors.Is / errors.As.
// A nil err is ignored.
func WithCause(err error) Option {
	return func(o *options) {
		if err != nil {
			o.cause = err
		}
	}
}

// WithoutStack skips capturing the construction stack.
func WithoutStack() Option {
	return func(o *options) { o.skipStack = true }
}
