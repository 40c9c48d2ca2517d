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

import (
	"errors"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/kind"
)

// KindOf returns the Kind of the first structured error in err's chain,
// or kind.Unknown when there is none.
func KindOf(err error) kind.Kind {
	var se apis.StructuredError
	if errors.As(err, &se) {
		return se.Kind()
	}
	return kind.Unknown
}

// AsStructured returns the first structured error in err's chain.
func AsStructured(err error) (apis.StructuredError, bool) {
	var se apis.StructuredError
	ok := errors.As(err, &se)
	return se, ok
}

// AsRateLimit returns the first RateLimitError in err's chain.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var e *RateLimitError
	ok := errors.As(err, &e)
	return e, ok
}

// AsUnexpectedResponse returns the first UnexpectedResponseError in err's chain.
func AsUnexpectedResponse(err error) (*UnexpectedResponseError, bool) {
	var e *UnexpectedResponseError
	ok := errors.As(err, &e)
	return e, ok
}

// IsRateLimit is shorthand for errors.Is(err, ErrRateLimit).
func IsRateLimit(err error) bool { return errors.Is(err, ErrRateLimit) }

// IsUnexpectedResponse is shorthand for errors.Is(err, ErrUnexpectedResponse).
func IsUnexpectedResponse(err error) bool { return errors.Is(err, ErrUnexpectedResponse) }
