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
	"fmt"
	"reflect"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/kind"
)

// Sentinels matched by errors.Is against any wrapped variant of the same
// kind. They are never returned on their own.
var (
	ErrRateLimit          = errors.New("apierrors: rate limit exceeded")
	ErrUnexpectedResponse = errors.New("apierrors: unexpected response")
)

// base holds the fields shared by every variant. It is embedded by value
// and never exposed, so nothing outside this package can mutate it.
type base struct {
	message    string
	statusCode int
	data       any
	hasData    bool
	cause      error
	stack      stack
}

func newBase(msg string, status int, opts []Option) base {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	b := base{
		message:    msg,
		statusCode: status,
		data:       o.data,
		hasData:    o.hasData,
		cause:      o.cause,
	}
	if !o.skipStack {
		b.stack = callers()
	}
	return b
}

// nilBase backs the accessors of typed-nil variants, so reading a nil
// *RateLimitError or *UnexpectedResponseError yields zero values.
var nilBase base

func (b *base) errorString(k kind.Kind) string {
	return fmt.Sprintf("%s: %s (status %d)", k, b.message, b.statusCode)
}

func (b *base) view(k kind.Kind) apis.ErrorView {
	return apis.ErrorView{
		Name:       k.String(),
		Message:    b.message,
		StatusCode: b.statusCode,
		Data:       b.data,
	}
}

func (b *base) equal(o *base) bool {
	return b.message == o.message &&
		b.statusCode == o.statusCode &&
		b.hasData == o.hasData &&
		reflect.DeepEqual(b.data, o.data)
}

// format implements fmt.Formatter for the variants: %+v appends the
// captured stack, every other verb prints Error().
func (b *base) format(s fmt.State, verb rune, msg string) {
	switch verb {
	case 'v':
		_, _ = fmt.Fprint(s, msg)
		if s.Flag('+') {
			for _, f := range b.stack.frames() {
				_, _ = fmt.Fprintf(s, "\n%s\n\t%s:%d", f.Function, f.File, f.Line)
			}
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", msg)
	default:
		_, _ = fmt.Fprint(s, msg)
	}
}
