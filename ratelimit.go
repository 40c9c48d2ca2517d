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
	"fmt"
	"reflect"
	"time"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/kind"
)

var (
	_ apis.RateLimited  = (*RateLimitError)(nil)
	_ apis.ViewProvider = (*RateLimitError)(nil)
	_ fmt.Formatter     = (*RateLimitError)(nil)
)

// RateLimitError signals that the caller exceeded an enforced request quota.
//
// LimitReset tells the caller when it may retry. It is stored exactly as
// supplied; ResetAt and RetryAfter interpret the common shapes.
type RateLimitError struct {
	base
	limitReset any
}

// NewRateLimitError builds a RateLimitError. Construction never fails and
// does not validate its inputs: passing a real 429 is up to the caller.
//
//	err := apierrors.NewRateLimitError("Too many requests", 429,
//	    resp.Header.Get("Retry-After"),
//	    apierrors.WithData(map[string]any{"endpoint": "/users"}),
//	)
func NewRateLimitError(msg string, statusCode int, limitReset any, opts ...Option) *RateLimitError {
	return &RateLimitError{
		base:       newBase(msg, statusCode, opts),
		limitReset: limitReset,
	}
}

// Kind always returns kind.RateLimit.
func (e *RateLimitError) Kind() kind.Kind { return kind.RateLimit }

// Name always returns "RateLimitError", whatever the payload contains.
func (e *RateLimitError) Name() string { return kind.RateLimit.String() }

// core returns the shared fields, or nilBase for a nil receiver.
func (e *RateLimitError) core() *base {
	if e == nil {
		return &nilBase
	}
	return &e.base
}

// Message returns the human-readable description.
func (e *RateLimitError) Message() string { return e.core().message }

// StatusCode returns the status code the error was raised with.
func (e *RateLimitError) StatusCode() int { return e.core().statusCode }

// Data returns the opaque payload, or nil when none was supplied.
func (e *RateLimitError) Data() any { return e.core().data }

// HasData reports whether a payload was supplied.
func (e *RateLimitError) HasData() bool { return e.core().hasData }

// Unwrap returns the cause attached with WithCause, if any.
func (e *RateLimitError) Unwrap() error { return e.core().cause }

// StackTrace returns the call stack captured at construction, innermost
// frame first. It is empty when the error was built with WithoutStack.
func (e *RateLimitError) StackTrace() []Frame { return e.core().stack.frames() }

// LimitReset returns the reset value as supplied.
func (e *RateLimitError) LimitReset() any {
	if e == nil {
		return nil
	}
	return e.limitReset
}

// RateLimit marks e as a rate limit failure.
func (e *RateLimitError) RateLimit() {}

// ResetAt resolves LimitReset to an absolute time, using now for relative
// values. It reports false when the value has no recognizable shape.
func (e *RateLimitError) ResetAt(now time.Time) (time.Time, bool) {
	return resetAt(e.LimitReset(), now)
}

// RetryAfter returns how long to wait from now until the limit resets,
// never negative.
func (e *RateLimitError) RetryAfter(now time.Time) (time.Duration, bool) {
	return RetryAfter(e.LimitReset(), now)
}

// Error implements the built-in error interface.
func (e *RateLimitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.errorString(kind.RateLimit)
}

// Is matches ErrRateLimit.
func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimit }

// ErrorView implements apis.ViewProvider.
func (e *RateLimitError) ErrorView() apis.ErrorView {
	v := e.core().view(kind.RateLimit)
	v.LimitReset = e.LimitReset()
	return v
}

// Equal reports whether o carries the same fields as e. The captured stack
// and the cause are not compared.
func (e *RateLimitError) Equal(o *RateLimitError) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.equal(&o.base) && reflect.DeepEqual(e.limitReset, o.limitReset)
}

// Format implements fmt.Formatter; %+v includes the construction stack.
func (e *RateLimitError) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = fmt.Fprint(s, "<nil>")
		return
	}
	e.format(s, verb, e.Error())
}
