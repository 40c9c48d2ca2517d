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

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/kind"
)

var (
	_ apis.UnexpectedResponder = (*UnexpectedResponseError)(nil)
	_ apis.ViewProvider        = (*UnexpectedResponseError)(nil)
	_ fmt.Formatter            = (*UnexpectedResponseError)(nil)
)

// UnexpectedResponseError signals that a remote endpoint returned a
// response the client did not know how to handle. What to do with it
// (retry, surface, give up) is the caller's decision.
type UnexpectedResponseError struct {
	base
}

// NewUnexpectedResponseError builds an UnexpectedResponseError.
// Construction never fails and does not validate its inputs.
func NewUnexpectedResponseError(msg string, statusCode int, opts ...Option) *UnexpectedResponseError {
	return &UnexpectedResponseError{base: newBase(msg, statusCode, opts)}
}

// Kind always returns kind.UnexpectedResponse.
func (e *UnexpectedResponseError) Kind() kind.Kind { return kind.UnexpectedResponse }

// Name always returns "UnexpectedResponseError".
func (e *UnexpectedResponseError) Name() string { return kind.UnexpectedResponse.String() }

// core returns the shared fields, or nilBase for a nil receiver.
func (e *UnexpectedResponseError) core() *base {
	if e == nil {
		return &nilBase
	}
	return &e.base
}

// Message returns the human-readable description.
func (e *UnexpectedResponseError) Message() string { return e.core().message }

// StatusCode returns the status code the error was raised with.
func (e *UnexpectedResponseError) StatusCode() int { return e.core().statusCode }

// Data returns the opaque payload, or nil when none was supplied.
func (e *UnexpectedResponseError) Data() any { return e.core().data }

// HasData reports whether a payload was supplied.
func (e *UnexpectedResponseError) HasData() bool { return e.core().hasData }

// Unwrap returns the cause attached with WithCause, if any.
func (e *UnexpectedResponseError) Unwrap() error { return e.core().cause }

// StackTrace returns the call stack captured at construction, innermost
// frame first. It is empty when the error was built with WithoutStack.
func (e *UnexpectedResponseError) StackTrace() []Frame { return e.core().stack.frames() }

// UnexpectedResponse marks e as an unexpected response failure.
func (e *UnexpectedResponseError) UnexpectedResponse() {}

// Error implements the built-in error interface.
func (e *UnexpectedResponseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.errorString(kind.UnexpectedResponse)
}

// Is matches ErrUnexpectedResponse.
func (e *UnexpectedResponseError) Is(target error) bool { return target == ErrUnexpectedResponse }

// ErrorView implements apis.ViewProvider.
func (e *UnexpectedResponseError) ErrorView() apis.ErrorView {
	return e.core().view(kind.UnexpectedResponse)
}

// Equal reports whether o carries the same fields as e. The captured stack
// and the cause are not compared.
func (e *UnexpectedResponseError) Equal(o *UnexpectedResponseError) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.equal(&o.base)
}

// Format implements fmt.Formatter; %+v includes the construction stack.
func (e *UnexpectedResponseError) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = fmt.Fprint(s, "<nil>")
		return
	}
	e.format(s, verb, e.Error())
}
