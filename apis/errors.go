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

package apis

import "dirpx.dev/apierrors/kind"

// StructuredError is the shared "failure" capability of every apierrors
// variant.
//
// Values are immutable after construction: every method is a plain read and
// may be called concurrently.
type StructuredError interface {
	error

	// Kind returns the variant discriminant. It is never kind.Unknown for a
	// value built by the apierrors constructors.
	Kind() kind.Kind

	// Name returns the stable variant identifier, Kind().String().
	Name() string

	// Message returns the human-readable description supplied at
	// construction.
	Message() string

	// StatusCode returns the status code supplied at construction, usually
	// an HTTP status. It is not validated.
	StatusCode() int

	// Data returns the opaque payload, or nil when none was supplied.
	Data() any

	// HasData reports whether a payload was supplied, which tells an absent
	// payload apart from an explicit nil one.
	HasData() bool
}

// RateLimited is implemented by errors raised when the caller exceeded an
// enforced request quota.
type RateLimited interface {
	StructuredError

	// LimitReset returns the reset value exactly as it was supplied: a
	// timestamp, a duration, a header string, or whatever the client had.
	LimitReset() any

	// RateLimit is a marker method.
	RateLimit()
}

// UnexpectedResponder is implemented by errors raised when a remote
// endpoint returned a response the client could not handle.
type UnexpectedResponder interface {
	StructuredError

	// UnexpectedResponse is a marker method.
	UnexpectedResponse()
}
