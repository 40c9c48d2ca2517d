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

// Package apierrors provides the structured errors an HTTP API client raises
// to tell failure categories apart.
//
// There are two variants:
//
//   - RateLimitError: the caller exceeded an enforced request quota. It
//     carries a limit reset value telling the caller when it may retry.
//   - UnexpectedResponseError: the remote endpoint answered with something
//     the client did not know how to handle.
//
// Both carry a message, a status code and an optional opaque payload, and
// both implement apis.StructuredError. Catching code discriminates by Kind,
// by type, or with the sentinels:
//
//	var rl *apierrors.RateLimitError
//	switch {
//	case errors.As(err, &rl):
//	    wait, _ := rl.RetryAfter(time.Now())
//	    ...
//	case errors.Is(err, apierrors.ErrUnexpectedResponse):
//	    ...
//	}
//
// Values are immutable after construction. The package does not retry,
// back off, log or talk to the network; see the httpx and grpcx packages
// for building and projecting these errors at transport boundaries.
package apierrors
