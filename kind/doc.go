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

// Package kind defines the discriminant that tells apierrors variants apart.
//
// A Kind is an explicit tag carried by every structured error. Catching code
// switches on it (or on the variant type) instead of parsing messages or
// relying on reflected type names, which may change under refactoring.
//
// Each Kind has a stable, human-readable identifier returned by String:
//
//   - "RateLimitError";
//   - "UnexpectedResponseError".
//
// The identifier is what ends up in logs, JSON views and gRPC status details.
// Parse accepts it in a relaxed form ("rate_limit_error", "Rate-Limit-Error")
// so values read back from the wire map to the same Kind.
package kind
