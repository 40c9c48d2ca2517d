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

// Package apis defines the public Go-level contracts for apierrors values.
//
// HTTP and gRPC adapters, loggers and caller code target these small
// interfaces instead of the concrete variant types, so a catching site can
// ask "is this a structured failure?" and "does it carry a limit reset?"
// without importing the constructors.
//
// This package must remain lightweight: it only contains interfaces and
// small view types.
package apis
