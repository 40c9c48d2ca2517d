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

// Package wire converts apierrors views into protobuf well-known types
// shared by the HTTP and gRPC adapters.
package wire

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// ResetValue turns a limit reset into a value that survives JSON and
// structpb: times become RFC 3339 strings, durations become Go duration
// strings. Everything else is returned unchanged.
func ResetValue(v any) any {
	switch r := v.(type) {
	case time.Time:
		return r.Format(time.RFC3339Nano)
	case *time.Time:
		if r == nil {
			return nil
		}
		return r.Format(time.RFC3339Nano)
	case time.Duration:
		return r.String()
	default:
		return v
	}
}

// ToStruct builds a structpb.Struct from m.
//
// structpb only accepts a fixed set of Go types, so values it rejects
// (typed slices, structs, custom maps) are normalized through encoding/json
// first. A value that cannot be encoded at all is an error.
func ToStruct(m map[string]any) (*structpb.Struct, error) {
	if st, err := structpb.NewStruct(m); err == nil {
		return st, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var norm map[string]any
	if err := json.Unmarshal(b, &norm); err != nil {
		return nil, err
	}
	return structpb.NewStruct(norm)
}
