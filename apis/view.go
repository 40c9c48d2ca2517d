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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// The returned view MUST be safe to marshal (to JSON/proto).
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of a structured error.
//
// This is *not* the variant type itself. It is the shape that adapters
// expose over the wire or hand to loggers.
type ErrorView struct {
	// Name is the variant identifier, e.g. "RateLimitError".
	Name string `json:"name"`
	// Message is the human-readable description.
	Message string `json:"message,omitempty"`
	// StatusCode is the status the failure was raised with.
	StatusCode int `json:"status_code,omitempty"`
	// LimitReset is set only for rate limit errors.
	LimitReset any `json:"limit_reset,omitempty"`
	// Data is the opaque payload, omitted when absent.
	Data any `json:"data,omitempty"`
}

// Map returns the view as a generic map, the shape accepted by
// structpb.NewStruct. Absent fields are left out.
func (v ErrorView) Map() map[string]any {
	m := map[string]any{"name": v.Name}
	if v.Message != "" {
		m["message"] = v.Message
	}
	if v.StatusCode != 0 {
		m["status_code"] = v.StatusCode
	}
	if v.LimitReset != nil {
		m["limit_reset"] = v.LimitReset
	}
	if v.Data != nil {
		m["data"] = v.Data
	}
	return m
}
