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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the variant discriminant of a structured error.
//
// The zero value is Unknown and never belongs to a constructed error.
type Kind uint8

const (
	// Unknown is the zero Kind. KindOf-style helpers return it for errors
	// that are not structured apierrors values.
	Unknown Kind = iota

	// RateLimit marks errors raised because the caller exceeded an enforced
	// request quota. These errors carry a limit reset value.
	RateLimit

	// UnexpectedResponse marks errors raised because a remote endpoint
	// returned a response the client did not know how to handle.
	UnexpectedResponse
)

// names holds the stable identifiers, indexed by Kind.
var names = [...]string{
	Unknown:            "Unknown",
	RateLimit:          "RateLimitError",
	UnexpectedResponse: "UnexpectedResponseError",
}

// lookup maps normalized identifiers back to their Kind.
var lookup = map[string]Kind{
	Normalize(names[RateLimit]):          RateLimit,
	Normalize(names[UnexpectedResponse]): UnexpectedResponse,
}

var (
	// ErrKindInvalid is returned when a value cannot be parsed as a known
	// Kind, or when Unknown is marshaled.
	ErrKindInvalid = errors.New("apierrors: invalid kind")
)

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Values returns every known Kind, excluding Unknown.
func Values() []Kind {
	return []Kind{RateLimit, UnexpectedResponse}
}

// Parse normalizes s and resolves it to a known Kind.
// On failure it returns Unknown and ErrKindInvalid.
func Parse(s string) (Kind, error) {
	k, ok := lookup[Normalize(s)]
	if !ok {
		return Unknown, ErrKindInvalid
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings an identifier to the form used for lookups:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - drops '-', '_' and inner spaces.
//
// It does NOT check that the result names a known Kind.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// Valid reports whether k is a known, non-Unknown Kind.
func (k Kind) Valid() bool {
	return k > Unknown && int(k) < len(names)
}

// String returns the stable identifier of k, e.g. "RateLimitError".
// Out-of-range values render as "Unknown".
func (k Kind) String() string {
	if int(k) >= len(names) {
		return names[Unknown]
	}
	return names[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrKindInvalid
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
