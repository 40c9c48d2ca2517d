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
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Magnitudes used to classify numeric reset values. Retry-After carries
// delta seconds; X-RateLimit-Reset style headers carry Unix seconds or, for
// some APIs, Unix milliseconds. Anything at or past maxResetValue is
// rejected rather than turned into a time thousands of years away.
const (
	epochThreshold = 1e9
	millisEpoch    = 1e12
	maxResetValue  = 1e15
)

// ResetAt interprets any limit reset value the way RateLimitError.ResetAt
// does. Adapters use it for RateLimited implementations from other packages.
func ResetAt(limitReset any, now time.Time) (time.Time, bool) {
	return resetAt(limitReset, now)
}

// RetryAfter returns the non-negative wait from now until limitReset.
func RetryAfter(limitReset any, now time.Time) (time.Duration, bool) {
	t, ok := resetAt(limitReset, now)
	if !ok {
		return 0, false
	}
	return max(t.Sub(now), 0), true
}

// resetAt interprets a limit reset value. Supported shapes:
//
//   - time.Time / *time.Time: absolute, zero means unknown;
//   - time.Duration: relative to now;
//   - integers, floats and json.Number: see fromSeconds;
//   - strings: numeric seconds, RFC 3339, HTTP-date or a Go duration;
//   - []string: the first element, as found in http.Header.
func resetAt(v any, now time.Time) (time.Time, bool) {
	switch r := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return r, !r.IsZero()
	case *time.Time:
		if r == nil {
			return time.Time{}, false
		}
		return *r, !r.IsZero()
	case time.Duration:
		return now.Add(r), true
	case int:
		return fromSeconds(float64(r), now)
	case int8:
		return fromSeconds(float64(r), now)
	case int16:
		return fromSeconds(float64(r), now)
	case int32:
		return fromSeconds(float64(r), now)
	case int64:
		return fromSeconds(float64(r), now)
	case uint:
		return fromSeconds(float64(r), now)
	case uint8:
		return fromSeconds(float64(r), now)
	case uint16:
		return fromSeconds(float64(r), now)
	case uint32:
		return fromSeconds(float64(r), now)
	case uint64:
		return fromSeconds(float64(r), now)
	case float32:
		return fromSeconds(float64(r), now)
	case float64:
		return fromSeconds(r, now)
	case json.Number:
		f, err := r.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromSeconds(f, now)
	case string:
		return parseReset(r, now)
	case []string:
		if len(r) == 0 {
			return time.Time{}, false
		}
		return parseReset(r[0], now)
	default:
		return time.Time{}, false
	}
}

// fromSeconds interprets a numeric reset: below epochThreshold it is a
// delta in seconds, below millisEpoch Unix seconds, below maxResetValue
// Unix milliseconds. Negative, non-finite and larger values are rejected.
func fromSeconds(s float64, now time.Time) (time.Time, bool) {
	if s < 0 || s >= maxResetValue || math.IsNaN(s) || math.IsInf(s, 0) {
		return time.Time{}, false
	}
	if s >= millisEpoch {
		return time.UnixMilli(int64(s)), true
	}
	if s >= epochThreshold {
		sec, frac := math.Modf(s)
		return time.Unix(int64(sec), int64(frac*1e9)), true
	}
	return now.Add(time.Duration(s * float64(time.Second))), true
}

func parseReset(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSeconds(f, now)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := http.ParseTime(s); err == nil {
		return t, true
	}
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return now.Add(d), true
	}
	return time.Time{}, false
}
