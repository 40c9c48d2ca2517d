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

// Package httpx adapts apierrors to HTTP.
//
// Classify runs on the client side: it turns a response the client already
// received into a RateLimitError or an UnexpectedResponseError. Writer runs
// on the server side of a proxy or gateway and re-surfaces such an error to
// its own caller.
package httpx

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/internal/wire"
	"dirpx.dev/apierrors/kind"
)

// DefaultMaxBodyBytes bounds how much of a response body Classify reads.
const DefaultMaxBodyBytes = 1 << 20

var (
	// DefaultMessagePaths are the gjson paths probed, in order, for a
	// human-readable message in JSON error bodies.
	DefaultMessagePaths = []string{"error.message", "message", "error_description", "error", "detail"}

	// DefaultResetHeaders are the headers probed, in order, for a limit
	// reset value on 429 responses.
	DefaultResetHeaders = []string{"Retry-After", "X-RateLimit-Reset", "RateLimit-Reset", "X-Rate-Limit-Reset"}
)

// Classifier turns HTTP responses into apierrors values. The zero value
// uses the package defaults.
type Classifier struct {
	// MaxBodyBytes caps the body read. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// MessagePaths overrides DefaultMessagePaths.
	MessagePaths []string
	// ResetHeaders overrides DefaultResetHeaders.
	ResetHeaders []string
}

// Classify uses the zero Classifier.
func Classify(resp *http.Response) error {
	return Classifier{}.Classify(resp)
}

// Classify builds the error describing resp. It is meant to be called once
// the client decided resp is not what it expected; it never returns nil.
//
// 429 responses become a RateLimitError whose limit reset is the raw value
// of the first present reset header (absent when none is). Every other
// status becomes an UnexpectedResponseError.
//
// JSON bodies are decoded into the payload, other non-empty bodies are kept
// as a string. The body is read up to MaxBodyBytes and left open; closing
// it stays with the caller. A failed read is attached as the cause.
func (c Classifier) Classify(resp *http.Response) error {
	if resp == nil {
		return apierrors.NewUnexpectedResponseError("no response", 0)
	}

	var opts []apierrors.Option
	body, err := c.readBody(resp)
	if err != nil {
		opts = append(opts, apierrors.WithCause(err))
	}
	if data, ok := decodeBody(body); ok {
		opts = append(opts, apierrors.WithData(data))
	}
	msg := c.message(resp, body)

	if resp.StatusCode == http.StatusTooManyRequests {
		return apierrors.NewRateLimitError(msg, resp.StatusCode, c.limitReset(resp.Header), opts...)
	}
	return apierrors.NewUnexpectedResponseError(msg, resp.StatusCode, opts...)
}

func (c Classifier) readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}
	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

func (c Classifier) message(resp *http.Response, body []byte) string {
	paths := c.MessagePaths
	if paths == nil {
		paths = DefaultMessagePaths
	}
	if gjson.ValidBytes(body) {
		for _, p := range paths {
			if r := gjson.GetBytes(body, p); r.Type == gjson.String && r.Str != "" {
				return r.Str
			}
		}
	}
	if txt := http.StatusText(resp.StatusCode); txt != "" {
		return txt
	}
	if resp.Status != "" {
		return resp.Status
	}
	return "unexpected response"
}

func (c Classifier) limitReset(h http.Header) any {
	names := c.ResetHeaders
	if names == nil {
		names = DefaultResetHeaders
	}
	for _, n := range names {
		if v := h.Get(n); v != "" {
			return v
		}
	}
	return nil
}

// decodeBody returns the payload for body: the decoded JSON value, the raw
// text, or nothing for an empty body.
func decodeBody(body []byte) (any, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false
	}
	if gjson.ValidBytes(body) {
		return gjson.ParseBytes(body).Value(), true
	}
	return string(body), true
}

// Writer writes apierrors values as HTTP responses.
type Writer struct {
	// Now is used to compute Retry-After. Nil means time.Now.
	Now func() time.Time
}

// Write serializes err as an ErrorView JSON body:
//
//   - RateLimitError keeps its status when it is a 4xx/5xx (429 otherwise)
//     and gets a Retry-After header when the reset can be computed;
//   - UnexpectedResponseError becomes 502 Bad Gateway, the upstream status
//     stays in the body;
//   - any other error becomes a bare 500.
//
// No redaction is performed: the payload is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	se, ok := apierrors.AsStructured(err)
	if !ok {
		writeJSON(rw, http.StatusInternalServerError, map[string]any{
			"message": http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	st := http.StatusBadGateway
	if se.Kind() == kind.RateLimit {
		st = se.StatusCode()
		if st < 400 || st > 599 {
			st = http.StatusTooManyRequests
		}
		if d, ok := apierrors.RetryAfter(limitReset(se), w.now()); ok {
			rw.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.Seconds()))))
		}
	}

	writeJSON(rw, st, viewOf(se).Map())
}

func (w Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// limitReset returns the reset of a rate limit error, nil for anything
// that does not implement apis.RateLimited.
func limitReset(se apis.StructuredError) any {
	if rl, ok := se.(apis.RateLimited); ok {
		return rl.LimitReset()
	}
	return nil
}

func viewOf(se apis.StructuredError) apis.ErrorView {
	var v apis.ErrorView
	if vp, ok := se.(apis.ViewProvider); ok {
		v = vp.ErrorView()
	} else {
		v = apis.ErrorView{
			Name:       se.Name(),
			Message:    se.Message(),
			StatusCode: se.StatusCode(),
			LimitReset: limitReset(se),
			Data:       se.Data(),
		}
	}
	v.LimitReset = wire.ResetValue(v.LimitReset)
	return v
}

func writeJSON(rw http.ResponseWriter, status int, m map[string]any) {
	st, err := wire.ToStruct(m)
	if err != nil {
		// payload not encodable; keep the rest
		delete(m, "data")
		st, _ = wire.ToStruct(m)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	// protojson keeps the structpb encoding canonical.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(st)
	_, _ = rw.Write(b)
}
