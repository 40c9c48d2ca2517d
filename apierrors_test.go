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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/kind"
)

func TestRateLimitError_Fields(t *testing.T) {
	data := map[string]any{"endpoint": "/users"}
	e := NewRateLimitError("Too many requests", 429, "2024-01-01T00:00:00Z", WithData(data))

	assert.Equal(t, "Too many requests", e.Message())
	assert.Equal(t, 429, e.StatusCode())
	assert.Equal(t, "2024-01-01T00:00:00Z", e.LimitReset())
	require.True(t, e.HasData())
	assert.Equal(t, "/users", e.Data().(map[string]any)["endpoint"])
	assert.Equal(t, kind.RateLimit, e.Kind())
	assert.Equal(t, "RateLimitError", e.Name())
}

func TestUnexpectedResponseError_Fields(t *testing.T) {
	e := NewUnexpectedResponseError("Bad gateway", 502)

	assert.Equal(t, "Bad gateway", e.Message())
	assert.Equal(t, 502, e.StatusCode())
	assert.Nil(t, e.Data())
	assert.False(t, e.HasData())
	assert.Equal(t, kind.UnexpectedResponse, e.Kind())
	assert.Equal(t, "UnexpectedResponseError", e.Name())
}

func TestFields_PassedThroughVerbatim(t *testing.T) {
	type payload struct{ ID int }
	p := &payload{ID: 7}

	tests := []struct {
		name  string
		reset any
		data  any
	}{
		{"string reset, struct pointer data", "1700000000", p},
		{"int reset, slice data", 30, []string{"a", "b"}},
		{"nil reset, scalar data", nil, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimitError("m", 429, tt.reset, WithData(tt.data))
			assert.Equal(t, tt.reset, rl.LimitReset())
			assert.Equal(t, tt.data, rl.Data())

			ur := NewUnexpectedResponseError("m", 500, WithData(tt.data))
			assert.Equal(t, tt.data, ur.Data())
		})
	}

	// pointers are kept, not copied
	rl := NewRateLimitError("m", 429, nil, WithData(p))
	assert.Same(t, p, rl.Data())
}

func TestData_AbsentVersusExplicitNil(t *testing.T) {
	absent := NewRateLimitError("m", 429, nil)
	assert.False(t, absent.HasData())
	assert.Nil(t, absent.Data())

	explicit := NewRateLimitError("m", 429, nil, WithData(nil))
	assert.True(t, explicit.HasData())
	assert.Nil(t, explicit.Data())

	assert.False(t, absent.Equal(explicit))
}

func TestName_IgnoresPayload(t *testing.T) {
	data := map[string]any{"name": "UnexpectedResponseError", "kind": "other"}

	rl := NewRateLimitError("m", 429, nil, WithData(data))
	assert.Equal(t, "RateLimitError", rl.Name())
	assert.Equal(t, kind.RateLimit, rl.Kind())
	assert.Equal(t, "RateLimitError", rl.ErrorView().Name)

	ur := NewUnexpectedResponseError("m", 500, WithData(map[string]any{"name": "RateLimitError"}))
	assert.Equal(t, "UnexpectedResponseError", ur.Name())
}

func TestError_String(t *testing.T) {
	assert.Equal(t, "RateLimitError: Too many requests (status 429)",
		NewRateLimitError("Too many requests", 429, nil).Error())
	assert.Equal(t, "UnexpectedResponseError: Bad gateway (status 502)",
		NewUnexpectedResponseError("Bad gateway", 502).Error())

	var nilRL *RateLimitError
	assert.Equal(t, "<nil>", nilRL.Error())
}

func TestError_PropagatesAsError(t *testing.T) {
	raise := func(e error) error { return fmt.Errorf("list users: %w", e) }

	rlErr := raise(NewRateLimitError("slow down", 429, "5"))
	urErr := raise(NewUnexpectedResponseError("teapot", 418))

	// generic handler
	for _, err := range []error{rlErr, urErr} {
		var generic error = err
		require.Error(t, generic)
		_, ok := AsStructured(err)
		assert.True(t, ok)
	}

	assert.True(t, errors.Is(rlErr, ErrRateLimit))
	assert.False(t, errors.Is(rlErr, ErrUnexpectedResponse))
	assert.True(t, errors.Is(urErr, ErrUnexpectedResponse))
	assert.False(t, errors.Is(urErr, ErrRateLimit))

	assert.True(t, IsRateLimit(rlErr))
	assert.True(t, IsUnexpectedResponse(urErr))

	rl, ok := AsRateLimit(rlErr)
	require.True(t, ok)
	assert.Equal(t, "5", rl.LimitReset())

	_, ok = AsRateLimit(urErr)
	assert.False(t, ok)

	ur, ok := AsUnexpectedResponse(urErr)
	require.True(t, ok)
	assert.Equal(t, 418, ur.StatusCode())

	var rlIface apis.RateLimited
	assert.True(t, errors.As(rlErr, &rlIface))
	var urIface apis.UnexpectedResponder
	assert.False(t, errors.As(rlErr, &urIface))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, kind.RateLimit, KindOf(NewRateLimitError("m", 429, nil)))
	assert.Equal(t, kind.UnexpectedResponse, KindOf(fmt.Errorf("x: %w", NewUnexpectedResponseError("m", 500))))
	assert.Equal(t, kind.Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, kind.Unknown, KindOf(nil))
}

func TestWithCause_Unwrap(t *testing.T) {
	root := errors.New("connection reset")
	e := NewUnexpectedResponseError("read body", 200, WithCause(root))

	assert.True(t, errors.Is(e, root))
	assert.Same(t, root, errors.Unwrap(e))
	assert.True(t, errors.Is(e, ErrUnexpectedResponse))

	assert.Nil(t, NewUnexpectedResponseError("m", 500, WithCause(nil)).Unwrap())
}

func TestEqual_DistinctButFieldEqual(t *testing.T) {
	mk := func() *RateLimitError {
		return NewRateLimitError("Too many requests", 429, "60", WithData(map[string]any{"endpoint": "/users"}))
	}
	a, b := mk(), mk()

	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))

	c := NewRateLimitError("Too many requests", 429, "61", WithData(map[string]any{"endpoint": "/users"}))
	assert.False(t, a.Equal(c))

	u1 := NewUnexpectedResponseError("Bad gateway", 502)
	u2 := NewUnexpectedResponseError("Bad gateway", 502)
	assert.NotSame(t, u1, u2)
	assert.True(t, u1.Equal(u2))
	assert.False(t, u1.Equal(NewUnexpectedResponseError("Bad gateway", 503)))

	var nilUR *UnexpectedResponseError
	assert.False(t, u1.Equal(nilUR))
	assert.True(t, nilUR.Equal(nil))
}

func TestStackTrace(t *testing.T) {
	e := NewRateLimitError("m", 429, nil)

	frames := e.StackTrace()
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasSuffix(frames[0].Function, "TestStackTrace"),
		"first frame = %q", frames[0].Function)
	assert.True(t, strings.HasSuffix(frames[0].File, "apierrors_test.go"))

	verbose := fmt.Sprintf("%+v", e)
	assert.True(t, strings.HasPrefix(verbose, e.Error()))
	assert.Contains(t, verbose, "TestStackTrace")
	assert.Equal(t, e.Error(), fmt.Sprintf("%v", e))
	assert.Equal(t, e.Error(), fmt.Sprintf("%s", e))
	assert.Equal(t, fmt.Sprintf("%q", e.Error()), fmt.Sprintf("%q", e))

	assert.Empty(t, NewUnexpectedResponseError("m", 500, WithoutStack()).StackTrace())
}

func TestErrorView(t *testing.T) {
	v := NewRateLimitError("slow", 429, "30", WithData(map[string]any{"a": 1})).ErrorView()
	assert.Equal(t, apis.ErrorView{
		Name:       "RateLimitError",
		Message:    "slow",
		StatusCode: 429,
		LimitReset: "30",
		Data:       map[string]any{"a": 1},
	}, v)

	uv := NewUnexpectedResponseError("bad", 502).ErrorView()
	assert.Equal(t, map[string]any{
		"name":        "UnexpectedResponseError",
		"message":     "bad",
		"status_code": 502,
	}, uv.Map())
}

func TestNilReceivers(t *testing.T) {
	var rl *RateLimitError
	assert.NotPanics(t, func() {
		assert.Empty(t, rl.Message())
		assert.Zero(t, rl.StatusCode())
		assert.Nil(t, rl.Data())
		assert.False(t, rl.HasData())
		assert.Nil(t, rl.LimitReset())
		assert.Nil(t, rl.Unwrap())
		assert.Empty(t, rl.StackTrace())
		assert.Equal(t, "RateLimitError", rl.Name())
		_, ok := rl.ResetAt(time.Now())
		assert.False(t, ok)
		_, ok = rl.RetryAfter(time.Now())
		assert.False(t, ok)
		assert.Equal(t, "RateLimitError", rl.ErrorView().Name)
		assert.Equal(t, "<nil>", fmt.Sprintf("%+v", rl))
	})

	var ur *UnexpectedResponseError
	assert.NotPanics(t, func() {
		assert.Empty(t, ur.Message())
		assert.Zero(t, ur.StatusCode())
		assert.Nil(t, ur.Data())
		assert.False(t, ur.HasData())
		assert.Nil(t, ur.Unwrap())
		assert.Empty(t, ur.StackTrace())
		assert.Equal(t, "<nil>", ur.Error())
		assert.Equal(t, "UnexpectedResponseError", ur.ErrorView().Name)
	})
}

func TestConcurrentReads(t *testing.T) {
	e := NewRateLimitError("m", 429, "10", WithData(map[string]any{"k": "v"}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Error()
			_ = e.Data()
			_ = e.LimitReset()
			_ = e.StackTrace()
			_ = e.ErrorView()
		}()
	}
	wg.Wait()
}
