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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	e := NewRateLimitError("slow down", 429, "30", WithData(map[string]any{"endpoint": "/users"}))
	require.NoError(t, e.MarshalLogObject(enc))

	assert.Equal(t, "RateLimitError", enc.Fields["name"])
	assert.Equal(t, "slow down", enc.Fields["message"])
	assert.EqualValues(t, 429, enc.Fields["status_code"])
	assert.Equal(t, "30", enc.Fields["limit_reset"])
	assert.Equal(t, map[string]any{"endpoint": "/users"}, enc.Fields["data"])

	enc = zapcore.NewMapObjectEncoder()
	u := NewUnexpectedResponseError("bad", 502, WithCause(errors.New("eof")))
	require.NoError(t, u.MarshalLogObject(enc))
	assert.Equal(t, "UnexpectedResponseError", enc.Fields["name"])
	assert.Equal(t, "eof", enc.Fields["cause"])
	_, hasData := enc.Fields["data"]
	assert.False(t, hasData)
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	logger.Warn("request failed", Fields(NewUnexpectedResponseError("bad", 502))...)
	logger.Warn("request failed", Fields(errors.New("plain"))...)

	entries := logs.All()
	require.Len(t, entries, 2)

	structured := entries[0].ContextMap()
	assert.Equal(t, "UnexpectedResponseError", structured["error_kind"])
	obj, ok := structured["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bad", obj["message"])

	plain := entries[1].ContextMap()
	assert.Equal(t, "plain", plain["error"])
	_, ok = plain["error_kind"]
	assert.False(t, ok)

	assert.Nil(t, Fields(nil))
}
