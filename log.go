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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	_ zapcore.ObjectMarshaler = (*RateLimitError)(nil)
	_ zapcore.ObjectMarshaler = (*UnexpectedResponseError)(nil)
)

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *RateLimitError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	e.core().marshalCommon(enc, e.Name())
	if reset := e.LimitReset(); reset != nil {
		if err := enc.AddReflected("limit_reset", reset); err != nil {
			return err
		}
	}
	return e.core().marshalData(enc)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *UnexpectedResponseError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	e.core().marshalCommon(enc, e.Name())
	return e.core().marshalData(enc)
}

func (b *base) marshalCommon(enc zapcore.ObjectEncoder, name string) {
	enc.AddString("name", name)
	enc.AddString("message", b.message)
	enc.AddInt("status_code", b.statusCode)
	if b.cause != nil {
		enc.AddString("cause", b.cause.Error())
	}
}

func (b *base) marshalData(enc zapcore.ObjectEncoder) error {
	if !b.hasData {
		return nil
	}
	return enc.AddReflected("data", b.data)
}

// Fields returns zap fields describing err. Structured errors are logged as
// an object under "error" plus their kind; anything else falls back to
// zap.Error.
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	se, ok := AsStructured(err)
	if !ok {
		return []zap.Field{zap.Error(err)}
	}
	m, ok := se.(zapcore.ObjectMarshaler)
	if !ok {
		return []zap.Field{zap.Error(err), zap.Stringer("error_kind", se.Kind())}
	}
	return []zap.Field{
		zap.Object("error", m),
		zap.Stringer("error_kind", se.Kind()),
	}
}
