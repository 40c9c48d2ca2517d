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

// Package grpcx adapts apierrors to gRPC status errors.
//
// A structured error is projected onto a *status.Status carrying
// google.rpc.ErrorInfo (variant identifier and status code), an optional
// google.rpc.RetryInfo, and a google.protobuf.Struct with the limit reset
// and the payload. FromStatus reverses the projection on the client side.
package grpcx

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/internal/wire"
	"dirpx.dev/apierrors/kind"
)

// Domain identifies apierrors details inside google.rpc.ErrorInfo.
const Domain = "dirpx.dev/apierrors"

const (
	metaStatusCode = "status_code"
	keyLimitReset  = "limit_reset"
	keyData        = "data"
)

// httpToGRPC maps upstream HTTP statuses of unexpected responses.
var httpToGRPC = map[int]gcodes.Code{
	http.StatusBadRequest:          gcodes.InvalidArgument,
	http.StatusUnauthorized:        gcodes.Unauthenticated,
	http.StatusForbidden:           gcodes.PermissionDenied,
	http.StatusNotFound:            gcodes.NotFound,
	http.StatusConflict:            gcodes.Aborted,
	http.StatusTooManyRequests:     gcodes.ResourceExhausted,
	499:                            gcodes.Canceled, // client closed request
	http.StatusNotImplemented:      gcodes.Unimplemented,
	http.StatusBadGateway:          gcodes.Unavailable,
	http.StatusServiceUnavailable:  gcodes.Unavailable,
	http.StatusGatewayTimeout:      gcodes.DeadlineExceeded,
	http.StatusInternalServerError: gcodes.Unknown,
}

// Code returns the gRPC code a structured error is reported with.
func Code(se apis.StructuredError) gcodes.Code {
	if se.Kind() == kind.RateLimit {
		return gcodes.ResourceExhausted
	}
	if c, ok := httpToGRPC[se.StatusCode()]; ok {
		return c
	}
	return gcodes.Unknown
}

// ToStatus projects the first structured error in err's chain onto a gRPC
// status. It reports false when err holds no structured error.
//
// Details that cannot be encoded (an unencodable payload) are dropped; the
// status itself is always returned.
func ToStatus(err error) (*gstatus.Status, bool) {
	se, ok := apierrors.AsStructured(err)
	if !ok {
		return nil, false
	}
	return toStatus(se, time.Now()), true
}

func toStatus(se apis.StructuredError, now time.Time) *gstatus.Status {
	base := gstatus.New(Code(se), se.Message())

	info := &errdetails.ErrorInfo{
		Reason:   se.Name(),
		Domain:   Domain,
		Metadata: map[string]string{metaStatusCode: strconv.Itoa(se.StatusCode())},
	}

	payload := map[string]any{}
	var retry *errdetails.RetryInfo
	if rl, ok := se.(apis.RateLimited); ok {
		if v := wire.ResetValue(rl.LimitReset()); v != nil {
			payload[keyLimitReset] = v
		}
		if d, ok := apierrors.RetryAfter(rl.LimitReset(), now); ok {
			retry = &errdetails.RetryInfo{RetryDelay: durationpb.New(d)}
		}
	}
	if se.HasData() {
		payload[keyData] = se.Data()
	}

	st, err := base.WithDetails(info)
	if err != nil {
		return base
	}
	if retry != nil {
		if with, err := st.WithDetails(retry); err == nil {
			st = with
		}
	}
	if len(payload) > 0 {
		ps, err := wire.ToStruct(payload)
		if err != nil {
			// keep whatever of the payload is encodable
			delete(payload, keyData)
			ps, err = wire.ToStruct(payload)
		}
		if err == nil && len(ps.GetFields()) > 0 {
			if with, err := st.WithDetails(ps); err == nil {
				st = with
			}
		}
	}
	return st
}

// FromStatus rebuilds the structured error projected by ToStatus.
// It reports false for statuses that carry no apierrors ErrorInfo.
//
// The limit reset and the payload come back in their structpb form: numbers
// are float64, maps are map[string]any, times and durations are strings.
func FromStatus(st *gstatus.Status) (apis.StructuredError, bool) {
	if st == nil {
		return nil, false
	}

	var (
		info    *errdetails.ErrorInfo
		payload *structpb.Struct
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() == Domain && info == nil {
				info = v
			}
		case *structpb.Struct:
			if payload == nil {
				payload = v
			}
		}
	}
	if info == nil {
		return nil, false
	}
	k, err := kind.Parse(info.GetReason())
	if err != nil {
		return nil, false
	}

	status, _ := strconv.Atoi(info.GetMetadata()[metaStatusCode])
	opts := []apierrors.Option{apierrors.WithCause(st.Err())}
	var reset any
	if payload != nil {
		fields := payload.GetFields()
		if v, ok := fields[keyData]; ok {
			opts = append(opts, apierrors.WithData(v.AsInterface()))
		}
		if v, ok := fields[keyLimitReset]; ok {
			reset = v.AsInterface()
		}
	}

	switch k {
	case kind.RateLimit:
		return apierrors.NewRateLimitError(st.Message(), status, reset, opts...), true
	default:
		return apierrors.NewUnexpectedResponseError(st.Message(), status, opts...), true
	}
}

// FromError converts a gRPC error carrying apierrors details back into the
// structured error. Any other error is returned unchanged.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return err
	}
	if se, ok := FromStatus(st); ok {
		return se
	}
	return err
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// structured errors returned by handlers into rich status errors.
// Other errors pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		st, ok := ToStatus(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, st.Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors carrying apierrors details back into structured errors, so
// callers can use errors.As / errors.Is across the wire.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return FromError(invoker(ctx, method, req, reply, cc, opts...))
	}
}
