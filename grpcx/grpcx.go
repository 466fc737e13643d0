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

package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/statusmap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Domain is the ErrorInfo domain stamped on statuses built by this package.
const Domain = "errkind"

// ErrorInfo metadata keys.
const (
	MetaNames = "names"
	MetaKind  = "kind"
)

// fallback resolves every non-nil error to codes.Internal.
var fallback = statusmap.MustNew()

// Status converts err into a gRPC status. The code comes from m (a nil m
// maps everything to codes.Internal) and the message is err.Error().
//
// When err wraps an *errkind.Error, the status carries an ErrorInfo with the
// kind name as Reason and the ancestry under MetaNames, plus a Struct detail
// when the instance details are a map[string]any that protobuf can encode.
// A nil err yields an OK status.
func Status(m *statusmap.Mapper, err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if m == nil {
		m = fallback
	}

	st := status.New(m.GRPCStatus(err), err.Error())

	var e *errkind.Error
	if !errors.As(err, &e) {
		return st
	}

	info := &errdetails.ErrorInfo{
		Reason: e.Name(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaNames: e.Names().String(),
			MetaKind:  string(statusmap.Path(err)),
		},
	}

	withInfo, derr := st.WithDetails(info)
	if derr != nil {
		return st
	}
	st = withInfo

	if d, ok := e.Details().(map[string]any); ok {
		if s, serr := structpb.NewStruct(d); serr == nil {
			if withStruct, derr := st.WithDetails(s); derr == nil {
				st = withStruct
			}
		}
	}
	return st
}

// Error is Status(m, err).Err(). It returns nil for a nil err.
func Error(m *statusmap.Mapper, err error) error {
	if err == nil {
		return nil
	}
	return Status(m, err).Err()
}

// UnaryServerInterceptor converts handler errors into gRPC status errors via
// Status. Errors that already carry a gRPC status pass through unchanged.
func UnaryServerInterceptor(m *statusmap.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(m, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m *statusmap.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return convert(m, err)
		}
		return nil
	}
}

func convert(m *statusmap.Mapper, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return Status(m, err).Err()
}

// Info returns the errkind ErrorInfo attached to a gRPC status error.
func Info(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// Names reads the ancestry back from a gRPC status error built by Status.
// Nested cause groups are restored.
func Names(err error) (errkind.Names, bool) {
	info, ok := Info(err)
	if !ok {
		return nil, false
	}
	n, perr := ParseNames(info.GetMetadata()[MetaNames])
	if perr != nil {
		return nil, false
	}
	return n, true
}

// Details returns the map attached by Status as a Struct detail.
func Details(err error) (map[string]any, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s.AsMap(), true
		}
	}
	return nil, false
}
