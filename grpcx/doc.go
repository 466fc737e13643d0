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

// Package grpcx projects errkind errors onto gRPC statuses.
//
// The status code is resolved by a statusmap.Mapper. Instances additionally
// carry a google.rpc.ErrorInfo detail (domain "errkind") holding the kind
// name and ancestry, so clients can recover the hierarchy:
//
//	m := statusmap.MustNew(statusmap.WithKindGRPC(NotFound, codes.NotFound))
//	srv := grpc.NewServer(grpc.UnaryInterceptor(grpcx.UnaryServerInterceptor(m)))
//
//	// client side
//	names, ok := grpcx.Names(err)
package grpcx
