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

package statusmap

import (
	"net/http"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/kindpath"
	"google.golang.org/grpc/codes"
)

// Option configures a Mapper at build time. Options are applied to an
// internal builder that New then freezes.
type Option func(*builder)

type rule struct {
	// prefix is the raw dotted kind-path prefix (may contain "*"); it is
	// normalized and validated in New.
	prefix string
	val    int
}

type builder struct {
	http []rule
	grpc []rule

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// WithHTTP maps every kind whose path starts with prefix to an HTTP status.
// Use "*" to match exactly one segment:
//
//	WithHTTP("error.database_error", http.StatusServiceUnavailable)
//	WithHTTP("error.*.not_found_error", http.StatusNotFound)
func WithHTTP(prefix string, status int) Option {
	return func(b *builder) { b.http = append(b.http, rule{prefix, status}) }
}

// WithGRPC maps every kind whose path starts with prefix to a gRPC code.
func WithGRPC(prefix string, c codes.Code) Option {
	return func(b *builder) { b.grpc = append(b.grpc, rule{prefix, int(c)}) }
}

// WithKindHTTP maps k and every kind extending it to an HTTP status.
func WithKindHTTP(k *errkind.Kind, status int) Option {
	return WithHTTP(string(kindpath.OfKind(k)), status)
}

// WithKindGRPC maps k and every kind extending it to a gRPC code.
func WithKindGRPC(k *errkind.Kind, c codes.Code) Option {
	return WithGRPC(string(kindpath.OfKind(k)), c)
}

// WithFallback replaces the statuses used when no rule matches
// (500 / codes.Internal by default).
func WithFallback(httpStatus int, c codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = c
	}
}
