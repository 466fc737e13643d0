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

// Package statusmap provides deterministic, immutable mappings from error
// kinds (dirpx.dev/errkind) to transport statuses for HTTP and gRPC.
//
// # Overview
//
// Every errkind error has a kind path (see package kindpath), e.g.
// "error.database_error.query_error". Transport layers (HTTP handlers,
// gRPC servers) need to turn that into concrete status codes. A Mapper does
// that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - hierarchical: a rule for a kind covers every kind extending it;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// Rules are kind-path prefixes matched on segment boundaries, where "*"
// matches exactly one segment. The deepest matching rule wins; at equal
// depth a literal segment beats "*". When nothing matches, the fallback
// (500 / codes.Internal) applies:
//
//	m, err := statusmap.New(
//		statusmap.WithKindHTTP(DatabaseError, http.StatusServiceUnavailable),
//		statusmap.WithKindHTTP(QueryError, http.StatusBadRequest),
//		statusmap.WithGRPC("error.*.not_found_error", codes.NotFound),
//	)
//
// The error resolved is the nearest one in the Unwrap chain that carries an
// ancestry, so fmt.Errorf("...: %w", err) keeps its mapping. Causes wrapped
// by an errkind instance do not influence its status.
//
// No kind rules ship with the package.
//
// # Diagnostics
//
// Mapper.Explain reports which rule (if any) decided each status.
package statusmap
