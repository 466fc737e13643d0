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

// Package kindpath renders error kind ancestries as canonical dotted paths.
//
// A kind path lists the kinds of an error root first, one snake_case segment
// per kind:
//
//   - "error"
//   - "error.database_error"
//   - "error.database_error.query_error"
//
// Paths are what transport mappers and log pipelines match on: a rule for
// "error.database_error" naturally covers every kind extending DatabaseError.
//
// The empty path means "no kind" and is valid. Callers that require a kind
// should check for Empty explicitly.
package kindpath
