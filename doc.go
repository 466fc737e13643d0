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

// Package errkind provides hierarchical error kinds.
//
// A Kind is a named error type declared at runtime rather than as a Go type.
// Kinds form a tree rooted at Base ("Error"); every instance built by a kind
// is an *Error that:
//
//   - satisfies error, errors.Is and errors.As;
//   - records its ancestry (Names), nesting the ancestry of a wrapped cause;
//   - carries a free-form details payload;
//   - captures the stack of the call site that built it.
//
// # Declaring kinds
//
//	var (
//		DatabaseError = errkind.New("DatabaseError", nil)
//		ServerError   = errkind.New("ServerError", nil)
//	)
//
// # Building instances
//
// Constructors take up to three positional arguments in any order, sorted by
// type: an error is the cause, a string the message, a composite value (map,
// struct, pointer, slice) the details.
//
//	dbErr := DatabaseError.Must("connection refused", map[string]any{"host": "db"})
//	err := ServerError.Must(dbErr)
//
//	err.Message()       // "connection refused" (inherited)
//	err.Names()         // (ServerError,(DatabaseError,Error),Error)
//	ServerError.Match(err)   // true
//	DatabaseError.Match(err) // false: causes are not inspected
//	errors.Is(err, DatabaseError) // true: errors.Is walks Unwrap
//
// New reports bad arguments as an error wrapping ErrInvalidArguments, Must
// panics, and Build takes an Args struct and cannot fail.
//
// # Options
//
// Options are captured once per kind. Process-wide defaults can be set with
// SetDefaultOptions (see also package envconfig).
package errkind
