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

// Package zapx logs errkind errors with go.uber.org/zap.
//
// Error builds a structured field exposing the kind name, message, ancestry
// and details of an error. NewStackExtractCore moves the construction stack
// of a logged errkind error into the entry stack, so encoders print it the
// way they print zap's own stacks.
package zapx

import (
	"errors"

	"dirpx.dev/errkind"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultKey is the field key used by Error.
const DefaultKey = "error"

// Error returns a field named "error" describing err. A nil error yields
// zap.Skip().
func Error(err error) zap.Field {
	return NamedError(DefaultKey, err)
}

// NamedError is like Error with a custom key.
func NamedError(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(key, errObject{err: err, stack: true})
}

// errObject marshals an error as a nested object:
//
//	{"name": "QueryError", "message": "...", "names": "(QueryError,DatabaseError,Error)",
//	 "details": {...}, "stack": "..."}
type errObject struct {
	err   error
	stack bool
}

func (o errObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	var e *errkind.Error
	if !errors.As(o.err, &e) {
		names := errkind.Ancestry(o.err)
		if top := names.Strings(); len(top) > 0 {
			enc.AddString("name", top[0])
		}
		enc.AddString("message", o.err.Error())
		enc.AddString("names", names.String())
		return nil
	}

	enc.AddString("name", e.Name())
	enc.AddString("message", e.Message())
	enc.AddString("names", e.Names().String())
	if e != o.err {
		// The instance was found inside a std wrapper; keep its text.
		enc.AddString("error", o.err.Error())
	}
	if d := e.Details(); d != nil {
		if err := enc.AddReflected("details", d); err != nil {
			return err
		}
	}
	if o.stack {
		enc.AddString("stack", e.Stack())
	}
	return nil
}
