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

package errkind

import (
	"errors"
	"fmt"
	"io"
)

// Error is an instance of a Kind.
//
// It carries:
//   - the owning kind and its name;
//   - a message (explicit, or inherited from the cause);
//   - details, an arbitrary structured payload (explicit, or inherited);
//   - the wrapped cause (Parent / Unwrap);
//   - the ancestry (Names) and the construction stack (Stack / Frames).
//
// Fields are only reachable through accessors and never change after
// construction, so instances can be shared freely. Every method is safe on
// a nil *Error and returns zero values.
type Error struct {
	kind    *Kind
	message string
	details any
	cause   error
	names   Names
	stack   string
	frames  []Frame
}

// Kind returns the kind that built e.
func (e *Error) Kind() *Kind {
	if e == nil {
		return nil
	}
	return e.kind
}

// Name returns the kind name.
func (e *Error) Name() string {
	if e == nil {
		return ""
	}
	return e.kind.name
}

// Message returns the human-readable message, possibly empty.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Details returns the structured payload, or nil.
func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// Names returns the ancestry of e. Names()[0] is always Name().
// The returned value is shared and must not be modified.
func (e *Error) Names() Names {
	if e == nil {
		return nil
	}
	return e.names
}

// Parent returns the wrapped cause, or nil.
func (e *Error) Parent() error { return e.Unwrap() }

// Unwrap returns the wrapped cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Ancestors returns the chain of wrapped causes, nearest first. It is
// computed on every call by following Unwrap links, bounded by MaxDepth.
func (e *Error) Ancestors() []error {
	if e == nil {
		return nil
	}
	var out []error
	for cur := e.cause; cur != nil && len(out) < MaxDepth; cur = errors.Unwrap(cur) {
		out = append(out, cur)
	}
	return out
}

// Stack returns the construction stack:
//
//	QueryError: select failed
//	    at main.load (/src/app/main.go:42)
//	    at main.main (/src/app/main.go:17)
func (e *Error) Stack() string {
	if e == nil {
		return ""
	}
	return e.stack
}

// Frames returns the structured frames behind Stack.
func (e *Error) Frames() []Frame {
	if e == nil {
		return nil
	}
	out := make([]Frame, len(e.frames))
	copy(out, e.frames)
	return out
}

// Is reports whether target is a Kind in the chain of e's kind. Together
// with Unwrap this makes errors.Is(err, kind) match wrapped causes too.
func (e *Error) Is(target error) bool {
	k, ok := target.(*Kind)
	if !ok || e == nil {
		return false
	}
	return k.Match(e)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<name>: <message>
//
// or just <name> when the message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return stackHeader(e.kind.name, e.message)
}

// Format implements fmt.Formatter. %+v prints the stack, %q the quoted
// Error() text, and every other verb Error().
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Stack())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
