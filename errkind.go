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

// BaseName is the name of the root kind every hierarchy terminates in.
const BaseName = "Error"

// Kind is a named, constructible error type.
//
// A Kind is created once (usually as a package-level variable) and then used
// to build instances:
//
//	var (
//		DatabaseError = errkind.New("DatabaseError", nil)
//		QueryError    = DatabaseError.Extend("QueryError")
//	)
//
//	err := QueryError.Must("select failed", cause, map[string]any{"table": "users"})
//
// Kinds are immutable and safe for concurrent use. *Kind implements error so
// that it can be passed to errors.Is as a target:
//
//	errors.Is(err, DatabaseError) // true for QueryError instances too
type Kind struct {
	name   string
	parent *Kind
	opts   Options
}

// Base is the root kind, the "platform" error every other kind inherits
// from. Base.Match accepts any non-nil error.
//
// Base carries the built-in options; process-wide defaults do not apply to it.
var Base = &Kind{name: BaseName, opts: builtinOptions}

// New creates a kind named name inheriting from parent. A nil parent means
// Base.
//
// Options are resolved here, once: built-in defaults, then the process-wide
// defaults (SetDefaultOptions), then opts.
//
// New panics if name is empty.
func New(name string, parent *Kind, opts ...Option) *Kind {
	if name == "" {
		panic("errkind: kind name must not be empty")
	}
	if parent == nil {
		parent = Base
	}
	return &Kind{
		name:   name,
		parent: parent,
		opts:   resolveOptions(opts),
	}
}

// Extend creates a child kind of k. It is equivalent to New(name, k, opts...).
func (k *Kind) Extend(name string, opts ...Option) *Kind {
	return New(name, k, opts...)
}

// Name returns the kind name.
func (k *Kind) Name() string { return k.name }

// Parent returns the kind k inherits from, or nil for Base.
func (k *Kind) Parent() *Kind { return k.parent }

// Options returns the options captured when k was created.
func (k *Kind) Options() Options { return k.opts }

// Error implements error so a Kind can be used as an errors.Is target.
func (k *Kind) Error() string { return k.name }

// Names returns the names of k and its parents, most specific first.
func (k *Kind) Names() Names { return kindNames(k) }

// String returns the kind ancestry, e.g. "(QueryError,DatabaseError,Error)".
func (k *Kind) String() string { return kindNames(k).String() }

// Match reports whether err is an instance of k or of one of its
// descendants. Wrapped causes are not inspected; use errors.Is for that.
//
// Base.Match reports true for every non-nil error.
func (k *Kind) Match(err error) bool {
	if err == nil {
		return false
	}
	if k == Base {
		return true
	}
	e, ok := err.(*Error)
	if !ok || e == nil {
		return false
	}
	return e.kind.descends(k)
}

// descends reports whether target is k or one of its parents.
func (k *Kind) descends(target *Kind) bool {
	for i := 0; k != nil && i < MaxDepth; i++ {
		if k == target {
			return true
		}
		k = k.parent
	}
	return false
}

// New builds an instance from up to MaxArguments positional arguments in
// any order: an error (the cause), a string (the message) and a composite
// value such as a map or struct pointer (the details). Nil arguments are
// ignored.
//
// The returned error wraps ErrInvalidArguments when the arguments cannot be
// classified.
func (k *Kind) New(args ...any) (*Error, error) {
	a, err := classify(args...)
	if err != nil {
		return nil, err
	}
	return k.construct(a), nil
}

// Must is like New but panics when the arguments cannot be classified. It
// is meant for call sites with literal arguments.
func (k *Kind) Must(args ...any) *Error {
	a, err := classify(args...)
	if err != nil {
		panic(err)
	}
	return k.construct(a)
}

// Build builds an instance from structured arguments. It cannot fail.
func (k *Kind) Build(a Args) *Error {
	return k.construct(a)
}

// construct assembles an instance. It must be called directly from the
// public entry point so the entry frame is the first one captured.
func (k *Kind) construct(a Args) *Error {
	frames := captureFrames(1)

	e := &Error{
		kind:    k,
		cause:   a.Cause,
		message: a.Message,
		details: a.Details,
	}
	if e.message == "" {
		e.message = causeMessage(a.Cause)
	}
	if e.details == nil {
		e.details = causeDetails(a.Cause)
	}
	e.names = instanceNames(k, a.Cause)

	clean := k.opts.CleanStackTraces
	e.stack = cleanStack(rawTrace(frames), k.name, e.message, clean)
	e.frames = cleanFrames(frames, clean)
	return e
}

// causeMessage returns the message a cause contributes when no explicit
// message was given.
func causeMessage(cause error) string {
	if cause == nil {
		return ""
	}
	if m, ok := cause.(interface{ Message() string }); ok {
		return m.Message()
	}
	return cause.Error()
}

// causeDetails returns the details a cause contributes when none were given.
// Only values exposing Details() contribute.
func causeDetails(cause error) any {
	if d, ok := cause.(interface{ Details() any }); ok {
		return d.Details()
	}
	return nil
}
