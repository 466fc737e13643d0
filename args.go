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
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MaxArguments is the maximum number of positional arguments accepted by
// Kind.New and Kind.Must.
const MaxArguments = 3

// ErrInvalidArguments is returned (or, from Must, panicked with) when the
// positional arguments of a constructor cannot be classified: too many of
// them, or two values of the same role.
//
// Errors returned by the classifier wrap this sentinel, so callers should
// test with errors.Is.
var ErrInvalidArguments = errors.New("errkind: invalid arguments passed into error")

// Args is the structured form of constructor input. Every field is optional.
type Args struct {
	// Cause is the error being wrapped. It becomes the instance parent and
	// supplies fallback message/details.
	Cause error

	// Message is the human-readable text. Empty means "inherit from Cause".
	Message string

	// Details is an arbitrary structured payload (usually map[string]any or a
	// struct pointer). Nil means "inherit from Cause".
	Details any
}

// role names one of the three argument slots.
type role string

const (
	roleCause   role = "cause"
	roleMessage role = "message"
	roleDetails role = "details"
)

// argError describes a single rejected positional argument.
type argError struct {
	pos    int // 1-based
	reason string
}

func (e *argError) Error() string {
	return fmt.Sprintf("argument %d: %s", e.pos, e.reason)
}

func (e *argError) Unwrap() error { return ErrInvalidArguments }

// classify sorts up to MaxArguments positional values into Args by their
// dynamic type. Position is irrelevant. Any string kind, named string types
// included, is a message. Nil values and values fitting no role are skipped.
//
// Every conflict found in one call is reported in a single aggregated error.
func classify(args ...any) (Args, error) {
	var out Args
	if len(args) > MaxArguments {
		return Args{}, fmt.Errorf("%w: got %d arguments, at most %d are allowed",
			ErrInvalidArguments, len(args), MaxArguments)
	}

	var (
		merr *multierror.Error
		seen = make(map[role]bool, MaxArguments)
	)
	claim := func(pos int, r role) bool {
		if seen[r] {
			merr = multierror.Append(merr, &argError{pos: pos + 1, reason: "second " + string(r)})
			return false
		}
		seen[r] = true
		return true
	}

	for i, v := range args {
		if isNil(v) {
			continue
		}
		if err, ok := v.(error); ok {
			if claim(i, roleCause) {
				out.Cause = err
			}
			continue
		}
		rv := reflect.ValueOf(v)
		switch {
		case rv.Kind() == reflect.String:
			if claim(i, roleMessage) {
				out.Message = rv.String()
			}
		case isDetails(v):
			if claim(i, roleDetails) {
				out.Details = v
			}
		default:
			// Values that fit no role (numbers, bools, funcs) are ignored
			// like nil ones.
		}
	}

	if merr != nil {
		merr.ErrorFormat = formatArgErrors
		return Args{}, merr
	}
	return out, nil
}

// formatArgErrors renders aggregated classifier errors on one line.
func formatArgErrors(es []error) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return ErrInvalidArguments.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// isNil reports whether v is an absent argument: untyped nil or a nil
// pointer, map, slice, interface, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// isDetails reports whether v has the shape of a details payload: a
// non-error composite value.
func isDetails(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct, reflect.Ptr, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
