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
	"fmt"
	"reflect"
	"strings"
)

// Mode selects how permissive Kind.Normalize is with values that are not Go
// errors.
type Mode int

const (
	// ModeStrict accepts, besides errors, values exposing Name, Message and
	// Stack methods whose name ends in "Error".
	ModeStrict Mode = iota

	// ModeInstanceOf accepts only errors.
	ModeInstanceOf

	// ModeLoose accepts any value presenting a name, a message and a stack:
	// the three methods, a map with those keys, or a struct with exported
	// Name, Message and Stack fields.
	ModeLoose
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeInstanceOf:
		return "instanceof"
	case ModeLoose:
		return "loose"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// notAnErrorPrefix starts the message of instances built for rejected values.
const notAnErrorPrefix = "Not an error: "

type normalizeConfig struct {
	mode Mode
}

// NormalizeOption configures a single Kind.Normalize call.
type NormalizeOption func(*normalizeConfig)

// WithMode sets the normalization mode. The default is ModeStrict.
func WithMode(m Mode) NormalizeOption {
	return func(c *normalizeConfig) {
		c.mode = m
	}
}

// Normalize coerces v into an error.
//
//   - instances matched by k and any other Go error are returned unchanged;
//   - look-alikes accepted by the mode are returned as *LookAlike;
//   - everything else, nil included, becomes a new instance of k with the
//     message "Not an error: <v>".
//
// A look-alike is never returned as itself, since it is not an error: the
// accepted value is only reachable, by identity, through LookAlike.Value.
func (k *Kind) Normalize(v any, opts ...NormalizeOption) error {
	cfg := normalizeConfig{mode: ModeStrict}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !isNil(v) {
		if err, ok := v.(error); ok {
			return err
		}
		if la, ok := lookAlikeOf(v, cfg.mode); ok {
			return la
		}
	}
	return k.construct(Args{Message: notAnErrorPrefix + fmt.Sprint(v)})
}

// LookAlike adapts a value shaped like an error (it has a name, a message
// and a stack) to the error interface. The original value is kept by
// reference.
type LookAlike struct {
	value   any
	name    string
	message string
	stack   string
}

// Value returns the original value.
func (l *LookAlike) Value() any { return l.value }

// Name returns the name presented by the value.
func (l *LookAlike) Name() string { return l.name }

// Message returns the message presented by the value.
func (l *LookAlike) Message() string { return l.message }

// Stack returns the stack presented by the value.
func (l *LookAlike) Stack() string { return l.stack }

// Names returns the presented name followed by the base kind.
func (l *LookAlike) Names() Names {
	return Names{l.name}.appendKinds(Base)
}

func (l *LookAlike) Error() string {
	return stackHeader(l.name, l.message)
}

// errorShape is the method set of a non-enumerable error look-alike.
type errorShape interface {
	Name() string
	Message() string
	Stack() string
}

// lookAlikeOf reports whether mode accepts v as an error look-alike.
func lookAlikeOf(v any, mode Mode) (*LookAlike, bool) {
	switch mode {
	case ModeStrict:
		s, ok := v.(errorShape)
		if !ok || !strings.HasSuffix(s.Name(), BaseName) {
			return nil, false
		}
		return fromShape(v, s), true
	case ModeLoose:
		if s, ok := v.(errorShape); ok {
			return fromShape(v, s), true
		}
		return fromFields(v)
	default:
		return nil, false
	}
}

func fromShape(v any, s errorShape) *LookAlike {
	return &LookAlike{value: v, name: s.Name(), message: s.Message(), stack: s.Stack()}
}

var shapeKeys = [...]string{"name", "message", "stack"}

// fromFields accepts a map with name, message and stack keys, or a struct
// (or pointer to one) with exported Name, Message and Stack fields. Values
// of any type are rendered with fmt.Sprint.
func fromFields(v any) (*LookAlike, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	var got [len(shapeKeys)]string
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		for i, key := range shapeKeys {
			mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
			if !mv.IsValid() {
				return nil, false
			}
			got[i] = fmt.Sprint(mv.Interface())
		}
	case reflect.Struct:
		for i, key := range shapeKeys {
			field, ok := rv.Type().FieldByName(strings.ToUpper(key[:1]) + key[1:])
			if !ok || !field.IsExported() {
				return nil, false
			}
			got[i] = fmt.Sprint(rv.FieldByIndex(field.Index).Interface())
		}
	default:
		return nil, false
	}

	return &LookAlike{value: v, name: got[0], message: got[1], stack: got[2]}, true
}
