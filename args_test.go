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
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detailsStruct struct{ ID int }

type label string

func TestClassify_Roles(t *testing.T) {
	cause := errors.New("cause")
	m := map[string]any{"k": "v"}
	p := &detailsStruct{ID: 1}
	var nilMap map[string]any
	var nilErr error
	var nilPtr *detailsStruct

	tests := []struct {
		name string
		args []any
		want Args
	}{
		{"empty", nil, Args{}},
		{"message", []any{"msg"}, Args{Message: "msg"}},
		{"cause", []any{cause}, Args{Cause: cause}},
		{"details map", []any{m}, Args{Details: m}},
		{"details pointer", []any{p}, Args{Details: p}},
		{"details struct", []any{detailsStruct{ID: 2}}, Args{Details: detailsStruct{ID: 2}}},
		{"details slice", []any{[]int{1}}, Args{Details: []int{1}}},
		{"all in order", []any{"msg", m, cause}, Args{Cause: cause, Message: "msg", Details: m}},
		{"all reversed", []any{cause, m, "msg"}, Args{Cause: cause, Message: "msg", Details: m}},
		{"nils skipped", []any{nil, "msg", nil}, Args{Message: "msg"}},
		{"typed nils skipped", []any{nilMap, nilErr, nilPtr}, Args{}},
		{"empty message", []any{""}, Args{}},
		{"named string type", []any{label("hi")}, Args{Message: "hi"}},
		{"number skipped", []any{"msg", 42}, Args{Message: "msg"}},
		{"bool and float skipped", []any{true, m, 3.5}, Args{Details: m}},
		{"func skipped", []any{func() {}, cause}, Args{Cause: cause}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classify(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantSub []string
	}{
		{"two messages", []any{"a", "b"}, []string{"argument 2: second message"}},
		{"two causes", []any{errors.New("a"), errors.New("b")}, []string{"argument 2: second cause"}},
		{"two details", []any{map[string]any{}, &detailsStruct{}}, []string{"argument 2: second details"}},
		{"string and named string", []any{"a", label("b")}, []string{"argument 2: second message"}},
		{"all conflicts reported", []any{"a", "b", "c"}, []string{
			"argument 2: second message",
			"argument 3: second message",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classify(tc.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArguments)

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, len(tc.wantSub))

			msg := err.Error()
			assert.True(t, strings.HasPrefix(msg, ErrInvalidArguments.Error()), msg)
			for _, sub := range tc.wantSub {
				assert.Contains(t, msg, sub)
			}
		})
	}
}

func TestClassify_TooMany(t *testing.T) {
	_, err := classify("a", errors.New("b"), map[string]any{}, "d")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), "got 4 arguments, at most 3 are allowed")
}
