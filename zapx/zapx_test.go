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

package zapx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/errkind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	databaseError = errkind.New("DatabaseError", nil)
	queryError    = databaseError.Extend("QueryError")
)

// logged writes one entry through an observer core, optionally wrapped by
// NewStackExtractCore, and returns it.
func logged(t *testing.T, extract bool, fields ...zap.Field) observer.LoggedEntry {
	t.Helper()
	var core zapcore.Core
	core, logs := observer.New(zapcore.DebugLevel)
	if extract {
		core = NewStackExtractCore(core)
	}
	zap.New(core).Error("request failed", fields...)
	entries := logs.All()
	require.Len(t, entries, 1)
	return entries[0]
}

func TestError_Fields(t *testing.T) {
	err := queryError.Must("select failed", map[string]any{"table": "users"})

	ctx := logged(t, false, Error(err)).ContextMap()
	obj, ok := ctx[DefaultKey].(map[string]any)
	require.True(t, ok, "error field must be an object, got %T", ctx[DefaultKey])

	assert.Equal(t, "QueryError", obj["name"])
	assert.Equal(t, "select failed", obj["message"])
	assert.Equal(t, "(QueryError,DatabaseError,Error)", obj["names"])
	assert.Equal(t, map[string]any{"table": "users"}, obj["details"])
	assert.Contains(t, obj["stack"], "QueryError: select failed")
	assert.NotContains(t, obj, "error")
}

func TestError_Foreign(t *testing.T) {
	ctx := logged(t, false, NamedError("cause", errors.New("disk full"))).ContextMap()
	obj := ctx["cause"].(map[string]any)

	assert.Equal(t, "errors.errorString", obj["name"])
	assert.Equal(t, "disk full", obj["message"])
	assert.Equal(t, "(errors.errorString,Error)", obj["names"])
	assert.NotContains(t, obj, "stack")
}

func TestError_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", queryError.Must("select failed"))
	obj := logged(t, false, Error(err)).ContextMap()[DefaultKey].(map[string]any)

	assert.Equal(t, "QueryError", obj["name"])
	assert.Equal(t, "handler: QueryError: select failed", obj["error"])
}

func TestError_Nil(t *testing.T) {
	ctx := logged(t, false, Error(nil), zap.String("op", "get")).ContextMap()
	assert.NotContains(t, ctx, DefaultKey)
	assert.Equal(t, "get", ctx["op"])
}

func TestStackExtractCore(t *testing.T) {
	err := queryError.Must("select failed")

	tests := []struct {
		name  string
		field zap.Field
	}{
		{"zap.Error", zap.Error(err)},
		{"zapx.Error", Error(err)},
		{"wrapped", zap.Error(fmt.Errorf("op: %w", err))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := logged(t, true, tt.field)

			require.True(t, strings.HasPrefix(e.Stack, "error: QueryError: select failed"), "stack: %q", e.Stack)

			obj, ok := e.ContextMap()[DefaultKey].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "QueryError", obj["name"])
			assert.NotContains(t, obj, "stack")
		})
	}
}

func TestStackExtractCore_Passthrough(t *testing.T) {
	e := logged(t, true, zap.Error(errors.New("plain")), zap.Int("attempt", 2))

	assert.Empty(t, e.Stack)
	ctx := e.ContextMap()
	assert.Equal(t, "plain", ctx[DefaultKey])
	assert.EqualValues(t, 2, ctx["attempt"])
}

func TestStackExtractCore_OnlyFirst(t *testing.T) {
	first := queryError.Must("first")
	second := databaseError.Must("second")

	e := logged(t, true, NamedError("a", first), NamedError("b", second))

	assert.Equal(t, 1, strings.Count(e.Stack, "error: "))
	assert.Contains(t, e.Stack, "QueryError: first")
	b := e.ContextMap()["b"].(map[string]any)
	assert.Contains(t, b["stack"], "DatabaseError: second")
}

func TestStackExtractCore_With(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(NewStackExtractCore(obsCore)).With(zap.String("svc", "db"))

	log.Debug("dropped", zap.Error(queryError.Must("x")))
	log.Warn("kept", zap.Error(queryError.Must("y")))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "db", entries[0].ContextMap()["svc"])
	assert.Contains(t, entries[0].Stack, "QueryError: y")
}
