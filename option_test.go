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
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetDefaults(t *testing.T) {
	t.Helper()
	SetDefaultOptions()
	t.Cleanup(func() { SetDefaultOptions() })
}

func TestDefaultOptions_Builtin(t *testing.T) {
	resetDefaults(t)
	assert.Equal(t, Options{CleanStackTraces: true}, DefaultOptions())
	assert.True(t, New("K", nil).Options().CleanStackTraces)
}

func TestOptions_Precedence(t *testing.T) {
	resetDefaults(t)

	SetDefaultOptions(WithCleanStackTraces(false))
	assert.False(t, DefaultOptions().CleanStackTraces)
	assert.False(t, New("K", nil).Options().CleanStackTraces, "process-wide default must apply")
	assert.True(t, New("K", nil, WithCleanStackTraces(true)).Options().CleanStackTraces, "call option must win")

	SetDefaultOptions()
	assert.True(t, DefaultOptions().CleanStackTraces)
}

func TestOptions_CapturedOnce(t *testing.T) {
	resetDefaults(t)

	before := New("Before", nil)
	SetDefaultOptions(WithCleanStackTraces(false))
	after := New("After", nil)

	assert.True(t, before.Options().CleanStackTraces)
	assert.False(t, after.Options().CleanStackTraces)

	// Extend resolves again at its own creation time.
	assert.False(t, before.Extend("Child").Options().CleanStackTraces)
}

func TestOptions_NilAndReplay(t *testing.T) {
	resetDefaults(t)

	SetDefaultOptions(nil, WithOptions(Options{CleanStackTraces: false}))
	assert.False(t, DefaultOptions().CleanStackTraces)

	k := New("K", nil, nil)
	assert.False(t, k.Options().CleanStackTraces)
}

func TestSetDefaultOptions_CopiesInput(t *testing.T) {
	resetDefaults(t)

	opts := []Option{WithCleanStackTraces(false)}
	SetDefaultOptions(opts...)
	opts[0] = WithCleanStackTraces(true)

	assert.False(t, DefaultOptions().CleanStackTraces)
}
