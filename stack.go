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
	"regexp"
	"runtime"
	"strings"
)

// defaultMaxDepth bounds the number of captured frames.
const defaultMaxDepth = 64

// rawHeader is the first line of a raw trace, replaced by the
// "<name>: <message>" header during normalization.
const rawHeader = "Error"

// internalFrameRe matches trace lines of Go runtime and test-harness frames.
var internalFrameRe = regexp.MustCompile(`^\s+at (runtime|testing|reflect)\.`)

// Frame is a single call site of an instance stack.
type Frame struct {
	PC       uintptr // program counter of the call
	File     string  // absolute file path as reported by the runtime
	Line     int     // line number
	Function string  // fully-qualified function name
}

// String renders the frame as one trace line.
func (f Frame) String() string {
	return fmt.Sprintf("    at %s (%s:%d)", f.Function, f.File, f.Line)
}

// internal reports whether f belongs to the runtime or the test harness.
func (f Frame) internal() bool {
	return internalFrameRe.MatchString(f.String())
}

// captureFrames records the current goroutine stack. With skip 0 the first
// frame is the caller of captureFrames.
func captureFrames(skip int) []Frame {
	// +2 skips runtime.Callers and captureFrames.
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// rawTrace renders frames under the raw header, one line per frame.
func rawTrace(frames []Frame) string {
	var b strings.Builder
	b.WriteString(rawHeader)
	for _, fr := range frames {
		b.WriteByte('\n')
		b.WriteString(fr.String())
	}
	return b.String()
}

// stackHeader returns "<name>: <message>", or just name for an empty
// message. Embedded newlines are kept as is.
func stackHeader(name, message string) string {
	if message == "" {
		return name
	}
	return name + ": " + message
}

// cleanStack rewrites a raw trace: the raw header and the constructor frame
// (first two lines) are dropped, internal frames are removed when clean is
// set, and the "<name>: <message>" header is prepended.
func cleanStack(raw, name, message string, clean bool) string {
	lines := strings.Split(raw, "\n")
	if len(lines) > 2 {
		lines = lines[2:]
	} else {
		lines = nil
	}

	var b strings.Builder
	b.WriteString(stackHeader(name, message))
	for _, line := range lines {
		if clean && internalFrameRe.MatchString(line) {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

// cleanFrames applies the same policy as cleanStack to structured frames.
// frames[0] is the constructor frame.
func cleanFrames(frames []Frame, clean bool) []Frame {
	if len(frames) < 2 {
		return nil
	}
	frames = frames[1:]
	if !clean {
		out := make([]Frame, len(frames))
		copy(out, frames)
		return out
	}
	out := make([]Frame, 0, len(frames))
	for _, fr := range frames {
		if !fr.internal() {
			out = append(out, fr)
		}
	}
	return out
}
