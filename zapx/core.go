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

	"dirpx.dev/errkind"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewStackExtractCore wraps c so that, for every written entry, the first
// field carrying an errkind error (zap.Error or Error) is rewritten without
// its stack and the stack is appended to Entry.Stack instead.
func NewStackExtractCore(c zapcore.Core) zapcore.Core {
	return &stackExtractCore{c}
}

type stackExtractCore struct {
	zapcore.Core
}

func (c *stackExtractCore) With(fields []zapcore.Field) zapcore.Core {
	return &stackExtractCore{c.Core.With(fields)}
}

func (c *stackExtractCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *stackExtractCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	i, e, obj := kindField(fields)
	if e == nil {
		return c.Core.Write(ent, fields)
	}

	out := make([]zapcore.Field, len(fields))
	copy(out, fields)
	out[i] = zap.Object(fields[i].Key, obj)

	if ent.Stack == "" {
		ent.Stack = "error: " + e.Stack()
	} else {
		ent.Stack = ent.Stack + "\nerror: " + e.Stack()
	}
	return c.Core.Write(ent, out)
}

// kindField finds the first field holding an errkind error and returns its
// index, the instance found in its chain and a stack-less replacement
// object. Only one error per entry is lifted.
func kindField(fields []zapcore.Field) (int, *errkind.Error, errObject) {
	for i, f := range fields {
		var err error
		switch f.Type {
		case zapcore.ErrorType:
			err, _ = f.Interface.(error)
		case zapcore.ObjectMarshalerType:
			if o, ok := f.Interface.(errObject); ok {
				err = o.err
			}
		}
		if err == nil {
			continue
		}
		var e *errkind.Error
		if errors.As(err, &e) {
			return i, e, errObject{err: err}
		}
	}
	return -1, nil, errObject{}
}
