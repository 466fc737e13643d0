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

import "sync/atomic"

// Options holds the construction options of a Kind.
//
// Options are resolved once, when the Kind is created, from (in increasing
// precedence) the built-in defaults, the process-wide defaults installed with
// SetDefaultOptions, and the options passed to New / Extend.
type Options struct {
	// CleanStackTraces removes runtime and test-harness frames
	// (runtime.*, testing.*, reflect.*) from instance stacks.
	CleanStackTraces bool `config:"errkind-clean-stack-traces"`
}

// Option is a functional option applied to Options while a Kind is created.
type Option func(*Options)

// WithCleanStackTraces enables or disables stack cleanup for the kind being
// created.
func WithCleanStackTraces(clean bool) Option {
	return func(o *Options) {
		o.CleanStackTraces = clean
	}
}

// WithOptions copies every field of src into the options being resolved.
// It is useful to replay a previously loaded Options value.
func WithOptions(src Options) Option {
	return func(o *Options) {
		*o = src
	}
}

// builtinOptions are the library defaults.
var builtinOptions = Options{
	CleanStackTraces: true,
}

// globalOptions is the process-wide default cell. A nil slice means "no
// process-wide defaults".
var globalOptions atomic.Pointer[[]Option]

// SetDefaultOptions replaces the process-wide default options.
//
// Only kinds created afterwards observe the change: a Kind captures its
// options once in New and never re-reads them. Calling SetDefaultOptions with
// no arguments clears the process-wide defaults.
func SetDefaultOptions(opts ...Option) {
	if len(opts) == 0 {
		globalOptions.Store(nil)
		return
	}
	cp := make([]Option, len(opts))
	copy(cp, opts)
	globalOptions.Store(&cp)
}

// DefaultOptions returns the options a Kind created right now without call
// options would get.
func DefaultOptions() Options {
	return resolveOptions(nil)
}

// resolveOptions merges builtin, process-wide and call options. The
// process-wide cell is read exactly once.
func resolveOptions(opts []Option) Options {
	o := builtinOptions
	if global := globalOptions.Load(); global != nil {
		for _, opt := range *global {
			if opt != nil {
				opt(&o)
			}
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
