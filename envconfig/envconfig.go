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

// Package envconfig loads the process-wide errkind options from the
// environment or any other confita backend.
//
// Recognized keys:
//
//	errkind-clean-stack-traces   (env ERRKIND_CLEAN_STACK_TRACES) bool
//
// Keys that are not set keep the current defaults.
package envconfig

import (
	"context"
	"fmt"

	"dirpx.dev/errkind"
	"github.com/heetch/confita"
	"github.com/heetch/confita/backend"
	"github.com/heetch/confita/backend/env"
)

// Load reads errkind options from backends, starting from
// errkind.DefaultOptions. With no backends the environment is used.
//
// On error the current defaults are returned along with it.
func Load(ctx context.Context, backends ...backend.Backend) (errkind.Options, error) {
	if len(backends) == 0 {
		backends = []backend.Backend{env.NewBackend()}
	}

	opts := errkind.DefaultOptions()
	if err := confita.NewLoader(backends...).Load(ctx, &opts); err != nil {
		return errkind.DefaultOptions(), fmt.Errorf("envconfig: load errkind options: %w", err)
	}
	return opts, nil
}

// Apply loads options like Load and installs them as the process-wide
// defaults. Only kinds created afterwards are affected. Nothing is
// installed when loading fails.
func Apply(ctx context.Context, backends ...backend.Backend) error {
	opts, err := Load(ctx, backends...)
	if err != nil {
		return err
	}
	errkind.SetDefaultOptions(errkind.WithOptions(opts))
	return nil
}
