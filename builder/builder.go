/*
   Copyright 2025 The DIRPX Authors.

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


package builder

import (
	"errors"
	"fmt"

	"dirpx.dev/cpn/apis"
	"dirpx.dev/cpn/provider"
)

// ErrUnknownMode is returned when a Config names a mode the builder cannot build.
var ErrUnknownMode = errors.New("cpn(builder): unknown mode")

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Build returns a Live provider for apis.Live and a snapshot for apis.Cached.
// Snapshot failures are returned unchanged.
func (b *builder) Build(ws apis.Workspace, cfg apis.Config) (apis.Provider, error) {
	if ws == nil {
		return nil, provider.ErrNilWorkspace
	}
	switch cfg.Mode {
	case apis.Live:
		return provider.NewLive(ws), nil
	case apis.Cached:
		c, err := provider.Snapshot(ws, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, cfg.Mode)
	}
}
