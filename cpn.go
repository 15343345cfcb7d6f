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


package cpn

import (
	"sync/atomic"

	"dirpx.dev/cpn/apis"
	"dirpx.dev/cpn/builder"
	"dirpx.dev/cpn/config"
	"dirpx.dev/cpn/provider"
)

// init installs the default builder.
func init() {
	bld.Store(&holder{b: builder.New()})
}

// Live returns a provider that forwards every lookup to ws.
// This is a convenience wrapper around provider.NewLive.
func Live(ws apis.Workspace) *provider.Live {
	return provider.NewLive(ws)
}

// Cache snapshots every class of ws into an immutable provider.
// This is a convenience wrapper around provider.Cache.
func Cache(ws apis.Workspace, opts ...config.Option) (*provider.Cached, error) {
	return provider.Cache(ws, opts...)
}

// New builds a provider for ws with the global builder.
// The mode defaults to cached; pass config.WithMode(apis.Live) for a live provider.
func New(ws apis.Workspace, opts ...config.Option) (apis.Provider, error) {
	return bld.Load().b.Build(ws, config.NewConfig(opts...))
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return bld.Load().b
}

// SetBuilder replaces the global builder used by New. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	bld.Store(&holder{b: b})
}

// bld is the global builder, published atomically.
var bld atomic.Pointer[holder]

// holder wraps the builder interface so it can live behind atomic.Pointer.
type holder struct {
	b apis.Builder
}
