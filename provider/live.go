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


package provider

import (
	"dirpx.dev/cpn/apis"
)

// Live looks up nodes directly from the workspace on every call.
// Prefer it for one-off lookups or for workspaces that change often; a
// snapshot would go stale. Its concurrency safety is that of the workspace.
type Live struct {
	// ws is borrowed; the caller keeps responsibility for its lifetime.
	ws apis.Workspace
}

// NewLive wraps ws. It panics with ErrNilWorkspace if ws is nil.
func NewLive(ws apis.Workspace) *Live {
	if ws == nil {
		panic(ErrNilWorkspace)
	}
	return &Live{ws: ws}
}

// GetNode forwards to the workspace and returns its answer verbatim.
func (p *Live) GetNode(name string) (apis.ClassNode, bool) {
	return p.ws.FindClass(name)
}

// Workspace returns the wrapped workspace.
func (p *Live) Workspace() apis.Workspace {
	return p.ws
}
