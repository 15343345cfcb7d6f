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


// Package cpn resolves class names to class path nodes of a code-analysis
// workspace.
//
// # Design
//
// A single contract, apis.Provider, answers "which node holds the class with
// this name?". Two strategies implement it:
//
//   - Live wraps a workspace and forwards every lookup to it. It always sees
//     the current state of the workspace and pays the workspace's lookup
//     cost (possibly a search over every resource) on each call.
//
//   - Cached holds a name table built by enumerating every class of a
//     workspace once. Lookups are plain map reads. The table never changes
//     after construction: classes added to or removed from the workspace
//     later are not observed, and a miss never falls back to the workspace.
//
// Choose Live for one-off lookups or for workspaces that change often, and
// Cached for bursts of lookups against a workspace that is not mutating.
//
// # Snapshots
//
// The snapshot builder (provider.Cache, or cpn.Cache here) walks
// apis.Workspace.Classes exactly once. When two nodes share a class name the
// first one enumerated wins and later ones are dropped. If enumeration fails
// the error is returned unchanged and no provider is produced. There is no
// refresh: build a new snapshot to see newer workspace state.
//
// # Usage
//
//	ws, err := workspace.Open("workspace.yaml")
//	if err != nil {
//	    return err
//	}
//	p, err := cpn.Cache(ws)
//	if err != nil {
//	    return err
//	}
//	if node, ok := p.GetNode("com/example/App"); ok {
//	    fmt.Println(node)
//	}
//
// cpn.New builds either strategy from config options through the global
// apis.Builder, which tests may replace with SetBuilder.
//
// # Concurrency model
//
// Cached providers are immutable and safe for concurrent reads without
// locking. Live providers are exactly as safe as the workspace they wrap.
// Building a snapshot is synchronous and has no cancellation; run it at a
// controlled moment rather than on a hot path.
package cpn
