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
	"maps"
	"slices"

	"dirpx.dev/cpn/apis"
)

// Cached answers lookups from a name table captured once by Cache.
// The table is never written after construction, so a Cached is safe for
// concurrent use without locking. A miss means the name was unknown at
// snapshot time; there is no fallback to the workspace.
type Cached struct {
	nodes map[string]apis.ClassNode
	// dropped counts enumerated nodes discarded as duplicate names.
	dropped int
}

// GetNode returns the node captured for name.
func (p *Cached) GetNode(name string) (apis.ClassNode, bool) {
	n, ok := p.nodes[name]
	return n, ok
}

// Size returns the number of distinct class names held.
func (p *Cached) Size() int {
	return len(p.nodes)
}

// Duplicates returns how many enumerated nodes were dropped because an
// earlier node had the same name.
func (p *Cached) Duplicates() int {
	return p.dropped
}

// Names returns the held class names in sorted order.
// The slice is a fresh copy; modifying it does not affect p.
func (p *Cached) Names() []string {
	return slices.Sorted(maps.Keys(p.nodes))
}
