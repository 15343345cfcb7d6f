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


package resolver

import (
	"dirpx.dev/cpn/apis"
)

// New constructs an apis.Provider that asks the given providers in order and
// returns the first hit. Nil providers are ignored. The returned provider is
// safe for concurrent use provided the providers themselves are.
//
// A typical stack puts a Live provider over the primary workspace in front
// of a Cached snapshot of rarely changing libraries.
func New(providers ...apis.Provider) apis.Provider {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			out = append(out, p)
		}
	}
	return chain{providers: out}
}

// chain is an immutable, order-preserving provider over a set of providers.
type chain struct {
	providers []apis.Provider
}

// GetNode runs providers in order until one knows the name.
func (c chain) GetNode(name string) (apis.ClassNode, bool) {
	for _, p := range c.providers {
		if n, ok := p.GetNode(name); ok {
			return n, true
		}
	}
	return nil, false
}
