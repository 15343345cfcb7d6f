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


// Package provider implements the two class path node strategies.
//
// Live forwards each lookup to a workspace and always sees its current state.
// Cached answers lookups from a table built by a single enumeration of the
// workspace (see Cache) and never changes afterwards.
//
// Both strategies are interchangeable behind apis.Provider:
//
//	p, err := provider.Cache(ws)
//	if err != nil {
//	    return err // the workspace failed to enumerate; nothing was built
//	}
//	node, ok := p.GetNode("com/example/Foo")
package provider

import (
	"errors"

	"dirpx.dev/cpn/apis"
)

// ErrNilWorkspace is returned (or panicked with) when a nil workspace is provided.
var ErrNilWorkspace = errors.New("cpn(provider): nil workspace provided")

// Ensure both strategies implement apis.Provider.
var (
	_ apis.Provider = (*Live)(nil)
	_ apis.Provider = (*Cached)(nil)
)
