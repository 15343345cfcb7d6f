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


package workspace

import (
	"log/slog"

	"dirpx.dev/cpn/apis"
)

// Path locates a class inside a resource of a workspace.
type Path struct {
	// Resource is the name of the resource holding the class.
	Resource string
	// Class is the class name in internal form ("com/example/Foo").
	Class string
}

// Ensure Path implements apis.ClassNode.
var _ apis.ClassNode = (*Path)(nil)

// Name returns the class name.
func (p *Path) Name() string {
	return p.Class
}

// String returns "resource!class".
func (p *Path) String() string {
	return p.Resource + "!" + p.Class
}

// LogValue implements slog.LogValuer.
func (p *Path) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("resource", p.Resource),
		slog.String("class", p.Class),
	)
}
