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


package apis

import "iter"

// Workspace is the part of a code-analysis workspace that providers consume.
// Implementations own their nodes and define their own concurrency contract.
type Workspace interface {
	// FindClass looks up a class by name. It returns (nil, false) when the
	// workspace knows no class with that name.
	FindClass(name string) (ClassNode, bool)

	// Classes lazily enumerates every class node currently known to the
	// workspace. A non-nil error aborts the enumeration; the node paired
	// with an error is nil and must be ignored.
	Classes() iter.Seq2[ClassNode, error]
}
