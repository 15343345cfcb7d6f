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

// ClassNode is a path node pointing at a single class within a Workspace.
// Providers never construct or mutate nodes; they only store and return them.
type ClassNode interface {
	// Name returns the class name in the workspace's canonical (internal) form,
	// e.g. "com/example/Foo".
	Name() string
}
