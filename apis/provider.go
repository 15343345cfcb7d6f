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

// Provider resolves class names to class path nodes.
// Callers depend only on this contract, never on which strategy they hold.
type Provider interface {
	// GetNode returns the node for name, or (nil, false) if this provider
	// does not know the name. Unknown names are never an error.
	GetNode(name string) (ClassNode, bool)
}
