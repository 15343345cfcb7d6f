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

// Builder constructs a Provider over a Workspace according to Config.
type Builder interface {
	// Build returns a provider for ws. For the cached mode this runs a full
	// enumeration of ws and fails if that enumeration fails.
	Build(ws Workspace, cfg Config) (Provider, error)
}
