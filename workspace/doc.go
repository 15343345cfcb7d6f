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


// Package workspace provides an in-memory, concurrency-safe workspace that
// satisfies apis.Workspace.
//
// A Memory workspace is an ordered list of resources (the first one added is
// the primary resource), each holding classes by name. Lookups search the
// resources in order, so a class shadowed by an earlier resource is never
// returned; enumeration yields classes in the same order, which keeps a
// snapshot built from Classes consistent with FindClass.
//
// Workspaces can also be described in YAML and loaded with Open:
//
//	version: 1
//	name: demo
//	resources:
//	  - name: app.jar
//	    classes:
//	      - com/example/App
//	  - name: rt.jar
//	    classes:
//	      - java/lang/Object
package workspace
