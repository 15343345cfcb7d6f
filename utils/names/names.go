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


// Package names converts between the source form of class names
// ("com.example.Foo") and the internal form used by workspaces
// ("com/example/Foo").
package names

import "strings"

// Internal converts a source-form class name to internal form.
// Names already in internal form are returned unchanged.
func Internal(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// Source converts an internal-form class name to source form.
// Inner class separators ('$') are kept.
func Source(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// Package returns the package part of an internal-form name, or "" for the
// default package.
func Package(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[:i]
	}
	return ""
}

// Simple returns the simple name of an internal-form name.
func Simple(name string) string {
	return name[strings.LastIndexByte(name, '/')+1:]
}
