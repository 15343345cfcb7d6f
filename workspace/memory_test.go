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


package workspace_test

import (
	"errors"
	"testing"

	"dirpx.dev/cpn/apis"
	"dirpx.dev/cpn/workspace"
)

func mustResource(t *testing.T, w *workspace.Memory, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := w.AddResource(n); err != nil {
			t.Fatalf("AddResource(%s): %v", n, err)
		}
	}
}

func mustClass(t *testing.T, w *workspace.Memory, resource, class string) *workspace.Path {
	t.Helper()
	p, err := w.AddClass(resource, class)
	if err != nil {
		t.Fatalf("AddClass(%s,%s): %v", resource, class, err)
	}
	return p
}

func collect(t *testing.T, w apis.Workspace) []string {
	t.Helper()
	var out []string
	for n, err := range w.Classes() {
		if err != nil {
			t.Fatalf("Classes: unexpected error: %v", err)
		}
		out = append(out, n.(*workspace.Path).String())
	}
	return out
}

func TestAddClass_AndFindClass(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar")
	p := mustClass(t, w, "app.jar", "com/A")

	if p.Name() != "com/A" || p.Resource != "app.jar" {
		t.Fatalf("AddClass returned %+v", p)
	}
	if got, ok := w.FindClass("com/A"); !ok || got != apis.ClassNode(p) {
		t.Fatalf("FindClass(com/A) = (%v,%v), want (%v,true)", got, ok, p)
	}
	if got, ok := w.FindClass("com/B"); ok || got != nil {
		t.Fatalf("FindClass(com/B) = (%v,%v), want (nil,false)", got, ok)
	}
	if w.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", w.Count())
	}
}

func TestFindClass_PrimaryResourceShadows(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar", "lib.jar")
	lib := mustClass(t, w, "lib.jar", "com/Shared")
	app := mustClass(t, w, "app.jar", "com/Shared")

	if got, _ := w.FindClass("com/Shared"); got != apis.ClassNode(app) {
		t.Fatalf("FindClass(com/Shared) = %v, want %v", got, app)
	}

	w.RemoveClass("app.jar", "com/Shared")
	if got, _ := w.FindClass("com/Shared"); got != apis.ClassNode(lib) {
		t.Fatalf("FindClass(com/Shared) after removal = %v, want %v", got, lib)
	}
}

func TestClasses_Order(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar", "lib.jar")
	mustClass(t, w, "lib.jar", "org/L")
	mustClass(t, w, "app.jar", "com/B")
	mustClass(t, w, "app.jar", "com/A")
	mustClass(t, w, "lib.jar", "com/A")

	got := collect(t, w)
	want := []string{"app.jar!com/B", "app.jar!com/A", "lib.jar!org/L", "lib.jar!com/A"}
	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClasses_EarlyBreak(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar")
	mustClass(t, w, "app.jar", "com/A")
	mustClass(t, w, "app.jar", "com/B")

	seen := 0
	for range w.Classes() {
		seen++
		break
	}
	if seen != 1 {
		t.Fatalf("seen = %d, want 1", seen)
	}
}

func TestAddClass_Errors(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar")
	mustClass(t, w, "app.jar", "com/A")

	if err := w.AddResource(""); err != workspace.ErrEmptyName {
		t.Fatalf("AddResource(\"\"): want ErrEmptyName, got %v", err)
	}
	if err := w.AddResource("app.jar"); err != workspace.ErrDuplicateResource {
		t.Fatalf("AddResource dup: want ErrDuplicateResource, got %v", err)
	}
	if _, err := w.AddClass("app.jar", ""); err != workspace.ErrEmptyName {
		t.Fatalf("AddClass empty: want ErrEmptyName, got %v", err)
	}
	if _, err := w.AddClass("missing.jar", "com/A"); err != workspace.ErrUnknownResource {
		t.Fatalf("AddClass unknown resource: want ErrUnknownResource, got %v", err)
	}
	if _, err := w.AddClass("app.jar", "com/A"); err != workspace.ErrDuplicateClass {
		t.Fatalf("AddClass dup: want ErrDuplicateClass, got %v", err)
	}
}

func TestRemoveClass(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar")
	mustClass(t, w, "app.jar", "com/A")

	if w.RemoveClass("missing.jar", "com/A") {
		t.Fatal("RemoveClass on unknown resource = true")
	}
	if w.RemoveClass("app.jar", "com/B") {
		t.Fatal("RemoveClass on unknown class = true")
	}
	if !w.RemoveClass("app.jar", "com/A") {
		t.Fatal("RemoveClass(com/A) = false, want true")
	}
	if w.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", w.Count())
	}
	if got := collect(t, w); len(got) != 0 {
		t.Fatalf("Classes() after removal = %v, want empty", got)
	}
}

func TestClose(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar")
	mustClass(t, w, "app.jar", "com/A")

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := w.FindClass("com/A"); ok {
		t.Fatal("FindClass after Close: want miss")
	}

	var errs []error
	for n, err := range w.Classes() {
		if n != nil {
			t.Fatalf("Classes after Close yielded node %v", n)
		}
		errs = append(errs, err)
	}
	if len(errs) != 1 || !errors.Is(errs[0], workspace.ErrClosed) {
		t.Fatalf("Classes after Close yielded %v, want [ErrClosed]", errs)
	}
}

func TestResources(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar", "lib.jar")
	got := w.Resources()
	if len(got) != 2 || got[0] != "app.jar" || got[1] != "lib.jar" {
		t.Fatalf("Resources() = %v, want [app.jar lib.jar]", got)
	}
}
