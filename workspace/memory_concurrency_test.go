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
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/cpn/workspace"
)

// TestConcurrentMutateAndLookup verifies that AddClass/RemoveClass/FindClass/Classes
// are race-free and consistent under concurrent use.
func TestConcurrentMutateAndLookup(t *testing.T) {
	w := workspace.New()
	mustResource(t, w, "app.jar", "lib.jar")

	stable := make([]string, 10)
	for i := range stable {
		stable[i] = fmt.Sprintf("com/Stable%d", i)
		mustClass(t, w, "app.jar", stable[i])
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				name := stable[j%len(stable)]
				if _, ok := w.FindClass(name); !ok {
					t.Errorf("FindClass(%s) missed", name)
					return
				}
				if j%100 == 0 {
					for _, err := range w.Classes() {
						if err != nil {
							t.Errorf("Classes: %v", err)
							return
						}
					}
				}
				_ = w.Count()
			}
		}()
	}

	// Writers touch only their own names in lib.jar.
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				name := fmt.Sprintf("org/W%d_%d", id, j)
				if _, err := w.AddClass("lib.jar", name); err != nil {
					t.Errorf("AddClass(%s): %v", name, err)
					return
				}
				if !w.RemoveClass("lib.jar", name) {
					t.Errorf("RemoveClass(%s) = false", name)
					return
				}
			}
		}(i)
	}

	wg.Wait()

	if w.Count() != len(stable) {
		t.Fatalf("count mismatch: got %d want %d", w.Count(), len(stable))
	}
}
