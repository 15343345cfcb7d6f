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
	"errors"
	"iter"
	"slices"
	"sync"

	"dirpx.dev/cpn/apis"
)

var (
	// ErrEmptyName is returned when an empty resource or class name is provided.
	ErrEmptyName = errors.New("cpn(workspace): empty name provided")
	// ErrUnknownResource is returned when a class is added to a resource
	// that was never added to the workspace.
	ErrUnknownResource = errors.New("cpn(workspace): unknown resource")
	// ErrDuplicateResource indicates an attempt to add a resource twice.
	ErrDuplicateResource = errors.New("cpn(workspace): duplicate resource")
	// ErrDuplicateClass indicates an attempt to add the same class twice
	// to one resource. The same class in different resources is allowed.
	ErrDuplicateClass = errors.New("cpn(workspace): duplicate class in resource")
	// ErrClosed is yielded by Classes once the workspace has been closed.
	ErrClosed = errors.New("cpn(workspace): workspace closed")
)

// New constructs an empty Memory workspace.
func New() *Memory {
	return &Memory{byName: make(map[string]*resource)}
}

// Memory is an in-memory workspace guarded by a read/write mutex.
type Memory struct {
	// mu guards every field below.
	mu sync.RWMutex
	// resources in lookup order; resources[0] is the primary resource.
	resources []*resource
	// byName indexes resources by name.
	byName map[string]*resource
	// count tracks the number of classes over all resources.
	count  int
	closed bool
}

// resource holds the classes of one resource in insertion order.
type resource struct {
	name    string
	classes map[string]*Path
	order   []*Path
}

// Ensure Memory implements apis.Workspace.
var _ apis.Workspace = (*Memory)(nil)

// AddResource appends a resource. Resources added earlier shadow later ones.
func (w *Memory) AddResource(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.byName[name]; ok {
		return ErrDuplicateResource
	}
	r := &resource{name: name, classes: make(map[string]*Path)}
	w.resources = append(w.resources, r)
	w.byName[name] = r
	return nil
}

// AddClass adds class to the named resource and returns its path node.
func (w *Memory) AddClass(resourceName, class string) (*Path, error) {
	if resourceName == "" || class == "" {
		return nil, ErrEmptyName
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	r, ok := w.byName[resourceName]
	if !ok {
		return nil, ErrUnknownResource
	}
	if _, ok := r.classes[class]; ok {
		return nil, ErrDuplicateClass
	}
	p := &Path{Resource: resourceName, Class: class}
	r.classes[class] = p
	r.order = append(r.order, p)
	w.count++
	return p, nil
}

// RemoveClass removes class from the named resource.
// It reports whether the class was present.
func (w *Memory) RemoveClass(resourceName, class string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	r, ok := w.byName[resourceName]
	if !ok {
		return false
	}
	p, ok := r.classes[class]
	if !ok {
		return false
	}
	delete(r.classes, class)
	r.order = slices.DeleteFunc(r.order, func(q *Path) bool { return q == p })
	w.count--
	return true
}

// FindClass returns the class from the first resource that holds name.
// A closed workspace knows no classes.
func (w *Memory) FindClass(name string) (apis.ClassNode, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return nil, false
	}
	for _, r := range w.resources {
		if p, ok := r.classes[name]; ok {
			return p, true
		}
	}
	return nil, false
}

// Classes yields every class, resource by resource, in insertion order.
// Classes shadowed by an earlier resource are yielded too; consumers decide
// what to do with repeated names.
//
// The set of classes is captured when iteration starts, so mutations made
// while iterating are not observed by that iteration.
func (w *Memory) Classes() iter.Seq2[apis.ClassNode, error] {
	return func(yield func(apis.ClassNode, error) bool) {
		w.mu.RLock()
		if w.closed {
			w.mu.RUnlock()
			yield(nil, ErrClosed)
			return
		}
		snap := make([]*Path, 0, w.count)
		for _, r := range w.resources {
			snap = append(snap, r.order...)
		}
		w.mu.RUnlock()

		for _, p := range snap {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// Count returns the number of classes over all resources, shadowed ones included.
func (w *Memory) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.count
}

// Resources returns the resource names in lookup order.
func (w *Memory) Resources() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	names := make([]string, 0, len(w.resources))
	for _, r := range w.resources {
		names = append(names, r.name)
	}
	return names
}

// Close marks the workspace closed. Afterwards FindClass misses and Classes
// yields ErrClosed. Close is idempotent.
func (w *Memory) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
