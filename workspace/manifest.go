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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a workspace.
type Manifest struct {
	Version   int        `yaml:"version"`
	Name      string     `yaml:"name"`
	Resources []Resource `yaml:"resources"`
}

// Resource is a single resource entry in the manifest.
type Resource struct {
	Name    string   `yaml:"name"`
	Classes []string `yaml:"classes,omitempty"`
}

// Open loads the manifest at path and builds a workspace from it.
func Open(path string) (*Memory, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return m.Workspace()
}

// Load reads and validates a workspace manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates workspace manifest content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Workspace builds a Memory workspace holding the manifest's resources and classes.
func (m *Manifest) Workspace() (*Memory, error) {
	w := New()
	for _, r := range m.Resources {
		if err := w.AddResource(r.Name); err != nil {
			return nil, fmt.Errorf("adding resource %q: %w", r.Name, err)
		}
		for _, c := range r.Classes {
			if _, err := w.AddClass(r.Name, c); err != nil {
				return nil, fmt.Errorf("adding class %q to %q: %w", c, r.Name, err)
			}
		}
	}
	return w, nil
}

func validate(m *Manifest) error {
	if m.Version != 1 {
		return fmt.Errorf("unsupported manifest version: %d (expected 1)", m.Version)
	}
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}

	seen := make(map[string]bool, len(m.Resources))
	for i, r := range m.Resources {
		if r.Name == "" {
			return fmt.Errorf("manifest: resources[%d].name is required", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("manifest: duplicate resource %q", r.Name)
		}
		seen[r.Name] = true

		classes := make(map[string]bool, len(r.Classes))
		for j, c := range r.Classes {
			if c == "" {
				return fmt.Errorf("manifest: resources[%d] (%s).classes[%d] is empty", i, r.Name, j)
			}
			if classes[c] {
				return fmt.Errorf("manifest: resources[%d] (%s): duplicate class %q", i, r.Name, c)
			}
			classes[c] = true
		}
	}
	return nil
}
