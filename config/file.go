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


package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/cpn/apis"
)

// File is the on-disk form of a provider configuration.
//
//	mode: live
//	capacity_hint: 8192
//	report_duplicates: true
type File struct {
	Mode             *apis.Mode `yaml:"mode,omitempty"`
	CapacityHint     *int       `yaml:"capacity_hint,omitempty"`
	ReportDuplicates *bool      `yaml:"report_duplicates,omitempty"`
}

// Options converts the fields present in f into options.
// Absent fields keep their defaults.
func (f *File) Options() []Option {
	var opts []Option
	if f.Mode != nil {
		opts = append(opts, WithMode(*f.Mode))
	}
	if f.CapacityHint != nil {
		opts = append(opts, WithCapacityHint(*f.CapacityHint))
	}
	if f.ReportDuplicates != nil {
		opts = append(opts, WithReportDuplicates(*f.ReportDuplicates))
	}
	return opts
}

// Load reads a YAML configuration file and returns the options it sets.
func Load(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration content and returns the options it sets.
func Parse(data []byte) ([]Option, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if f.CapacityHint != nil && *f.CapacityHint < 0 {
		return nil, fmt.Errorf("config: capacity_hint must not be negative: %d", *f.CapacityHint)
	}
	return f.Options(), nil
}
