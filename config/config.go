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
	"log/slog"

	"dirpx.dev/cpn/apis"
)

const (
	// DefaultMode represents the default for Mode.
	// Cached suits the common case of many lookups against a quiet workspace.
	DefaultMode = apis.Cached
	// DefaultCapacityHint represents the default for CapacityHint.
	// Sized for a typical application plus its libraries.
	DefaultCapacityHint = 4096
	// DefaultReportDuplicates represents the default for ReportDuplicates.
	// Duplicate class names are dropped silently unless asked otherwise.
	DefaultReportDuplicates = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure CapacityHint is valid.
	if cfg.CapacityHint < 0 {
		cfg.CapacityHint = DefaultCapacityHint
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Mode:             DefaultMode,
		CapacityHint:     DefaultCapacityHint,
		ReportDuplicates: DefaultReportDuplicates,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMode sets the Mode option.
func WithMode(mode apis.Mode) Option {
	return func(c *apis.Config) {
		c.Mode = mode
	}
}

// WithCapacityHint sets the CapacityHint option.
// A negative value resets to the default.
func WithCapacityHint(hint int) Option {
	return func(c *apis.Config) {
		if hint < 0 {
			c.CapacityHint = DefaultCapacityHint
			return
		}
		c.CapacityHint = hint
	}
}

// WithReportDuplicates sets the ReportDuplicates option.
func WithReportDuplicates(report bool) Option {
	return func(c *apis.Config) {
		c.ReportDuplicates = report
	}
}

// WithLogger sets the Logger option. A nil logger discards diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}

// Logger returns cfg.Logger, or a logger that discards everything.
func Logger(cfg apis.Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.DiscardHandler)
}
