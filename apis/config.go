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

import "log/slog"

// Config carries read-only knobs that influence how providers are built.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Mode selects the provider strategy.
	Mode Mode

	// CapacityHint pre-sizes the snapshot table of cached providers.
	// It is an optimization only; zero means "no hint".
	CapacityHint int

	// ReportDuplicates makes the snapshot builder log every dropped duplicate
	// class name at debug level. Duplicates are dropped either way.
	ReportDuplicates bool

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}
