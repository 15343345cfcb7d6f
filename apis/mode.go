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

import (
	"fmt"
	"strings"
)

// Mode selects which provider strategy a Builder constructs.
//
// # Values
//
//   - Live   — forward every lookup to the workspace.
//   - Cached — snapshot all class names once, then read the frozen table.
//
// # Tradeoff
//
// Live always reflects the current workspace but pays the workspace's lookup
// cost on every call. Cached pays one full enumeration up front and answers
// later lookups from an immutable table, at the price of never seeing
// classes added or removed after the snapshot.
type Mode int

const (
	// Cached selects the snapshot strategy. It is the zero value so that a
	// zero Config builds the strategy suited to repeated lookups.
	Cached Mode = iota

	// Live selects the forwarding strategy.
	Live
)

// String returns "Cached" or "Live", or "Unknown(<n>)" for out-of-range values.
func (m Mode) String() string {
	switch m {
	case Cached:
		return "Cached"
	case Live:
		return "Live"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMode parses a mode token. Matching is case-insensitive and surrounding
// whitespace is ignored. On failure it returns Cached and a non-nil error.
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Cached, fmt.Errorf("cpn: empty mode")
	}

	switch strings.ToUpper(trimmed) {
	case "CACHED":
		return Cached, nil
	case "LIVE":
		return Live, nil
	default:
		return Cached, fmt.Errorf("cpn: unknown mode %q", s)
	}
}

// MustParseMode is like ParseMode but panics on invalid input.
func MustParseMode(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m == Cached || m == Live
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected rather than serialized as "Unknown(n)".
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("cpn: cannot marshal unknown mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *m is left unchanged.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
