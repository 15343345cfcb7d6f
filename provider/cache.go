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


package provider

import (
	"log/slog"
	"time"

	"dirpx.dev/cpn/apis"
	"dirpx.dev/cpn/config"
)

// Cache builds a Cached provider holding every class node ws knows right now.
// See Snapshot for the algorithm; opts tune the capacity hint and diagnostics.
func Cache(ws apis.Workspace, opts ...config.Option) (*Cached, error) {
	return Snapshot(ws, config.NewConfig(opts...))
}

// Snapshot enumerates ws.Classes() exactly once and freezes the result.
//
// When several nodes share a name, the first one enumerated is kept and the
// rest are dropped. An enumeration error aborts the build and is returned
// as-is; no partial provider is ever returned.
//
// Snapshot blocks for the whole enumeration and has no cancellation; run it
// off latency-sensitive paths for large workspaces.
func Snapshot(ws apis.Workspace, cfg apis.Config) (*Cached, error) {
	if ws == nil {
		return nil, ErrNilWorkspace
	}
	log := config.Logger(cfg)
	start := time.Now()

	nodes := make(map[string]apis.ClassNode, max(cfg.CapacityHint, 0))
	dropped := 0
	for node, err := range ws.Classes() {
		if err != nil {
			log.Debug("class snapshot aborted",
				slog.Int("collected", len(nodes)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		if node == nil {
			continue
		}
		name := node.Name()
		if kept, ok := nodes[name]; ok {
			dropped++
			if cfg.ReportDuplicates {
				log.Debug("dropping duplicate class",
					slog.String("name", name),
					slog.Any("kept", kept),
					slog.Any("dropped", node),
				)
			}
			continue
		}
		nodes[name] = node
	}

	log.Debug("class snapshot built",
		slog.Int("size", len(nodes)),
		slog.Int("duplicates", dropped),
		slog.Duration("duration", time.Since(start)),
	)
	return &Cached{nodes: nodes, dropped: dropped}, nil
}
