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


package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"dirpx.dev/cpn/apis"
	"dirpx.dev/cpn/builder"
	"dirpx.dev/cpn/config"
	"dirpx.dev/cpn/internal/ui"
	"dirpx.dev/cpn/utils/names"
	"dirpx.dev/cpn/workspace"
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Look up classes by name",
		Long: `Look up classes by name.

Names may be given in source form (com.example.App) or internal form
(com/example/App). With --mode cached (the default) the workspace is
snapshotted once before the lookups; --mode live queries it per name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLookup,
	}
	cmd.Flags().String("mode", "", "Provider mode: live or cached (overrides --config)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type lookupResult struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Resource string `json:"resource,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if s, _ := cmd.Flags().GetString("mode"); s != "" {
		mode, err := apis.ParseMode(s)
		if err != nil {
			return err
		}
		opts = append(opts, config.WithMode(mode))
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	p, err := builder.New().Build(ws, config.NewConfig(opts...))
	if err != nil {
		return err
	}

	results := make([]lookupResult, 0, len(args))
	for _, arg := range args {
		results = append(results, lookup(p, names.Internal(arg)))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tbl := ui.NewTable(out, "NAME", "FOUND", "RESOURCE")
	for _, r := range results {
		tbl.Row(r.Name, r.Found, r.Resource)
	}
	return tbl.Flush()
}

func lookup(p apis.Provider, name string) lookupResult {
	r := lookupResult{Name: name}
	node, ok := p.GetNode(name)
	if !ok {
		return r
	}
	r.Found = true
	if path, ok := node.(*workspace.Path); ok {
		r.Resource = path.Resource
	}
	return r
}
