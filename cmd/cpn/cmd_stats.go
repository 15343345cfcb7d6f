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

	"dirpx.dev/cpn/config"
	"dirpx.dev/cpn/internal/ui"
	"dirpx.dev/cpn/provider"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Snapshot the workspace and report class counts",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type workspaceStats struct {
	Resources  int `json:"resources"`
	Classes    int `json:"classes"`
	Distinct   int `json:"distinct"`
	Duplicates int `json:"duplicates"`
}

func runStats(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	snap, err := provider.Snapshot(ws, config.NewConfig(opts...))
	if err != nil {
		return err
	}

	st := workspaceStats{
		Resources:  len(ws.Resources()),
		Classes:    ws.Count(),
		Distinct:   snap.Size(),
		Duplicates: snap.Duplicates(),
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	tbl := ui.NewTable(out, "RESOURCES", "CLASSES", "DISTINCT", "DUPLICATES")
	tbl.Row(st.Resources, st.Classes, st.Distinct, st.Duplicates)
	return tbl.Flush()
}
