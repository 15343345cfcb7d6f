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
	"log/slog"

	"github.com/spf13/cobra"

	"dirpx.dev/cpn/config"
	"dirpx.dev/cpn/workspace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cpn",
		Short:         "Resolve class names to class path nodes of a workspace",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("workspace", "workspace.yaml", "Workspace manifest")
	cmd.PersistentFlags().String("config", "", "Provider configuration file (YAML)")
	cmd.PersistentFlags().Bool("verbose", false, "Log diagnostics to stderr")

	cmd.AddCommand(
		newLookupCmd(),
		newStatsCmd(),
	)

	return cmd
}

// openWorkspace loads the manifest named by --workspace.
func openWorkspace(cmd *cobra.Command) (*workspace.Memory, error) {
	path, _ := cmd.Flags().GetString("workspace")
	return workspace.Open(path)
}

// loadOptions collects provider options from --config and --verbose.
func loadOptions(cmd *cobra.Command) ([]config.Option, error) {
	var opts []config.Option

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fileOpts, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, config.WithLogger(slog.New(h)))
	}

	return opts, nil
}
