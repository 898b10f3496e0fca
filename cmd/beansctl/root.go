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
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	envFiles []string
	failFast bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "beansctl",
		Short: "Inspect bean definition resolution",
		Long: TitleStyle.Render("beansctl") + SubtitleStyle.Render(" - inspect bean definition resolution") + `

beansctl runs the IoC container startup pass over a built-in catalog
of sample types and prints every bean definition and every binding
from an exposed type to its implementation classes.

Configuration is read from .env files and IOC_* environment variables;
flags override both.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env or .toml config files to load (default .env if present)")
	cmd.PersistentFlags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first class that fails to resolve")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newResolveCmd(opts))
	cmd.AddCommand(newCatalogCmd())
	return cmd
}
