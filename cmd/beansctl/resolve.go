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
	"errors"
	"fmt"
	"io"
	"reflect"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dirpx.dev/ioc"
	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/config"
	"dirpx.dev/ioc/resolver"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the sample catalog and print definitions and bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runResolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, sampleCatalog())
		},
	}
}

// loadConfig reads env files and the environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (apis.Config, error) {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("fail-fast") {
		cfg.FailFast = opts.failFast
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func runResolve(out, errOut io.Writer, cfg apis.Config, classes []reflect.Type) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(errOut, log.Options{Prefix: "beansctl", Level: level})

	c, err := ioc.New(ioc.WithConfig(cfg), ioc.WithLogger(logger))
	if err != nil {
		return err
	}
	defer c.End()

	if err := c.Start(classes); err != nil {
		printFailures(out, err)
		return err
	}
	printView(out, c.View())
	return nil
}

func printView(out io.Writer, v ioc.View) {
	fmt.Fprintln(out, TitleStyle.Render("Definitions"))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, def := range v.Definitions() {
		fmt.Fprintf(tw, "  %s\t%s\t%v\n", NameStyle.Render(def.Name()), def.Class(), def.Stereotypes())
	}
	_ = tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, TitleStyle.Render("Bindings"))
	bindings := v.Bindings()
	types := make([]reflect.Type, 0, len(bindings))
	for t := range bindings {
		types = append(types, t)
	}
	for _, t := range apis.SortedTypes(types) {
		fmt.Fprintf(out, "  %v -> %v\n", t, bindings[t])
	}
}

func printFailures(out io.Writer, err error) {
	fmt.Fprintln(out, ErrorStyle.Render("Resolution failed"))
	var joined interface{ Unwrap() []error }
	errs := []error{err}
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		if ce, ok := resolver.IsCandidateError(e); ok {
			fmt.Fprintf(out, "  %v: %v\n", ce.Class, ce.Err)
			continue
		}
		fmt.Fprintf(out, "  %v\n", e)
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the sample candidate types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, t := range sampleCatalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", t.Kind(), t)
			}
		},
	}
}
