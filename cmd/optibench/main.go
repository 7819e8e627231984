// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Optibench times alternative implementations of common data-processing
// tasks and reports how much faster the fastest one is.
//
// Usage:
//
//	optibench <program> [flags]
//	optibench all [flags]
//	optibench taxigen [flags]
//
// The programs are:
//
//	profile    a left join and a row loop, for running under a profiler
//	loading    per-day aggregation of taxi trips with several engines
//	vectorize  derived columns computed per cell, per column and with lo
//	parallel   summarizing sample CSV files sequentially and concurrently
//	cache      repeated country lookups, uncached and memoized
//	full       loading and aggregation of the taxi file, side by side
//
// "all" runs every program as a child process and prints how many
// passed. "taxigen" writes a synthetic taxi trip file for loading and
// full.
//
// Every flag can also be set with an OPTIBENCH_ environment variable,
// such as OPTIBENCH_ROWS=1000000.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/datagyver/optibench/internal/config"
	"github.com/datagyver/optibench/internal/demo"
	"github.com/datagyver/optibench/internal/runner"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("optibench: ")
	log.SetFlags(0)
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		log.Print(err)
		exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "optibench",
		Short:         "Compare data-processing strategies by timing them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	config.AddFlags(root.PersistentFlags())

	env := func(cmd *cobra.Command) (*demo.Env, error) {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return nil, err
		}
		return demo.NewEnv(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
	}

	for _, p := range demo.Programs {
		root.AddCommand(&cobra.Command{
			Use:   p.Name,
			Short: p.Title,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := env(cmd)
				if err != nil {
					return err
				}
				return demo.Execute(cmd.Context(), p, e)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "taxigen",
		Short: "Write a synthetic taxi trip Parquet file of --rows trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}
			return demo.TaxiGen(cmd.Context(), e)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every program as a child process and tally the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			self, err := os.Executable()
			if err != nil {
				return err
			}
			r := &runner.Runner{
				Command: self,
				Args:    childArgs(cmd.Flags()),
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
				Log:     cfg.Logger(cmd.ErrOrStderr()),
			}
			names := make([]string, len(demo.Programs))
			for i, p := range demo.Programs {
				names[i] = p.Name
			}
			results := r.Run(cmd.Context(), names)
			fmt.Fprintln(cmd.OutOrStdout())
			if err := runner.WriteSummary(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if n := runner.Tally(results); n != len(results) {
				return fmt.Errorf("%d of %d benchmarks failed", len(results)-n, len(results))
			}
			return nil
		},
	})
	return root
}

// perRun flags name output files or modes that only make sense for a
// single program.
var perRun = map[string]bool{
	"emit-results": true,
	"cpuprofile":   true,
	"html":         true,
	"chart":        true,
}

// childArgs returns the flags set on the command line, to pass on to
// every child.
func childArgs(fs *pflag.FlagSet) []string {
	var args []string
	fs.Visit(func(f *pflag.Flag) {
		if !perRun[f.Name] {
			args = append(args, "--"+f.Name+"="+f.Value.String())
		}
	})
	return args
}
