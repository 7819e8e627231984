// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner runs every benchmark program as a child process and
// tallies which ones passed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/datagyver/optibench/benchfmt"
	"github.com/datagyver/optibench/benchunit"
	"github.com/datagyver/optibench/internal/texttab"
)

// A Result is the outcome of one child process.
type Result struct {
	Program  string
	ExitCode int   // -1 if the child could not be started
	Err      error // non-nil if the child could not be started
	Elapsed  time.Duration

	// Samples are the benchmark-format lines the child printed.
	Samples []*benchfmt.Result
}

// Passed reports whether the child ran and exited with status 0.
func (r *Result) Passed() bool {
	return r.Err == nil && r.ExitCode == 0
}

// A Runner starts "Command Prefix... <program> --emit-results Args..."
// for each program.
type Runner struct {
	Command string
	Prefix  []string
	Args    []string
	Env     []string // added to the parent's environment

	Stdout io.Writer // receives each child's output as it runs
	Stderr io.Writer
	Log    *log.Logger
}

// Run runs programs one after another in order. A failing child does
// not stop the run.
func (r *Runner) Run(ctx context.Context, programs []string) []*Result {
	results := make([]*Result, 0, len(programs))
	for _, name := range programs {
		fmt.Fprintf(r.stdout(), "\n%s\n%s\n", strings.Repeat("=", 60), name)
		res := r.runOne(ctx, name)
		if r.Log != nil {
			r.Log.Info("finished", "program", name, "exit", res.ExitCode, "elapsed", res.Elapsed.Round(time.Millisecond))
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

func (r *Runner) runOne(ctx context.Context, name string) *Result {
	args := append(append(append([]string(nil), r.Prefix...), name, "--emit-results"), r.Args...)
	cmd := exec.CommandContext(ctx, r.Command, args...)
	var out bytes.Buffer
	cmd.Stdout = io.MultiWriter(r.stdout(), &out)
	cmd.Stderr = r.Stderr
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	res := &Result{Program: name}
	start := time.Now()
	err := cmd.Run()
	res.Elapsed = time.Since(start)
	var ee *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &ee):
		res.ExitCode = ee.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err
		return res
	}

	br := benchfmt.NewReader(&out, name)
	for br.Scan() {
		switch rec := br.Result().(type) {
		case *benchfmt.Result:
			res.Samples = append(res.Samples, rec)
		case *benchfmt.SyntaxError:
			if r.Log != nil {
				r.Log.Warn("bad result line", "err", rec)
			}
		}
	}
	return res
}

// Tally returns the number of results that passed.
func Tally(results []*Result) (passed int) {
	for _, res := range results {
		if res.Passed() {
			passed++
		}
	}
	return passed
}

// WriteSummary writes one line per child followed by the pass tally.
func WriteSummary(w io.Writer, results []*Result) error {
	var tab texttab.Table
	tab.SetAlign(2, texttab.Right).SetAlign(3, texttab.Right)
	tab.Row().Cell("").Cell("program").Cell("time").Cell("results")
	tab.Rule()
	for _, res := range results {
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
		}
		tab.Row().Cell(status).Cell(res.Program).Cell(benchunit.Duration(res.Elapsed)).Cellf("%d", len(res.Samples))
		switch {
		case res.Err != nil:
			tab.Cell(res.Err.Error())
		case res.ExitCode != 0:
			tab.Cellf("exit status %d", res.ExitCode)
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d/%d benchmarks passed\n", Tally(results), len(results))
	return err
}
