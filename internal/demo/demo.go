// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the optibench benchmark programs.
//
// Each program builds its input, times two or more strategies that
// compute the same thing, checks that they agree, and returns the
// timings as report sections. Execute prints them.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/datagyver/optibench/dataset"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/internal/config"
	"github.com/datagyver/optibench/report"
	"github.com/datagyver/optibench/taxi"
)

// An Env is the environment a program runs in.
type Env struct {
	Config config.Config
	Out    io.Writer // human-readable results
	Log    *log.Logger
}

// NewEnv returns an Env writing results to out and progress to logw.
func NewEnv(cfg config.Config, out, logw io.Writer) *Env {
	return &Env{Config: cfg, Out: out, Log: cfg.Logger(logw)}
}

func (e *Env) seed() []dataset.Option {
	if e.Config.Seed == 0 {
		return nil
	}
	return []dataset.Option{dataset.Seed(e.Config.Seed)}
}

func (e *Env) rand() *rand.Rand {
	seed := uint64(e.Config.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, 0))
}

// A Program is one benchmark.
type Program struct {
	Name  string
	Title string
	Run   func(ctx context.Context, env *Env) ([]report.Section, error)

	// Spread requests a per-section summary of fastest against
	// slowest after the tables.
	Spread bool
}

// Programs lists every benchmark in the order "optibench all" runs
// them.
var Programs = []Program{
	{Name: "profile", Title: "Profiling a slow pipeline", Run: Profile},
	{Name: "loading", Title: "Aggregation engines on taxi trips", Run: Loading},
	{Name: "vectorize", Title: "Column operations vs row loops", Run: Vectorize},
	{Name: "parallel", Title: "Parallel file processing", Run: Parallel},
	{Name: "cache", Title: "Memoized lookups", Run: Cache},
	{Name: "full", Title: "Full benchmark", Run: Full, Spread: true},
}

// Lookup returns the program called name.
func Lookup(name string) (Program, bool) {
	for _, p := range Programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// Execute runs p and writes its report. A missing input file is
// reported with a remedy and is not an error.
func Execute(ctx context.Context, p Program, env *Env) (err error) {
	cfg := env.Config
	fmt.Fprintf(env.Out, "%s\n%s\n\n", p.Title, strings.Repeat("=", 60))

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			env.Log.Info("wrote CPU profile", "path", cfg.CPUProfile)
		}()
	}

	secs, err := p.Run(ctx, env)
	if errors.Is(err, harness.ErrMissingInputFile) {
		fmt.Fprintf(env.Out, "%v\n", err)
		fmt.Fprintf(env.Out, "Generate a synthetic file with: optibench taxigen --taxi-path %s\n", cfg.TaxiPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	if err := report.WriteText(env.Out, secs...); err != nil {
		return err
	}
	if p.Spread {
		fmt.Fprintln(env.Out)
		if err := report.WriteSpread(env.Out, secs...); err != nil {
			return err
		}
	}
	if cfg.EmitResults {
		fmt.Fprintln(env.Out)
		if err := report.WriteResults(env.Out, p.Name, secs...); err != nil {
			return err
		}
	}
	if cfg.HTML != "" {
		if err := writeFile(cfg.HTML, func(w io.Writer) error { return report.WriteHTML(w, secs...) }); err != nil {
			return err
		}
		env.Log.Info("wrote HTML report", "path", cfg.HTML)
	}
	if cfg.Chart != "" {
		for i, sec := range secs {
			path := chartPath(cfg.Chart, i)
			if err := writeFile(path, func(w io.Writer) error { return report.WriteChart(w, sec) }); err != nil {
				return err
			}
			env.Log.Info("wrote chart", "path", path)
		}
	}
	return nil
}

// chartPath returns base for the first section and base with "-N"
// before its extension for section N > 0, counting from 1.
func chartPath(base string, i int) string {
	if i == 0 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// TaxiGen writes env.Config.Rows synthetic trips to the taxi file,
// creating its directory if needed.
func TaxiGen(ctx context.Context, env *Env) error {
	cfg := env.Config
	env.Log.Info("generating trips", "rows", cfg.Rows)
	trips, err := taxi.Generate(cfg.Rows, env.seed()...)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(cfg.TaxiPath); dir != "." {
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return err
		}
	}
	if err := taxi.Save(cfg.TaxiPath, trips); err != nil {
		return fmt.Errorf("write %s: %w", cfg.TaxiPath, err)
	}
	fmt.Fprintf(env.Out, "wrote %d trips to %s\n", len(trips), cfg.TaxiPath)
	return nil
}
