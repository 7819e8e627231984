// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	"github.com/datagyver/optibench/dispatch"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/report"
	"github.com/datagyver/optibench/salesfile"
)

type fileStrategy = harness.Strategy[harness.List[string], []salesfile.Summary]

func summarize(ctx context.Context, path string) (salesfile.Summary, error) {
	return salesfile.Summarize(path)
}

// Parallel writes the sample sales files and summarizes them one at a
// time, with the worker pool, as a rill stream and with lo/parallel.
func Parallel(ctx context.Context, env *Env) ([]report.Section, error) {
	cfg := env.Config
	env.Log.Info("creating sample files", "files", cfg.Files, "rows", cfg.RowsPerFile, "dir", cfg.SampleDir)
	files, err := salesfile.Create(cfg.SampleDir, cfg.Files, cfg.RowsPerFile, cfg.Seed, cfg.Seed != 0)
	if err != nil {
		return nil, err
	}
	workers := dispatch.Workers(cfg.Workers)

	strategies := []fileStrategy{
		harness.New("sequential", func(files harness.List[string]) ([]salesfile.Summary, error) {
			return dispatch.Sequential(ctx, files, summarize)
		}),
		harness.New(fmt.Sprintf("pool-%d", workers), func(files harness.List[string]) ([]salesfile.Summary, error) {
			return dispatch.All(ctx, files, workers, summarize)
		}),
		harness.New(fmt.Sprintf("stream-%d", workers), func(files harness.List[string]) ([]salesfile.Summary, error) {
			return dispatch.Stream(ctx, files, workers, summarize)
		}),
		harness.New("fanout", func(files harness.List[string]) ([]salesfile.Summary, error) {
			return dispatch.Fanout(ctx, files, summarize)
		}),
	}
	outs, samples, err := harness.RunAll(harness.List[string](files), strategies...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(outs); i++ {
		if err := harness.Verify(samples[i].Name, outs[0], outs[i], harness.Identical[salesfile.Summary]()); err != nil {
			return nil, err
		}
	}

	var rows int
	var revenue float64
	for _, s := range outs[0] {
		rows += s.Rows
		revenue += s.TotalRevenue
	}
	fmt.Fprintf(env.Out, "%d files, %d rows, total revenue %.2f\n", len(outs[0]), rows, revenue)
	fmt.Fprintf(env.Out, "all strategies returned the summaries in file order\n\n")
	return []report.Section{{Title: "parallel", Samples: samples}}, nil
}
