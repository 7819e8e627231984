// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	"github.com/datagyver/optibench/dataset"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/report"
)

// marginRate is the share of revenue kept as margin.
const marginRate = 0.3

// Profile builds the deliberately slow pipeline worth running under a
// profiler: a left join of orders to customer names followed by a
// row-at-a-time margin computation.
func Profile(ctx context.Context, env *Env) ([]report.Section, error) {
	cfg := env.Config
	env.Log.Info("generating sales", "rows", cfg.Rows)
	sales, err := dataset.Generate(dataset.SalesSchema, cfg.Rows, env.seed()...)
	if err != nil {
		return nil, err
	}
	names, err := dataset.CustomerNames(1000, 10000)
	if err != nil {
		return nil, err
	}

	var joined *dataset.Frame
	env.Log.Debug("starting join")
	join, err := harness.Time("left join", func() (err error) {
		joined, err = dataset.LeftJoin(sales, names, "customer_id")
		return err
	})
	if err != nil {
		return nil, err
	}
	env.Log.Debug("starting row loop")
	loop, err := harness.Time("row loop", func() error {
		return scaleLoop(joined, "revenue", "margin", marginRate, joined.Len())
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(env.Out, "processed %d rows\n", joined.Len())
	if cfg.CPUProfile == "" {
		fmt.Fprintf(env.Out, "to profile: optibench profile --cpuprofile cpu.out && go tool pprof cpu.out\n")
	}
	fmt.Fprintln(env.Out)
	return []report.Section{{Title: "profile", Samples: []harness.Sample{join, loop}}}, nil
}

// scaleLoop sets dst = src × rate for the first n rows of f, one cell
// at a time, looking both columns up by name for every cell.
func scaleLoop(f *dataset.Frame, src, dst string, rate float64, n int) error {
	for i := 0; i < n && i < f.Len(); i++ {
		v, err := f.FloatAt(src, i)
		if err != nil {
			return err
		}
		if err := f.SetFloatAt(dst, i, v*rate); err != nil {
			return err
		}
	}
	return nil
}
