// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"
	"math"

	"github.com/datagyver/optibench/benchunit"
	"github.com/datagyver/optibench/engine"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/report"
	"github.com/datagyver/optibench/taxi"
)

// engineTolerance is the relative difference allowed between daily
// sums of different engines.
const engineTolerance = 1e-6

// Loading reads the taxi trip file and aggregates total amount per
// pickup day with every engine.
func Loading(ctx context.Context, env *Env) ([]report.Section, error) {
	path := env.Config.TaxiPath
	if err := taxi.Check(path); err != nil {
		return nil, err
	}
	var trips []taxi.Trip
	load, err := harness.Time("load", func() (err error) {
		trips, err = taxi.Load(path)
		return err
	})
	if err != nil {
		return nil, err
	}
	env.Log.Info("loaded trips", "rows", len(trips), "path", path)
	fmt.Fprintf(env.Out, "read %d trips from %s in %s\n", len(trips), path, benchunit.Duration(load.Elapsed))

	var strategies []harness.Strategy[harness.List[taxi.Trip], []engine.DailyTotal]
	for _, e := range engine.All() {
		strategies = append(strategies, harness.New(e.Name(), func(trips harness.List[taxi.Trip]) ([]engine.DailyTotal, error) {
			return e.Aggregate(ctx, trips)
		}))
	}
	outs, samples, err := harness.RunAll(harness.List[taxi.Trip](trips), strategies...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(outs); i++ {
		if err := harness.Verify(samples[0].Name+" vs "+samples[i].Name, outs[0], outs[i], sameDaily); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(env.Out, "%d days, all engines agree\n\n", len(outs[0]))
	return []report.Section{{Title: "daily aggregation", Samples: samples}}, nil
}

func sameDaily(a, b []engine.DailyTotal) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d days vs %d", len(a), len(b))
	}
	for i := range a {
		x, y := a[i], b[i]
		tol := engineTolerance * math.Max(math.Abs(x.Sum), 1)
		switch {
		case x.Day != y.Day:
			return fmt.Errorf("row %d: day %d vs %d", i, x.Day, y.Day)
		case x.Count != y.Count:
			return fmt.Errorf("day %d: count %d vs %d", x.Day, x.Count, y.Count)
		case !harness.Close(x.Sum, y.Sum, tol):
			return fmt.Errorf("day %d: sum %v vs %v", x.Day, x.Sum, y.Sum)
		case !harness.Close(x.Mean, y.Mean, tol):
			return fmt.Errorf("day %d: mean %v vs %v", x.Day, x.Mean, y.Mean)
		}
	}
	return nil
}
