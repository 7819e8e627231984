// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	"github.com/datagyver/optibench/dataset"
	"github.com/datagyver/optibench/engine"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/report"
	"github.com/datagyver/optibench/taxi"
)

// loopRows bounds the row loop in Full, which would otherwise dominate
// the run.
const loopRows = 1000

// Full compares three ways of loading the taxi file and three ways of
// deriving from or aggregating it.
func Full(ctx context.Context, env *Env) (_ []report.Section, err error) {
	path := env.Config.TaxiPath
	if err := taxi.Check(path); err != nil {
		return nil, err
	}

	env.Log.Info("benchmarking loading", "path", path)
	var (
		trips []taxi.Trip
		frame *dataset.Frame
		db    *engine.DB
	)
	defer func() {
		if db != nil {
			if cerr := db.Close(); err == nil {
				err = cerr
			}
		}
	}()
	loading := []struct {
		name string
		f    func() error
	}{
		{"parquet rows", func() (err error) {
			trips, err = taxi.Load(path)
			return err
		}},
		{"parquet columns", func() (err error) {
			frame, err = taxi.LoadFrame(path)
			return err
		}},
		{"sqlite ingest", func() error {
			rows, err := taxi.Load(path)
			if err != nil {
				return err
			}
			if db, err = engine.OpenMemory(ctx); err != nil {
				return err
			}
			return db.Insert(ctx, rows)
		}},
	}
	var loadSamples []harness.Sample
	for _, l := range loading {
		s, err := harness.Time(l.name, l.f)
		if err != nil {
			return nil, err
		}
		env.Log.Debug("loaded", "strategy", l.name, "elapsed", s.Elapsed)
		loadSamples = append(loadSamples, s)
	}
	fmt.Fprintf(env.Out, "%d trips\n\n", len(trips))

	env.Log.Info("benchmarking aggregation")
	_, aggSamples, err := harness.RunAll(frame, frameStrategies()...)
	if err != nil {
		return nil, err
	}
	var days []engine.DailyTotal
	s, err := harness.Time("sqlite group by", func() (err error) {
		days, err = db.Daily(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	aggSamples = append(aggSamples, s)
	fmt.Fprintf(env.Out, "%d days aggregated\n\n", len(days))

	return []report.Section{
		{Title: "loading", Samples: loadSamples},
		{Title: "aggregation", Samples: aggSamples},
	}, nil
}

// frameStrategies derives a "test" column from the loaded trips. Each
// runs on its own copy of the frame.
func frameStrategies() []harness.Strategy[*dataset.Frame, *dataset.Frame] {
	return []harness.Strategy[*dataset.Frame, *dataset.Frame]{
		harness.New(fmt.Sprintf("loop (%d rows)", loopRows), func(f *dataset.Frame) (*dataset.Frame, error) {
			return f, scaleLoop(f, taxi.AmountColumn, "test", marginRate, loopRows)
		}),
		harness.New("vectorized", func(f *dataset.Frame) (*dataset.Frame, error) {
			return f, amountVectorized(f)
		}),
	}
}

func amountVectorized(f *dataset.Frame) error {
	amounts, err := f.Floats(taxi.AmountColumn)
	if err != nil {
		return err
	}
	test := make([]float64, len(amounts))
	for i, v := range amounts {
		test[i] = v * marginRate
	}
	return f.SetFloats("test", test)
}
