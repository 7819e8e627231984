// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/datagyver/optibench/dataset"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/report"
)

const (
	discountRate = 0.1

	// vectorizeTolerance is the absolute difference allowed between
	// derived columns of different strategies.
	vectorizeTolerance = 1e-2
)

var derived = []string{"margin", "discount", "net_revenue"}

var deriveStrategies = []harness.Strategy[*dataset.Frame, *dataset.Frame]{
	harness.New("loop", deriveLoop),
	harness.New("vectorized", deriveVectorized),
	harness.New("lo", deriveLo),
}

// Vectorize derives margin, discount and net revenue from revenue
// cell by cell, a column at a time, and with lo.Map, and checks that
// all three agree.
func Vectorize(ctx context.Context, env *Env) ([]report.Section, error) {
	cfg := env.Config
	env.Log.Info("generating revenue", "rows", cfg.Rows)
	base, err := dataset.Generate(dataset.RevenueSchema, cfg.Rows, env.seed()...)
	if err != nil {
		return nil, err
	}

	outs, samples, err := harness.RunAll(base, deriveStrategies...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(outs); i++ {
		a, err := outs[0].Select(derived...)
		if err != nil {
			return nil, err
		}
		b, err := outs[i].Select(derived...)
		if err != nil {
			return nil, err
		}
		what := samples[0].Name + " vs " + samples[i].Name
		if err := harness.Verify(what, a, b, dataset.Within(vectorizeTolerance)); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(env.Out, "%d rows: %d strategies agree within %g\n\n", base.Len(), len(outs), vectorizeTolerance)
	return []report.Section{{Title: "vectorize", Samples: samples}}, nil
}

func deriveLoop(f *dataset.Frame) (*dataset.Frame, error) {
	for i := 0; i < f.Len(); i++ {
		rev, err := f.FloatAt("revenue", i)
		if err != nil {
			return nil, err
		}
		if err := f.SetFloatAt("margin", i, rev*marginRate); err != nil {
			return nil, err
		}
		if err := f.SetFloatAt("discount", i, rev*discountRate); err != nil {
			return nil, err
		}
		disc, err := f.FloatAt("discount", i)
		if err != nil {
			return nil, err
		}
		if err := f.SetFloatAt("net_revenue", i, rev-disc); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func deriveVectorized(f *dataset.Frame) (*dataset.Frame, error) {
	rev, err := f.Floats("revenue")
	if err != nil {
		return nil, err
	}
	margin := make([]float64, len(rev))
	discount := make([]float64, len(rev))
	net := make([]float64, len(rev))
	for i, r := range rev {
		margin[i] = r * marginRate
	}
	for i, r := range rev {
		discount[i] = r * discountRate
	}
	for i, r := range rev {
		net[i] = r - discount[i]
	}
	return f, setColumns(f, margin, discount, net)
}

func deriveLo(f *dataset.Frame) (*dataset.Frame, error) {
	rev, err := f.Floats("revenue")
	if err != nil {
		return nil, err
	}
	margin := lo.Map(rev, func(r float64, _ int) float64 { return r * marginRate })
	discount := lo.Map(rev, func(r float64, _ int) float64 { return r * discountRate })
	net := lo.Map(rev, func(r float64, i int) float64 { return r - discount[i] })
	return f, setColumns(f, margin, discount, net)
}

func setColumns(f *dataset.Frame, cols ...[]float64) error {
	for i, name := range derived {
		if err := f.SetFloats(name, cols[i]); err != nil {
			return err
		}
	}
	return nil
}
