// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"

	"github.com/ahmetb/go-linq/v3"

	"github.com/datagyver/optibench/taxi"
)

// Linq aggregates with a go-linq GroupBy query ordered by day.
type Linq struct{}

func (Linq) Name() string { return "linq" }

func (Linq) Aggregate(ctx context.Context, trips []taxi.Trip) ([]DailyTotal, error) {
	var out []DailyTotal
	linq.From(trips).
		GroupByT(
			func(t taxi.Trip) int64 { return t.Day() },
			func(t taxi.Trip) float64 { return t.TotalAmount },
		).
		OrderByT(func(g linq.Group) int64 { return g.Key.(int64) }).
		SelectT(func(g linq.Group) DailyTotal {
			amounts := linq.From(g.Group)
			return DailyTotal{
				Day:   g.Key.(int64),
				Sum:   amounts.SumFloats(),
				Mean:  amounts.Average(),
				Count: len(g.Group),
			}
		}).
		ToSlice(&out)
	return out, nil
}
