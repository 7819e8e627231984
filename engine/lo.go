// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"

	"github.com/samber/lo"

	"github.com/datagyver/optibench/taxi"
)

// Lo aggregates with samber/lo's GroupBy and SumBy.
type Lo struct{}

func (Lo) Name() string { return "lo" }

func (Lo) Aggregate(ctx context.Context, trips []taxi.Trip) ([]DailyTotal, error) {
	groups := lo.GroupBy(trips, taxi.Trip.Day)
	out := lo.MapToSlice(groups, func(day int64, ts []taxi.Trip) DailyTotal {
		sum := lo.SumBy(ts, func(t taxi.Trip) float64 { return t.TotalAmount })
		return DailyTotal{Day: day, Sum: sum, Mean: sum / float64(len(ts)), Count: len(ts)}
	})
	sortByDay(out)
	return out, nil
}
