// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine aggregates trips per pickup day with several
// interchangeable engines: a hand-written loop, samber/lo, go-linq,
// and an in-memory SQLite database.
//
// Every engine returns the same []DailyTotal, ordered by day. Sums
// may differ in the last bits because engines add in different
// orders.
package engine

import (
	"context"
	"sort"

	"github.com/datagyver/optibench/taxi"
)

// A DailyTotal aggregates the trips picked up on one UTC day.
type DailyTotal struct {
	Day   int64 // days since the Unix epoch
	Sum   float64
	Mean  float64
	Count int
}

// An Engine computes daily totals.
type Engine interface {
	Name() string
	Aggregate(ctx context.Context, trips []taxi.Trip) ([]DailyTotal, error)
}

// All returns every engine, in report order.
func All() []Engine {
	return []Engine{Loop{}, Lo{}, Linq{}, SQLite{}}
}

// ByName returns the engine called name.
func ByName(name string) (Engine, bool) {
	for _, e := range All() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Loop aggregates with a single pass over the trips and a map.
type Loop struct{}

func (Loop) Name() string { return "loop" }

func (Loop) Aggregate(ctx context.Context, trips []taxi.Trip) ([]DailyTotal, error) {
	acc := make(map[int64]*DailyTotal)
	for _, t := range trips {
		day := t.Day()
		d := acc[day]
		if d == nil {
			d = &DailyTotal{Day: day}
			acc[day] = d
		}
		d.Sum += t.TotalAmount
		d.Count++
	}
	out := make([]DailyTotal, 0, len(acc))
	for _, d := range acc {
		d.Mean = d.Sum / float64(d.Count)
		out = append(out, *d)
	}
	sortByDay(out)
	return out, nil
}

func sortByDay(ds []DailyTotal) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Day < ds[j].Day })
}
