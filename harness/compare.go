// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"time"

	"github.com/aclements/go-moremath/stats"
)

// A Comparison is a read-only view over the samples of one benchmark.
// It never modifies the samples it was built from.
type Comparison struct {
	samples []Sample
}

// Compare returns a Comparison over samples.
func Compare(samples ...Sample) Comparison {
	return Comparison{samples: append([]Sample(nil), samples...)}
}

// Samples returns a copy of the compared samples, in input order.
func (c Comparison) Samples() []Sample {
	return append([]Sample(nil), c.samples...)
}

// Len returns the number of samples.
func (c Comparison) Len() int { return len(c.samples) }

// Fastest returns the sample with the smallest elapsed time. Ties go
// to the earlier sample. It returns the zero Sample if c is empty.
func (c Comparison) Fastest() Sample {
	var best Sample
	for i, s := range c.samples {
		if i == 0 || s.Elapsed < best.Elapsed {
			best = s
		}
	}
	return best
}

// Slowest returns the sample with the largest elapsed time.
func (c Comparison) Slowest() Sample {
	var worst Sample
	for i, s := range c.samples {
		if i == 0 || s.Elapsed > worst.Elapsed {
			worst = s
		}
	}
	return worst
}

// Spread returns slowest/fastest, or 0 if c is empty.
func (c Comparison) Spread() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	return Speedup(c.Slowest(), c.Fastest())
}

// SpeedupOf returns how many times faster sample i was than the
// slowest sample. The slowest sample itself has speedup 1.
func (c Comparison) SpeedupOf(i int) float64 {
	return Speedup(c.Slowest(), c.samples[i])
}

// GeoMeanSpeedup returns the geometric mean of every sample's speedup
// over the slowest sample.
func (c Comparison) GeoMeanSpeedup() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	xs := make([]float64, len(c.samples))
	for i := range c.samples {
		xs[i] = c.SpeedupOf(i)
	}
	return stats.GeoMean(xs)
}

// Speedup returns base/cand: how many times faster cand ran than base.
// Durations below one nanosecond are treated as one nanosecond so the
// ratio is always finite.
func Speedup(base, cand Sample) float64 {
	return float64(clamp(base.Elapsed)) / float64(clamp(cand.Elapsed))
}

// Savings returns the time cand saved relative to base and that saving
// as a percentage of base. Both are negative if cand was slower.
func Savings(base, cand Sample) (saved time.Duration, pct float64) {
	saved = base.Elapsed - cand.Elapsed
	pct = (1 - float64(clamp(cand.Elapsed))/float64(clamp(base.Elapsed))) * 100
	return saved, pct
}

func clamp(d time.Duration) time.Duration {
	if d < time.Nanosecond {
		return time.Nanosecond
	}
	return d
}
