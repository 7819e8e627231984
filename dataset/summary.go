// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// Stats summarizes a numeric column.
type Stats struct {
	Count     int
	Sum, Mean float64
	Min, Max  float64
}

// Summary returns aggregate statistics of the named numeric column.
func (f *Frame) Summary(name string) (Stats, error) {
	c, ok := f.Column(name)
	if !ok {
		return Stats{}, fmt.Errorf("no column %q", name)
	}
	if !c.Kind.Numeric() {
		return Stats{}, fmt.Errorf("column %q is %v, not numeric", name, c.Kind)
	}
	xs := c.Floats
	if c.Kind == Int {
		xs = make([]float64, len(c.Ints))
		for i, v := range c.Ints {
			xs[i] = float64(v)
		}
	}
	return Summarize(xs), nil
}

// Summarize computes Stats over xs.
func Summarize(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	s := stats.Sample{Xs: xs}
	lo, hi := s.Bounds()
	return Stats{
		Count: len(xs),
		Sum:   s.Sum(),
		Mean:  s.Mean(),
		Min:   lo,
		Max:   hi,
	}
}
