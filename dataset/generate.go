// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/datagyver/optibench/harness"
)

// A Dist describes how to fill one generated column.
type Dist interface {
	kind() Kind
	check() error
	fill(c *Column, rows int, r *rand.Rand)
}

// A ColumnSpec names a generated column and its distribution.
type ColumnSpec struct {
	Name string
	Dist Dist
}

// A Schema is the ordered list of columns Generate produces.
type Schema []ColumnSpec

// UniformInt draws integers uniformly from [lo, hi).
func UniformInt(lo, hi int64) Dist { return uniformInt{lo, hi} }

// UniformFloat draws floats uniformly from [lo, hi).
func UniformFloat(lo, hi float64) Dist { return uniformFloat{lo, hi} }

// Choice draws uniformly from a fixed vocabulary.
func Choice(vocab ...string) Dist { return choice(append([]string(nil), vocab...)) }

// Timestamps produces start, start+step, start+2*step, ...
func Timestamps(start time.Time, step time.Duration) Dist {
	return timestamps{start: start, step: step}
}

// PeriodicTimestamps is like Timestamps but wraps back to start every
// period rows.
func PeriodicTimestamps(start time.Time, step time.Duration, period int) Dist {
	return timestamps{start: start, step: step, period: period}
}

type uniformInt struct{ lo, hi int64 }

func (uniformInt) kind() Kind { return Int }

func (d uniformInt) check() error {
	if d.hi <= d.lo {
		return fmt.Errorf("empty integer range [%d,%d)", d.lo, d.hi)
	}
	return nil
}

func (d uniformInt) fill(c *Column, rows int, r *rand.Rand) {
	c.Ints = make([]int64, rows)
	for i := range c.Ints {
		c.Ints[i] = d.lo + r.Int64N(d.hi-d.lo)
	}
}

type uniformFloat struct{ lo, hi float64 }

func (uniformFloat) kind() Kind { return Float }

func (d uniformFloat) check() error {
	if !(d.hi > d.lo) {
		return fmt.Errorf("empty float range [%v,%v)", d.lo, d.hi)
	}
	return nil
}

func (d uniformFloat) fill(c *Column, rows int, r *rand.Rand) {
	c.Floats = make([]float64, rows)
	for i := range c.Floats {
		c.Floats[i] = d.lo + r.Float64()*(d.hi-d.lo)
	}
}

type choice []string

func (choice) kind() Kind { return String }

func (d choice) check() error {
	if len(d) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	return nil
}

func (d choice) fill(c *Column, rows int, r *rand.Rand) {
	c.Strings = make([]string, rows)
	for i := range c.Strings {
		c.Strings[i] = d[r.IntN(len(d))]
	}
}

type timestamps struct {
	start  time.Time
	step   time.Duration
	period int
}

func (timestamps) kind() Kind { return Time }

func (d timestamps) check() error {
	if d.step <= 0 {
		return fmt.Errorf("non-positive timestamp step %v", d.step)
	}
	if d.period < 0 {
		return fmt.Errorf("negative period %d", d.period)
	}
	return nil
}

func (d timestamps) fill(c *Column, rows int, _ *rand.Rand) {
	c.Times = make([]time.Time, rows)
	for i := range c.Times {
		k := i
		if d.period > 0 {
			k = i % d.period
		}
		c.Times[i] = d.start.Add(time.Duration(k) * d.step)
	}
}

type options struct {
	seeded bool
	seed   int64
}

// An Option configures Generate.
type Option func(*options)

// Seed makes Generate deterministic: the same schema, row count and
// seed always produce the same frame.
func Seed(seed int64) Option {
	return func(o *options) {
		o.seeded = true
		o.seed = seed
	}
}

// Generate returns a new Frame with rows rows laid out by schema.
// Without a Seed option every call draws fresh pseudo-random values.
//
// rows must be positive and every column must have a usable
// distribution; otherwise Generate returns an error wrapping
// harness.ErrInvalidArgument.
func Generate(schema Schema, rows int, opts ...Option) (*Frame, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: row count %d must be positive", harness.ErrInvalidArgument, rows)
	}
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: empty schema", harness.ErrInvalidArgument)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	var r *rand.Rand
	if o.seeded {
		r = rand.New(rand.NewPCG(uint64(o.seed), 0x9e3779b97f4a7c15))
	} else {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	cols := make([]Column, len(schema))
	for i, spec := range schema {
		if spec.Dist == nil {
			return nil, fmt.Errorf("%w: column %q has no distribution", harness.ErrInvalidArgument, spec.Name)
		}
		if err := spec.Dist.check(); err != nil {
			return nil, fmt.Errorf("%w: column %q: %v", harness.ErrInvalidArgument, spec.Name, err)
		}
		cols[i] = Column{Name: spec.Name, Kind: spec.Dist.kind()}
		spec.Dist.fill(&cols[i], rows, r)
	}
	f, err := NewFrame(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", harness.ErrInvalidArgument, err)
	}
	return f, nil
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Regions is the vocabulary of the region column.
var Regions = []string{"North", "South", "East", "West"}

// SalesSchema is the order table used by the profiling program.
var SalesSchema = Schema{
	{"customer_id", UniformInt(1000, 9999)},
	{"product_id", UniformInt(100, 999)},
	{"revenue", UniformFloat(10, 1000)},
	{"date", Timestamps(epoch, time.Minute)},
	{"region", Choice(Regions...)},
}

// RevenueSchema is the minimal table the vectorization program derives
// columns from.
var RevenueSchema = Schema{
	{"customer_id", UniformInt(1000, 9999)},
	{"revenue", UniformFloat(100, 5000)},
}

// HourlySalesSchema is the layout of the sample CSV files.
var HourlySalesSchema = Schema{
	{"customer_id", UniformInt(1000, 9999)},
	{"revenue", UniformFloat(100, 5000)},
	{"date", Timestamps(epoch, time.Hour)},
}

// CustomerNames returns a frame mapping every customer_id in [lo, hi)
// to "Customer_<id>".
func CustomerNames(lo, hi int64) (*Frame, error) {
	if hi <= lo {
		return nil, fmt.Errorf("%w: empty customer range [%d,%d)", harness.ErrInvalidArgument, lo, hi)
	}
	ids := make([]int64, 0, hi-lo)
	names := make([]string, 0, hi-lo)
	for id := lo; id < hi; id++ {
		ids = append(ids, id)
		names = append(names, fmt.Sprintf("Customer_%d", id))
	}
	return NewFrame(IntColumn("customer_id", ids), StringColumn("customer_name", names))
}
