// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads and writes timing samples in the Go benchmark
// format, so one optibench process can hand its measurements to another
// over a pipe.
//
// A result line looks like
//
//	BenchmarkVectorize/strategy=lo 1 48120331 ns/op
//
// and may be preceded by "key: value" configuration lines that apply
// to every following result.
package benchfmt

import (
	"math"
	"strings"
	"time"
)

// A Result is a single benchmark result and its measurements.
type Result struct {
	// Config is the file configuration in effect for this result, in
	// the order the keys first appeared.
	Config []Config

	// Name is the full name without the "Benchmark" prefix, such as
	// "Cache/strategy=memo".
	Name string

	Iters  int
	Values []Value

	// Line is the input line this result was read from, or 0.
	Line int
}

// A Config is one key/value configuration pair.
type Config struct {
	Key, Value string
}

// A Value is one measurement. Value and Unit are in tidied base units
// (see benchunit.Tidy); OrigValue and OrigUnit hold what was written,
// when that differs.
type Value struct {
	Value float64
	Unit  string

	OrigValue float64
	OrigUnit  string
}

// A Record is a *Result or a *SyntaxError.
type Record interface {
	isRecord()
}

func (*Result) isRecord()      {}
func (*SyntaxError) isRecord() {}

// Timing returns the result for a single timed strategy of a program:
// one iteration measured in ns/op.
func Timing(program, strategy string, elapsed time.Duration) *Result {
	return &Result{
		Name:   program + "/strategy=" + strategy,
		Iters:  1,
		Values: []Value{{Value: elapsed.Seconds(), Unit: "sec/op", OrigValue: float64(elapsed.Nanoseconds()), OrigUnit: "ns/op"}},
	}
}

// GetConfig returns the value of configuration key, or "".
func (r *Result) GetConfig(key string) string {
	for _, c := range r.Config {
		if c.Key == key {
			return c.Value
		}
	}
	return ""
}

// SetConfig sets key to value, appending key if it is new. An empty
// value deletes key.
func (r *Result) SetConfig(key, value string) {
	for i, c := range r.Config {
		if c.Key != key {
			continue
		}
		if value == "" {
			r.Config = append(r.Config[:i], r.Config[i+1:]...)
		} else {
			r.Config[i].Value = value
		}
		return
	}
	if value != "" {
		r.Config = append(r.Config, Config{key, value})
	}
}

// Value returns the measurement in the given tidied unit.
func (r *Result) Value(unit string) (float64, bool) {
	for _, v := range r.Values {
		if v.Unit == unit {
			return v.Value, true
		}
	}
	return 0, false
}

// Elapsed returns the sec/op measurement as a duration.
func (r *Result) Elapsed() (time.Duration, bool) {
	s, ok := r.Value("sec/op")
	if !ok {
		return 0, false
	}
	return time.Duration(math.Round(s * 1e9)), true
}

// Base returns the name up to the first "/".
func (r *Result) Base() string {
	base, _, _ := strings.Cut(r.Name, "/")
	return base
}

// Part returns the value of the "/key=value" name component, or "".
func (r *Result) Part(key string) string {
	parts := strings.Split(r.Name, "/")
	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok && k == key {
			return v
		}
	}
	return ""
}

// Clone returns a copy of r that shares no slices with it.
func (r *Result) Clone() *Result {
	r2 := *r
	r2.Config = append([]Config(nil), r.Config...)
	r2.Values = append([]Value(nil), r.Values...)
	return &r2
}
