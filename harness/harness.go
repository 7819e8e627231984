// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness runs equivalent computations over the same input,
// times each one, checks that their outputs agree and derives the
// ratios a report prints.
//
// Every benchmark in this module follows the same shape:
//
//	input := generate(...)
//	a, sa, err := harness.Run(loop, input)
//	b, sb, err := harness.Run(vectorized, input)
//	err = harness.Verify("margin", a, b, eq)
//	cmp := harness.Compare(sa, sb)
//
// Run hands each strategy a private copy of the input, so strategies
// that mutate their input cannot interfere with each other.
package harness

import (
	"time"
)

// A Cloner can produce a deep copy of itself that shares no mutable
// state with the original.
type Cloner[T any] interface {
	Clone() T
}

// A Strategy is one named technique for computing Out from In.
type Strategy[In Cloner[In], Out any] struct {
	Name string
	Func func(In) (Out, error)
}

// New returns a Strategy named name that runs f.
func New[In Cloner[In], Out any](name string, f func(In) (Out, error)) Strategy[In, Out] {
	return Strategy[In, Out]{Name: name, Func: f}
}

// A Sample is the wall-clock time one strategy took on one run.
type Sample struct {
	Name    string
	Elapsed time.Duration
}

// Seconds returns the sample duration in seconds.
func (s Sample) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// now is replaced in tests.
var now = time.Now

// Run invokes s on a private copy of input and measures the elapsed
// time of the call alone. Cloning happens before the clock starts.
//
// A strategy error is returned as a *StrategyError together with the
// sample collected so far.
func Run[In Cloner[In], Out any](s Strategy[In, Out], input In) (Out, Sample, error) {
	private := input.Clone()
	start := now()
	out, err := s.Func(private)
	sample := Sample{Name: s.Name, Elapsed: now().Sub(start)}
	if err != nil {
		var zero Out
		return zero, sample, &StrategyError{Strategy: s.Name, Err: err}
	}
	return out, sample, nil
}

// RunAll runs each strategy in order on input. It stops at the first
// strategy error. The outputs and samples are in the order of
// strategies.
func RunAll[In Cloner[In], Out any](input In, strategies ...Strategy[In, Out]) ([]Out, []Sample, error) {
	outs := make([]Out, 0, len(strategies))
	samples := make([]Sample, 0, len(strategies))
	for _, s := range strategies {
		out, sample, err := Run(s, input)
		if err != nil {
			return outs, samples, err
		}
		outs = append(outs, out)
		samples = append(samples, sample)
	}
	return outs, samples, nil
}

// Timed wraps f so that every call reports its duration to record.
// The wrapped function returns exactly what f returns.
func Timed[In, Out any](f func(In) (Out, error), record func(time.Duration)) func(In) (Out, error) {
	return func(in In) (Out, error) {
		start := now()
		out, err := f(in)
		record(now().Sub(start))
		return out, err
	}
}

// Time measures a single call of f and returns a Sample named name.
func Time(name string, f func() error) (Sample, error) {
	start := now()
	err := f()
	sample := Sample{Name: name, Elapsed: now().Sub(start)}
	if err != nil {
		return sample, &StrategyError{Strategy: name, Err: err}
	}
	return sample, nil
}

// List is a slice that satisfies Cloner, for strategies whose input
// is a plain list such as file paths or lookup keys.
type List[T any] []T

// Clone returns a copy of l with its own backing array.
func (l List[T]) Clone() List[T] {
	if l == nil {
		return nil
	}
	return append(List[T](nil), l...)
}
