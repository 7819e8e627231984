// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispatch runs independent tasks on a fixed-size pool of
// goroutines and returns their results in submission order.
//
// There is no partial-failure policy: the first failing task fails the
// whole dispatch and no partial results are returned. Tasks that have
// not started when a failure occurs are skipped; tasks already running
// are waited for. There is no timeout, so a task that never returns
// blocks the dispatch.
package dispatch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/destel/rill"
	lop "github.com/samber/lo/parallel"
	"golang.org/x/sync/errgroup"
)

// A TaskFunc computes the result of one task.
type TaskFunc[T, R any] func(ctx context.Context, task T) (R, error)

// Workers returns n, or GOMAXPROCS if n is not positive.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// All runs fn on every task using at most workers concurrent
// goroutines and blocks until every task completes. Result i belongs
// to tasks[i] regardless of completion order. If workers is not
// positive, GOMAXPROCS workers are used.
func All[T, R any](ctx context.Context, tasks []T, workers int, fn TaskFunc[T, R]) ([]R, error) {
	results := make([]R, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))
	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(ctx, task)
			if err != nil {
				return fmt.Errorf("task %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Sequential runs fn on each task in order on the calling goroutine.
// It is the baseline All is compared against.
func Sequential[T, R any](ctx context.Context, tasks []T, fn TaskFunc[T, R]) ([]R, error) {
	results := make([]R, len(tasks))
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := fn(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		results[i] = r
	}
	return results, nil
}

// Stream pushes tasks through a rill pipeline with workers concurrent
// mappers. rill's OrderedMap keeps results in input order.
func Stream[T, R any](ctx context.Context, tasks []T, workers int, fn TaskFunc[T, R]) ([]R, error) {
	in := rill.FromSlice(tasks, nil)
	out := rill.OrderedMap(in, Workers(workers), func(task T) (R, error) {
		return fn(ctx, task)
	})
	results, err := rill.ToSlice(out)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Fanout starts one goroutine per task via lo's parallel Map. It has
// no worker limit; it is included as the unbounded alternative to All.
func Fanout[T, R any](ctx context.Context, tasks []T, fn TaskFunc[T, R]) ([]R, error) {
	errs := make([]error, len(tasks))
	results := lop.Map(tasks, func(task T, i int) R {
		r, err := fn(ctx, task)
		errs[i] = err
		return r
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
	}
	return results, nil
}
