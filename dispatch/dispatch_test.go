// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type runner struct {
	name string
	run  func(ctx context.Context, tasks []int, fn TaskFunc[int, int]) ([]int, error)
}

func runners(workers int) []runner {
	return []runner{
		{"All", func(ctx context.Context, tasks []int, fn TaskFunc[int, int]) ([]int, error) {
			return All(ctx, tasks, workers, fn)
		}},
		{"Sequential", Sequential[int, int]},
		{"Stream", func(ctx context.Context, tasks []int, fn TaskFunc[int, int]) ([]int, error) {
			return Stream(ctx, tasks, workers, fn)
		}},
		{"Fanout", Fanout[int, int]},
	}
}

// jittery sleeps a random short time so completion order differs
// from submission order.
func jittery(_ context.Context, x int) (int, error) {
	time.Sleep(time.Duration(rand.IntN(300)) * time.Microsecond)
	return x * 10, nil
}

func TestOrderPreserved(t *testing.T) {
	tasks := make([]int, 50)
	want := make([]int, len(tasks))
	for i := range tasks {
		tasks[i] = i
		want[i] = i * 10
	}
	for _, workers := range []int{1, 2, 4, 16, 0} {
		for _, r := range runners(workers) {
			got, err := r.run(context.Background(), tasks, jittery)
			if err != nil {
				t.Fatalf("%s(workers=%d): %v", r.name, workers, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s(workers=%d) order (-want +got):\n%s", r.name, workers, diff)
			}
		}
	}
}

func TestWorkerLimit(t *testing.T) {
	var cur, peak atomic.Int32
	fn := func(_ context.Context, x int) (int, error) {
		n := cur.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		cur.Add(-1)
		return x, nil
	}
	tasks := make([]int, 12)
	if _, err := All(context.Background(), tasks, 4, fn); err != nil {
		t.Fatal(err)
	}
	if p := peak.Load(); p > 4 || p < 1 {
		t.Errorf("peak concurrency %d, want 1..4", p)
	}
}

func TestFailureFailsAll(t *testing.T) {
	boom := errors.New("boom")
	fn := func(_ context.Context, x int) (int, error) {
		if x == 7 {
			return 0, boom
		}
		return x, nil
	}
	tasks := make([]int, 12)
	for i := range tasks {
		tasks[i] = i
	}
	for _, r := range runners(4) {
		got, err := r.run(context.Background(), tasks, fn)
		if !errors.Is(err, boom) {
			t.Errorf("%s: got %v, want boom", r.name, err)
		}
		if got != nil {
			t.Errorf("%s: returned partial results %v", r.name, got)
		}
	}
}

func TestEmpty(t *testing.T) {
	for _, r := range runners(4) {
		got, err := r.run(context.Background(), nil, jittery)
		if err != nil || len(got) != 0 {
			t.Errorf("%s(nil) = %v, %v", r.name, got, err)
		}
	}
}

func TestWorkers(t *testing.T) {
	if Workers(3) != 3 {
		t.Errorf("Workers(3) != 3")
	}
	if Workers(0) < 1 || Workers(-1) < 1 {
		t.Errorf("default worker count must be positive")
	}
}
