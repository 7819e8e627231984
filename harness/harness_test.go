// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(t *testing.T, step time.Duration) {
	t.Helper()
	cur := time.Unix(0, 0)
	now = func() time.Time {
		cur = cur.Add(step)
		return cur
	}
	t.Cleanup(func() { now = time.Now })
}

type counter struct{ n *int }

func (c counter) Clone() counter {
	n := *c.n
	return counter{&n}
}

func TestRunCopiesInput(t *testing.T) {
	n := 1
	in := counter{&n}
	bump := New("bump", func(c counter) (int, error) {
		*c.n += 10
		return *c.n, nil
	})

	out, _, err := Run(bump, in)
	if err != nil {
		t.Fatal(err)
	}
	if out != 11 {
		t.Errorf("got %d, want 11", out)
	}
	if n != 1 {
		t.Errorf("strategy mutated the shared input: got %d, want 1", n)
	}
}

func TestRunTimesCallOnly(t *testing.T) {
	fakeClock(t, time.Second)
	s := New("id", func(l List[int]) (int, error) { return len(l), nil })
	_, sample, err := Run(s, List[int]{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if sample.Name != "id" || sample.Elapsed != time.Second {
		t.Errorf("got %+v, want {id 1s}", sample)
	}
}

// slowClone advances the clock while cloning.
type slowClone struct{}

func (slowClone) Clone() slowClone {
	now()
	now()
	return slowClone{}
}

func TestRunExcludesClone(t *testing.T) {
	fakeClock(t, time.Second)
	s := New("noop", func(slowClone) (int, error) { return 0, nil })
	_, sample, err := Run(s, slowClone{})
	if err != nil {
		t.Fatal(err)
	}
	if sample.Elapsed != time.Second {
		t.Errorf("elapsed %v includes the clone, want 1s", sample.Elapsed)
	}
}

func TestRunPropagatesFault(t *testing.T) {
	boom := errors.New("boom")
	s := New("bad", func(List[int]) (int, error) { return 0, boom })
	_, _, err := Run(s, List[int]{})
	var se *StrategyError
	if !errors.As(err, &se) || se.Strategy != "bad" {
		t.Fatalf("got %v, want *StrategyError for bad", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap the strategy fault", err)
	}
}

func TestRunAllStopsAtFault(t *testing.T) {
	calls := 0
	ok := New("ok", func(List[int]) (int, error) { calls++; return 1, nil })
	bad := New("bad", func(List[int]) (int, error) { calls++; return 0, errors.New("x") })
	outs, samples, err := RunAll(List[int]{}, ok, bad, ok)
	if err == nil {
		t.Fatal("want error")
	}
	if calls != 2 || len(outs) != 1 || len(samples) != 1 {
		t.Errorf("got calls=%d outs=%d samples=%d, want 2 1 1", calls, len(outs), len(samples))
	}
}

func TestTimed(t *testing.T) {
	fakeClock(t, 5*time.Millisecond)
	var got []time.Duration
	double := Timed(func(x int) (int, error) { return 2 * x, nil }, func(d time.Duration) {
		got = append(got, d)
	})
	for i := 0; i < 3; i++ {
		if v, _ := double(i); v != 2*i {
			t.Errorf("double(%d) = %d", i, v)
		}
	}
	if len(got) != 3 || got[0] != 5*time.Millisecond {
		t.Errorf("recorded %v, want three 5ms durations", got)
	}
}

func TestListClone(t *testing.T) {
	a := List[string]{"a", "b"}
	b := a.Clone()
	b[0] = "z"
	if a[0] != "a" {
		t.Errorf("Clone shares storage")
	}
	if List[int](nil).Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

func TestVerify(t *testing.T) {
	eq := FloatsWithin(1e-2)
	if err := Verify("margin", []float64{1, 2}, []float64{1.001, 2.009}, eq); err != nil {
		t.Errorf("unexpected mismatch: %v", err)
	}
	err := Verify("margin", []float64{1, 2}, []float64{1, 2.5}, eq)
	if !errors.Is(err, ErrEquivalenceMismatch) {
		t.Errorf("got %v, want ErrEquivalenceMismatch", err)
	}
	err = Verify("codes", []string{"FR"}, []string{"FR", "ES"}, Identical[string]())
	if !errors.Is(err, ErrEquivalenceMismatch) {
		t.Errorf("got %v, want shape mismatch", err)
	}
}
