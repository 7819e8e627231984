// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustFrame(t *testing.T, cols ...Column) *Frame {
	t.Helper()
	f, err := NewFrame(cols...)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewFrameRagged(t *testing.T) {
	_, err := NewFrame(IntColumn("a", []int64{1, 2}), FloatColumn("b", []float64{1}))
	if err == nil || !strings.Contains(err.Error(), "b") {
		t.Errorf("got %v, want length error naming b", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	f := mustFrame(t,
		IntColumn("id", []int64{1, 2}),
		FloatColumn("x", []float64{1.5, 2.5}),
		StringColumn("s", []string{"a", "b"}),
		TimeColumn("t", []time.Time{epoch, epoch}),
	)
	g := f.Clone()
	if err := g.SetFloatAt("x", 0, 99); err != nil {
		t.Fatal(err)
	}
	if err := g.SetFloatAt("new", 1, 7); err != nil {
		t.Fatal(err)
	}
	if x, _ := f.Floats("x"); x[0] != 1.5 {
		t.Errorf("clone write leaked into original: %v", x)
	}
	if _, ok := f.Column("new"); ok {
		t.Errorf("clone column leaked into original")
	}
	if diff := cmp.Diff([]string{"id", "x", "s", "t", "new"}, g.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestCellAccess(t *testing.T) {
	f := mustFrame(t, IntColumn("id", []int64{4, 5}), FloatColumn("x", []float64{1, 2}))
	if v, err := f.FloatAt("id", 1); err != nil || v != 5 {
		t.Errorf("FloatAt(id, 1) = %v, %v", v, err)
	}
	if _, err := f.FloatAt("x", 2); err == nil {
		t.Errorf("FloatAt out of range should fail")
	}
	if err := f.SetFloatAt("y", 0, 3); err != nil {
		t.Fatal(err)
	}
	y, _ := f.Floats("y")
	if y[0] != 3 || !math.IsNaN(y[1]) {
		t.Errorf("new column = %v, want [3 NaN]", y)
	}
	if err := f.SetFloatAt("id", 0, 1); err == nil {
		t.Errorf("SetFloatAt on an int column should fail")
	}
	if _, err := f.Strings("x"); err == nil {
		t.Errorf("Strings on a float column should fail")
	}
}

func TestSetFloatsLength(t *testing.T) {
	f := mustFrame(t, FloatColumn("x", []float64{1, 2}))
	if err := f.SetFloats("y", []float64{1}); err == nil {
		t.Errorf("SetFloats with wrong length should fail")
	}
	if err := f.SetFloats("x", []float64{3, 4}); err != nil {
		t.Fatal(err)
	}
	if x, _ := f.Floats("x"); x[0] != 3 {
		t.Errorf("SetFloats did not replace x")
	}
}

func TestSelect(t *testing.T) {
	f := mustFrame(t, IntColumn("a", []int64{1}), FloatColumn("b", []float64{2}))
	g, err := f.Select("b")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b"}, g.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := f.Select("c"); err == nil {
		t.Errorf("Select of a missing column should fail")
	}
}

func TestSummary(t *testing.T) {
	f := mustFrame(t, IntColumn("n", []int64{1, 2, 3, 4}), StringColumn("s", []string{"a", "b", "c", "d"}))
	got, err := f.Summary("n")
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Count: 4, Sum: 10, Mean: 2.5, Min: 1, Max: 4}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if _, err := f.Summary("s"); err == nil {
		t.Errorf("Summary of a string column should fail")
	}
	if (Summarize(nil) != Stats{}) {
		t.Errorf("Summarize(nil) should be zero")
	}
}
