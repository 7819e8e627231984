// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLeftJoin(t *testing.T) {
	left := mustFrame(t,
		IntColumn("customer_id", []int64{3, 1, 7, 3}),
		FloatColumn("revenue", []float64{10, 20, 30, 40}),
	)
	right := mustFrame(t,
		IntColumn("customer_id", []int64{1, 3}),
		StringColumn("customer_name", []string{"one", "three"}),
		FloatColumn("score", []float64{0.1, 0.3}),
	)
	got, err := LeftJoin(left, right, "customer_id")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 4 {
		t.Fatalf("got %d rows, want 4", got.Len())
	}
	names, _ := got.Strings("customer_name")
	if diff := cmp.Diff([]string{"three", "one", "", "three"}, names); diff != "" {
		t.Errorf("customer_name (-want +got):\n%s", diff)
	}
	score, _ := got.Floats("score")
	if score[0] != 0.3 || !math.IsNaN(score[2]) {
		t.Errorf("score = %v, want NaN for unmatched row", score)
	}
	if diff := cmp.Diff([]string{"customer_id", "revenue", "customer_name", "score"}, got.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestLeftJoinErrors(t *testing.T) {
	left := mustFrame(t, IntColumn("k", []int64{1}), FloatColumn("v", []float64{1}))
	right := mustFrame(t, IntColumn("k", []int64{1}), FloatColumn("v", []float64{2}))
	if _, err := LeftJoin(left, right, "k"); err == nil {
		t.Errorf("colliding column names should fail")
	}
	if _, err := LeftJoin(left, right, "v"); err == nil {
		t.Errorf("non-int key should fail")
	}
}
