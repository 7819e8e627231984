// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"

	"github.com/datagyver/optibench/harness"
)

// Diff compares a and b value by value. Numeric columns match if they
// differ by at most tol; other columns must be exactly equal. Diff
// returns nil if a and b match, or an error describing the first
// mismatch, including a difference in shape.
func Diff(a, b *Frame, tol float64) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("row count %d != %d", a.Len(), b.Len())
	}
	if len(a.cols) != len(b.cols) {
		return fmt.Errorf("column count %d != %d", len(a.cols), len(b.cols))
	}
	for i := range a.cols {
		ca := &a.cols[i]
		j, ok := b.index[ca.Name]
		if !ok {
			return fmt.Errorf("column %q missing", ca.Name)
		}
		cb := &b.cols[j]
		if ca.Kind != cb.Kind {
			return fmt.Errorf("column %q: kind %v != %v", ca.Name, ca.Kind, cb.Kind)
		}
		if err := diffColumn(ca, cb, tol); err != nil {
			return fmt.Errorf("column %q: %v", ca.Name, err)
		}
	}
	return nil
}

func diffColumn(a, b *Column, tol float64) error {
	n := a.Len()
	switch a.Kind {
	case Int, Float:
		for i := 0; i < n; i++ {
			if x, y := a.float(i), b.float(i); !harness.Close(x, y, tol) {
				return fmt.Errorf("row %d: %v != %v", i, x, y)
			}
		}
	case String:
		for i := 0; i < n; i++ {
			if a.Strings[i] != b.Strings[i] {
				return fmt.Errorf("row %d: %q != %q", i, a.Strings[i], b.Strings[i])
			}
		}
	case Time:
		for i := 0; i < n; i++ {
			if !a.Times[i].Equal(b.Times[i]) {
				return fmt.Errorf("row %d: %v != %v", i, a.Times[i], b.Times[i])
			}
		}
	}
	return nil
}

// Equal reports whether Diff finds no mismatch.
func Equal(a, b *Frame, tol float64) bool {
	return Diff(a, b, tol) == nil
}

// Within returns an eq function for harness.Verify that compares
// frames with tolerance tol.
func Within(tol float64) func(a, b *Frame) error {
	return func(a, b *Frame) error { return Diff(a, b, tol) }
}
