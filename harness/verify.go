// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"math"
)

// Verify checks that a and b represent the same computation according
// to eq. If eq reports a difference, Verify returns an error wrapping
// ErrEquivalenceMismatch that names what was compared.
func Verify[T any](what string, a, b T, eq func(a, b T) error) error {
	if err := eq(a, b); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEquivalenceMismatch, what, err)
	}
	return nil
}

// Close reports whether a and b differ by at most tol.
// NaNs compare equal to each other so that two strategies that both
// produce NaN agree.
func Close(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= tol
}

// FloatsWithin returns an eq function for Verify comparing float
// slices element by element with absolute tolerance tol.
func FloatsWithin(tol float64) func(a, b []float64) error {
	return func(a, b []float64) error {
		if len(a) != len(b) {
			return fmt.Errorf("length %d != %d", len(a), len(b))
		}
		for i := range a {
			if !Close(a[i], b[i], tol) {
				return fmt.Errorf("element %d: %v != %v (tolerance %v)", i, a[i], b[i], tol)
			}
		}
		return nil
	}
}

// Identical returns an eq function for Verify requiring exact equality
// of comparable slices.
func Identical[T comparable]() func(a, b []T) error {
	return func(a, b []T) error {
		if len(a) != len(b) {
			return fmt.Errorf("length %d != %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				return fmt.Errorf("element %d: %v != %v", i, a[i], b[i])
			}
		}
		return nil
	}
}
