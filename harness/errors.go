// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports bad parameters, such as a
	// non-positive row count passed to a generator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingInputFile reports that an input dataset file does
	// not exist. Programs catch it once at the top level and print
	// a remedy instead of failing.
	ErrMissingInputFile = errors.New("missing input file")

	// ErrEquivalenceMismatch reports that two strategies expected to
	// compute the same thing disagree. It is always fatal.
	ErrEquivalenceMismatch = errors.New("equivalence mismatch")
)

// A StrategyError is a fault raised by a strategy function.
// Run never retries or suppresses these.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}
