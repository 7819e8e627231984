// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math"
	"time"
)

// LeftJoin returns every row of left extended with the columns of the
// first row of right whose key matches. Rows without a match get NaN
// in float columns and the zero value elsewhere.
//
// key must be an int column present in both frames, and the other
// column names must not collide.
func LeftJoin(left, right *Frame, key string) (*Frame, error) {
	lk, err := left.Ints(key)
	if err != nil {
		return nil, fmt.Errorf("left: %v", err)
	}
	rk, err := right.Ints(key)
	if err != nil {
		return nil, fmt.Errorf("right: %v", err)
	}

	pos := make(map[int64]int, len(rk))
	for i := len(rk) - 1; i >= 0; i-- {
		pos[rk[i]] = i
	}
	match := make([]int, len(lk))
	for i, k := range lk {
		j, ok := pos[k]
		if !ok {
			j = -1
		}
		match[i] = j
	}

	cols := make([]Column, 0, len(left.cols)+len(right.cols)-1)
	for i := range left.cols {
		cols = append(cols, left.cols[i].clone())
	}
	for i := range right.cols {
		rc := &right.cols[i]
		if rc.Name == key {
			continue
		}
		if _, dup := left.index[rc.Name]; dup {
			return nil, fmt.Errorf("column %q in both frames", rc.Name)
		}
		cols = append(cols, gather(rc, match))
	}
	return NewFrame(cols...)
}

// gather builds a column whose row i is src row match[i], or a
// missing value if match[i] < 0.
func gather(src *Column, match []int) Column {
	c := Column{Name: src.Name, Kind: src.Kind}
	switch src.Kind {
	case Int:
		c.Ints = make([]int64, len(match))
		for i, j := range match {
			if j >= 0 {
				c.Ints[i] = src.Ints[j]
			}
		}
	case Float:
		c.Floats = make([]float64, len(match))
		for i, j := range match {
			if j >= 0 {
				c.Floats[i] = src.Floats[j]
			} else {
				c.Floats[i] = math.NaN()
			}
		}
	case String:
		c.Strings = make([]string, len(match))
		for i, j := range match {
			if j >= 0 {
				c.Strings[i] = src.Strings[j]
			}
		}
	case Time:
		c.Times = make([]time.Time, len(match))
		for i, j := range match {
			if j >= 0 {
				c.Times[i] = src.Times[j]
			}
		}
	}
	return c
}
