// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the in-memory tabular data the benchmarks
// operate on: a Frame of equal-length named columns, a seeded
// generator for synthetic frames, and tolerance-based comparison.
package dataset

import (
	"fmt"
	"math"
	"time"
)

// A Kind is the element type of a Column.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Time
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Time:
		return "time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Numeric reports whether values of kind k are compared with a
// tolerance.
func (k Kind) Numeric() bool {
	return k == Int || k == Float
}

// A Column is a named, typed vector. Exactly one of the value slices
// is used, selected by Kind.
type Column struct {
	Name    string
	Kind    Kind
	Ints    []int64
	Floats  []float64
	Strings []string
	Times   []time.Time
}

// IntColumn, FloatColumn, StringColumn and TimeColumn construct
// columns of the corresponding kind.
func IntColumn(name string, v []int64) Column     { return Column{Name: name, Kind: Int, Ints: v} }
func FloatColumn(name string, v []float64) Column { return Column{Name: name, Kind: Float, Floats: v} }
func StringColumn(name string, v []string) Column {
	return Column{Name: name, Kind: String, Strings: v}
}
func TimeColumn(name string, v []time.Time) Column { return Column{Name: name, Kind: Time, Times: v} }

// Len returns the number of values in c.
func (c *Column) Len() int {
	switch c.Kind {
	case Int:
		return len(c.Ints)
	case Float:
		return len(c.Floats)
	case String:
		return len(c.Strings)
	case Time:
		return len(c.Times)
	}
	return 0
}

// float returns value i of a numeric column as a float64.
func (c *Column) float(i int) float64 {
	if c.Kind == Int {
		return float64(c.Ints[i])
	}
	return c.Floats[i]
}

func (c *Column) clone() Column {
	c2 := Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case Int:
		c2.Ints = append([]int64(nil), c.Ints...)
	case Float:
		c2.Floats = append([]float64(nil), c.Floats...)
	case String:
		c2.Strings = append([]string(nil), c.Strings...)
	case Time:
		c2.Times = append([]time.Time(nil), c.Times...)
	}
	return c2
}

// A Frame is a table of equal-length columns, addressed by name.
//
// Frames returned by Generate are treated as immutable inputs.
// Strategies that derive new columns work on a Clone.
type Frame struct {
	cols  []Column
	index map[string]int
	rows  int
}

// NewFrame returns a Frame holding cols. All columns must have the
// same length and distinct names.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := f.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), f.rows)
		}
		f.index[c.Name] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// Len returns the number of rows in f.
func (f *Frame) Len() int { return f.rows }

// Names returns the column names of f in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i := range f.cols {
		names[i] = f.cols[i].Name
	}
	return names
}

// Column returns the named column. The returned column shares storage
// with f and must not be modified.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	return f.cols[i], true
}

func (f *Frame) lookup(name string, kind Kind) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	c := &f.cols[i]
	if c.Kind != kind {
		return nil, fmt.Errorf("column %q is %v, not %v", name, c.Kind, kind)
	}
	return c, nil
}

// Floats returns the values of the named float column.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, err := f.lookup(name, Float)
	if err != nil {
		return nil, err
	}
	return c.Floats, nil
}

// Ints returns the values of the named int column.
func (f *Frame) Ints(name string) ([]int64, error) {
	c, err := f.lookup(name, Int)
	if err != nil {
		return nil, err
	}
	return c.Ints, nil
}

// Strings returns the values of the named string column.
func (f *Frame) Strings(name string) ([]string, error) {
	c, err := f.lookup(name, String)
	if err != nil {
		return nil, err
	}
	return c.Strings, nil
}

// Times returns the values of the named time column.
func (f *Frame) Times(name string) ([]time.Time, error) {
	c, err := f.lookup(name, Time)
	if err != nil {
		return nil, err
	}
	return c.Times, nil
}

// SetFloats adds a float column, or replaces the column of that name.
// vals must have f.Len() elements.
func (f *Frame) SetFloats(name string, vals []float64) error {
	if len(f.cols) > 0 && len(vals) != f.rows {
		return fmt.Errorf("column %q has %d rows, want %d", name, len(vals), f.rows)
	}
	c := FloatColumn(name, vals)
	if i, ok := f.index[name]; ok {
		f.cols[i] = c
		return nil
	}
	if len(f.cols) == 0 {
		f.rows = len(vals)
	}
	f.index[name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// FloatAt returns the value at row i of the named numeric column.
// It resolves the column by name on every call, the way a row-wise
// loop over labelled cells does.
func (f *Frame) FloatAt(name string, i int) (float64, error) {
	idx, ok := f.index[name]
	if !ok {
		return 0, fmt.Errorf("no column %q", name)
	}
	c := &f.cols[idx]
	if !c.Kind.Numeric() {
		return 0, fmt.Errorf("column %q is %v, not numeric", name, c.Kind)
	}
	if i < 0 || i >= f.rows {
		return 0, fmt.Errorf("row %d out of range [0,%d)", i, f.rows)
	}
	return c.float(i), nil
}

// SetFloatAt sets row i of the named float column to v. If the column
// does not exist, it is created and filled with NaN first.
func (f *Frame) SetFloatAt(name string, i int, v float64) error {
	if i < 0 || i >= f.rows {
		return fmt.Errorf("row %d out of range [0,%d)", i, f.rows)
	}
	idx, ok := f.index[name]
	if !ok {
		vals := make([]float64, f.rows)
		for j := range vals {
			vals[j] = math.NaN()
		}
		if err := f.SetFloats(name, vals); err != nil {
			return err
		}
		idx = f.index[name]
	}
	c := &f.cols[idx]
	if c.Kind != Float {
		return fmt.Errorf("column %q is %v, not float", name, c.Kind)
	}
	c.Floats[i] = v
	return nil
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	f2 := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
		rows:  f.rows,
	}
	for i := range f.cols {
		f2.cols[i] = f.cols[i].clone()
		f2.index[f.cols[i].Name] = i
	}
	return f2
}

// Select returns a new Frame sharing storage with f that holds only
// the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		c, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("no column %q", name)
		}
		cols = append(cols, c)
	}
	return NewFrame(cols...)
}
