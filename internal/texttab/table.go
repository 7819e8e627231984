// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Table collects rows of cells and writes them with each column
// padded to its widest cell.
//
// Row and Cell return the Table so calls can be chained.
type Table struct {
	rows  [][]cell
	align []Align
	rules map[int]bool // rows preceded by a horizontal rule
}

type cell struct {
	value string
	align Align
	set   bool
}

// An Align is the alignment of a cell within its column.
type Align int

const (
	Left Align = iota
	Right
)

// SetAlign sets the default alignment of column col.
func (t *Table) SetAlign(col int, a Align) *Table {
	for len(t.align) <= col {
		t.align = append(t.align, Left)
	}
	t.align[col] = a
	return t
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Rule draws a horizontal line before the next row.
func (t *Table) Rule() *Table {
	if t.rules == nil {
		t.rules = make(map[int]bool)
	}
	t.rules[len(t.rows)] = true
	return t
}

// Cell appends a cell to the current row, starting a row if there is
// none. An explicit alignment overrides the column default.
func (t *Table) Cell(value string, align ...Align) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	if len(align) > 0 {
		c.align, c.set = align[0], true
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// Cellf appends a formatted cell using the column default alignment.
func (t *Table) Cellf(format string, args ...any) *Table {
	return t.Cell(fmt.Sprintf(format, args...))
}

// Format writes the table to w. Columns are separated by two spaces
// and trailing blanks are trimmed.
func (t *Table) Format(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(c.value))
		}
	}
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += 2
		}
		total += w
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for r, row := range t.rows {
		if t.rules[r] {
			fmt.Fprintln(bw, strings.Repeat("─", total))
		}
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			pad := widths[i] - utf8.RuneCountInString(c.value)
			if t.alignOf(i, c) == Right {
				line.WriteString(strings.Repeat(" ", pad))
				line.WriteString(c.value)
			} else {
				line.WriteString(c.value)
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}
	if t.rules[len(t.rows)] {
		fmt.Fprintln(bw, strings.Repeat("─", total))
	}
	return bw.Flush()
}

func (t *Table) alignOf(col int, c cell) Align {
	if c.set {
		return c.align
	}
	if col < len(t.align) {
		return t.align[col]
	}
	return Left
}
