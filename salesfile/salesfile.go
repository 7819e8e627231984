// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package salesfile writes synthetic sales CSV files and summarizes
// them. Each file is an independent unit of work for the parallel
// processing benchmark.
package salesfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/datagyver/optibench/dataset"
)

// A Summary describes one sales file.
type Summary struct {
	File         string // base name
	Rows         int
	TotalRevenue float64
	AvgRevenue   float64
}

// Create writes n files of rows rows each into dir, creating dir if
// needed, and returns their paths in order. Files are named
// sales_00.csv, sales_01.csv, and so on. With seeded true, file i is
// generated from seed+i.
func Create(dir string, n, rows int, seed int64, seeded bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return nil, err
	}
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var opts []dataset.Option
		if seeded {
			opts = append(opts, dataset.Seed(seed+int64(i)))
		}
		f, err := dataset.Generate(dataset.HourlySalesSchema, rows, opts...)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("sales_%02d.csv", i))
		if err := writeFile(path, f); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, f *dataset.Frame) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(out, f)
}

// Write writes f as CSV with a header row. Floats use the shortest
// exact representation and times use RFC 3339.
func Write(w io.Writer, f *dataset.Frame) error {
	cw := csv.NewWriter(w)
	names := f.Names()
	if err := cw.Write(names); err != nil {
		return err
	}
	cols := make([]dataset.Column, len(names))
	for i, name := range names {
		cols[i], _ = f.Column(name)
	}
	rec := make([]string, len(cols))
	for row := 0; row < f.Len(); row++ {
		for i := range cols {
			rec[i] = format(&cols[i], row)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func format(c *dataset.Column, row int) string {
	switch c.Kind {
	case dataset.Int:
		return strconv.FormatInt(c.Ints[row], 10)
	case dataset.Float:
		return strconv.FormatFloat(c.Floats[row], 'g', -1, 64)
	case dataset.Time:
		return c.Times[row].Format(time.RFC3339)
	}
	return c.Strings[row]
}

// Summarize reads the CSV file at path and totals its revenue column.
func Summarize(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	s.File = filepath.Base(path)
	return s, nil
}

var errNoRevenue = errors.New("no revenue column")

// Read summarizes CSV data from r. File is left empty.
func Read(r io.Reader) (Summary, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err == io.EOF {
		return Summary{}, errNoRevenue
	} else if err != nil {
		return Summary{}, err
	}
	col := -1
	for i, name := range header {
		if name == "revenue" {
			col = i
		}
	}
	if col < 0 {
		return Summary{}, errNoRevenue
	}
	var revenue []float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return Summary{}, err
		}
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			line, _ := cr.FieldPos(col)
			return Summary{}, fmt.Errorf("line %d: %v", line, err)
		}
		revenue = append(revenue, v)
	}
	st := dataset.Summarize(revenue)
	return Summary{Rows: st.Count, TotalRevenue: st.Sum, AvgRevenue: st.Mean}, nil
}
