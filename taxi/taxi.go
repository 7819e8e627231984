// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taxi reads and writes the trip dataset used by the loading
// benchmarks: a Parquet file with at least a pickup timestamp and a
// total fare per trip, laid out like the NYC yellow taxi trip records.
package taxi

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/datagyver/optibench/dataset"
	"github.com/datagyver/optibench/harness"
)

// DefaultPath is where the programs look for the trip file.
const DefaultPath = "data/yellow_taxi.parquet"

// Column names in the trip file.
const (
	PickupColumn = "tpep_pickup_datetime"
	AmountColumn = "total_amount"
)

// A Trip is the part of a trip record the benchmarks use. Other
// columns in the file are ignored.
type Trip struct {
	PickupAt    time.Time `parquet:"tpep_pickup_datetime,timestamp(microsecond)"`
	TotalAmount float64   `parquet:"total_amount,optional"`
}

// Day returns the UTC calendar day of the pickup as days since the
// Unix epoch.
func (t Trip) Day() int64 {
	return DayOf(t.PickupAt)
}

// DayOf returns the UTC calendar day of ts as days since the Unix
// epoch.
func DayOf(ts time.Time) int64 {
	sec := ts.Unix()
	day := sec / 86400
	if sec%86400 < 0 {
		day--
	}
	return day
}

// DayTime returns midnight UTC of day.
func DayTime(day int64) time.Time {
	return time.Unix(day*86400, 0).UTC()
}

// Check returns an error wrapping harness.ErrMissingInputFile if no
// file exists at path.
func Check(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", harness.ErrMissingInputFile, path)
	} else if err != nil {
		return err
	}
	return nil
}

// Load reads every trip in the file at path in one call.
// If the file does not exist, the error wraps
// harness.ErrMissingInputFile.
func Load(path string) ([]Trip, error) {
	if err := Check(path); err != nil {
		return nil, err
	}
	trips, err := parquet.ReadFile[Trip](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return trips, nil
}

// batchSize is the number of rows LoadFrame reads per call.
const batchSize = 8192

// LoadFrame streams the file at path in batches into a two-column
// frame holding the pickup time and total amount.
func LoadFrame(path string) (*dataset.Frame, error) {
	if err := Check(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := parquet.NewGenericReader[Trip](f)
	defer r.Close()
	n := r.NumRows()
	pickups := make([]time.Time, 0, n)
	amounts := make([]float64, 0, n)
	buf := make([]Trip, batchSize)
	for {
		k, err := r.Read(buf)
		for _, t := range buf[:k] {
			pickups = append(pickups, t.PickupAt)
			amounts = append(amounts, t.TotalAmount)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return dataset.NewFrame(
		dataset.TimeColumn(PickupColumn, pickups),
		dataset.FloatColumn(AmountColumn, amounts),
	)
}

// Frame converts trips to the frame layout LoadFrame produces.
func Frame(trips []Trip) *dataset.Frame {
	pickups := make([]time.Time, len(trips))
	amounts := make([]float64, len(trips))
	for i, t := range trips {
		pickups[i] = t.PickupAt
		amounts[i] = t.TotalAmount
	}
	f, _ := dataset.NewFrame(
		dataset.TimeColumn(PickupColumn, pickups),
		dataset.FloatColumn(AmountColumn, amounts),
	)
	return f
}

// Save writes trips to a Parquet file at path.
func Save(path string, trips []Trip) error {
	return parquet.WriteFile(path, trips)
}

// Month is the pickup range of generated trips.
var Month = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Generate returns n synthetic trips with pickups spread evenly over
// the 31 days starting at Month and fares uniform in [3, 120).
func Generate(n int, opts ...dataset.Option) ([]Trip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: trip count %d must be positive", harness.ErrInvalidArgument, n)
	}
	step := (31 * 24 * time.Hour / time.Duration(n)).Truncate(time.Microsecond)
	if step == 0 {
		step = time.Microsecond
	}
	schema := dataset.Schema{
		{Name: PickupColumn, Dist: dataset.Timestamps(Month, step)},
		{Name: AmountColumn, Dist: dataset.UniformFloat(3, 120)},
	}
	f, err := dataset.Generate(schema, n, opts...)
	if err != nil {
		return nil, err
	}
	pickups, _ := f.Times(PickupColumn)
	amounts, _ := f.Floats(AmountColumn)
	trips := make([]Trip, n)
	for i := range trips {
		trips[i] = Trip{PickupAt: pickups[i], TotalAmount: amounts[i]}
	}
	return trips, nil
}
