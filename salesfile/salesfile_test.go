// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package salesfile

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateAndSummarize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sample_data")
	paths, err := Create(dir, 3, 200, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}
	for i, p := range paths {
		want := []string{"sales_00.csv", "sales_01.csv", "sales_02.csv"}[i]
		if filepath.Base(p) != want {
			t.Errorf("path %d = %s, want %s", i, p, want)
		}
		s, err := Summarize(p)
		if err != nil {
			t.Fatal(err)
		}
		if s.File != want || s.Rows != 200 {
			t.Errorf("Summarize(%s) = %+v", p, s)
		}
		if s.AvgRevenue < 100 || s.AvgRevenue >= 5000 {
			t.Errorf("average revenue %v out of range", s.AvgRevenue)
		}
		if math.Abs(s.TotalRevenue-s.AvgRevenue*200) > 1e-6*s.TotalRevenue {
			t.Errorf("total %v inconsistent with mean %v", s.TotalRevenue, s.AvgRevenue)
		}
	}

	// Same seed, same content.
	again, err := Create(filepath.Join(t.TempDir(), "again"), 1, 200, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := os.ReadFile(paths[0])
	b, _ := os.ReadFile(again[0])
	if string(a) != string(b) {
		t.Errorf("seeded files differ")
	}
}

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader("customer_id,revenue\n1,10\n2,30\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Rows != 2 || s.TotalRevenue != 40 || s.AvgRevenue != 20 {
		t.Errorf("got %+v", s)
	}

	for _, bad := range []string{"", "a,b\n1,2\n", "revenue\nx\n"} {
		if _, err := Read(strings.NewReader(bad)); err == nil {
			t.Errorf("Read(%q) should fail", bad)
		}
	}
}

func TestSummarizeMissing(t *testing.T) {
	if _, err := Summarize(filepath.Join(t.TempDir(), "nope.csv")); !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist", err)
	}
}
