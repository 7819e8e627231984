// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/datagyver/optibench/harness"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config differs from defaults (-want +got):\n%s", diff)
	}
	if _, err := Load(nil); err != nil {
		t.Errorf("Load(nil): %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	t.Setenv("OPTIBENCH_ROWS", "500")
	t.Setenv("OPTIBENCH_ROWS_PER_FILE", "200")
	t.Setenv("OPTIBENCH_LOOKUP_COST", "5ms")
	t.Setenv("OPTIBENCH_EMIT_RESULTS", "true")

	cfg, err := Load(newFlags(t, "--rows", "1000", "--seed", "7", "--taxi-path", "trips.parquet"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Rows = 1000 // flag beats environment
	want.RowsPerFile = 200
	want.LookupCost = 5 * time.Millisecond
	want.EmitResults = true
	want.Seed = 7
	want.TaxiPath = "trips.parquet"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--rows", "0"},
		{"--files", "-1"},
		{"--calls", "0"},
		{"--workers", "-2"},
		{"--lookup-cost", "-1s"},
	} {
		_, err := Load(newFlags(t, args...))
		if !errors.Is(err, harness.ErrInvalidArgument) {
			t.Errorf("Load(%v) = %v, want ErrInvalidArgument", args, err)
		}
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	lg := cfg.Logger(&buf)
	lg.Debug("hidden")
	lg.Info("generating", "rows", 10)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "rows=10") {
		t.Errorf("info logger wrote %q", out)
	}

	buf.Reset()
	cfg.Verbose = true
	cfg.Logger(&buf).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("verbose logger wrote %q", buf.String())
	}
}
