// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by every optibench program.
//
// Values come from, in increasing priority, the defaults below,
// OPTIBENCH_* environment variables and command-line flags.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/datagyver/optibench/harness"
)

// EnvPrefix is the prefix of environment variables read by Load. The
// variable for flag --rows-per-file is OPTIBENCH_ROWS_PER_FILE.
const EnvPrefix = "OPTIBENCH"

// Config is the configuration of one benchmark run.
type Config struct {
	Rows        int           `mapstructure:"rows"`
	Files       int           `mapstructure:"files"`
	RowsPerFile int           `mapstructure:"rows_per_file"`
	Workers     int           `mapstructure:"workers"`
	Calls       int           `mapstructure:"calls"`
	LookupCost  time.Duration `mapstructure:"lookup_cost"`
	TaxiPath    string        `mapstructure:"taxi_path"`
	SampleDir   string        `mapstructure:"sample_dir"`

	// Seed makes generated data reproducible. Zero means a fresh
	// random seed each run.
	Seed int64 `mapstructure:"seed"`

	CPUProfile  string `mapstructure:"cpuprofile"`
	HTML        string `mapstructure:"html"`
	Chart       string `mapstructure:"chart"`
	EmitResults bool   `mapstructure:"emit_results"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:        100000,
		Files:       12,
		RowsPerFile: 50000,
		Workers:     4,
		Calls:       50000,
		LookupCost:  time.Millisecond,
		TaxiPath:    "data/yellow_taxi.parquet",
		SampleDir:   "sample_data",
	}
}

type flagDef struct {
	name, usage string
	def         func(c Config) any
}

var flags = []flagDef{
	{"rows", "rows in generated datasets", func(c Config) any { return c.Rows }},
	{"files", "number of sample CSV files", func(c Config) any { return c.Files }},
	{"rows-per-file", "rows in each sample CSV file", func(c Config) any { return c.RowsPerFile }},
	{"workers", "worker pool size (0 means GOMAXPROCS)", func(c Config) any { return c.Workers }},
	{"calls", "number of country lookups", func(c Config) any { return c.Calls }},
	{"lookup-cost", "simulated cost of one uncached lookup", func(c Config) any { return c.LookupCost }},
	{"taxi-path", "taxi trip Parquet file", func(c Config) any { return c.TaxiPath }},
	{"sample-dir", "directory for sample CSV files", func(c Config) any { return c.SampleDir }},
	{"seed", "random seed for generated data (0 for random)", func(c Config) any { return c.Seed }},
	{"cpuprofile", "write a CPU profile to `file`", func(c Config) any { return c.CPUProfile }},
	{"html", "also write an HTML report to `file`", func(c Config) any { return c.HTML }},
	{"chart", "also write a PNG bar chart to `file`", func(c Config) any { return c.Chart }},
	{"emit-results", "print benchmark-format result lines", func(c Config) any { return c.EmitResults }},
	{"verbose", "log progress at debug level", func(c Config) any { return c.Verbose }},
}

// AddFlags registers every configuration flag on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	for _, f := range flags {
		switch v := f.def(d).(type) {
		case int:
			fs.Int(f.name, v, f.usage)
		case int64:
			fs.Int64(f.name, v, f.usage)
		case string:
			fs.String(f.name, v, f.usage)
		case bool:
			fs.Bool(f.name, v, f.usage)
		case time.Duration:
			fs.Duration(f.name, v, f.usage)
		default:
			panic(fmt.Sprintf("flag %s: unsupported type %T", f.name, v))
		}
	}
}

func key(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// Load resolves the configuration from defaults, the environment, and
// the flags on fs that were registered by AddFlags. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	for _, f := range flags {
		v.SetDefault(key(f.name), f.def(d))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if fs != nil {
		for _, f := range flags {
			if pf := fs.Lookup(f.name); pf != nil {
				if err := v.BindPFlag(key(f.name), pf); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", f.name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports sizes that no program can run with.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		n    int
	}{
		{"rows", c.Rows},
		{"files", c.Files},
		{"rows-per-file", c.RowsPerFile},
		{"calls", c.Calls},
	} {
		if f.n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", harness.ErrInvalidArgument, f.name, f.n)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", harness.ErrInvalidArgument, c.Workers)
	}
	if c.LookupCost < 0 {
		return fmt.Errorf("%w: lookup-cost must not be negative, got %v", harness.ErrInvalidArgument, c.LookupCost)
	}
	return nil
}

// Logger returns the progress logger for programs run with c. It
// writes to w, which is normally standard error.
func (c Config) Logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "optibench",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
