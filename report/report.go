// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders timing comparisons as text tables, HTML,
// PNG bar charts and benchmark-format result lines.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/datagyver/optibench/benchfmt"
	"github.com/datagyver/optibench/benchunit"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/internal/texttab"
)

// A Section is one titled group of timing samples, such as the
// loading or the aggregation half of a benchmark.
type Section struct {
	Title   string
	Samples []harness.Sample
}

type row struct {
	Name, Time, Speedup string
}

type view struct {
	Title    string
	Rows     []row
	Headline string
	GeoMean  string
}

func newView(sec Section) view {
	c := harness.Compare(sec.Samples...)
	secs := make([]float64, c.Len())
	for i, s := range sec.Samples {
		secs[i] = s.Seconds()
	}
	scale := benchunit.CommonScale(secs, benchunit.Decimal)
	v := view{Title: sec.Title, Headline: Headline(c)}
	for i, s := range sec.Samples {
		v.Rows = append(v.Rows, row{
			Name:    s.Name,
			Time:    scale.Format(secs[i]) + "s",
			Speedup: fmt.Sprintf("%.1fx", c.SpeedupOf(i)),
		})
	}
	if c.Len() > 2 {
		v.GeoMean = fmt.Sprintf("%.2fx", c.GeoMeanSpeedup())
	}
	return v
}

// Headline summarizes c in one sentence comparing its fastest and
// slowest samples. It is empty for fewer than two samples.
func Headline(c harness.Comparison) string {
	if c.Len() < 2 {
		return ""
	}
	fast, slow := c.Fastest(), c.Slowest()
	if fast.Elapsed == slow.Elapsed {
		return "all strategies took " + benchunit.Duration(fast.Elapsed)
	}
	saved, pct := harness.Savings(slow, fast)
	return fmt.Sprintf("%s is %.1fx faster than %s, saved %s (%.1f%%)",
		fast.Name, harness.Speedup(slow, fast), slow.Name, benchunit.Duration(saved), pct)
}

// WriteText writes each section as a table of strategy, time and
// speedup over the slowest strategy, followed by a headline.
func WriteText(w io.Writer, secs ...Section) error {
	for i, sec := range secs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		v := newView(sec)
		if v.Title != "" {
			fmt.Fprintf(w, "%s\n\n", v.Title)
		}
		if len(v.Rows) == 0 {
			fmt.Fprintln(w, "no samples")
			continue
		}
		var tab texttab.Table
		tab.SetAlign(1, texttab.Right).SetAlign(2, texttab.Right)
		tab.Row().Cell("strategy").Cell("time").Cell("vs slowest")
		tab.Rule()
		for _, r := range v.Rows {
			tab.Row().Cell(r.Name).Cell(r.Time).Cell(r.Speedup)
		}
		if err := tab.Format(w); err != nil {
			return err
		}
		if v.GeoMean != "" {
			fmt.Fprintf(w, "geomean speedup: %s\n", v.GeoMean)
		}
		if v.Headline != "" {
			if _, err := fmt.Fprintln(w, v.Headline); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteResults writes every sample as a benchmark-format line named
// "<Program>/strategy=<name>". Each section's title is carried in the
// "section" configuration key.
func WriteResults(w io.Writer, program string, secs ...Section) error {
	bw := benchfmt.NewWriter(w)
	name := benchName(program)
	for _, sec := range secs {
		for _, s := range sec.Samples {
			res := benchfmt.Timing(name, fieldSafe(s.Name), s.Elapsed)
			res.SetConfig("section", sec.Title)
			if err := bw.Write(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// benchName upper-cases the first letter of program so the line reads
// as a benchmark rather than prose.
func benchName(program string) string {
	if program == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(program)
	return string(unicode.ToUpper(r)) + fieldSafe(program[n:])
}

func fieldSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)
}

// WriteSpread writes, for each section with samples, the ratio of its
// slowest to its fastest sample followed by every sample's time and
// speedup over the slowest.
func WriteSpread(w io.Writer, secs ...Section) error {
	for _, sec := range secs {
		c := harness.Compare(sec.Samples...)
		if c.Len() == 0 {
			continue
		}
		fmt.Fprintf(w, "spread for %s: %.1fx\n", sec.Title, c.Spread())
		for i, s := range sec.Samples {
			if _, err := fmt.Fprintf(w, "  %-24s %s (x%.1f)\n", s.Name, benchunit.Duration(s.Elapsed), c.SpeedupOf(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
