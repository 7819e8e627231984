// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/datagyver/optibench/benchfmt"
	"github.com/datagyver/optibench/harness"
)

var vectorize = Section{
	Title: "vectorize",
	Samples: []harness.Sample{
		{Name: "loop", Elapsed: 1200 * time.Millisecond},
		{Name: "vectorized", Elapsed: 12 * time.Millisecond},
	},
}

func TestHeadline(t *testing.T) {
	for _, test := range []struct {
		samples []harness.Sample
		want    string
	}{
		{nil, ""},
		{[]harness.Sample{{Name: "a", Elapsed: time.Second}}, ""},
		{vectorize.Samples, "vectorized is 100.0x faster than loop, saved 1.188s (99.0%)"},
		{[]harness.Sample{{Name: "cached", Elapsed: 3 * time.Second}, {Name: "uncached", Elapsed: 4 * time.Second}},
			"cached is 1.3x faster than uncached, saved 1.000s (25.0%)"},
		{[]harness.Sample{{Name: "a", Elapsed: time.Millisecond}, {Name: "b", Elapsed: time.Millisecond}},
			"all strategies took 1.000ms"},
	} {
		if got := Headline(harness.Compare(test.samples...)); got != test.want {
			t.Errorf("Headline(%v) = %q, want %q", test.samples, got, test.want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, vectorize, Section{Title: "empty"}); err != nil {
		t.Fatal(err)
	}
	want := "vectorize\n\n" +
		"strategy         time  vs slowest\n" +
		strings.Repeat("─", 33) + "\n" +
		"loop        1200.00ms        1.0x\n" +
		"vectorized    12.00ms      100.0x\n" +
		"vectorized is 100.0x faster than loop, saved 1.188s (99.0%)\n" +
		"\n" +
		"empty\n\n" +
		"no samples\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteTextGeoMean(t *testing.T) {
	var buf bytes.Buffer
	sec := Section{Samples: []harness.Sample{
		{Name: "sequential", Elapsed: 8 * time.Second},
		{Name: "pool", Elapsed: 2 * time.Second},
		{Name: "stream", Elapsed: time.Second},
	}}
	if err := WriteText(&buf, sec); err != nil {
		t.Fatal(err)
	}
	// Speedups 1, 4 and 8 have geomean 32^(1/3).
	if !strings.Contains(buf.String(), "geomean speedup: 3.17x\n") {
		t.Errorf("missing geomean line in:\n%s", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	sec := Section{Title: "<script>alert(1)</script>", Samples: vectorize.Samples}
	if err := WriteHTML(&buf, sec); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Errorf("title was not escaped:\n%s", out)
	}
	for _, want := range []string{"&lt;script&gt;", "<td>vectorized</td>", "100.0x", "saved 1.188s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChart(&buf, vectorize); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("chart is not a PNG")
	}
	if err := WriteChart(&buf, Section{Title: "empty"}); err == nil {
		t.Errorf("WriteChart with no samples succeeded")
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	agg := Section{Title: "aggregation", Samples: []harness.Sample{{Name: "sql group by", Elapsed: 3 * time.Millisecond}}}
	if err := WriteResults(&buf, "full", vectorize, agg); err != nil {
		t.Fatal(err)
	}
	r := benchfmt.NewReader(&buf, "results")
	var got []string
	for r.Scan() {
		res, ok := r.Result().(*benchfmt.Result)
		if !ok {
			t.Fatalf("unexpected record %v", r.Result())
		}
		d, _ := res.Elapsed()
		got = append(got, res.GetConfig("section")+" "+res.Name+" "+d.String())
	}
	want := []string{
		"vectorize Full/strategy=loop 1.2s",
		"vectorize Full/strategy=vectorized 12ms",
		"aggregation Full/strategy=sql-group-by 3ms",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteSpread(t *testing.T) {
	var buf bytes.Buffer
	loading := Section{Title: "loading", Samples: []harness.Sample{
		{Name: "parquet rows", Elapsed: 300 * time.Millisecond},
		{Name: "sqlite ingest", Elapsed: 900 * time.Millisecond},
	}}
	if err := WriteSpread(&buf, loading, Section{Title: "empty"}); err != nil {
		t.Fatal(err)
	}
	want := "spread for loading: 3.0x\n" +
		"  parquet rows             300.0ms (x3.0)\n" +
		"  sqlite ingest            900.0ms (x1.0)\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSpreadNotConfig(t *testing.T) {
	var buf bytes.Buffer
	secs := []Section{vectorize, {Title: "loading", Samples: vectorize.Samples}}
	if err := WriteSpread(&buf, secs...); err != nil {
		t.Fatal(err)
	}
	if err := WriteResults(&buf, "full", secs...); err != nil {
		t.Fatal(err)
	}
	r := benchfmt.NewReader(&buf, "out")
	n := 0
	for r.Scan() {
		res, ok := r.Result().(*benchfmt.Result)
		if !ok {
			t.Fatalf("bad result line: %v", r.Result())
		}
		n++
		if len(res.Config) != 1 || res.Config[0].Key != "section" {
			t.Errorf("%s: config %v, want only section", res.Name, res.Config)
		}
	}
	if n != 4 {
		t.Errorf("read %d results, want 4", n)
	}
}
