// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// TestHelperProcess is not a real test. It stands in for optibench
// when the runner starts a child.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("OPTIBENCH_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 3 || args[2] != "--emit-results" {
		fmt.Fprintf(os.Stderr, "bad args %q\n", os.Args)
		os.Exit(3)
	}
	switch args[1] {
	case "fast":
		fmt.Println("fast is fast")
		fmt.Println("BenchmarkFast/strategy=a 1 1000 ns/op")
		fmt.Println("BenchmarkFast/strategy=b 1 2000 ns/op")
		os.Exit(0)
	case "mismatch":
		fmt.Println("BenchmarkMismatch/strategy=a 1 1000 ns/op")
		fmt.Fprintln(os.Stderr, "optibench: equivalence mismatch")
		os.Exit(1)
	case "quiet":
		os.Exit(0)
	}
	os.Exit(2)
}

func helperRunner(stdout *bytes.Buffer) *Runner {
	return &Runner{
		Command: os.Args[0],
		Prefix:  []string{"-test.run=TestHelperProcess", "--"},
		Env:     []string{"OPTIBENCH_WANT_HELPER_PROCESS=1"},
		Stdout:  stdout,
	}
}

func TestRun(t *testing.T) {
	var stdout bytes.Buffer
	results := helperRunner(&stdout).Run(context.Background(), []string{"fast", "mismatch", "unknown", "quiet"})

	type outcome struct {
		Program  string
		ExitCode int
		Samples  []string
	}
	var got []outcome
	for _, res := range results {
		o := outcome{Program: res.Program, ExitCode: res.ExitCode}
		for _, s := range res.Samples {
			d, _ := s.Elapsed()
			o.Samples = append(o.Samples, s.Name+" "+d.String())
		}
		got = append(got, o)
	}
	want := []outcome{
		{"fast", 0, []string{"Fast/strategy=a 1µs", "Fast/strategy=b 2µs"}},
		{"mismatch", 1, []string{"Mismatch/strategy=a 1µs"}},
		{"unknown", 2, nil},
		{"quiet", 0, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results (-want +got):\n%s", diff)
	}
	if n := Tally(results); n != 2 {
		t.Errorf("Tally = %d, want 2", n)
	}
	if !strings.Contains(stdout.String(), "fast is fast\n") {
		t.Errorf("child output was not passed through:\n%s", stdout.String())
	}
}

func TestRunMissingCommand(t *testing.T) {
	r := &Runner{Command: "/nonexistent/optibench"}
	results := r.Run(context.Background(), []string{"profile", "cache"})
	if len(results) != 2 {
		t.Fatalf("ran %d programs, want 2", len(results))
	}
	for _, res := range results {
		if res.Passed() || res.Err == nil || res.ExitCode != -1 {
			t.Errorf("%s: passed=%v err=%v exit=%d", res.Program, res.Passed(), res.Err, res.ExitCode)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	results := []*Result{
		{Program: "profile", Elapsed: 1500 * time.Millisecond},
		{Program: "cache", ExitCode: 1, Elapsed: 20 * time.Millisecond},
	}
	var buf bytes.Buffer
	if err := WriteSummary(&buf, results); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"PASS  profile", "FAIL  cache", "exit status 1", "\n1/2 benchmarks passed\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
