// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes the Go benchmark format.
type Writer struct {
	w      io.Writer
	buf    bytes.Buffer
	config []Config
	wrote  bool
}

// NewWriter returns a Writer that writes results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes res, preceded by configuration lines for any keys whose
// value differs from the last result written. Values with an OrigUnit
// are written in that unit.
func (w *Writer) Write(res *Result) error {
	w.writeConfig(res.Config)
	fmt.Fprintf(&w.buf, "Benchmark%s %d", res.Name, res.Iters)
	for _, v := range res.Values {
		if v.OrigUnit == "" {
			fmt.Fprintf(&w.buf, " %v %s", v.Value, v.Unit)
		} else {
			fmt.Fprintf(&w.buf, " %v %s", v.OrigValue, v.OrigUnit)
		}
	}
	w.buf.WriteByte('\n')
	w.wrote = true

	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) writeConfig(cfg []Config) {
	have := Result{Config: append([]Config(nil), w.config...)}
	var changed bool
	for _, c := range w.config {
		if (&Result{Config: cfg}).GetConfig(c.Key) == "" {
			w.configLine(&changed, c.Key, "")
			have.SetConfig(c.Key, "")
		}
	}
	for _, c := range cfg {
		if have.GetConfig(c.Key) != c.Value {
			w.configLine(&changed, c.Key, c.Value)
			have.SetConfig(c.Key, c.Value)
		}
	}
	w.config = have.Config
	if changed {
		w.buf.WriteByte('\n')
	}
}

func (w *Writer) configLine(changed *bool, key, value string) {
	if !*changed && w.wrote {
		// Configuration blocks after results get a leading blank.
		w.buf.WriteByte('\n')
	}
	*changed = true
	if value == "" {
		fmt.Fprintf(&w.buf, "%s:\n", key)
	} else {
		fmt.Fprintf(&w.buf, "%s: %s\n", key, value)
	}
}
