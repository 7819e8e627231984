// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const chartDPI = 96

// WriteChart draws sec as a PNG bar chart of seconds per strategy.
func WriteChart(w io.Writer, sec Section) error {
	if len(sec.Samples) == 0 {
		return fmt.Errorf("chart %q: no samples", sec.Title)
	}
	values := make(plotter.Values, len(sec.Samples))
	names := make([]string, len(sec.Samples))
	for i, s := range sec.Samples {
		values[i] = s.Seconds()
		names[i] = s.Name
	}

	pl := plot.New()
	pl.Title.Text = sec.Title
	pl.Y.Label.Text = "seconds"
	pl.Y.Min = 0
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("chart %q: %w", sec.Title, err)
	}
	bars.Color = color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}
	bars.LineStyle.Width = 0
	pl.Add(bars)
	pl.NominalX(names...)

	width := vg.Length(2+len(names)) * vg.Inch
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, 3*vg.Inch),
		vgimg.UseDPI(chartDPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}
