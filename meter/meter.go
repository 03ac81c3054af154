// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package meter implements a live per-axis acceleration meter that outputs
// to terminal (stdout) using ANSI color codes.
//
// Useful to eyeball sensor output without attaching a plotter.
package meter

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this meter.
type Opts struct {
	// Width is the bar length per axis in character cells.
	Width int
	// RangeMilliG is the milli-g value that fills a bar completely.
	RangeMilliG float64
	Palette     *ansi256.Palette

	_ struct{}
}

// Dev is a 3-axis bar meter that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	rangeMg float64
	palette ansi256.Palette

	buf bytes.Buffer
}

var axisColors = [3]color.NRGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 60, G: 180, B: 70, A: 255},
	{R: 70, G: 100, B: 220, A: 255},
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	width := opts.Width
	if width <= 0 {
		width = 20
	}
	rng := opts.RangeMilliG
	if rng <= 0 {
		rng = 2000
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		width:   width,
		rangeMg: rng,
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "AccelMeter"
}

// Halt implements conn.Resource.
//
// It clears the line so the terminal is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// barCells returns how many of width cells |mg| fills at the given range.
func barCells(mg, rangeMg float64, width int) int {
	if mg < 0 {
		mg = -mg
	}
	cells := int(mg / rangeMg * float64(width))
	if cells > width {
		cells = width
	}
	return cells
}

// Update redraws the three bars in place.
func (d *Dev) Update(mg [3]float64) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for axis := 0; axis < 3; axis++ {
		filled := barCells(mg[axis], d.rangeMg, d.width)
		block := d.palette.Block(axisColors[axis])
		for i := 0; i < d.width; i++ {
			if i < filled {
				_, _ = io.WriteString(&d.buf, block)
			} else {
				_, _ = d.buf.WriteString(" ")
			}
		}
		_, _ = d.buf.WriteString("\033[0m|")
	}
	fmt.Fprintf(&d.buf, " %+7.1f %+7.1f %+7.1f mg ", mg[0], mg[1], mg[2])
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
