// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package waveform renders captured acceleration traces to an image, for
// dumping a FIFO capture to a PNG.
package waveform

import (
	"errors"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Trace is one named series of milli-g samples.
type Trace struct {
	Name    string
	Samples []float64
}

// Opts represents the rendering options.
type Opts struct {
	// Width and Height of the output image in pixels.
	Width  int
	Height int
	// RangeMilliG is the vertical half-range; the zero line sits in the
	// middle. 0 picks the range from the data.
	RangeMilliG float64
	Title       string
	// FontSize for the title and trace labels. 0 uses 13px.
	FontSize float64
}

// DefaultOpts renders a 800x300 image scaled to the data.
var DefaultOpts = Opts{Width: 800, Height: 300, FontSize: 13}

var traceColors = [][3]float64{
	{0.85, 0.20, 0.20},
	{0.20, 0.65, 0.25},
	{0.20, 0.35, 0.85},
	{0.80, 0.60, 0.10},
}

func face(size float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func rangeOf(traces []Trace) float64 {
	max := 1.0
	for _, t := range traces {
		for _, s := range t.Samples {
			if s > max {
				max = s
			}
			if -s > max {
				max = -s
			}
		}
	}
	return max
}

// Render draws the traces over a common horizontal axis and returns the
// image.
func Render(traces []Trace, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("waveform: invalid image size")
	}
	if len(traces) == 0 {
		return nil, errors.New("waveform: no traces")
	}
	rng := opts.RangeMilliG
	if rng <= 0 {
		rng = rangeOf(traces)
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 13
	}

	w := float64(opts.Width)
	h := float64(opts.Height)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face(fontSize))

	// Zero line and quarter grid.
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for _, frac := range []float64{0.25, 0.75} {
		dc.DrawLine(0, h*frac, w, h*frac)
		dc.Stroke()
	}
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.DrawLine(0, h/2, w, h/2)
	dc.Stroke()

	for i, t := range traces {
		c := traceColors[i%len(traceColors)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(1.5)
		n := len(t.Samples)
		for j := 1; j < n; j++ {
			x0 := w * float64(j-1) / float64(n-1)
			x1 := w * float64(j) / float64(n-1)
			y0 := h/2 - t.Samples[j-1]/rng*h/2
			y1 := h/2 - t.Samples[j]/rng*h/2
			dc.DrawLine(x0, y0, x1, y1)
		}
		dc.Stroke()
		if t.Name != "" {
			dc.DrawString(t.Name, 8, fontSize*2+float64(i)*(fontSize+4))
		}
	}

	if opts.Title != "" {
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawString(opts.Title, 8, fontSize)
	}
	return dc.Image(), nil
}

// RenderPNG renders the traces and PNG-encodes them to w.
func RenderPNG(w io.Writer, traces []Trace, opts *Opts) error {
	img, err := Render(traces, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}
