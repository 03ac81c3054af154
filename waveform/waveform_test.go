// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"bytes"
	"image/color"
	"math"
	"testing"
)

func sine(n int, amp float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = amp * math.Sin(2*math.Pi*float64(i)/float64(n))
	}
	return s
}

func TestRenderBounds(t *testing.T) {
	traces := []Trace{
		{Name: "x", Samples: sine(64, 500)},
		{Name: "y", Samples: sine(64, 250)},
		{Name: "z", Samples: sine(64, 125)},
	}
	img, err := Render(traces, &Opts{Width: 320, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("expected 320x200, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderDrawsSomething(t *testing.T) {
	img, err := Render([]Trace{{Name: "x", Samples: sine(32, 1000)}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	white := 0
	colored := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R == 255 && c.G == 255 && c.B == 255 {
				white++
			} else {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("expected the trace to color some pixels")
	}
	if white == 0 {
		t.Error("expected a white background")
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	if _, err := Render(nil, nil); err == nil {
		t.Error("expected error for no traces")
	}
	if _, err := Render([]Trace{{Samples: sine(8, 1)}}, &Opts{Width: 0, Height: 10}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(&buf, []Trace{{Name: "x", Samples: sine(16, 100)}}, &Opts{Width: 64, Height: 48})
	if err != nil {
		t.Fatal(err)
	}
	// PNG magic.
	if buf.Len() < 8 || !bytes.Equal(buf.Bytes()[:4], []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG output")
	}
}
