// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// iis2dulpx-scope captures a window of accelerometer samples, shows them on
// a terminal meter and renders them to a PNG.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/iis2dulpx"
	"github.com/GermanBionicSystems/iis2dulpx/meter"
	"github.com/GermanBionicSystems/iis2dulpx/waveform"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	i2cID := flag.String("i2c", "", "I²C bus to use (default, the first available)")
	addr := flag.Uint("addr", uint(iis2dulpx.DefaultAddress), "I²C address")
	samples := flag.Int("n", 256, "number of samples to capture")
	out := flag.String("o", "trace.png", "output PNG file")
	live := flag.Bool("live", false, "show a live meter while capturing")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*i2cID)
	if err != nil {
		return err
	}
	defer b.Close()

	opts := iis2dulpx.DefaultOpts
	opts.Mode = iis2dulpx.Mode{ODR: iis2dulpx.ODR100HzLP, FS: iis2dulpx.FS2g, BW: iis2dulpx.BWOdrDiv4}
	dev, err := iis2dulpx.NewI2C(b, uint16(*addr), &opts)
	if err != nil {
		return err
	}
	defer dev.Halt()

	var m *meter.Dev
	if *live {
		m = meter.New(&meter.Opts{Width: 16, RangeMilliG: 2000})
		defer m.Halt()
	}

	traces := []waveform.Trace{{Name: "x"}, {Name: "y"}, {Name: "z"}}
	for captured := 0; captured < *samples; {
		status, err := dev.ReadStatus()
		if err != nil {
			return err
		}
		if !status.DataReady {
			time.Sleep(time.Millisecond)
			continue
		}
		s, err := dev.Acceleration()
		if err != nil {
			return err
		}
		for axis := 0; axis < 3; axis++ {
			traces[axis].Samples = append(traces[axis].Samples, s.MilliG[axis])
		}
		if m != nil {
			if err := m.Update([3]float64{s.MilliG[0], s.MilliG[1], s.MilliG[2]}); err != nil {
				return err
			}
		}
		captured++
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	err = waveform.RenderPNG(f, traces, &waveform.Opts{
		Width:  800,
		Height: 300,
		Title:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	log.Printf("wrote %d samples to %s", *samples, *out)
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("iis2dulpx-scope: %v", err)
	}
}
