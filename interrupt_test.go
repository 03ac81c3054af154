// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestSetIntMode(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbInt := []i2ctest.IO{
		// Latched, sleep status on the pin, latched state surviving reads.
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x0f}},
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x0f}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbInt)
	if err := dev.SetIntMode(IntLatched, true, true); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetIntMode(IntDisabled, false, false); err != nil {
		t.Fatal(err)
	}
}

func TestSetInt1RouteOnReset(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbRoute := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x10, 0x50}},
		{Addr: DefaultAddress, W: []byte{0x11}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x11, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x1f}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x1f, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x50}},
		{Addr: DefaultAddress, W: []byte{0x11}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x1f}, R: []byte{0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbRoute)
	if err := dev.SetInt1Route(&IntRoute{IntOnReset: true}); err != nil {
		t.Fatal(err)
	}
	got, err := dev.Int1Route()
	if err != nil {
		t.Fatal(err)
	}
	if !got.IntOnReset {
		t.Error("expected the reset routing bit to read back")
	}
}
