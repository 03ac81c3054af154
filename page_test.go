// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

// TestPagedWriteWrap writes 4 bytes starting 2 bytes short of the end of
// page 0 and checks that the page address register is written exactly once,
// that the page selector is bumped exactly once at the 0xFF -> 0x00
// boundary, and that page mode and bank are fully restored afterwards.
func TestPagedWriteWrap(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbPaged := []i2ctest.IO{
		// Embedded bank in.
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x80}},
		// Page write mode.
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x40}},
		// Page 0 selected.
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		// Page address written once; the device auto-increments it.
		{Addr: DefaultAddress, W: []byte{0x08, 0xfe}},
		{Addr: DefaultAddress, W: []byte{0x09, 0xa1}},
		{Addr: DefaultAddress, W: []byte{0x09, 0xa2}},
		// Offset wrapped, page selector moves to page 1.
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x01}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x11}},
		{Addr: DefaultAddress, W: []byte{0x09, 0xa3}},
		{Addr: DefaultAddress, W: []byte{0x09, 0xa4}},
		// Restoration: selector back to page 0, page mode off, main bank.
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x11}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x40}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x80}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbPaged)
	if err := dev.PagedWrite(0x00fe, []byte{0xa1, 0xa2, 0xa3, 0xa4}); err != nil {
		t.Fatal(err)
	}
	pb := bus.(*i2ctest.Playback)
	if pb.Count != len(pb.Ops) {
		t.Errorf("expected all %d operations consumed, got %d", len(pb.Ops), pb.Count)
	}
}

// TestPagedReadWrap reads across the same boundary. Reads rewrite the page
// address before every byte since the device does not support sequential
// reads of the page value register.
func TestPagedReadWrap(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbPaged := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x80}},
		// Page read mode.
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x20}},
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		// One page address write per byte.
		{Addr: DefaultAddress, W: []byte{0x08, 0xfe}},
		{Addr: DefaultAddress, W: []byte{0x09}, R: []byte{0xa1}},
		{Addr: DefaultAddress, W: []byte{0x08, 0xff}},
		{Addr: DefaultAddress, W: []byte{0x09}, R: []byte{0xa2}},
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x01}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x11}},
		{Addr: DefaultAddress, W: []byte{0x08, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x09}, R: []byte{0xa3}},
		{Addr: DefaultAddress, W: []byte{0x08, 0x01}},
		{Addr: DefaultAddress, W: []byte{0x09}, R: []byte{0xa4}},
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x11}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x20}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x80}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbPaged)
	buf := make([]byte, 4)
	if err := dev.PagedRead(0x00fe, buf); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0xa1, 0xa2, 0xa3, 0xa4}; !bytes.Equal(buf, want) {
		t.Errorf("expected % #02x, got % #02x", want, buf)
	}
}

// TestPagedWriteRestoresOnError cuts the playback short in the middle of
// the value writes and checks that the driver still parks the selector,
// leaves page mode and maps the main bank back in.
func TestPagedWriteRestoresOnError(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbPaged := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x80}},
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x40}},
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		{Addr: DefaultAddress, W: []byte{0x08, 0x10}},
		{Addr: DefaultAddress, W: []byte{0x09, 0xa1}},
		// The second value write fails: the playback stream instead holds
		// the restoration traffic the driver must still produce.
		{Addr: DefaultAddress, W: []byte{0x02}, R: []byte{0x01}},
		{Addr: DefaultAddress, W: []byte{0x02, 0x01}},
		{Addr: DefaultAddress, W: []byte{0x17}, R: []byte{0x40}},
		{Addr: DefaultAddress, W: []byte{0x17, 0x00}},
		{Addr: DefaultAddress, W: []byte{0x3f}, R: []byte{0x80}},
		{Addr: DefaultAddress, W: []byte{0x3f, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbPaged)
	if err := dev.PagedWrite(0x0010, []byte{0xa1, 0xa2}); err == nil {
		t.Fatal("expected the failed value write to surface")
	}
	pb := bus.(*i2ctest.Playback)
	if pb.Count != len(pb.Ops) {
		t.Errorf("restoration incomplete: %d of %d operations consumed", pb.Count, len(pb.Ops))
	}
}
