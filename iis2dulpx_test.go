// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import (
	"errors"
	"fmt"
	"math"
	"os"
	"testing"
	"time"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/host/v3"
)

var bus i2c.Bus
var liveDevice bool

// Playback for the construction sequence: WHO_AM_I check, BDU, address
// auto-increment.
var pbNew = []i2ctest.IO{
	{Addr: DefaultAddress, W: []byte{0x0f}, R: []byte{0x47}},
	{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x00}},
	{Addr: DefaultAddress, W: []byte{0x13, 0x10}},
	{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x00}},
	{Addr: DefaultAddress, W: []byte{0x10, 0x10}},
}

func init() {
	liveDevice = os.Getenv("IIS2DULPX") != ""

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		fmt.Println(err)
	}

	if liveDevice {
		var err error
		bus, err = i2creg.Open("")
		if err != nil {
			fmt.Println(err)
		}
		// Add the recorder to dump the data stream when we're using a live device.
		bus = &i2ctest.Record{Bus: bus}
	} else {
		bus = &i2ctest.Playback{DontPanic: true}
	}
}

// getDev returns a device handle using either a live bus or a playback bus.
func getDev(t *testing.T, opts *Opts, playbackOps ...[]i2ctest.IO) (*Dev, error) {
	if liveDevice {
		if recorder, ok := bus.(*i2ctest.Record); ok {
			recorder.Ops = make([]i2ctest.IO, 0, 32)
		}
	} else {
		pb := bus.(*i2ctest.Playback)
		pb.Ops = join(playbackOps...)
		pb.Count = 0
	}
	dev, err := NewI2C(bus, DefaultAddress, opts)
	if err != nil {
		t.Log("error constructing dev")
		t.Fatal(err)
	}
	return dev, err
}

func join(parts ...[]i2ctest.IO) []i2ctest.IO {
	var all []i2ctest.IO
	for _, p := range parts {
		all = append(all, p...)
	}
	return all
}

// shutdown dumps the recorder values if we're running a live device.
func shutdown(t *testing.T) {
	if recorder, ok := bus.(*i2ctest.Record); ok {
		t.Logf("%#v", recorder.Ops)
	}
}

func TestNew(t *testing.T) {
	dev, _ := getDev(t, &Opts{}, pbNew)
	defer shutdown(t)
	if s := dev.String(); s == "" {
		t.Error("expected non-empty String()")
	}
}

func TestNewNilBus(t *testing.T) {
	if _, err := NewI2C(nil, DefaultAddress, nil); err == nil {
		t.Fatal("expected error for nil bus")
	}
}

func TestNewWrongID(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pb := bus.(*i2ctest.Playback)
	pb.Ops = []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x0f}, R: []byte{0x44}},
	}
	pb.Count = 0
	_, err := NewI2C(bus, DefaultAddress, &Opts{})
	var mismatch *IDMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected IDMismatchError, got %v", err)
	}
	if mismatch.Got != 0x44 {
		t.Errorf("expected reported ID 0x44, got %#02x", mismatch.Got)
	}
}

func TestBoot(t *testing.T) {
	pbBoot := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x13, 0x11}},
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x11}},
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x10}},
	}
	delays := 0
	dev, _ := getDev(t, &Opts{Delay: func(time.Duration) { delays++ }}, pbNew, pbBoot)
	defer shutdown(t)
	if err := dev.Boot(); err != nil {
		t.Fatal(err)
	}
	if !liveDevice && delays != 1 {
		t.Errorf("expected 1 delay while polling, got %d", delays)
	}
}

func TestBootTimeout(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbBoot := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x13, 0x11}},
	}
	for i := 0; i < 5; i++ {
		pbBoot = append(pbBoot, i2ctest.IO{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x11}})
	}
	delays := 0
	dev, _ := getDev(t, &Opts{Delay: func(d time.Duration) {
		delays++
		if d != 25*time.Millisecond {
			t.Errorf("expected 25ms poll delay, got %s", d)
		}
	}}, pbNew, pbBoot)
	err := dev.Boot()
	var timeout *BootTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected BootTimeoutError, got %v", err)
	}
	if delays != 5 {
		t.Errorf("expected exactly 5 delays, got %d", delays)
	}
}

func TestBootNilDelay(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	// A nil delay function polls back to back and must not panic.
	pbBoot := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x13, 0x11}},
	}
	for i := 0; i < 5; i++ {
		pbBoot = append(pbBoot, i2ctest.IO{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x11}})
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbBoot)
	var timeout *BootTimeoutError
	if err := dev.Boot(); !errors.As(err, &timeout) {
		t.Fatalf("expected BootTimeoutError, got %v", err)
	}
}

func TestReset(t *testing.T) {
	pbReset := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x10, 0x30}},
		{Addr: DefaultAddress, W: []byte{0x25}, R: []byte{0x20}},
		{Addr: DefaultAddress, W: []byte{0x25}, R: []byte{0x00}},
	}
	delays := 0
	dev, _ := getDev(t, &Opts{Delay: func(d time.Duration) {
		delays++
		if !liveDevice && d != time.Millisecond {
			t.Errorf("expected 1ms poll delay, got %s", d)
		}
	}}, pbNew, pbReset)
	defer shutdown(t)
	if err := dev.Reset(); err != nil {
		t.Fatal(err)
	}
	if !liveDevice && delays != 2 {
		t.Errorf("expected 2 delays while polling, got %d", delays)
	}
}

func TestResetTimeout(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbReset := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x10, 0x30}},
	}
	for i := 0; i < 5; i++ {
		pbReset = append(pbReset, i2ctest.IO{Addr: DefaultAddress, W: []byte{0x25}, R: []byte{0x20}})
	}
	delays := 0
	dev, _ := getDev(t, &Opts{Delay: func(time.Duration) { delays++ }}, pbNew, pbReset)
	err := dev.Reset()
	var timeout *ResetTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ResetTimeoutError, got %v", err)
	}
	if delays != 5 {
		t.Errorf("expected exactly 5 delays, got %d", delays)
	}
}

func TestReadStatus(t *testing.T) {
	pbStatus := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x25}, R: []byte{0x01}},
		{Addr: DefaultAddress, W: []byte{0x10}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x13}, R: []byte{0x10}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbStatus)
	defer shutdown(t)
	s, err := dev.ReadStatus()
	if err != nil {
		t.Fatal(err)
	}
	if !liveDevice {
		if !s.DataReady || s.GlobalInt || s.SWReset || s.Boot {
			t.Errorf("unexpected status %+v", s)
		}
	}
}

func TestSetPinPull(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbPull := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x0c}, R: []byte{0x00}},
		// SDA pull-up on, INT1 pull-down kept, INT2 pull-down disabled.
		{Addr: DefaultAddress, W: []byte{0x0c, 0x60}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbPull)
	if err := dev.SetPinPull(PinPull{SDAPullUp: true, Int1PullDown: true}); err != nil {
		t.Fatal(err)
	}
}

func TestAcceleration(t *testing.T) {
	pbData := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x28}, R: []byte{0xe8, 0x03, 0x18, 0xfc, 0x00, 0x40}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbData)
	defer shutdown(t)
	s, err := dev.Acceleration()
	if err != nil {
		t.Fatal(err)
	}
	if liveDevice {
		t.Logf("acceleration %+v", s)
		return
	}
	wantRaw := [3]int16{1000, -1000, 16384}
	if s.Raw != wantRaw {
		t.Errorf("expected raw %v, got %v", wantRaw, s.Raw)
	}
	for i, raw := range wantRaw {
		want := float64(raw) * 0.061
		if math.Abs(s.MilliG[i]-want) > 1e-9 {
			t.Errorf("axis %d: expected %f mg, got %f", i, want, s.MilliG[i])
		}
	}
}

func TestTemperature(t *testing.T) {
	pbTemp := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x2e}, R: []byte{0x00, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbTemp)
	defer shutdown(t)
	temp, err := dev.Temperature()
	if err != nil {
		t.Fatal(err)
	}
	if liveDevice {
		t.Logf("temperature %s", temp)
		return
	}
	if c := temp.Celsius(); math.Abs(c-25.0) > 1e-6 {
		t.Errorf("expected 25°C for a zero count, got %f", c)
	}
}

func TestSelfTestPhases(t *testing.T) {
	if liveDevice {
		t.Skip("playback only")
	}
	pbST := []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{0x32}, R: []byte{0x00}},
		{Addr: DefaultAddress, W: []byte{0x32, 0x10}},
		{Addr: DefaultAddress, W: []byte{0x32}, R: []byte{0x10}},
		{Addr: DefaultAddress, W: []byte{0x32, 0x20}},
		{Addr: DefaultAddress, W: []byte{0x32}, R: []byte{0x20}},
		{Addr: DefaultAddress, W: []byte{0x32, 0x00}},
	}
	dev, _ := getDev(t, &Opts{}, pbNew, pbST)
	for _, phase := range []int{0, 3, -1} {
		if err := dev.StartSelfTest(phase); err == nil {
			t.Errorf("expected error for phase %d", phase)
		}
	}
	if err := dev.StartSelfTest(1); err != nil {
		t.Fatal(err)
	}
	if err := dev.StartSelfTest(2); err != nil {
		t.Fatal(err)
	}
	if err := dev.StopSelfTest(); err != nil {
		t.Fatal(err)
	}
}

func TestNewSPI(t *testing.T) {
	p := &spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: []byte{0x8f, 0x00}, R: []byte{0x00, 0x47}},
				{W: []byte{0x93, 0x00}, R: []byte{0x00, 0x00}},
				{W: []byte{0x13, 0x10}},
				{W: []byte{0x90, 0x00}, R: []byte{0x00, 0x00}},
				{W: []byte{0x10, 0x10}},
			},
			DontPanic: true,
		},
	}
	if _, err := NewSPI(p, &Opts{}); err != nil {
		t.Fatal(err)
	}
}

func TestNewSPINilPort(t *testing.T) {
	if _, err := NewSPI(nil, nil); err == nil {
		t.Fatal("expected error for nil port")
	}
}
