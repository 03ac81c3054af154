// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "errors"

// WakeUpConfig configures the wake-up / activity detector.
type WakeUpConfig struct {
	// EnableX/Y/Z pick the axes that can trigger a wake-up.
	EnableX, EnableY, EnableZ bool
	// Threshold is the wake-up threshold, 6 bits. ThresholdFine halves the
	// threshold weight for finer steps.
	Threshold     byte
	ThresholdFine bool
	// Duration is the number of samples the signal must stay above the
	// threshold, 0..3, or up to 7 with DurationExtended adding a high bit.
	Duration         byte
	DurationExtended bool
	// SleepOn enables the sleep (inactivity) state machine; SleepDuration
	// sets how long stillness lasts before entering it, 4 bits.
	SleepOn       bool
	SleepDuration byte
	// InactiveODR is the 2-bit rate code used while inactive.
	InactiveODR byte
}

// SetWakeUp programs the wake-up detector.
func (d *Dev) SetWakeUp(c WakeUpConfig) error {
	v := byte(0)
	if c.EnableX {
		v |= ctrl1WUXEn
	}
	if c.EnableY {
		v |= ctrl1WUYEn
	}
	if c.EnableZ {
		v |= ctrl1WUZEn
	}
	if err := d.t.updateReg(regCtrl1, ctrl1WUMask, v); err != nil {
		return err
	}
	v = c.Threshold & wakeThsMask
	if c.SleepOn {
		v |= wakeThsSleepOn
	}
	if err := d.t.updateReg(regWakeUpThs, wakeThsMask|wakeThsSleepOn, v); err != nil {
		return err
	}
	v = c.SleepDuration&wakeDurSleepMask | (c.Duration&0x03)<<wakeDurPos
	if err := d.t.updateReg(regWakeUpDur, wakeDurSleepMask|wakeDurMask, v); err != nil {
		return err
	}
	v = 0
	if c.DurationExtended {
		v = wakeDurExtended
	}
	if err := d.t.updateReg(regWakeUpDurExt, wakeDurExtended, v); err != nil {
		return err
	}
	fine := byte(0)
	if c.ThresholdFine {
		fine = intCfgWakeThsW
	}
	if err := d.t.updateReg(regInterruptCfg, intCfgWakeThsW, fine); err != nil {
		return err
	}
	return d.t.updateReg(regCtrl4, ctrl4InactODR, c.InactiveODR<<ctrl4InactODRPos)
}

// WakeUpSources is the decoded wake-up event state.
type WakeUpSources struct {
	X, Y, Z     bool
	WakeUp      bool
	Sleeping    bool
	SleepChange bool
	FreeFall    bool
}

// ReadWakeUpSources reads and decodes WAKE_UP_SRC.
func (d *Dev) ReadWakeUpSources() (WakeUpSources, error) {
	var s WakeUpSources
	v, err := d.t.readReg(regWakeUpSrc)
	if err != nil {
		return s, err
	}
	s.Z = v&0x01 != 0
	s.Y = v&0x02 != 0
	s.X = v&0x04 != 0
	s.WakeUp = v&0x08 != 0
	s.Sleeping = v&0x10 != 0
	s.FreeFall = v&0x20 != 0
	s.SleepChange = v&0x40 != 0
	return s, nil
}

// FreeFallThreshold is the free-fall detection threshold.
type FreeFallThreshold byte

const (
	FreeFall156mg FreeFallThreshold = 0
	FreeFall219mg FreeFallThreshold = 1
	FreeFall250mg FreeFallThreshold = 2
	FreeFall312mg FreeFallThreshold = 3
	FreeFall344mg FreeFallThreshold = 4
	FreeFall406mg FreeFallThreshold = 5
	FreeFall469mg FreeFallThreshold = 6
	FreeFall500mg FreeFallThreshold = 7
)

// SetFreeFall programs the free-fall detector. dur is the minimum event
// duration in samples, 6 bits split across two registers.
func (d *Dev) SetFreeFall(ths FreeFallThreshold, dur byte) error {
	if dur > 0x3F {
		return errors.New("iis2dulpx: free-fall duration out of range")
	}
	v := byte(ths)&ffThsMask | (dur&0x1F)<<ffDurPos
	if err := d.t.updateReg(regFreeFall, ffThsMask|ffDurMask, v); err != nil {
		return err
	}
	msb := byte(0)
	if dur&0x20 != 0 {
		msb = wakeDurFFDurMSB
	}
	return d.t.updateReg(regWakeUpDur, wakeDurFFDurMSB, msb)
}

// SixDThreshold is the angle threshold of the orientation detector.
type SixDThreshold byte

const (
	SixD80Deg SixDThreshold = 0
	SixD70Deg SixDThreshold = 1
	SixD60Deg SixDThreshold = 2
	SixD50Deg SixDThreshold = 3
)

// SetSixD programs the 6D/4D orientation detector. fourD masks the Z axis
// positions so only the four portrait/landscape ones are reported.
func (d *Dev) SetSixD(ths SixDThreshold, fourD bool) error {
	v := byte(ths) << sixdThsPos
	if fourD {
		v |= sixdD4DEn
	}
	return d.t.updateReg(regSixD, sixdThsMask|sixdD4DEn, v)
}

// SixDSources is the decoded orientation state.
type SixDSources struct {
	XL, XH, YL, YH, ZL, ZH bool
	// Change is set when a new stable orientation was detected.
	Change bool
}

// ReadSixDSources reads and decodes SIXD_SRC.
func (d *Dev) ReadSixDSources() (SixDSources, error) {
	var s SixDSources
	v, err := d.t.readReg(regSixDSrc)
	if err != nil {
		return s, err
	}
	s.XL = v&0x01 != 0
	s.XH = v&0x02 != 0
	s.YL = v&0x04 != 0
	s.YH = v&0x08 != 0
	s.ZL = v&0x10 != 0
	s.ZH = v&0x20 != 0
	s.Change = v&0x40 != 0
	return s, nil
}

// TapAxis selects the axis the tap detector listens on.
type TapAxis byte

const (
	TapNone TapAxis = 0
	TapX    TapAxis = 1
	TapY    TapAxis = 2
	TapZ    TapAxis = 3
)

// TapConfig configures the single/double/triple tap detector. All timing
// fields use the device's sample-count encodings.
type TapConfig struct {
	Axis TapAxis
	// InvertedPeak is the time window for the inverted peak, 5 bits.
	InvertedPeak byte
	// PreStillThreshold and PostStillThreshold bound the stillness before
	// and after the peak, 4 bits each.
	PreStillThreshold  byte
	PostStillThreshold byte
	// PeakThreshold is the minimum peak amplitude, 6 bits.
	PeakThreshold byte
	// ShockWait is the over-threshold time window, 6 bits.
	ShockWait byte
	// Latency is the dead time after a tap event, 4 bits.
	Latency byte
	// WaitEndLatency makes the event fire at the end of the latency window
	// instead of at detection.
	WaitEndLatency bool
	// Rebound is the rebound rejection time, 5 bits.
	Rebound byte
	// PreStillStart and PreStillN tune the pre-stillness measurement
	// window, 4 bits each.
	PreStillStart byte
	PreStillN     byte
	// SingleTap/DoubleTap/TripleTap enable the respective events.
	SingleTap bool
	DoubleTap bool
	TripleTap bool
}

// SetTap programs the tap detector across TAP_CFG0..TAP_CFG6. The registers
// are written in one auto-incremented burst.
func (d *Dev) SetTap(c TapConfig) error {
	var cfg [7]byte
	cfg[0] = byte(c.Axis)<<6 | c.InvertedPeak&0x1F
	cfg[1] = (c.PostStillThreshold&0x0F)<<4 | c.PreStillThreshold&0x0F
	cfg[2] = c.ShockWait & 0x3F
	cfg[3] = c.Latency & 0x0F
	if c.WaitEndLatency {
		cfg[3] |= 0x10
	}
	cfg[4] = c.PeakThreshold & 0x3F
	cfg[5] = c.Rebound & 0x1F
	if c.SingleTap {
		cfg[5] |= 0x20
	}
	if c.DoubleTap {
		cfg[5] |= 0x40
	}
	if c.TripleTap {
		cfg[5] |= 0x80
	}
	cfg[6] = (c.PreStillStart&0x0F)<<4 | c.PreStillN&0x0F
	return d.t.writeRegs(regTapCfg0, cfg[:])
}

// TapSources is the decoded tap event state.
type TapSources struct {
	SingleTap bool
	DoubleTap bool
	TripleTap bool
}

// ReadTapSources reads and decodes TAP_SRC.
func (d *Dev) ReadTapSources() (TapSources, error) {
	var s TapSources
	v, err := d.t.readReg(regTapSrc)
	if err != nil {
		return s, err
	}
	s.SingleTap = v&0x20 != 0
	s.DoubleTap = v&0x10 != 0
	s.TripleTap = v&0x08 != 0
	return s, nil
}
