// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "encoding/binary"

// EmbFuncEvents is the embedded function event state. Reading it through
// ReadEmbFuncEvents does not disturb the latched pin interrupts; the main
// page mirror register is used.
type EmbFuncEvents struct {
	StepDetected bool
	Tilt         bool
	SigMotion    bool
}

// ReadEmbFuncEvents reads the embedded function event flags.
func (d *Dev) ReadEmbFuncEvents() (EmbFuncEvents, error) {
	var e EmbFuncEvents
	v, err := d.t.readReg(regEmbFuncStMP)
	if err != nil {
		return e, err
	}
	e.StepDetected = v&embStatusStepDet != 0
	e.Tilt = v&embStatusTilt != 0
	e.SigMotion = v&embStatusSigMot != 0
	return e, nil
}

// StepCounterConfig configures the pedometer.
type StepCounterConfig struct {
	Enable bool
	// BatchInFIFO pushes a step counter record to the FIFO on every count
	// change.
	BatchInFIFO bool
	// FalseStepRejection enables the false step rejection filter. It needs
	// the machine learning core running ahead of the FSM; SetStepCounter
	// turns that on as a side effect.
	FalseStepRejection bool
}

// SetStepCounter programs the pedometer.
func (d *Dev) SetStepCounter(c StepCounterConfig) error {
	err := d.withEmbedded(func() error {
		en := byte(0)
		if c.Enable {
			en = embEnAPedo
		}
		if err := d.t.updateReg(embFuncEnA, embEnAPedo, en); err != nil {
			return err
		}
		fifo := byte(0)
		if c.BatchInFIFO {
			fifo = embFIFOStepEn
		}
		return d.t.updateReg(embFuncFIFOEn, embFIFOStepEn, fifo)
	})
	if err != nil {
		return err
	}
	rej := byte(0)
	if c.FalseStepRejection {
		rej = pedoCmdFPRejection
		if err := d.SetMLC(MLCBeforeFSM); err != nil {
			return err
		}
	}
	var cmd [1]byte
	if err := d.PagedRead(pagPedoCmdReg, cmd[:]); err != nil {
		return err
	}
	cmd[0] = cmd[0]&^pedoCmdFPRejection | rej
	return d.PagedWrite(pagPedoCmdReg, cmd[:])
}

// Steps returns the pedometer count.
func (d *Dev) Steps() (uint16, error) {
	var buf [2]byte
	err := d.withEmbedded(func() error {
		return d.t.readRegs(embStepCounterL, buf[:])
	})
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ResetSteps zeroes the pedometer count.
func (d *Dev) ResetSteps() error {
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncSrc, embSrcPedoRstStep, embSrcPedoRstStep)
	})
}

// SetStepDebounce sets how many consecutive detected steps are needed
// before the counter starts counting.
func (d *Dev) SetStepDebounce(steps byte) error {
	return d.PagedWrite(pagPedoDebStepsCnf, []byte{steps})
}

// SetStepPeriod sets the timestamp delta between FIFO step records, in
// device time units.
func (d *Dev) SetStepPeriod(period uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], period)
	return d.PagedWrite(pagPedoScDeltaTL, buf[:])
}

// EnableTilt starts or stops the tilt detector.
func (d *Dev) EnableTilt(enable bool) error {
	v := byte(0)
	if enable {
		v = embEnATilt
	}
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncEnA, embEnATilt, v)
	})
}

// EnableSigMotion starts or stops the significant motion detector.
func (d *Dev) EnableSigMotion(enable bool) error {
	v := byte(0)
	if enable {
		v = embEnASigMot
	}
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncEnA, embEnASigMot, v)
	})
}

// EnableTimestamp starts or stops the internal timestamp counter.
func (d *Dev) EnableTimestamp(enable bool) error {
	v := byte(0)
	if enable {
		v = intCfgTimestampEn
	}
	return d.t.updateReg(regInterruptCfg, intCfgTimestampEn, v)
}

// Timestamp returns the 32-bit timestamp counter. One count is 10µs; the
// counter wraps after about 12 hours.
func (d *Dev) Timestamp() (uint32, error) {
	var buf [4]byte
	if err := d.t.readRegs(regTimestamp0, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
