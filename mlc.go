// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// MLCMode is the machine learning core scheduling mode.
type MLCMode byte

const (
	MLCOff MLCMode = 0
	MLCOn  MLCMode = 1
	// MLCBeforeFSM runs the core ahead of the state machine so its outputs
	// can feed FSM programs.
	MLCBeforeFSM MLCMode = 2
)

// MLCODR is the rate the machine learning core runs at.
type MLCODR byte

const (
	MLCODR12Hz5 MLCODR = 0
	MLCODR25Hz  MLCODR = 1
	MLCODR50Hz  MLCODR = 2
	MLCODR100Hz MLCODR = 3
	MLCODR200Hz MLCODR = 4
)

// SetMLC sets the machine learning core mode. The two enable bits live in
// different registers and are kept mutually exclusive.
func (d *Dev) SetMLC(m MLCMode) error {
	return d.withEmbedded(func() error {
		before := byte(0)
		if m == MLCBeforeFSM {
			before = embEnAMLCBefFSM
		}
		if err := d.t.updateReg(embFuncEnA, embEnAMLCBefFSM, before); err != nil {
			return err
		}
		on := byte(0)
		if m == MLCOn {
			on = embEnBMLC
		}
		return d.t.updateReg(embFuncEnB, embEnBMLC, on)
	})
}

// MLC returns the machine learning core mode.
func (d *Dev) MLC() (MLCMode, error) {
	m := MLCOff
	err := d.withEmbedded(func() error {
		enA, err := d.t.readReg(embFuncEnA)
		if err != nil {
			return err
		}
		enB, err := d.t.readReg(embFuncEnB)
		if err != nil {
			return err
		}
		switch {
		case enA&embEnAMLCBefFSM != 0:
			m = MLCBeforeFSM
		case enB&embEnBMLC != 0:
			m = MLCOn
		}
		return nil
	})
	return m, err
}

// MLCStatus returns the interrupt flag of each decision tree as a bit mask.
// The main page mirror register is used, so no bank switch happens.
func (d *Dev) MLCStatus() (byte, error) {
	return d.t.readReg(regMLCStMP)
}

// MLCOutputs reads the four decision tree output registers.
func (d *Dev) MLCOutputs() ([4]byte, error) {
	var out [4]byte
	err := d.withEmbedded(func() error {
		return d.t.readRegs(embMLC1Src, out[:])
	})
	return out, err
}

// SetMLCODR sets the machine learning core clock.
func (d *Dev) SetMLCODR(odr MLCODR) error {
	return d.withEmbedded(func() error {
		return d.t.updateReg(embMLCODR, mlcODRMask, byte(odr))
	})
}

// BatchMLCInFIFO pushes the decision tree outputs to the FIFO when they
// change.
func (d *Dev) BatchMLCInFIFO(enable bool) error {
	v := byte(0)
	if enable {
		v = embFIFOMLCEn
	}
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncFIFOEn, embFIFOMLCEn, v)
	})
}
