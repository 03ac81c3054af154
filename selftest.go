// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "fmt"

// SelfTestSign is the direction the self-test actuation pushes each axis.
type SelfTestSign struct {
	XNegative bool
	YNegative bool
	ZNegative bool
}

// SetSelfTestSign sets the actuation direction. The Z sign lives in a
// different register than X and Y.
func (d *Dev) SetSelfTestSign(s SelfTestSign) error {
	v := byte(0)
	if s.XNegative {
		v |= ctrl3STSignX
	}
	if s.YNegative {
		v |= ctrl3STSignY
	}
	if err := d.t.updateReg(regCtrl3, ctrl3STSignX|ctrl3STSignY, v); err != nil {
		return err
	}
	z := byte(0)
	if s.ZNegative {
		z = wakeDurSTSignZ
	}
	return d.t.updateReg(regWakeUpDur, wakeDurSTSignZ, z)
}

// StartSelfTest starts the self-test actuation. The procedure runs in two
// phases; phase must be 1 or 2, in order. Output deltas between the phases
// tell a healthy sensing element apart from a broken one.
func (d *Dev) StartSelfTest(phase int) error {
	if phase != 1 && phase != 2 {
		return fmt.Errorf("iis2dulpx: self-test phase %d out of range, must be 1 or 2", phase)
	}
	return d.t.updateReg(regSelfTest, selfTestSTMask, byte(phase)<<selfTestSTPos)
}

// StopSelfTest ends the self-test actuation.
func (d *Dev) StopSelfTest() error {
	return d.t.updateReg(regSelfTest, selfTestSTMask, 0)
}
