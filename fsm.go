// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "encoding/binary"

// FSMODR is the rate the finite state machine programs run at.
type FSMODR byte

const (
	FSMODR12Hz5 FSMODR = 0
	FSMODR25Hz  FSMODR = 1
	FSMODR50Hz  FSMODR = 2
	FSMODR100Hz FSMODR = 3
	FSMODR200Hz FSMODR = 4
	FSMODR400Hz FSMODR = 5
	FSMODR800Hz FSMODR = 6
)

// SetFSMEnable enables individual state machine programs; bit n of programs
// enables program n+1. The master enable follows: it is set while any
// program runs and cleared when none does.
func (d *Dev) SetFSMEnable(programs byte) error {
	return d.withEmbedded(func() error {
		if err := d.t.writeReg(embFSMEnable, programs); err != nil {
			return err
		}
		en := byte(0)
		if programs != 0 {
			en = embEnBFSM
		}
		return d.t.updateReg(embFuncEnB, embEnBFSM, en)
	})
}

// FSMEnable returns the per-program enable mask.
func (d *Dev) FSMEnable() (byte, error) {
	var v byte
	err := d.withEmbedded(func() error {
		var err error
		v, err = d.t.readReg(embFSMEnable)
		return err
	})
	return v, err
}

// FSMStatus returns the interrupt flag of each program as a bit mask. The
// main page mirror register is used, so no bank switch happens.
func (d *Dev) FSMStatus() (byte, error) {
	return d.t.readReg(regFSMStMP)
}

// FSMOutputs reads the output register of the eight programs.
func (d *Dev) FSMOutputs() ([8]byte, error) {
	var out [8]byte
	err := d.withEmbedded(func() error {
		return d.t.readRegs(embFSMOuts1, out[:])
	})
	return out, err
}

// SetFSMODR sets the state machine clock.
func (d *Dev) SetFSMODR(odr FSMODR) error {
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFSMODR, fsmODRMask, byte(odr)<<fsmODRPos)
	})
}

// FSMLongCounter returns the long counter shared by the programs.
func (d *Dev) FSMLongCounter() (uint16, error) {
	var buf [2]byte
	err := d.withEmbedded(func() error {
		return d.t.readRegs(embFSMLongCountL, buf[:])
	})
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// SetFSMLongCounter presets the long counter.
func (d *Dev) SetFSMLongCounter(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return d.withEmbedded(func() error {
		return d.t.writeRegs(embFSMLongCountL, buf[:])
	})
}

// SetFSMLongCounterTimeout sets the value whose match raises the long
// counter interrupt.
func (d *Dev) SetFSMLongCounterTimeout(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return d.PagedWrite(pagFSMLCTimeoutL, buf[:])
}

// FSMLongCounterTimeout returns the long counter interrupt threshold.
func (d *Dev) FSMLongCounterTimeout() (uint16, error) {
	var buf [2]byte
	if err := d.PagedRead(pagFSMLCTimeoutL, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// SetFSMProgramCount tells the program parser how many programs are loaded.
func (d *Dev) SetFSMProgramCount(n byte) error {
	return d.PagedWrite(pagFSMPrograms, []byte{n})
}

// FSMProgramCount returns the loaded program count.
func (d *Dev) FSMProgramCount() (byte, error) {
	var buf [1]byte
	err := d.PagedRead(pagFSMPrograms, buf[:])
	return buf[0], err
}

// SetFSMStartAddress sets where in the embedded advanced space the first
// program starts.
func (d *Dev) SetFSMStartAddress(addr uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], addr)
	return d.PagedWrite(pagFSMStartAddL, buf[:])
}

// FSMStartAddress returns the first program address.
func (d *Dev) FSMStartAddress() (uint16, error) {
	var buf [2]byte
	if err := d.PagedRead(pagFSMStartAddL, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// InitFSM requests a reset of the state machine block.
func (d *Dev) InitFSM() error {
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncInitB, embInitBFSM, embInitBFSM)
	})
}

// BatchFSMInFIFO pushes the FSM outputs to the FIFO when they change.
func (d *Dev) BatchFSMInFIFO(enable bool) error {
	v := byte(0)
	if enable {
		v = embFIFOFSMEn
	}
	return d.withEmbedded(func() error {
		return d.t.updateReg(embFuncFIFOEn, embFIFOFSMEn, v)
	})
}
