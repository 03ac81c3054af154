// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// DebugF is the debug print function type. It is never called unless set
// through Opts.Debug.
type DebugF func(string, ...interface{})

// transport hides the I²C/SPI split from the register accessors. Exactly one
// of d or conn is set. The SPI protocol sets bit 7 of the register address on
// reads; the address auto-increments on multi-byte transfers on both buses.
type transport struct {
	d     *i2c.Dev
	conn  spi.Conn
	debug DebugF
}

func (t *transport) readRegs(reg byte, buf []byte) error {
	t.debug("read %#02x len %d", reg, len(buf))
	if t.d != nil {
		err := t.d.Tx([]byte{reg}, buf)
		t.debug("read %#02x -> % #02x (%v)", reg, buf, err)
		return err
	}
	w := make([]byte, len(buf)+1)
	r := make([]byte, len(buf)+1)
	w[0] = 0x80 | reg
	if err := t.conn.Tx(w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	t.debug("read %#02x -> % #02x", reg, buf)
	return nil
}

func (t *transport) readReg(reg byte) (byte, error) {
	var buf [1]byte
	err := t.readRegs(reg, buf[:])
	return buf[0], err
}

func (t *transport) writeRegs(reg byte, data []byte) error {
	t.debug("write %#02x <- % #02x", reg, data)
	w := make([]byte, len(data)+1)
	w[0] = reg
	copy(w[1:], data)
	if t.d != nil {
		return t.d.Tx(w, nil)
	}
	return t.conn.Tx(w, nil)
}

func (t *transport) writeReg(reg, value byte) error {
	return t.writeRegs(reg, []byte{value})
}

// updateReg does a read-modify-write cycle so that the bits outside mask are
// left as the device currently has them. The device registers are never
// shadowed in memory.
func (t *transport) updateReg(reg, mask, value byte) error {
	current, err := t.readReg(reg)
	if err != nil {
		return err
	}
	next := (current &^ mask) | (value & mask)
	return t.writeReg(reg, next)
}

func noop(string, ...interface{}) {}
