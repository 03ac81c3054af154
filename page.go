// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// PagedWrite writes buf to the embedded advanced configuration space at
// address. The high byte of address is the 4-bit page, the low byte the
// offset inside the page. The page address register auto-increments, so it
// is written once per page; crossing offset 0xFF re-selects the next page.
//
// The page selector, the page mode bits and the register bank are restored
// on every exit path, even after a bus error. The first error is reported.
func (d *Dev) PagedWrite(address uint16, buf []byte) error {
	page := byte(address>>8) & 0x0F
	offset := byte(address)

	err := d.setMemBank(bankEmbedded)
	if err == nil {
		err = d.pagedWrite(page, offset, buf)
	}
	err = d.pagedRestore(err)
	if rerr := d.setMemBank(bankMain); err == nil {
		err = rerr
	}
	return err
}

func (d *Dev) pagedWrite(page, offset byte, buf []byte) error {
	if err := d.t.updateReg(embPageRW, pageRWRead|pageRWWrite, pageRWWrite); err != nil {
		return err
	}
	if err := d.t.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<pageSelPos|pageSelFixed); err != nil {
		return err
	}
	if err := d.t.writeReg(embPageAddress, offset); err != nil {
		return err
	}
	for _, b := range buf {
		if err := d.t.writeReg(embPageValue, b); err != nil {
			return err
		}
		offset++
		if offset == 0x00 {
			page++
			if err := d.t.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<pageSelPos|pageSelFixed); err != nil {
				return err
			}
		}
	}
	return nil
}

// PagedRead reads len(buf) bytes from the embedded advanced configuration
// space at address. Unlike writes, the device does not support sequential
// reads of the page value register, so the page address is rewritten before
// every byte. Restoration behaves as in PagedWrite.
func (d *Dev) PagedRead(address uint16, buf []byte) error {
	page := byte(address>>8) & 0x0F
	offset := byte(address)

	err := d.setMemBank(bankEmbedded)
	if err == nil {
		err = d.pagedRead(page, offset, buf)
	}
	err = d.pagedRestore(err)
	if rerr := d.setMemBank(bankMain); err == nil {
		err = rerr
	}
	return err
}

func (d *Dev) pagedRead(page, offset byte, buf []byte) error {
	if err := d.t.updateReg(embPageRW, pageRWRead|pageRWWrite, pageRWRead); err != nil {
		return err
	}
	if err := d.t.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<pageSelPos|pageSelFixed); err != nil {
		return err
	}
	for i := range buf {
		if err := d.t.writeReg(embPageAddress, offset); err != nil {
			return err
		}
		v, err := d.t.readReg(embPageValue)
		if err != nil {
			return err
		}
		buf[i] = v
		offset++
		if offset == 0x00 {
			page++
			if err := d.t.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<pageSelPos|pageSelFixed); err != nil {
				return err
			}
		}
	}
	return nil
}

// pagedRestore parks the page selector back on page 0 and leaves page mode.
// It runs regardless of a previous failure and keeps the first error.
func (d *Dev) pagedRestore(err error) error {
	if rerr := d.t.updateReg(embPageSel, pageSelMask|pageSelFixed, pageSelFixed); err == nil {
		err = rerr
	}
	if rerr := d.t.updateReg(embPageRW, pageRWRead|pageRWWrite, 0); err == nil {
		err = rerr
	}
	return err
}
