// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// memBank selects which register bank the address space maps to.
type memBank byte

const (
	bankMain     memBank = 0
	bankEmbedded memBank = 1
)

func (d *Dev) setMemBank(b memBank) error {
	v := byte(0)
	if b == bankEmbedded {
		v = funcCfgEmbAccess
	}
	return d.t.updateReg(regFuncCfgAcc, funcCfgEmbAccess, v)
}

// withEmbedded runs fn with the embedded function bank mapped in. The main
// bank is restored no matter how fn fails; the first error wins.
func (d *Dev) withEmbedded(fn func() error) error {
	err := d.setMemBank(bankEmbedded)
	if err == nil {
		err = fn()
	}
	if rerr := d.setMemBank(bankMain); err == nil {
		err = rerr
	}
	return err
}
