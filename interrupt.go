// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// IntMode controls how interrupt events reach the pins.
type IntMode byte

const (
	// IntDisabled keeps all event interrupts off the pins.
	IntDisabled IntMode = 0
	// IntLevel drives the pin for as long as the condition holds.
	IntLevel IntMode = 1
	// IntLatched drives the pin until the source register is read.
	IntLatched IntMode = 2
)

// SetIntMode enables or disables the event interrupts and picks the
// level/latched behavior. sleepStatus replaces the sleep-change event with
// the raw sleep status on the pin. keepLatchedOnRead keeps latched
// interrupts from being cleared by a read of ALL_INT_SRC.
func (d *Dev) SetIntMode(m IntMode, sleepStatus, keepLatchedOnRead bool) error {
	v := byte(0)
	switch m {
	case IntLevel:
		v = intCfgEnable
	case IntLatched:
		v = intCfgEnable | intCfgLIR
	}
	if sleepStatus {
		v |= intCfgSleepStatus
	}
	if keepLatchedOnRead {
		v |= intCfgDisRstLIR
	}
	mask := intCfgEnable | intCfgLIR | intCfgSleepStatus | intCfgDisRstLIR
	return d.t.updateReg(regInterruptCfg, mask, v)
}

// IntRoute selects which events are routed to one interrupt pin.
type IntRoute struct {
	DataReady bool
	FIFOOvr   bool
	FIFOTh    bool
	FIFOFull  bool
	Boot      bool
	// IntOnReset drives INT1 during the reset sequence. Only honored by
	// SetInt1Route; the device has no INT2 counterpart.
	IntOnReset bool

	EmbFunc     bool
	Timestamp   bool
	SixD        bool
	Tap         bool
	FreeFall    bool
	WakeUp      bool
	SleepChange bool
}

func (r *IntRoute) mdBits() byte {
	v := byte(0)
	if r.EmbFunc {
		v |= mdCfgEmbFunc
	}
	if r.Timestamp {
		v |= mdCfgTimestamp
	}
	if r.SixD {
		v |= mdCfgSixD
	}
	if r.Tap {
		v |= mdCfgTap
	}
	if r.FreeFall {
		v |= mdCfgFreeFall
	}
	if r.WakeUp {
		v |= mdCfgWakeUp
	}
	if r.SleepChange {
		v |= mdCfgSleepChange
	}
	return v
}

func (r *IntRoute) fromMDBits(v byte) {
	r.EmbFunc = v&mdCfgEmbFunc != 0
	r.Timestamp = v&mdCfgTimestamp != 0
	r.SixD = v&mdCfgSixD != 0
	r.Tap = v&mdCfgTap != 0
	r.FreeFall = v&mdCfgFreeFall != 0
	r.WakeUp = v&mdCfgWakeUp != 0
	r.SleepChange = v&mdCfgSleepChange != 0
}

const mdCfgAll = mdCfgEmbFunc | mdCfgTimestamp | mdCfgSixD | mdCfgTap |
	mdCfgFreeFall | mdCfgWakeUp | mdCfgSleepChange

// SetInt1Route routes events to the INT1 pin.
func (d *Dev) SetInt1Route(r *IntRoute) error {
	onRes := byte(0)
	if r.IntOnReset {
		onRes = ctrl1Int1OnRes
	}
	if err := d.t.updateReg(regCtrl1, ctrl1Int1OnRes, onRes); err != nil {
		return err
	}
	v := byte(0)
	if r.DataReady {
		v |= ctrl2Int1Drdy
	}
	if r.FIFOOvr {
		v |= ctrl2Int1FIFOOvr
	}
	if r.FIFOTh {
		v |= ctrl2Int1FIFOTh
	}
	if r.FIFOFull {
		v |= ctrl2Int1FIFOFull
	}
	if r.Boot {
		v |= ctrl2Int1Boot
	}
	mask := ctrl2Int1Drdy | ctrl2Int1FIFOOvr | ctrl2Int1FIFOTh | ctrl2Int1FIFOFull | ctrl2Int1Boot
	if err := d.t.updateReg(regCtrl2, mask, v); err != nil {
		return err
	}
	return d.t.updateReg(regMD1Cfg, mdCfgAll, r.mdBits())
}

// Int1Route returns the INT1 routing.
func (d *Dev) Int1Route() (IntRoute, error) {
	var r IntRoute
	ctrl1, err := d.t.readReg(regCtrl1)
	if err != nil {
		return r, err
	}
	ctrl2, err := d.t.readReg(regCtrl2)
	if err != nil {
		return r, err
	}
	md1, err := d.t.readReg(regMD1Cfg)
	if err != nil {
		return r, err
	}
	r.IntOnReset = ctrl1&ctrl1Int1OnRes != 0
	r.DataReady = ctrl2&ctrl2Int1Drdy != 0
	r.FIFOOvr = ctrl2&ctrl2Int1FIFOOvr != 0
	r.FIFOTh = ctrl2&ctrl2Int1FIFOTh != 0
	r.FIFOFull = ctrl2&ctrl2Int1FIFOFull != 0
	r.Boot = ctrl2&ctrl2Int1Boot != 0
	r.fromMDBits(md1)
	return r, nil
}

// SetInt2Route routes events to the INT2 pin.
func (d *Dev) SetInt2Route(r *IntRoute) error {
	v := byte(0)
	if r.DataReady {
		v |= ctrl3Int2Drdy
	}
	if r.FIFOOvr {
		v |= ctrl3Int2FIFOOvr
	}
	if r.FIFOTh {
		v |= ctrl3Int2FIFOTh
	}
	if r.FIFOFull {
		v |= ctrl3Int2FIFOFull
	}
	if r.Boot {
		v |= ctrl3Int2Boot
	}
	mask := ctrl3Int2Drdy | ctrl3Int2FIFOOvr | ctrl3Int2FIFOTh | ctrl3Int2FIFOFull | ctrl3Int2Boot
	if err := d.t.updateReg(regCtrl3, mask, v); err != nil {
		return err
	}
	return d.t.updateReg(regMD2Cfg, mdCfgAll, r.mdBits())
}

// Int2Route returns the INT2 routing.
func (d *Dev) Int2Route() (IntRoute, error) {
	var r IntRoute
	ctrl3, err := d.t.readReg(regCtrl3)
	if err != nil {
		return r, err
	}
	md2, err := d.t.readReg(regMD2Cfg)
	if err != nil {
		return r, err
	}
	r.DataReady = ctrl3&ctrl3Int2Drdy != 0
	r.FIFOOvr = ctrl3&ctrl3Int2FIFOOvr != 0
	r.FIFOTh = ctrl3&ctrl3Int2FIFOTh != 0
	r.FIFOFull = ctrl3&ctrl3Int2FIFOFull != 0
	r.Boot = ctrl3&ctrl3Int2Boot != 0
	r.fromMDBits(md2)
	return r, nil
}

// AllIntSources is the latched event state, cleared on read when latched
// mode is active.
type AllIntSources struct {
	FreeFall    bool
	WakeUp      bool
	SingleTap   bool
	DoubleTap   bool
	TripleTap   bool
	SixD        bool
	SleepChange bool
}

// ReadAllIntSources reads and decodes ALL_INT_SRC.
func (d *Dev) ReadAllIntSources() (AllIntSources, error) {
	var s AllIntSources
	v, err := d.t.readReg(regAllIntSrc)
	if err != nil {
		return s, err
	}
	s.FreeFall = v&0x01 != 0
	s.WakeUp = v&0x02 != 0
	s.SingleTap = v&0x04 != 0
	s.DoubleTap = v&0x08 != 0
	s.TripleTap = v&0x10 != 0
	s.SixD = v&0x20 != 0
	s.SleepChange = v&0x40 != 0
	return s, nil
}

// EmbFuncIntRoute selects which embedded function events reach a pin.
type EmbFuncIntRoute struct {
	StepDetect bool
	Tilt       bool
	SigMotion  bool
	FSMLongCnt bool
}

func (r *EmbFuncIntRoute) bits() byte {
	v := byte(0)
	if r.StepDetect {
		v |= embIntStepDet
	}
	if r.Tilt {
		v |= embIntTilt
	}
	if r.SigMotion {
		v |= embIntSigMot
	}
	if r.FSMLongCnt {
		v |= embIntFSMLC
	}
	return v
}

const embIntAll = embIntStepDet | embIntTilt | embIntSigMot | embIntFSMLC

// SetEmbFuncInt1Route routes embedded function events to INT1. The
// embedded-function event bit of the pin is forced on whenever any event is
// routed.
func (d *Dev) SetEmbFuncInt1Route(r *EmbFuncIntRoute) error {
	v := r.bits()
	err := d.withEmbedded(func() error {
		return d.t.updateReg(embFuncInt1, embIntAll, v)
	})
	if err != nil {
		return err
	}
	md := byte(0)
	if v != 0 {
		md = mdCfgEmbFunc
	}
	return d.t.updateReg(regMD1Cfg, mdCfgEmbFunc, md)
}

// SetEmbFuncInt2Route routes embedded function events to INT2.
func (d *Dev) SetEmbFuncInt2Route(r *EmbFuncIntRoute) error {
	v := r.bits()
	err := d.withEmbedded(func() error {
		return d.t.updateReg(embFuncInt2, embIntAll, v)
	})
	if err != nil {
		return err
	}
	md := byte(0)
	if v != 0 {
		md = mdCfgEmbFunc
	}
	return d.t.updateReg(regMD2Cfg, mdCfgEmbFunc, md)
}

// SetEmbFuncIntLatched makes the embedded function interrupts latched
// instead of pulsed.
func (d *Dev) SetEmbFuncIntLatched(latched bool) error {
	v := byte(0)
	if latched {
		v = pageRWEmbLIR
	}
	return d.withEmbedded(func() error {
		return d.t.updateReg(embPageRW, pageRWEmbLIR, v)
	})
}
