// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// DataRate selects the output data rate and the power mode. The low 4 bits
// are what CTRL5 takes; bit 4 marks the high-performance variants, which
// share the CTRL5 encoding with low-power and are told apart by CTRL3.HP_EN.
type DataRate byte

const (
	ODROff DataRate = 0x00

	// Ultra low-power. Bandwidth is fixed by the device in this mode.
	ODR1Hz6ULP DataRate = 0x01
	ODR3HzULP  DataRate = 0x02
	ODR25HzULP DataRate = 0x03

	// Low-power.
	ODR6HzLP   DataRate = 0x04
	ODR12Hz5LP DataRate = 0x05
	ODR25HzLP  DataRate = 0x06
	ODR50HzLP  DataRate = 0x07
	ODR100HzLP DataRate = 0x08
	ODR200HzLP DataRate = 0x09
	ODR400HzLP DataRate = 0x0A
	ODR800HzLP DataRate = 0x0B

	// High-performance.
	ODR6HzHP   DataRate = 0x14
	ODR12Hz5HP DataRate = 0x15
	ODR25HzHP  DataRate = 0x16
	ODR50HzHP  DataRate = 0x17
	ODR100HzHP DataRate = 0x18
	ODR200HzHP DataRate = 0x19
	ODR400HzHP DataRate = 0x1A
	ODR800HzHP DataRate = 0x1B

	// Single conversion triggered by the INT2 pin or by TriggerOneShot.
	ODRTrigPin DataRate = 0x0E
	ODRTrigSW  DataRate = 0x0F
)

func (r DataRate) String() string {
	switch r {
	case ODROff:
		return "off"
	case ODR1Hz6ULP:
		return "1.6Hz ultra low-power"
	case ODR3HzULP:
		return "3Hz ultra low-power"
	case ODR25HzULP:
		return "25Hz ultra low-power"
	case ODR6HzLP, ODR6HzHP:
		return orHP(r, "6Hz")
	case ODR12Hz5LP, ODR12Hz5HP:
		return orHP(r, "12.5Hz")
	case ODR25HzLP, ODR25HzHP:
		return orHP(r, "25Hz")
	case ODR50HzLP, ODR50HzHP:
		return orHP(r, "50Hz")
	case ODR100HzLP, ODR100HzHP:
		return orHP(r, "100Hz")
	case ODR200HzLP, ODR200HzHP:
		return orHP(r, "200Hz")
	case ODR400HzLP, ODR400HzHP:
		return orHP(r, "400Hz")
	case ODR800HzLP, ODR800HzHP:
		return orHP(r, "800Hz")
	case ODRTrigPin:
		return "single-shot (pin trigger)"
	case ODRTrigSW:
		return "single-shot (software trigger)"
	}
	return "unknown rate"
}

func orHP(r DataRate, base string) string {
	if r.highPerformance() {
		return base + " high-performance"
	}
	return base + " low-power"
}

// highPerformance reports whether the rate belongs to the HP family.
func (r DataRate) highPerformance() bool {
	return byte(r)&0x30 == 0x10
}

func (r DataRate) ultraLowPower() bool {
	return r >= ODR1Hz6ULP && r <= ODR25HzULP
}

// FullScale is the measurement range of the accelerometer.
type FullScale byte

const (
	FS2g  FullScale = 0
	FS4g  FullScale = 1
	FS8g  FullScale = 2
	FS16g FullScale = 3
)

func (fs FullScale) String() string {
	switch fs {
	case FS2g:
		return "±2g"
	case FS4g:
		return "±4g"
	case FS8g:
		return "±8g"
	case FS16g:
		return "±16g"
	}
	return "unknown range"
}

// Sensitivity returns the weight of one 16-bit LSB in milli-g.
func (fs FullScale) Sensitivity() float64 {
	switch fs {
	case FS4g:
		return 0.122
	case FS8g:
		return 0.244
	case FS16g:
		return 0.488
	}
	return 0.061
}

// MilliG converts a raw 16-bit sample to milli-g for this range.
func (fs FullScale) MilliG(raw int16) float64 {
	return float64(raw) * fs.Sensitivity()
}

// Bandwidth selects the digital filter cutoff as a fraction of the ODR.
type Bandwidth byte

const (
	BWOdrDiv2  Bandwidth = 0
	BWOdrDiv4  Bandwidth = 1
	BWOdrDiv8  Bandwidth = 2
	BWOdrDiv16 Bandwidth = 3
)

func (bw Bandwidth) String() string {
	switch bw {
	case BWOdrDiv2:
		return "ODR/2"
	case BWOdrDiv4:
		return "ODR/4"
	case BWOdrDiv8:
		return "ODR/8"
	case BWOdrDiv16:
		return "ODR/16"
	}
	return "unknown bandwidth"
}

// Mode is the sampling configuration of the accelerometer.
type Mode struct {
	ODR DataRate
	FS  FullScale
	BW  Bandwidth
}

// validBandwidth reports whether the filter setting can actually be produced
// at the requested rate. The slow low-power rates only support a subset.
func validBandwidth(odr DataRate, bw Bandwidth) bool {
	switch odr {
	case ODR6HzLP:
		return bw == BWOdrDiv16
	case ODR12Hz5LP:
		return bw == BWOdrDiv8 || bw == BWOdrDiv16
	case ODR25HzLP:
		return bw == BWOdrDiv4 || bw == BWOdrDiv8 || bw == BWOdrDiv16
	}
	return true
}

// SetMode programs the rate, range and filter bandwidth. Rates below 50Hz in
// low-power mode restrict the usable bandwidths; an InvalidModeError is
// returned before anything is written in that case. Ultra low-power rates
// ignore the bandwidth field, the filter is fixed by the device.
func (d *Dev) SetMode(m Mode) error {
	bw := m.BW
	if m.ODR.ultraLowPower() {
		bw = 0
	} else if !validBandwidth(m.ODR, bw) {
		return &InvalidModeError{ODR: m.ODR, BW: bw}
	}
	v := (byte(m.ODR)&0x0F)<<ctrl5ODRPos | byte(bw)<<ctrl5BWPos | byte(m.FS)&ctrl5FSMask
	if err := d.t.updateReg(regCtrl5, ctrl5ODRMask|ctrl5BWMask|ctrl5FSMask, v); err != nil {
		return err
	}
	hp := byte(0)
	if m.ODR.highPerformance() {
		hp = ctrl3HPEn
	}
	if err := d.t.updateReg(regCtrl3, ctrl3HPEn, hp); err != nil {
		return err
	}
	d.fs = m.FS
	return nil
}

// ReadMode returns the configuration as the device currently has it,
// reassembling the low-power/high-performance split from CTRL3.
func (d *Dev) ReadMode() (Mode, error) {
	var m Mode
	ctrl5, err := d.t.readReg(regCtrl5)
	if err != nil {
		return m, err
	}
	ctrl3, err := d.t.readReg(regCtrl3)
	if err != nil {
		return m, err
	}
	m.ODR = DataRate(ctrl5 >> ctrl5ODRPos)
	if ctrl3&ctrl3HPEn != 0 && m.ODR >= ODR6HzLP && m.ODR <= ODR800HzLP {
		m.ODR |= 0x10
	}
	m.BW = Bandwidth((ctrl5 & ctrl5BWMask) >> ctrl5BWPos)
	m.FS = FullScale(ctrl5 & ctrl5FSMask)
	d.fs = m.FS
	return m, nil
}

// TriggerOneShot starts a single conversion when the rate is ODRTrigSW.
// The started conversion can be awaited through Status.
func (d *Dev) TriggerOneShot() error {
	ctrl5, err := d.t.readReg(regCtrl5)
	if err != nil {
		return err
	}
	if DataRate(ctrl5>>ctrl5ODRPos) != ODRTrigSW {
		return &InvalidModeError{ODR: DataRate(ctrl5 >> ctrl5ODRPos), BW: 0}
	}
	return d.t.updateReg(regCtrl4, ctrl4SOC, ctrl4SOC)
}
