// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "periph.io/x/conn/v3/physic"

// Sample is one acceleration reading.
type Sample struct {
	// Raw holds the X, Y and Z counts as they come out of the device.
	Raw [3]int16
	// MilliG holds the same axes converted with the current full-scale
	// sensitivity.
	MilliG [3]float64
}

// lsbToCelsius converts a raw temperature count. The zero count maps to
// 25°C.
func lsbToCelsius(raw int16) float64 {
	return float64(raw)/355.5 + 25.0
}

func lsbToTemperature(raw int16) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(lsbToCelsius(raw)*float64(physic.Celsius))
}

// lsbToMillivolt converts a raw Qvar count.
func lsbToMillivolt(raw int16) float64 {
	return float64(raw) / 74.4
}

// Acceleration reads the three output registers in one burst. The milli-g
// conversion uses the full-scale range from the last SetMode/ReadMode.
func (d *Dev) Acceleration() (Sample, error) {
	var s Sample
	var buf [6]byte
	if err := d.t.readRegs(regOutXL, buf[:]); err != nil {
		return s, err
	}
	for i := 0; i < 3; i++ {
		s.Raw[i] = int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8)
		s.MilliG[i] = d.fs.MilliG(s.Raw[i])
	}
	return s, nil
}

// TemperatureRaw returns the die temperature count. The output register pair
// is shared with the Qvar channel; the reading is only a temperature while
// Qvar is disabled.
func (d *Dev) TemperatureRaw() (int16, error) {
	var buf [2]byte
	if err := d.t.readRegs(regOutTAhQvarL, buf[:]); err != nil {
		return 0, err
	}
	return int16(uint16(buf[0]) | uint16(buf[1])<<8), nil
}

// Temperature returns the die temperature.
func (d *Dev) Temperature() (physic.Temperature, error) {
	raw, err := d.TemperatureRaw()
	if err != nil {
		return 0, err
	}
	return lsbToTemperature(raw), nil
}

// QVarGain is the analog hub input gain.
type QVarGain byte

const (
	QVarGain0_5 QVarGain = 0
	QVarGain1   QVarGain = 1
	QVarGain2   QVarGain = 2
	QVarGain4   QVarGain = 3
)

// QVarImpedance is the input impedance of the Qvar buffer.
type QVarImpedance byte

const (
	QVarImpedance2400MOhm QVarImpedance = 0
	QVarImpedance730MOhm  QVarImpedance = 1
	QVarImpedance300MOhm  QVarImpedance = 2
	QVarImpedance255MOhm  QVarImpedance = 3
)

// QVarConfig configures the analog hub / electrostatic sensing channel.
type QVarConfig struct {
	Enable    bool
	Gain      QVarGain
	Impedance QVarImpedance
	// NotchFilter cuts the power line frequency; NotchCutoff picks between
	// the two supported frequencies.
	NotchFilter bool
	NotchCutoff bool
}

// SetQVar configures the Qvar channel. While enabled the temperature output
// registers carry Qvar potential instead.
func (d *Dev) SetQVar(c QVarConfig) error {
	v := byte(c.Gain)<<qvarGainPos | byte(c.Impedance)<<qvarCZinPos
	if c.Enable {
		v |= qvarEn
	}
	if c.NotchFilter {
		v |= qvarNotchEn
	}
	if c.NotchCutoff {
		v |= qvarNotchCutoff
	}
	mask := qvarEn | qvarNotchEn | qvarNotchCutoff | qvarGainMask | qvarCZinMask
	return d.t.updateReg(regAhQvarCfg, mask, v)
}

// QVarMillivolt reads the Qvar channel in millivolt.
func (d *Dev) QVarMillivolt() (float64, error) {
	raw, err := d.TemperatureRaw()
	if err != nil {
		return 0, err
	}
	return lsbToMillivolt(raw), nil
}

// DisableTempQVar stops the temperature / Qvar acquisition chain to shave
// off its supply current.
func (d *Dev) DisableTempQVar(disable bool) error {
	v := byte(0)
	if disable {
		v = selfTestTQvarDis
	}
	return d.t.updateReg(regSelfTest, selfTestTQvarDis, v)
}
