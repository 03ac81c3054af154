// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	bootAttempts   = 5
	bootPollEvery  = 25 * time.Millisecond
	resetAttempts  = 5
	resetPollEvery = time.Millisecond
	powerUpSettle  = 25 * time.Millisecond
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Mode applied at construction time. The zero value leaves the
	// accelerometer off.
	Mode Mode
	// EnableEmbeddedFuncs also clocks the embedded function block (step
	// counter, FSM, MLC, tilt, significant motion).
	EnableEmbeddedFuncs bool
	// Delay is called between polls of the boot and reset flags and after
	// leaving deep power-down. Nil means poll back to back without waiting,
	// which only makes sense against a recorded bus. Pass time.Sleep for
	// real hardware.
	Delay func(time.Duration)
	// Debug receives a trace of every register access when set.
	Debug DebugF
}

// DefaultOpts is the recommended default options: 25Hz low-power at ±2g,
// waiting with time.Sleep.
var DefaultOpts = Opts{
	Mode:  Mode{ODR: ODR25HzLP, FS: FS2g, BW: BWOdrDiv4},
	Delay: time.Sleep,
}

// Dev is a handle to an IIS2DULPX.
//
// Methods must not be called concurrently; the device requires its register
// sequences to not interleave and the driver does not serialize them.
type Dev struct {
	t        transport
	name     string
	opts     Opts
	fs       FullScale
	xlOnly   bool
	delay    func(time.Duration)
	shutdown chan struct{}
}

// NewI2C returns a device handle on an I²C bus. Use DefaultAddress unless
// SA0 is pulled high.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("iis2dulpx: nil I²C bus")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		t:    transport{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop},
		name: fmt.Sprintf("iis2dulpx{%s, %#02x}", b, addr),
		opts: *opts,
	}
	return d, d.start()
}

// NewSPI returns a device handle on a SPI port. The device supports mode 3
// (and mode 0) up to 10MHz.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if p == nil {
		return nil, errors.New("iis2dulpx: nil SPI port")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("iis2dulpx: %w", err)
	}
	d := &Dev{
		t:    transport{conn: c, debug: noop},
		name: fmt.Sprintf("iis2dulpx{%s}", c),
		opts: *opts,
	}
	return d, d.start()
}

func (d *Dev) start() error {
	d.delay = d.opts.Delay
	if d.opts.Debug != nil {
		d.t.debug = d.opts.Debug
	}
	id, err := d.t.readReg(regWhoAmI)
	if err != nil {
		return err
	}
	if id != DeviceID {
		return &IDMismatchError{Got: id}
	}
	embed := byte(0)
	if d.opts.EnableEmbeddedFuncs {
		embed = ctrl4EmbFuncEn
	}
	if err := d.t.updateReg(regCtrl4, ctrl4BDU|ctrl4EmbFuncEn, ctrl4BDU|embed); err != nil {
		return err
	}
	if err := d.t.updateReg(regCtrl1, ctrl1IfAddInc, ctrl1IfAddInc); err != nil {
		return err
	}
	if d.opts.Mode != (Mode{}) {
		return d.SetMode(d.opts.Mode)
	}
	return nil
}

func (d *Dev) sleep(t time.Duration) {
	if d.delay != nil {
		d.delay(t)
	}
}

// Status is the sampling state of the device.
type Status struct {
	// DataReady is set when a new acceleration sample is available.
	DataReady bool
	// GlobalInt is set while any enabled event interrupt is active; the
	// source registers tell which one.
	GlobalInt bool
	// SWReset is set while a software reset is still in progress.
	SWReset bool
	// Boot is set while the reboot procedure is still in progress.
	Boot bool
}

// ReadStatus returns the data-ready, interrupt, software reset and boot
// flags.
func (d *Dev) ReadStatus() (Status, error) {
	var s Status
	st, err := d.t.readReg(regStatus)
	if err != nil {
		return s, err
	}
	ctrl1, err := d.t.readReg(regCtrl1)
	if err != nil {
		return s, err
	}
	ctrl4, err := d.t.readReg(regCtrl4)
	if err != nil {
		return s, err
	}
	s.DataReady = st&statusDrdy != 0
	s.GlobalInt = st&statusIntGlobal != 0
	s.SWReset = ctrl1&ctrl1SwReset != 0
	s.Boot = ctrl4&ctrl4Boot != 0
	return s, nil
}

// Boot reboots the device, reloading the trimming parameters from its
// non-volatile memory, and waits for completion. The flag is polled 5 times
// 25ms apart before giving up with a BootTimeoutError.
func (d *Dev) Boot() error {
	if err := d.t.updateReg(regCtrl4, ctrl4Boot, ctrl4Boot); err != nil {
		return err
	}
	for i := 0; i < bootAttempts; i++ {
		ctrl4, err := d.t.readReg(regCtrl4)
		if err != nil {
			return err
		}
		if ctrl4&ctrl4Boot == 0 {
			return nil
		}
		d.sleep(bootPollEvery)
	}
	return &BootTimeoutError{}
}

// Reset performs a software reset of the register content and waits for
// completion. The flag is polled 5 times 1ms apart before giving up with a
// ResetTimeoutError.
func (d *Dev) Reset() error {
	if err := d.t.updateReg(regCtrl1, ctrl1SwReset, ctrl1SwReset); err != nil {
		return err
	}
	for i := 0; i < resetAttempts; i++ {
		d.sleep(resetPollEvery)
		st, err := d.t.readReg(regStatus)
		if err != nil {
			return err
		}
		if st&statusSwReset == 0 {
			return nil
		}
	}
	return &ResetTimeoutError{}
}

// EnterDeepPowerDown puts the device in its lowest power state. Register
// content is lost; only ExitDeepPowerDown (or a supply cycle) wakes it up.
func (d *Dev) EnterDeepPowerDown() error {
	return d.t.writeReg(regSleep, sleepDeepPD)
}

// ExitDeepPowerDown wakes the device from deep power-down and waits the
// 25ms the part needs before accepting register traffic again.
func (d *Dev) ExitDeepPowerDown() error {
	if err := d.t.writeReg(regEnDeviceCfg, enDevSoftPD); err != nil {
		return err
	}
	d.sleep(powerUpSettle)
	return nil
}

// DataReadyPulsed makes the data-ready signal a short pulse instead of a
// level that is held until the output registers are read.
func (d *Dev) DataReadyPulsed(pulsed bool) error {
	v := byte(0)
	if pulsed {
		v = ctrl1DrdyPulsed
	}
	return d.t.updateReg(regCtrl1, ctrl1DrdyPulsed, v)
}

// SetSmartPower enables the smart power feature: the device lowers its rate
// on its own when the signal is still for dur windows of win samples each.
// win and dur use the device's 4-bit encodings.
func (d *Dev) SetSmartPower(enable bool, win, dur byte) error {
	v := byte(0)
	if enable {
		v = ctrl1SmartPwrEn
		if err := d.PagedWrite(pagSmartPowerCtrl, []byte{win&0x0F | dur<<4}); err != nil {
			return err
		}
	}
	return d.t.updateReg(regCtrl1, ctrl1SmartPwrEn, v)
}

// SetPinPolarity configures the interrupt pads: activeLow inverts both
// interrupt pins, openDrain switches them from push-pull.
func (d *Dev) SetPinPolarity(activeLow, openDrain bool) error {
	v := byte(0)
	if activeLow {
		v |= pinCtrlHLActive
	}
	if openDrain {
		v |= pinCtrlPPOD
	}
	return d.t.updateReg(regPinCtrl, pinCtrlHLActive|pinCtrlPPOD, v)
}

// PinPull configures the pull resistors of the digital pads. The interrupt
// pins power up with their pull-downs enabled.
type PinPull struct {
	SDAPullUp       bool
	SDOPullUp       bool
	CSPullUpDisable bool
	Int1PullDown    bool
	Int2PullDown    bool
}

// SetPinPull configures the pull resistors on SDA, SDO, CS and the
// interrupt pins.
func (d *Dev) SetPinPull(c PinPull) error {
	v := byte(0)
	if c.SDAPullUp {
		v |= pinCtrlSDAPuEn
	}
	if c.SDOPullUp {
		v |= pinCtrlSDOPuEn
	}
	if c.CSPullUpDisable {
		v |= pinCtrlCSPuDis
	}
	// The register bits disable the pull-downs, so they are inverted.
	if !c.Int1PullDown {
		v |= pinCtrlPDInt1
	}
	if !c.Int2PullDown {
		v |= pinCtrlPDInt2
	}
	mask := pinCtrlSDAPuEn | pinCtrlSDOPuEn | pinCtrlCSPuDis | pinCtrlPDInt1 | pinCtrlPDInt2
	return d.t.updateReg(regPinCtrl, mask, v)
}

// SetSPI3Wire switches the SPI interface to 3-wire mode (SDO not used).
func (d *Dev) SetSPI3Wire(enable bool) error {
	v := byte(0)
	if enable {
		v = pinCtrlSIM
	}
	return d.t.updateReg(regPinCtrl, pinCtrlSIM, v)
}

// I3CBusAvailableTime is the bus available time used for IBI.
type I3CBusAvailableTime byte

const (
	I3CBusAvb20us I3CBusAvailableTime = 0
	I3CBusAvb50us I3CBusAvailableTime = 1
	I3CBusAvb1ms  I3CBusAvailableTime = 2
	I3CBusAvb25ms I3CBusAvailableTime = 3
)

// ConfigI3C tunes the I3C interface: bus available time for in-band
// interrupts, the anti-spike filter, and whether the dynamic address
// survives a reset pattern.
func (d *Dev) ConfigI3C(t I3CBusAvailableTime, antiSpike, disableReset bool) error {
	v := byte(t) & i3cBusAvbMask
	if antiSpike {
		v |= i3cAsfOn
	}
	if disableReset {
		v |= i3cDisDrstdaa
	}
	return d.t.updateReg(regI3CIfCtrl, i3cBusAvbMask|i3cAsfOn|i3cDisDrstdaa, v)
}

// EnableExternalClock feeds the device from an external clock applied to
// the INT2 pin instead of the internal oscillator.
func (d *Dev) EnableExternalClock(enable bool) error {
	v := byte(0)
	if enable {
		v = extClkEn
	}
	return d.t.updateReg(regExtClkCfg, extClkEn, v)
}

// DisableHardResetFromCS keeps a CS rising edge from resetting the device
// when it is in deep power-down.
func (d *Dev) DisableHardResetFromCS(disable bool) error {
	v := byte(0)
	if disable {
		v = fifoCtrlHardRstCS
	}
	return d.t.updateReg(regFIFOCtrl, fifoCtrlHardRstCS, v)
}

// Sense reads the die temperature. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := d.Temperature()
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous reads the die temperature at the given interval until
// Halt is called. Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if d.shutdown != nil {
		return nil, errors.New("iis2dulpx: already sensing continuously")
	}
	d.shutdown = make(chan struct{})
	channel := make(chan physic.Env, 16)
	go func(shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				close(channel)
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil && len(channel) < cap(channel) {
					channel <- e
				}
			}
		}
	}(d.shutdown)
	return channel, nil
}

// Precision implements physic.SenseEnv. One temperature LSB is 1/355.5 °C.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = 2812940 * physic.NanoKelvin
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops a continuous sense and turns the accelerometer off.
// Implements conn.Resource.
func (d *Dev) Halt() error {
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return d.SetMode(Mode{ODR: ODROff, FS: d.fs})
}

func (d *Dev) String() string {
	return d.name
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
