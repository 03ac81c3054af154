// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "fmt"

// IDMismatchError is returned by NewI2C/NewSPI when WHO_AM_I does not match
// the expected device ID. Usually the address belongs to a different part.
type IDMismatchError struct {
	Got byte
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("iis2dulpx: unexpected device ID %#02x, want %#02x", e.Got, DeviceID)
}

// BootTimeoutError is returned when CTRL4.BOOT does not self-clear within
// the polling window after a reboot request.
type BootTimeoutError struct{}

func (e *BootTimeoutError) Error() string {
	return "iis2dulpx: device did not finish rebooting in time"
}

// ResetTimeoutError is returned when the SW_RESET flag does not self-clear
// within the polling window after a software reset request.
type ResetTimeoutError struct{}

func (e *ResetTimeoutError) Error() string {
	return "iis2dulpx: device did not finish software reset in time"
}

// InvalidModeError is returned by SetMode for (rate, bandwidth) pairs the
// low-power chain cannot produce. The device registers are left untouched.
type InvalidModeError struct {
	ODR DataRate
	BW  Bandwidth
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("iis2dulpx: bandwidth %v is not available at %v", e.BW, e.ODR)
}
