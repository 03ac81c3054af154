// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package iis2dulpx controls an ST IIS2DULPX ultra low-power 3-axis
// accelerometer over I²C or SPI.
//
// The device embeds a 16-level FIFO, a finite state machine, a machine
// learning core, a step counter and an analog hub / Qvar electrostatic
// sensing channel. All of those are exposed here at register level: the
// package configures and reads the part but runs no goroutines of its own
// except for SenseContinuous.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/iis2dulpx.pdf
package iis2dulpx
