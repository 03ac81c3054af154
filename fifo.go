// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

import "encoding/binary"

// FIFOOperation selects how the FIFO buffers samples.
type FIFOOperation byte

const (
	BypassMode         FIFOOperation = 0x0
	FIFOMode           FIFOOperation = 0x1
	StreamToFIFOMode   FIFOOperation = 0x3
	BypassToStreamMode FIFOOperation = 0x4
	StreamMode         FIFOOperation = 0x6
	BypassToFIFOMode   FIFOOperation = 0x7
	// FIFOOff gates the FIFO clock entirely.
	FIFOOff FIFOOperation = 0x8
)

// FIFOBatchDecimation sets how many timestamps are kept out of the batched
// ones.
type FIFOBatchDecimation byte

const (
	BatchDec1  FIFOBatchDecimation = 0
	BatchDec8  FIFOBatchDecimation = 1
	BatchDec16 FIFOBatchDecimation = 2
	BatchDec32 FIFOBatchDecimation = 3
)

// FIFOBatchODR decimates the accelerometer samples going to the FIFO with
// respect to the output data rate.
type FIFOBatchODR byte

const (
	BatchODRDiv1  FIFOBatchODR = 0
	BatchODRDiv2  FIFOBatchODR = 1
	BatchODRDiv4  FIFOBatchODR = 2
	BatchODRDiv8  FIFOBatchODR = 3
	BatchODRDiv16 FIFOBatchODR = 4
	BatchODRDiv32 FIFOBatchODR = 5
	BatchODRDiv64 FIFOBatchODR = 6
)

// FIFOConfig describes the FIFO setup.
type FIFOConfig struct {
	Operation FIFOOperation
	// Depth2X trades the temperature/Qvar channel for twice the sample
	// depth: samples are stored 8-bit packed in pairs.
	Depth2X bool
	// XLOnly stores 16-bit accelerometer-only slots instead of the default
	// 12-bit accelerometer + temperature/Qvar layout.
	XLOnly bool
	// CfgChangeInFIFO batches a record on every configuration change.
	CfgChangeInFIFO bool
	// Watermark is the slot count that raises the threshold flag, 0..127.
	// StopOnWatermark freezes collection when it is reached.
	Watermark       byte
	StopOnWatermark bool
	BatchDecimation FIFOBatchDecimation
	BatchODR        FIFOBatchODR
}

// SetFIFO programs the FIFO. Collection starts as soon as a non-bypass
// operation is selected.
func (d *Dev) SetFIFO(c FIFOConfig) error {
	v := byte(c.Operation) & fifoCtrlModeMask
	if c.Depth2X {
		v |= fifoCtrlDepth2X
	}
	if c.StopOnWatermark {
		v |= fifoCtrlStopOnFth
	}
	if c.CfgChangeInFIFO {
		v |= fifoCtrlCfgChgEn
	}
	mask := fifoCtrlModeMask | fifoCtrlDepth2X | fifoCtrlStopOnFth | fifoCtrlCfgChgEn
	if err := d.t.updateReg(regFIFOCtrl, mask, v); err != nil {
		return err
	}
	v = byte(c.BatchODR)&fifoBatchBDRMask | byte(c.BatchDecimation)<<fifoBatchDecPos
	if err := d.t.updateReg(regFIFOBatchDec, fifoBatchBDRMask|fifoBatchDecMask, v); err != nil {
		return err
	}
	v = c.Watermark & fifoWtmMask
	if c.XLOnly {
		v |= fifoWtmXLOnly
	}
	if err := d.t.updateReg(regFIFOWtm, fifoWtmMask|fifoWtmXLOnly, v); err != nil {
		return err
	}
	en := byte(ctrl4FIFOEn)
	if c.Operation == FIFOOff {
		en = 0
	}
	if err := d.t.updateReg(regCtrl4, ctrl4FIFOEn, en); err != nil {
		return err
	}
	d.xlOnly = c.XLOnly
	return nil
}

// ReadFIFOConfig returns the FIFO setup as the device has it. It is a pure
// getter: the slot layout used by ReadFIFORecord follows SetFIFO only.
func (d *Dev) ReadFIFOConfig() (FIFOConfig, error) {
	var c FIFOConfig
	ctrl, err := d.t.readReg(regFIFOCtrl)
	if err != nil {
		return c, err
	}
	batch, err := d.t.readReg(regFIFOBatchDec)
	if err != nil {
		return c, err
	}
	wtm, err := d.t.readReg(regFIFOWtm)
	if err != nil {
		return c, err
	}
	ctrl4, err := d.t.readReg(regCtrl4)
	if err != nil {
		return c, err
	}
	c.Operation = FIFOOperation(ctrl & fifoCtrlModeMask)
	if ctrl4&ctrl4FIFOEn == 0 {
		c.Operation = FIFOOff
	}
	c.Depth2X = ctrl&fifoCtrlDepth2X != 0
	c.StopOnWatermark = ctrl&fifoCtrlStopOnFth != 0
	c.CfgChangeInFIFO = ctrl&fifoCtrlCfgChgEn != 0
	c.BatchODR = FIFOBatchODR(batch & fifoBatchBDRMask)
	c.BatchDecimation = FIFOBatchDecimation((batch & fifoBatchDecMask) >> fifoBatchDecPos)
	c.Watermark = wtm & fifoWtmMask
	c.XLOnly = wtm&fifoWtmXLOnly != 0
	return c, nil
}

// FIFOStatus is the fill state of the FIFO.
type FIFOStatus struct {
	// Level is the number of unread slots.
	Level byte
	// Watermark, Overrun and Full mirror the threshold, overrun and
	// buffer-full flags.
	Watermark bool
	Overrun   bool
	Full      bool
}

// ReadFIFOStatus returns the fill level and the threshold flags. The flags
// live in FIFO_STATUS1 and the level in FIFO_STATUS2; both come back in one
// burst.
func (d *Dev) ReadFIFOStatus() (FIFOStatus, error) {
	var s FIFOStatus
	var buf [2]byte
	if err := d.t.readRegs(regFIFOStatus1, buf[:]); err != nil {
		return s, err
	}
	s.Watermark = buf[0]&fifoStatus1Fth != 0
	s.Overrun = buf[0]&fifoStatus1Ovr != 0
	s.Full = buf[0]&fifoStatus1Full != 0
	s.Level = buf[1]
	return s, nil
}

// FIFOTag identifies what a FIFO slot carries.
type FIFOTag byte

const (
	TagEmpty        FIFOTag = 0x00
	TagAccelTemp    FIFOTag = 0x02
	TagAccel2x      FIFOTag = 0x03
	TagTimestampCfg FIFOTag = 0x04
	TagStepCounter  FIFOTag = 0x12
	TagAccel2x2nd   FIFOTag = 0x1E
	TagAccelQVar    FIFOTag = 0x1F
)

// FIFOCfgChange is the configuration snapshot a TagTimestampCfg slot
// carries next to its timestamp.
type FIFOCfgChange struct {
	// Changed is set when the slot was batched because the configuration
	// changed rather than by the timestamp decimation.
	Changed bool
	// ODR, BW and FS are the sampling configuration at batch time, with
	// the low-power/high-performance split folded into ODR.
	ODR DataRate
	BW  Bandwidth
	FS  FullScale
	// QVarEnabled mirrors the Qvar channel enable.
	QVarEnabled bool
	// BatchDecimation and BatchODR mirror the FIFO batching setup.
	BatchDecimation FIFOBatchDecimation
	BatchODR        FIFOBatchODR
}

// FIFORecord is one decoded FIFO slot. Which fields are meaningful depends
// on Tag and on the fields' Samples count.
type FIFORecord struct {
	Tag FIFOTag
	// Samples is how many acceleration triplets the slot carried (0..2).
	Samples int
	// Accel holds the decoded triplets. Raw counts are aligned to 16 bits
	// whatever the stored width, so the usual sensitivities apply.
	Accel [2]Sample
	// TempRaw/DegC carry the temperature channel of a TagAccelTemp slot.
	TempRaw int16
	DegC    float64
	// QVarRaw/QVarMV carry the Qvar channel of a TagAccelQVar slot.
	QVarRaw int16
	QVarMV  float64
	// Timestamp carries the counter of TagTimestampCfg and TagStepCounter
	// slots.
	Timestamp uint32
	// Steps carries the counter of a TagStepCounter slot.
	Steps uint16
	// Cfg carries the configuration snapshot of a TagTimestampCfg slot.
	Cfg FIFOCfgChange
}

// sign12 widens a 12-bit count to a 16-bit-aligned one.
func sign12(v uint16) int16 {
	return int16(v << 4)
}

// DecodeFIFORecord decodes one 6-byte FIFO slot. It only looks at its
// arguments, never at the bus: fs must be the range the samples were taken
// at and xlOnly the FIFO layout flag at batch time.
//
// Slots of 12-bit samples are widened to 16-bit-aligned counts, so Raw and
// MilliG are directly comparable across layouts. Unknown tags decode to a
// record with only Tag set.
func DecodeFIFORecord(tag FIFOTag, data [6]byte, fs FullScale, xlOnly bool) FIFORecord {
	r := FIFORecord{Tag: tag}
	switch tag {
	case TagAccelTemp, TagAccelQVar:
		if xlOnly {
			r.Samples = 1
			for i := 0; i < 3; i++ {
				r.Accel[0].Raw[i] = int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
			}
		} else {
			r.Samples = 1
			r.Accel[0].Raw[0] = sign12(uint16(data[0]) | uint16(data[1]&0x0F)<<8)
			r.Accel[0].Raw[1] = sign12(uint16(data[1]>>4) | uint16(data[2])<<4)
			r.Accel[0].Raw[2] = sign12(uint16(data[3]) | uint16(data[4]&0x0F)<<8)
			aux := sign12(uint16(data[4]>>4) | uint16(data[5])<<4)
			if tag == TagAccelTemp {
				r.TempRaw = aux
				r.DegC = lsbToCelsius(aux)
			} else {
				r.QVarRaw = aux
				r.QVarMV = lsbToMillivolt(aux)
			}
		}
	case TagAccel2x, TagAccel2x2nd:
		r.Samples = 2
		for s := 0; s < 2; s++ {
			for i := 0; i < 3; i++ {
				r.Accel[s].Raw[i] = int16(int8(data[3*s+i])) << 8
			}
		}
	case TagTimestampCfg:
		// Bytes 0..1 hold the configuration snapshot, 2..5 the timestamp.
		odr := DataRate((data[0] >> 3) & 0x0F)
		if data[0]&0x01 != 0 && odr >= ODR6HzLP && odr <= ODR800HzLP {
			odr |= 0x10
		}
		r.Cfg = FIFOCfgChange{
			Changed:         data[0]&0x80 != 0,
			ODR:             odr,
			BW:              Bandwidth((data[0] >> 1) & 0x03),
			FS:              FullScale((data[1] >> 5) & 0x03),
			QVarEnabled:     data[1]&0x80 != 0,
			BatchDecimation: FIFOBatchDecimation((data[1] >> 3) & 0x03),
			BatchODR:        FIFOBatchODR(data[1] & 0x07),
		}
		r.Timestamp = binary.LittleEndian.Uint32(data[2:6])
	case TagStepCounter:
		r.Steps = binary.LittleEndian.Uint16(data[0:2])
		r.Timestamp = binary.LittleEndian.Uint32(data[2:6])
	}
	for s := 0; s < r.Samples; s++ {
		for i := 0; i < 3; i++ {
			r.Accel[s].MilliG[i] = fs.MilliG(r.Accel[s].Raw[i])
		}
	}
	return r
}

// ReadFIFORecord pops and decodes one slot. The milli-g conversion uses the
// range from the last SetMode/ReadMode and the layout from the last SetFIFO.
func (d *Dev) ReadFIFORecord() (FIFORecord, error) {
	tagByte, err := d.t.readReg(regFIFOOutTag)
	if err != nil {
		return FIFORecord{}, err
	}
	var data [6]byte
	if err := d.t.readRegs(regFIFOOutXL, data[:]); err != nil {
		return FIFORecord{}, err
	}
	return DecodeFIFORecord(FIFOTag(tagByte>>3), data, d.fs, d.xlOnly), nil
}
