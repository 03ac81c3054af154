// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iis2dulpx

// Main register bank.
const (
	regExtClkCfg    byte = 0x08
	regPinCtrl      byte = 0x0C
	regWakeUpDurExt byte = 0x0E
	regWhoAmI       byte = 0x0F
	regCtrl1        byte = 0x10
	regCtrl2        byte = 0x11
	regCtrl3        byte = 0x12
	regCtrl4        byte = 0x13
	regCtrl5        byte = 0x14
	regFIFOCtrl     byte = 0x15
	regFIFOWtm      byte = 0x16
	regInterruptCfg byte = 0x17
	regSixD         byte = 0x18
	regWakeUpThs    byte = 0x1C
	regWakeUpDur    byte = 0x1D
	regFreeFall     byte = 0x1E
	regMD1Cfg       byte = 0x1F
	regMD2Cfg       byte = 0x20
	regWakeUpSrc    byte = 0x21
	regTapSrc       byte = 0x22
	regSixDSrc      byte = 0x23
	regAllIntSrc    byte = 0x24
	regStatus       byte = 0x25
	regFIFOStatus1  byte = 0x26
	regOutXL        byte = 0x28
	regOutTAhQvarL  byte = 0x2E
	regAhQvarCfg    byte = 0x31
	regSelfTest     byte = 0x32
	regI3CIfCtrl    byte = 0x33
	regEmbFuncStMP  byte = 0x34
	regFSMStMP      byte = 0x35
	regMLCStMP      byte = 0x36
	regSleep        byte = 0x3D
	regEnDeviceCfg  byte = 0x3E
	regFuncCfgAcc   byte = 0x3F
	regFIFOOutTag   byte = 0x40
	regFIFOOutXL    byte = 0x41
	regFIFOBatchDec byte = 0x47
	regTapCfg0      byte = 0x6F
	regTimestamp0   byte = 0x7A
)

// Embedded function register bank, reachable after setMemBank(bankEmbedded).
const (
	embPageSel       byte = 0x02
	embFuncEnA       byte = 0x04
	embFuncEnB       byte = 0x05
	embPageAddress   byte = 0x08
	embPageValue     byte = 0x09
	embFuncInt1      byte = 0x0A
	embFuncInt2      byte = 0x0E
	embPageRW        byte = 0x17
	embFuncFIFOEn    byte = 0x18
	embFSMEnable     byte = 0x1A
	embFSMLongCountL byte = 0x1C
	embFSMOuts1      byte = 0x20
	embStepCounterL  byte = 0x28
	embFuncSrc       byte = 0x2A
	embFuncInitB     byte = 0x2D
	embMLC1Src       byte = 0x34
	embFSMODR        byte = 0x39
	embMLCODR        byte = 0x3A
)

// Embedded advanced registers, reachable only through the paged accessor.
// High byte is the 4-bit page, low byte the in-page offset.
const (
	pagFSMLCTimeoutL   uint16 = 0x017A
	pagFSMPrograms     uint16 = 0x017C
	pagFSMStartAddL    uint16 = 0x017E
	pagPedoCmdReg      uint16 = 0x0183
	pagPedoDebStepsCnf uint16 = 0x0184
	pagPedoScDeltaTL   uint16 = 0x01D0
	pagSmartPowerCtrl  uint16 = 0x01D2
)

// CTRL1.
const (
	ctrl1WUZEn      byte = 0x01
	ctrl1WUYEn      byte = 0x02
	ctrl1WUXEn      byte = 0x04
	ctrl1DrdyPulsed byte = 0x08
	ctrl1IfAddInc   byte = 0x10
	ctrl1SwReset    byte = 0x20
	ctrl1Int1OnRes  byte = 0x40
	ctrl1SmartPwrEn byte = 0x80
	ctrl1WUMask     byte = 0x07
)

// CTRL2 routes INT1, CTRL3 keeps self-test signs, HP enable and INT2 routes.
const (
	ctrl2Int1Drdy     byte = 0x01
	ctrl2Int1FIFOOvr  byte = 0x02
	ctrl2Int1FIFOTh   byte = 0x04
	ctrl2Int1FIFOFull byte = 0x08
	ctrl2Int1Boot     byte = 0x10

	ctrl3STSignX      byte = 0x01
	ctrl3STSignY      byte = 0x02
	ctrl3HPEn         byte = 0x04
	ctrl3Int2Drdy     byte = 0x08
	ctrl3Int2FIFOOvr  byte = 0x10
	ctrl3Int2FIFOTh   byte = 0x20
	ctrl3Int2FIFOFull byte = 0x40
	ctrl3Int2Boot     byte = 0x80
)

// CTRL4.
const (
	ctrl4Boot        byte = 0x01
	ctrl4SOC         byte = 0x02
	ctrl4FIFOEn      byte = 0x04
	ctrl4EmbFuncEn   byte = 0x08
	ctrl4BDU         byte = 0x10
	ctrl4InactODR    byte = 0x60
	ctrl4InactODRPos      = 5
)

// CTRL5: fs[1:0], bw[3:2], odr[7:4].
const (
	ctrl5FSMask  byte = 0x03
	ctrl5BWMask  byte = 0x0C
	ctrl5BWPos        = 2
	ctrl5ODRMask byte = 0xF0
	ctrl5ODRPos       = 4
)

// FIFO_CTRL, FIFO_WTM, FIFO_BATCH_DEC.
const (
	fifoCtrlModeMask  byte = 0x07
	fifoCtrlStopOnFth byte = 0x08
	fifoCtrlDepth2X   byte = 0x10
	fifoCtrlCfgChgEn  byte = 0x20
	fifoCtrlHardRstCS byte = 0x40

	fifoWtmMask   byte = 0x7F
	fifoWtmXLOnly byte = 0x80

	fifoBatchBDRMask byte = 0x07
	fifoBatchDecMask byte = 0x18
	fifoBatchDecPos       = 3
)

// INTERRUPT_CFG.
const (
	intCfgEnable      byte = 0x01
	intCfgLIR         byte = 0x02
	intCfgDisRstLIR   byte = 0x04
	intCfgSleepStatus byte = 0x08
	intCfgTimestampEn byte = 0x10
	intCfgWakeThsW    byte = 0x20
)

// SIXD.
const (
	sixdThsMask byte = 0x60
	sixdThsPos       = 5
	sixdD4DEn   byte = 0x80
)

// WAKE_UP_THS, WAKE_UP_DUR, FREE_FALL, WAKE_UP_DUR_EXT.
const (
	wakeThsMask    byte = 0x3F
	wakeThsSleepOn byte = 0x40

	wakeDurSleepMask byte = 0x0F
	wakeDurSTSignZ   byte = 0x10
	wakeDurMask      byte = 0x60
	wakeDurPos            = 5
	wakeDurFFDurMSB  byte = 0x80

	ffThsMask byte = 0x07
	ffDurMask byte = 0xF8
	ffDurPos       = 3

	wakeDurExtended byte = 0x01
)

// MD1_CFG / MD2_CFG share the same layout.
const (
	mdCfgEmbFunc     byte = 0x01
	mdCfgTimestamp   byte = 0x02
	mdCfgSixD        byte = 0x04
	mdCfgTap         byte = 0x08
	mdCfgFreeFall    byte = 0x10
	mdCfgWakeUp      byte = 0x20
	mdCfgSleepChange byte = 0x40
)

// STATUS, FIFO_STATUS1. The fill level takes all of FIFO_STATUS2.
const (
	statusDrdy      byte = 0x01
	statusIntGlobal byte = 0x10
	statusSwReset   byte = 0x20

	fifoStatus1Full byte = 0x20
	fifoStatus1Ovr  byte = 0x40
	fifoStatus1Fth  byte = 0x80
)

// SELF_TEST, AH_QVAR_CFG, I3C_IF_CTRL, PIN_CTRL, misc.
const (
	selfTestTQvarDis byte = 0x01
	selfTestSTMask   byte = 0x30
	selfTestSTPos         = 4

	qvarEn          byte = 0x01
	qvarNotchCutoff byte = 0x02
	qvarNotchEn     byte = 0x04
	qvarCZinMask    byte = 0x18
	qvarCZinPos          = 3
	qvarGainMask    byte = 0x60
	qvarGainPos          = 5

	i3cBusAvbMask byte = 0x03
	i3cAsfOn      byte = 0x20
	i3cDisDrstdaa byte = 0x40

	pinCtrlSIM      byte = 0x01
	pinCtrlPPOD     byte = 0x02
	pinCtrlHLActive byte = 0x04
	pinCtrlCSPuDis  byte = 0x08
	pinCtrlPDInt1   byte = 0x10
	pinCtrlPDInt2   byte = 0x20
	pinCtrlSDAPuEn  byte = 0x40
	pinCtrlSDOPuEn  byte = 0x80

	extClkEn byte = 0x01

	sleepDeepPD byte = 0x01
	enDevSoftPD byte = 0x01

	funcCfgEmbAccess byte = 0x80
)

// Embedded bank bit fields.
const (
	pageSelMask  byte = 0xF0
	pageSelPos        = 4
	pageSelFixed byte = 0x01 // write-1 bit next to the page selector
	pageRWRead   byte = 0x20
	pageRWWrite  byte = 0x40
	pageRWEmbLIR byte = 0x80

	embEnAPedo      byte = 0x08
	embEnATilt      byte = 0x10
	embEnASigMot    byte = 0x20
	embEnAMLCBefFSM byte = 0x80

	embEnBFSM byte = 0x01
	embEnBMLC byte = 0x10

	embStatusStepDet byte = 0x08
	embStatusTilt    byte = 0x10
	embStatusSigMot  byte = 0x20

	embIntStepDet byte = 0x08
	embIntTilt    byte = 0x10
	embIntSigMot  byte = 0x20
	embIntFSMLC   byte = 0x80

	embFIFOStepEn byte = 0x01
	embFIFOMLCEn  byte = 0x02
	embFIFOFSMEn  byte = 0x10

	embSrcPedoRstStep byte = 0x80

	embInitBFSM byte = 0x01

	fsmODRMask byte = 0x38
	fsmODRPos       = 3
	mlcODRMask byte = 0x07

	pedoCmdFPRejection byte = 0x04
)

// DeviceID is the expected content of WHO_AM_I.
const DeviceID byte = 0x47

// DefaultAddress is the 7-bit I²C address with SA0 tied low. With SA0 high
// the device answers at 0x19.
const DefaultAddress uint16 = 0x18
