// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

// Commands
const (
	deepSleepMode                  byte = 0x10
	dataEntryModeSetting           byte = 0x11
	swReset                        byte = 0x12
	masterActivation               byte = 0x20
	displayUpdateControl1          byte = 0x21
	displayUpdateControl2          byte = 0x22
	writeRAMBW                     byte = 0x24
	writeRAMRed                    byte = 0x26
	writeLutRegister               byte = 0x32
	writeRegisterForDisplayOption  byte = 0x37
	borderWaveformControl          byte = 0x3C
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
)

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
	waitUntilIdle()
}

// initPanel performs the part of the initialization shared by all modes:
// software reset, data entry mode and the RAM window and cursor covering
// the full panel.
func initPanel(ctrl controller, o Orientation) {
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(dataEntryModeSetting)
	if o.landscape() {
		ctrl.sendByte(0x07)
	} else {
		ctrl.sendByte(0x03)
	}

	setWindow(ctrl, 0, 0, xRes-1, yRes-1)
	setCursor(ctrl, 0, 0)
}

// configThreeColorGlobal programs the update control bytes for the factory
// three-color global refresh.
func configThreeColorGlobal(ctrl controller) {
	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x00, 0x80})
}

// configTwoColorGlobal programs the update control and border waveform for
// two-color global refresh.
func configTwoColorGlobal(ctrl controller) {
	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x40, 0x80})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x01)
}

// configTwoColorPartial uploads the custom waveform and enables blending
// with the previous image, then runs one update sequence so the new
// waveform takes effect.
func configTwoColorPartial(ctrl controller, lut LUT) {
	setLut(ctrl, lut)

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x00, 0x80})

	// Display option: keep the previous image in the blend.
	ctrl.sendCommand(writeRegisterForDisplayOption)
	ctrl.sendData([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x80)

	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(0xCF)

	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

func setLut(ctrl controller, lut LUT) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut[:lutSize])
	ctrl.waitUntilIdle()
}

// setWindow sets the RAM address window (horizontal in bytes, vertical in
// rows).
func setWindow(ctrl controller, xStart, yStart, xEnd, yEnd int) {
	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{byte((xStart >> 3) & 0xFF), byte((xEnd >> 3) & 0xFF)})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{byte(yStart & 0xFF), byte((yStart >> 8) & 0xFF), byte(yEnd & 0xFF), byte((yEnd >> 8) & 0xFF)})
}

// setCursor positions the RAM address counter.
func setCursor(ctrl controller, x, y int) {
	ctrl.sendCommand(setRAMXAddressCounter)
	// x point must be the multiple of 8 or the last 3 bits will be ignored
	ctrl.sendData([]byte{byte((x >> 3) & 0xFF)})

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{byte(y & 0xFF), byte((y >> 8) & 0xFF)})
}

// turnOnDisplay activates the programmed update sequence and waits for the
// panel to finish.
func turnOnDisplay(ctrl controller) {
	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

// deepSleep puts the controller into deep sleep. Only a hardware reset
// wakes it up again.
func deepSleep(ctrl controller) {
	ctrl.sendCommand(deepSleepMode)
	ctrl.sendByte(0x01)
}
