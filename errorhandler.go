// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management.
type errorHandler struct {
	d   Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) cTx(w []byte, r []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, r)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.cTx([]byte{cmd}, nil)
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.High)
	eh.csOut(gpio.Low)
	eh.cTx(data, nil)
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendByte(b byte) {
	eh.sendData([]byte{b})
}

// waitUntilIdle polls the busy line in 50ms steps. With Opts.BusyTimeout
// left at zero a stuck panel blocks forever, matching the datasheet
// protocol which has no recovery path.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}

	start := time.Now()
	for eh.d.busy.Read() == gpio.High {
		if eh.d.opts.BusyTimeout > 0 && time.Since(start) > eh.d.opts.BusyTimeout {
			eh.err = ErrBusyTimeout
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
