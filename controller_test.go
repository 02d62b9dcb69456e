// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type record struct {
	cmd  byte
	data []byte
}

type fakeController []record

func (r *fakeController) sendCommand(cmd byte) {
	*r = append(*r, record{
		cmd: cmd,
	})
}

func (r *fakeController) sendData(data []byte) {
	cur := &(*r)[len(*r)-1]
	cur.data = append(cur.data, data...)
}

func (r *fakeController) sendByte(b byte) {
	r.sendData([]byte{b})
}

func (*fakeController) waitUntilIdle() {
}

func TestInitPanel(t *testing.T) {
	for _, tc := range []struct {
		name        string
		orientation Orientation
		want        []record
	}{
		{
			name:        "portrait",
			orientation: Portrait,
			want: []record{
				{cmd: swReset},
				{cmd: dataEntryModeSetting, data: []byte{0x03}},
				{cmd: setRAMXAddressStartEndPosition, data: []byte{0x00, 0x12}},
				{cmd: setRAMYAddressStartEndPosition, data: []byte{0x00, 0x00, 0x27, 0x01}},
				{cmd: setRAMXAddressCounter, data: []byte{0x00}},
				{cmd: setRAMYAddressCounter, data: []byte{0x00, 0x00}},
			},
		},
		{
			name:        "landscape flipped",
			orientation: LandscapeFlipped,
			want: []record{
				{cmd: swReset},
				{cmd: dataEntryModeSetting, data: []byte{0x07}},
				{cmd: setRAMXAddressStartEndPosition, data: []byte{0x00, 0x12}},
				{cmd: setRAMYAddressStartEndPosition, data: []byte{0x00, 0x00, 0x27, 0x01}},
				{cmd: setRAMXAddressCounter, data: []byte{0x00}},
				{cmd: setRAMYAddressCounter, data: []byte{0x00, 0x00}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got fakeController

			initPanel(&got, tc.orientation)

			if diff := cmp.Diff([]record(got), tc.want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
				t.Errorf("initPanel() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestConfigModes(t *testing.T) {
	for _, tc := range []struct {
		name   string
		config func(ctrl controller)
		want   []record
	}{
		{
			name:   "3-color global",
			config: configThreeColorGlobal,
			want: []record{
				{cmd: displayUpdateControl1, data: []byte{0x00, 0x80}},
			},
		},
		{
			name:   "2-color global",
			config: configTwoColorGlobal,
			want: []record{
				{cmd: displayUpdateControl1, data: []byte{0x40, 0x80}},
				{cmd: borderWaveformControl, data: []byte{0x01}},
			},
		},
		{
			name: "2-color partial",
			config: func(ctrl controller) {
				configTwoColorPartial(ctrl, partialUpdate)
			},
			want: []record{
				{cmd: writeLutRegister, data: partialUpdate},
				{cmd: displayUpdateControl1, data: []byte{0x00, 0x80}},
				{cmd: writeRegisterForDisplayOption, data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00}},
				{cmd: borderWaveformControl, data: []byte{0x80}},
				{cmd: displayUpdateControl2, data: []byte{0xCF}},
				{cmd: masterActivation},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got fakeController

			tc.config(&got)

			if diff := cmp.Diff([]record(got), tc.want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
				t.Errorf("config difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestLUTSize(t *testing.T) {
	if len(partialUpdate) != lutSize {
		t.Errorf("partial update LUT has %d bytes, want %d", len(partialUpdate), lutSize)
	}
}

func TestTurnOnDisplay(t *testing.T) {
	var got fakeController

	turnOnDisplay(&got)

	want := []record{
		{cmd: masterActivation},
	}
	if diff := cmp.Diff([]record(got), want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("turnOnDisplay() difference (-got +want):\n%s", diff)
	}
}

func TestDeepSleep(t *testing.T) {
	var got fakeController

	deepSleep(&got)

	want := []record{
		{cmd: deepSleepMode, data: []byte{0x01}},
	}
	if diff := cmp.Diff([]record(got), want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("deepSleep() difference (-got +want):\n%s", diff)
	}
}

func TestWriteBlankPlane(t *testing.T) {
	var got fakeController

	writeBlankPlane(&got, writeRAMRed)

	want := []record{
		{cmd: writeRAMRed, data: bytes.Repeat([]byte{0x00}, planeLen)},
	}
	if diff := cmp.Diff([]record(got), want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("writeBlankPlane() difference (-got +want):\n%s", diff)
	}
}
