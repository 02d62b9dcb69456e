// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package monofb

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name    string
		w, h    int
		layout  Layout
		wantLen int
	}{
		{name: "HLSB", w: 152, h: 296, layout: HLSB, wantLen: 19 * 296},
		{name: "VLSB", w: 296, h: 152, layout: VLSB, wantLen: 296 * 19},
		{name: "HLSB non-aligned", w: 10, h: 4, layout: HLSB, wantLen: 2 * 4},
		{name: "VLSB non-aligned", w: 4, h: 10, layout: VLSB, wantLen: 2 * 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := New(tc.w, tc.h, tc.layout)
			if len(m.Pix()) != tc.wantLen {
				t.Errorf("len(Pix()) = %d, want %d", len(m.Pix()), tc.wantLen)
			}
			if diff := cmp.Diff(m.Bounds(), image.Rect(0, 0, tc.w, tc.h)); diff != "" {
				t.Errorf("Bounds() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestPackingHLSB(t *testing.T) {
	m := New(16, 4, HLSB)

	// MSB is the leftmost pixel of the row.
	m.SetBit(0, 0, On)
	m.SetBit(7, 0, On)
	m.SetBit(8, 1, On)
	m.SetBit(15, 3, On)

	want := []byte{
		0x81, 0x00,
		0x00, 0x80,
		0x00, 0x00,
		0x00, 0x01,
	}
	if diff := cmp.Diff(m.Pix(), want); diff != "" {
		t.Errorf("Pix() difference (-got +want):\n%s", diff)
	}
}

func TestPackingVLSB(t *testing.T) {
	m := New(4, 16, VLSB)

	// LSB is the topmost pixel of the 8-row band.
	m.SetBit(0, 0, On)
	m.SetBit(0, 7, On)
	m.SetBit(1, 8, On)
	m.SetBit(3, 15, On)

	want := []byte{
		0x81, 0x00, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x80,
	}
	if diff := cmp.Diff(m.Pix(), want); diff != "" {
		t.Errorf("Pix() difference (-got +want):\n%s", diff)
	}
}

func TestBitRoundTrip(t *testing.T) {
	for _, layout := range []Layout{HLSB, VLSB} {
		t.Run(layout.String(), func(t *testing.T) {
			m := New(24, 24, layout)
			m.Fill(On)

			m.SetBit(3, 17, Off)
			for y := 0; y < 24; y++ {
				for x := 0; x < 24; x++ {
					want := On
					if x == 3 && y == 17 {
						want = Off
					}
					if got := m.BitAt(x, y); got != want {
						t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	m := New(8, 8, HLSB)
	m.Fill(On)

	// Ignored, not panicking.
	m.SetBit(-1, 0, Off)
	m.SetBit(0, -1, Off)
	m.SetBit(8, 0, Off)
	m.SetBit(0, 8, Off)

	if !bytes.Equal(m.Pix(), bytes.Repeat([]byte{0xFF}, 8)) {
		t.Errorf("out of bounds SetBit modified the buffer")
	}
	if m.BitAt(-1, -1) != Off || m.BitAt(8, 8) != Off {
		t.Errorf("out of bounds BitAt != Off")
	}
}

func TestFill(t *testing.T) {
	m := New(16, 8, HLSB)

	m.Fill(On)
	if !bytes.Equal(m.Pix(), bytes.Repeat([]byte{0xFF}, 16)) {
		t.Errorf("Fill(On) did not set every byte to 0xFF")
	}
	m.Fill(Off)
	if !bytes.Equal(m.Pix(), bytes.Repeat([]byte{0x00}, 16)) {
		t.Errorf("Fill(Off) did not clear every byte")
	}
}

func TestSetColorModel(t *testing.T) {
	m := New(8, 8, HLSB)

	m.Set(0, 0, color.White)
	m.Set(1, 0, color.Black)
	m.Set(2, 0, color.NRGBA{200, 200, 200, 255})

	if m.BitAt(0, 0) != On || m.BitAt(1, 0) != Off || m.BitAt(2, 0) != On {
		t.Errorf("Set() conversion: got %v %v %v, want On Off On", m.BitAt(0, 0), m.BitAt(1, 0), m.BitAt(2, 0))
	}
}

func TestRect(t *testing.T) {
	outline := New(8, 8, HLSB)
	outline.Rect(1, 1, 6, 6, On, false)

	filled := New(8, 8, HLSB)
	filled.Rect(1, 1, 6, 6, On, true)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			border := x >= 1 && x <= 6 && y >= 1 && y <= 6 && (x == 1 || x == 6 || y == 1 || y == 6)
			inside := x >= 1 && x <= 6 && y >= 1 && y <= 6
			if got := outline.BitAt(x, y); got != Bit(border) {
				t.Errorf("outline.BitAt(%d, %d) = %v, want %v", x, y, got, Bit(border))
			}
			if got := filled.BitAt(x, y); got != Bit(inside) {
				t.Errorf("filled.BitAt(%d, %d) = %v, want %v", x, y, got, Bit(inside))
			}
		}
	}
}

func TestLine(t *testing.T) {
	m := New(8, 8, HLSB)
	m.Line(0, 0, 7, 7, On)

	for i := 0; i < 8; i++ {
		if m.BitAt(i, i) != On {
			t.Errorf("diagonal BitAt(%d, %d) = Off, want On", i, i)
		}
	}

	m = New(8, 8, HLSB)
	m.Line(7, 3, 0, 3, On)
	for i := 0; i < 8; i++ {
		if m.BitAt(i, 3) != On {
			t.Errorf("horizontal BitAt(%d, 3) = Off, want On", i)
		}
	}
}

func TestHVLine(t *testing.T) {
	m := New(8, 8, VLSB)
	m.HLine(1, 2, 5, On)
	m.VLine(6, 0, 8, On)

	for x := 1; x < 6; x++ {
		if m.BitAt(x, 2) != On {
			t.Errorf("HLine BitAt(%d, 2) = Off, want On", x)
		}
	}
	for y := 0; y < 8; y++ {
		if m.BitAt(6, y) != On {
			t.Errorf("VLine BitAt(6, %d) = Off, want On", y)
		}
	}
	if m.BitAt(0, 2) != Off || m.BitAt(6+1, 0) != Off {
		t.Errorf("line drawing leaked outside the requested span")
	}
}

func TestText(t *testing.T) {
	m := New(64, 16, HLSB)

	m.Text("Hi", 0, 0, On)

	set := 0
	for _, b := range m.Pix() {
		for ; b != 0; b &= b - 1 {
			set++
		}
	}
	if set == 0 {
		t.Errorf("Text() did not set any pixel")
	}
}
