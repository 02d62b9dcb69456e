// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package monofb implements in-memory 1 bit per pixel images using the bit
// packing layouts found in monochrome display controller RAM, along with a
// small set of drawing primitives.
//
// Unlike image1bit from periph.io, which only provides a vertical-LSB
// banded layout, this package supports both the row-major MSB-first layout
// (MONO_HLSB) and the 8-row banded column layout (MONO_VLSB) so a display
// driver can stream the backing array to the panel without re-packing.
package monofb

import (
	"image"
	"image/color"
)

// Bit implements a 1 bit color.
type Bit bool

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Possible bitness.
const (
	// On is a lit pixel. For e-paper panels this is the blank (white) state.
	On Bit = true
	// Off is an unlit pixel, i.e. ink.
	Off Bit = false
)

// BitModel is the color model for the 1 bit color.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, b, _ := c.RGBA()
		return Bit((r | g | b) >= 0x8000)
	}
}

// Layout selects how pixels map onto the backing byte array.
type Layout int

const (
	// HLSB packs each row left to right with the most significant bit being
	// the leftmost pixel. Rows follow each other top to bottom.
	HLSB Layout = iota
	// VLSB packs horizontal bands of 8 rows. Within a band each byte is one
	// column, the least significant bit being the topmost pixel.
	VLSB
)

func (l Layout) String() string {
	switch l {
	case HLSB:
		return "HLSB"
	case VLSB:
		return "VLSB"
	default:
		return "Layout(?)"
	}
}

// Image is a 1 bit per pixel image backed by a byte array in the requested
// layout.
//
// The backing array is exposed through Pix() so device drivers can stream
// it out directly.
type Image struct {
	pix    []byte
	w      int
	h      int
	layout Layout
}

// New returns an initialized (all Off) Image of the requested size.
func New(w, h int, layout Layout) *Image {
	var n int
	switch layout {
	case HLSB:
		n = (w + 7) / 8 * h
	default:
		n = (h + 7) / 8 * w
	}
	return &Image{pix: make([]byte, n), w: w, h: h, layout: layout}
}

// Pix returns the backing byte array. Mutating it mutates the image.
func (m *Image) Pix() []byte {
	return m.pix
}

// Layout returns the bit packing layout of the backing array.
func (m *Image) Layout() Layout {
	return m.layout
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.w, m.h)
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	return m.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (m *Image) BitAt(x, y int) Bit {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return Off
	}
	idx, mask := m.offset(x, y)
	return Bit(m.pix[idx]&mask != 0)
}

// Set implements draw.Image.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set(). Out of bounds coordinates are
// ignored.
func (m *Image) SetBit(x, y int, b Bit) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	idx, mask := m.offset(x, y)
	if b {
		m.pix[idx] |= mask
	} else {
		m.pix[idx] &^= mask
	}
}

// Fill sets every pixel to b.
func (m *Image) Fill(b Bit) {
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	for i := range m.pix {
		m.pix[i] = v
	}
}

func (m *Image) offset(x, y int) (int, byte) {
	if m.layout == HLSB {
		return y*((m.w+7)/8) + x>>3, 0x80 >> uint(x&7)
	}
	return (y>>3)*m.w + x, 1 << uint(y&7)
}
