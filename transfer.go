// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

import "bytes"

// Panel geometry. The controller RAM is addressed in portrait orientation:
// 19 bytes (152 pixels) per row, 296 rows.
const (
	xRes     = 152
	yRes     = 296
	xBytes   = xRes / 8
	yBits    = yRes
	planeLen = xBytes * yBits
)

// reverseByte mirrors the bit order of b.
func reverseByte(b byte) byte {
	b = b&0x0F<<4 | b&0xF0>>4
	b = b&0x33<<2 | b&0xCC>>2
	return b&0x55<<1 | b&0xAA>>1
}

// transferIndex maps the pos'th byte of the wire stream to an index into
// the logical framebuffer and reports whether that byte must be
// bit-mirrored. The mapping is a bijection over the plane for every
// orientation and is shared by the black, red and combined transfer paths.
//
// Portrait buffers are row-major (HLSB); landscape buffers are packed in
// 8-row bands (VLSB), so a band of the logical buffer corresponds to one
// byte column of panel RAM.
func transferIndex(o Orientation, pos int) (int, bool) {
	switch o {
	case Portrait:
		return pos, false
	case PortraitFlipped:
		return planeLen - 1 - pos, true
	case Landscape:
		j, i := pos/yBits, pos%yBits
		return i + (xBytes-1-j)*yBits, false
	default: // LandscapeFlipped
		j, i := pos/yBits, pos%yBits
		return (j+1)*yBits - 1 - i, true
	}
}

// packPlane serializes a logical plane into wire order. combine, when non
// nil, is ANDed byte-wise with src before packing. invert complements each
// byte on the wire; the red plane uses it because the panel wants the red
// RAM in the opposite polarity of the framebuffer convention.
func packPlane(src []byte, o Orientation, combine []byte, invert bool) []byte {
	out := make([]byte, len(src))
	for pos := range out {
		idx, mirror := transferIndex(o, pos)
		b := src[idx]
		if combine != nil {
			b &= combine[idx]
		}
		if mirror {
			b = reverseByte(b)
		}
		if invert {
			b = ^b
		}
		out[pos] = b
	}
	return out
}

// writePlane streams a full plane of image data to the given RAM write
// command.
func writePlane(ctrl controller, cmd byte, src []byte, o Orientation, combine []byte, invert bool) {
	ctrl.sendCommand(cmd)
	ctrl.sendData(packPlane(src, o, combine, invert))
}

// writeBlankPlane streams an all-zero plane, used to clear the red RAM
// during an interstitial full refresh without touching the red buffer.
func writeBlankPlane(ctrl controller, cmd byte) {
	ctrl.sendCommand(cmd)
	ctrl.sendData(bytes.Repeat([]byte{0x00}, planeLen))
}
