// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package monofb

// HLine draws a horizontal line from (x,y) to (x+w-1,y).
func (m *Image) HLine(x, y, w int, b Bit) {
	for i := x; i < x+w; i++ {
		m.SetBit(i, y, b)
	}
}

// VLine draws a vertical line from (x,y) to (x,y+h-1).
func (m *Image) VLine(x, y, h int, b Bit) {
	for i := y; i < y+h; i++ {
		m.SetBit(x, i, b)
	}
}

// Rect draws a w by h rectangle with its top-left corner at (x,y), either
// as an outline or filled.
func (m *Image) Rect(x, y, w, h int, b Bit, fill bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if fill {
		for i := y; i < y+h; i++ {
			m.HLine(x, i, w, b)
		}
		return
	}
	m.HLine(x, y, w, b)
	m.HLine(x, y+h-1, w, b)
	m.VLine(x, y, h, b)
	m.VLine(x+w-1, y, h, b)
}

// Line draws a line from (x0,y0) to (x1,y1) using Bresenham's algorithm.
func (m *Image) Line(x0, y0, x1, y1 int, b Bit) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		m.SetBit(x0, y0, b)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
