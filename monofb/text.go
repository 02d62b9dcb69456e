// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package monofb

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text draws s with its top-left corner at (x,y) using the 7x13 basic font.
//
// For other fonts draw onto the image directly with font.Drawer; Image
// implements draw.Image.
func (m *Image) Text(s string, x, y int, b Bit) {
	f := basicfont.Face7x13
	d := font.Drawer{
		Dst:  m,
		Src:  &image.Uniform{b},
		Face: f,
		Dot:  fixed.P(x, y+f.Ascent),
	}
	d.DrawString(s)
}
