// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epdterm renders an e-paper framebuffer pair to the terminal
// (stdout) using ANSI color codes.
//
// Useful while you are waiting for your e-paper panel to come by mail, or
// to preview updates without spending refresh cycles on the real display.
package epdterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/gxt-dev/epd2in66b/monofb"
)

// Opts represents the options available for this preview.
type Opts struct {
	// W is the destination writer. The colorable stdout is used when nil.
	W io.Writer
	// Palette is the ANSI palette. ansi256.Default is used when nil.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is an e-paper panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits to do local testing without the physical panel attached.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{w: w, palette: *p}
}

func (d *Dev) String() string {
	return "EPDTerm"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

var (
	paper = color.NRGBA{255, 255, 255, 255}
	ink   = color.NRGBA{0, 0, 0, 255}
	pgmnt = color.NRGBA{200, 0, 0, 255}
)

// Show renders the black plane over the red plane, one colored block per
// pixel. The red plane may be nil, matching two-color operation where the
// red buffer is not displayed.
func (d *Dev) Show(blackImg, redImg *monofb.Image) error {
	if blackImg == nil {
		return fmt.Errorf("epdterm: black plane is required")
	}

	// This code is designed to minimize the amount of memory allocated per call.
	b := blackImg.Bounds()
	d.buf.Reset()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := b.Min.X; x < b.Max.X; x++ {
			c := paper
			if redImg != nil && redImg.BitAt(x, y) == monofb.Off {
				c = pgmnt
			}
			if blackImg.BitAt(x, y) == monofb.Off {
				c = ink
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
