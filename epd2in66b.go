// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"

	"github.com/gxt-dev/epd2in66b/monofb"
)

// Opts definies the structure of the display configuration.
type Opts struct {
	// Orientation maps the logical framebuffer onto the panel. Fixed after
	// construction.
	Orientation Orientation
	// ColorMode is the initial color mode.
	ColorMode ColorMode
	// RefreshMode is the initial refresh mode. Partial requires TwoColor.
	RefreshMode RefreshMode
	// BusyTimeout bounds every busy-line wait. Zero waits forever, matching
	// the datasheet protocol; a panel that never releases the busy line then
	// blocks the calling goroutine permanently.
	BusyTimeout time.Duration
}

// EPD2in66B is the default configuration: portrait, three-color, global
// refresh.
var EPD2in66B = Opts{
	Orientation: Portrait,
	ColorMode:   ThreeColor,
	RefreshMode: Global,
}

// Dev defines the handler which is used to access the display.
type Dev struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn

	opts *Opts

	colorMode   ColorMode
	refreshMode RefreshMode
	combine     bool

	autoRefresh  bool
	maxPartial   int
	partialCount int

	black *monofb.Image
	red   *monofb.Image
}

// New creates new handler which is used to access the display.
//
// New does not touch the panel; call Init to program the configured modes
// into the hardware.
func New(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	if !opts.Orientation.valid() {
		return nil, fmt.Errorf("%w: orientation %d", ErrInvalidArgument, int(opts.Orientation))
	}
	if !opts.ColorMode.valid() {
		return nil, fmt.Errorf("%w: color mode %d", ErrInvalidArgument, int(opts.ColorMode))
	}
	if !opts.RefreshMode.valid() {
		return nil, fmt.Errorf("%w: refresh mode %d", ErrInvalidArgument, int(opts.RefreshMode))
	}
	if opts.RefreshMode == Partial && opts.ColorMode == ThreeColor {
		return nil, fmt.Errorf("%w: partial refresh is not available in 3-color mode", ErrUnsupported)
	}

	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	var black, red *monofb.Image
	if opts.Orientation.landscape() {
		black = monofb.New(yRes, xRes, monofb.VLSB)
		red = monofb.New(yRes, xRes, monofb.VLSB)
	} else {
		black = monofb.New(xRes, yRes, monofb.HLSB)
		red = monofb.New(xRes, yRes, monofb.HLSB)
	}
	black.Fill(monofb.On)
	red.Fill(monofb.On)

	d := &Dev{
		c:           c,
		dc:          dc,
		cs:          cs,
		rst:         rst,
		busy:        busy,
		opts:        opts,
		colorMode:   opts.ColorMode,
		refreshMode: opts.RefreshMode,
		black:       black,
		red:         red,
	}

	return d, nil
}

// NewHat creates new handler which is used to access the display. Default Waveshare Hat configuration is used.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return New(p, dc, cs, rst, busy, opts)
}

// Init resets the panel and programs the configured color and refresh
// mode. It must be called before the first Draw and again after Sleep.
func (d *Dev) Init() error {
	return d.applyRefreshMode(d.refreshMode)
}

// Black returns the black framebuffer. Draw into it directly; Off pixels
// render as black ink.
func (d *Dev) Black() *monofb.Image {
	return d.black
}

// Red returns the red framebuffer. Off pixels render as red ink in
// three-color mode; in two-color mode the buffer can be written to but is
// not displayed unless folded in via SetCombineRB.
func (d *Dev) Red() *monofb.Image {
	return d.red
}

// SetColorMode switches between three-color and two-color operation. The
// mode is recorded without touching the panel, except when switching from
// three-color to two-color with refresh set: then a global re-init and a
// full draw run so stale red content does not linger on the display.
//
// Switching back to three-color while the panel is configured for partial
// refresh requires a SetRefreshMode(Global) call before the next Draw.
func (d *Dev) SetColorMode(mode ColorMode, refresh bool) error {
	if !mode.valid() {
		return fmt.Errorf("%w: color mode %d", ErrInvalidArgument, int(mode))
	}
	prev := d.colorMode
	d.colorMode = mode

	if refresh && prev == ThreeColor && mode == TwoColor {
		if err := d.applyRefreshMode(Global); err != nil {
			return err
		}
		return d.Draw()
	}
	return nil
}

// SetRefreshMode switches between global and partial refresh and fully
// re-initializes the panel for the new mode. Partial refresh is rejected
// in three-color mode before any byte is sent to the panel.
func (d *Dev) SetRefreshMode(mode RefreshMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: refresh mode %d", ErrInvalidArgument, int(mode))
	}
	if mode == Partial && d.colorMode == ThreeColor {
		return fmt.Errorf("%w: partial refresh is not available in 3-color mode", ErrUnsupported)
	}
	return d.applyRefreshMode(mode)
}

// applyRefreshMode performs the full mode initialization: hardware reset,
// software reset, data entry mode, RAM window and cursor, then the
// mode-specific command stream.
func (d *Dev) applyRefreshMode(mode RefreshMode) error {
	if err := d.Reset(); err != nil {
		return err
	}

	eh := errorHandler{d: *d}
	initPanel(&eh, d.opts.Orientation)

	switch {
	case d.colorMode == ThreeColor:
		configThreeColorGlobal(&eh)
	case mode == Global:
		configTwoColorGlobal(&eh)
	default:
		configTwoColorPartial(&eh, partialUpdate)
	}

	if eh.err == nil {
		d.refreshMode = mode
	}
	return eh.err
}

// Draw transfers the framebuffers to the panel and triggers an update in
// the current mode.
//
// In three-color mode both planes are sent. In two-color mode only the
// black plane is sent, optionally AND-combined with the red buffer, and
// with auto-refresh enabled a capped run of partial updates is followed by
// one interstitial global refresh.
func (d *Dev) Draw() error {
	o := d.opts.Orientation

	if d.colorMode == ThreeColor {
		if d.refreshMode != Global {
			return fmt.Errorf("%w: partial refresh is not available in 3-color mode", ErrUnsupported)
		}
		eh := errorHandler{d: *d}
		writePlane(&eh, writeRAMBW, d.black.Pix(), o, nil, false)
		writePlane(&eh, writeRAMRed, d.red.Pix(), o, nil, true)
		turnOnDisplay(&eh)
		if eh.err != nil {
			return eh.err
		}
		d.partialCount = 0
		return nil
	}

	if d.autoRefresh && d.refreshMode == Partial && d.partialCount >= d.maxPartial {
		return d.fullRefresh()
	}

	var combine []byte
	if d.combine {
		combine = d.red.Pix()
	}

	eh := errorHandler{d: *d}
	writePlane(&eh, writeRAMBW, d.black.Pix(), o, combine, false)
	turnOnDisplay(&eh)
	if eh.err != nil {
		return eh.err
	}

	if d.autoRefresh && d.refreshMode == Partial {
		d.partialCount++
	} else {
		d.partialCount = 0
	}
	return nil
}

// fullRefresh caps a run of partial updates: re-initialize with the
// factory global waveform, push the current black plane and a blank red
// plane, update, then re-enter partial mode.
func (d *Dev) fullRefresh() error {
	if err := d.Reset(); err != nil {
		return err
	}

	eh := errorHandler{d: *d}
	initPanel(&eh, d.opts.Orientation)
	configThreeColorGlobal(&eh)

	var combine []byte
	if d.combine {
		combine = d.red.Pix()
	}
	writePlane(&eh, writeRAMBW, d.black.Pix(), d.opts.Orientation, combine, false)
	writeBlankPlane(&eh, writeRAMRed)
	turnOnDisplay(&eh)
	if eh.err != nil {
		return eh.err
	}

	if err := d.applyRefreshMode(Partial); err != nil {
		return err
	}
	d.partialCount = 0
	return nil
}

// Refresh forces a full-quality redraw. From global mode it is a plain
// Draw; from partial mode the panel is switched to global for one draw and
// then restored.
func (d *Dev) Refresh() error {
	if d.refreshMode == Global {
		return d.Draw()
	}
	if err := d.applyRefreshMode(Global); err != nil {
		return err
	}
	if err := d.Draw(); err != nil {
		return err
	}
	return d.applyRefreshMode(Partial)
}

// Clear blanks both framebuffers and redraws the panel in the requested
// refresh mode, temporarily switching modes if needed and restoring the
// previous one afterwards.
func (d *Dev) Clear(mode RefreshMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: refresh mode %d", ErrInvalidArgument, int(mode))
	}
	if mode == Partial && d.colorMode == ThreeColor {
		return fmt.Errorf("%w: partial clear is not available in 3-color mode", ErrUnsupported)
	}

	d.black.Fill(monofb.On)
	d.red.Fill(monofb.On)

	if mode == d.refreshMode {
		return d.Draw()
	}

	restore := d.refreshMode
	if err := d.applyRefreshMode(mode); err != nil {
		return err
	}
	if err := d.Draw(); err != nil {
		return err
	}
	return d.applyRefreshMode(restore)
}

// SetAutoRefresh configures the partial update cap. With enabled set, the
// draw after maxCount consecutive partial updates transparently performs
// one global refresh cycle and resets the count.
func (d *Dev) SetAutoRefresh(enabled bool, maxCount int) error {
	if enabled && maxCount < 1 {
		return fmt.Errorf("%w: auto refresh count %d", ErrInvalidArgument, maxCount)
	}
	d.autoRefresh = enabled
	d.maxPartial = maxCount
	return nil
}

// SetCombineRB controls whether two-color transfers fold the red buffer
// into the black plane. With the flag set, content drawn only in red still
// renders as black.
func (d *Dev) SetCombineRB(combine bool) {
	d.combine = combine
}

// Sleep makes the controller enter deep sleep mode. RAM content is
// retained; only Init (or Reset) wakes the panel up again.
func (d *Dev) Sleep() error {
	eh := errorHandler{d: *d}
	deepSleep(&eh)
	return eh.err
}

// Reset performs a hardware reset with the hold times from the panel
// datasheet.
func (d *Dev) Reset() error {
	eh := errorHandler{d: *d}

	eh.rstOut(gpio.High)
	time.Sleep(50 * time.Millisecond)
	eh.rstOut(gpio.Low)
	time.Sleep(2 * time.Millisecond)
	eh.rstOut(gpio.High)
	time.Sleep(50 * time.Millisecond)

	return eh.err
}

// Halt implements conn.Resource and puts the panel into deep sleep.
func (d *Dev) Halt() error {
	return d.Sleep()
}

// ColorModel returns a 1Bit color model.
func (d *Dev) ColorModel() color.Model {
	return monofb.BitModel
}

// Bounds returns the bounds of the logical framebuffers.
func (d *Dev) Bounds() image.Rectangle {
	return d.black.Bounds()
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("epd2in66b.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, d.Bounds().Dx(), d.Bounds().Dy())
}

var _ conn.Resource = &Dev{}
