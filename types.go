// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in66b

import (
	"errors"
	"fmt"
)

// Errors returned by the driver.
var (
	// ErrInvalidArgument is returned when an orientation or mode value is
	// not recognized.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupported is returned when a mode combination is rejected by the
	// panel protocol, such as partial refresh in three-color mode.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrBusyTimeout is returned when Opts.BusyTimeout is set and the panel
	// did not release the busy line in time.
	ErrBusyTimeout = errors.New("busy line timeout")
)

// Orientation defines how the logical framebuffer maps onto the physical
// panel.
type Orientation int

// Valid Orientation.
const (
	Portrait Orientation = iota
	PortraitFlipped
	Landscape
	LandscapeFlipped
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case PortraitFlipped:
		return "portrait_flipped"
	case Landscape:
		return "landscape"
	case LandscapeFlipped:
		return "landscape_flipped"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Set sets the Orientation to a value represented by the string s. Set implements the flag.Value interface.
func (o *Orientation) Set(s string) error {
	switch s {
	case "portrait":
		*o = Portrait
	case "portrait_flipped":
		*o = PortraitFlipped
	case "landscape":
		*o = Landscape
	case "landscape_flipped":
		*o = LandscapeFlipped
	default:
		return fmt.Errorf("%w: unknown orientation %q: expected portrait, portrait_flipped, landscape or landscape_flipped", ErrInvalidArgument, s)
	}
	return nil
}

func (o Orientation) valid() bool {
	switch o {
	case Portrait, PortraitFlipped, Landscape, LandscapeFlipped:
		return true
	default:
		return false
	}
}

func (o Orientation) landscape() bool {
	return o == Landscape || o == LandscapeFlipped
}

// ColorMode selects between the standard three-color operation and the
// two-color operation required for partial refresh.
type ColorMode int

// Valid ColorMode.
const (
	// ThreeColor displays both the black and the red buffer. Only global
	// refresh is available.
	ThreeColor ColorMode = iota
	// TwoColor displays the black buffer only. The red buffer can still be
	// written to but is not shown.
	TwoColor
)

func (c ColorMode) String() string {
	switch c {
	case ThreeColor:
		return "3-color"
	case TwoColor:
		return "2-color"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(c))
	}
}

// Set sets the ColorMode to a value represented by the string s. Set implements the flag.Value interface.
func (c *ColorMode) Set(s string) error {
	switch s {
	case "3-color":
		*c = ThreeColor
	case "2-color":
		*c = TwoColor
	default:
		return fmt.Errorf("%w: unknown color mode %q: expected 3-color or 2-color", ErrInvalidArgument, s)
	}
	return nil
}

func (c ColorMode) valid() bool {
	return c == ThreeColor || c == TwoColor
}

// RefreshMode selects between full-quality global refreshes and the faster
// partial refresh waveform.
type RefreshMode int

// Valid RefreshMode.
const (
	// Global refreshes the whole panel with the factory waveform. Slower,
	// always clears ghosting.
	Global RefreshMode = iota
	// Partial refreshes the panel with a custom waveform. Only available in
	// two-color mode and not officially supported by the panel vendor.
	Partial
)

func (r RefreshMode) String() string {
	switch r {
	case Global:
		return "global"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("RefreshMode(%d)", int(r))
	}
}

// Set sets the RefreshMode to a value represented by the string s. Set implements the flag.Value interface.
func (r *RefreshMode) Set(s string) error {
	switch s {
	case "global":
		*r = Global
	case "partial":
		*r = Partial
	default:
		return fmt.Errorf("%w: unknown refresh mode %q: expected global or partial", ErrInvalidArgument, s)
	}
	return nil
}

func (r RefreshMode) valid() bool {
	return r == Global || r == Partial
}
