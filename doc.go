// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epd2in66b controls the Waveshare 2.66 inch (B) black/white/red
// e-paper display over 4-wire SPI.
//
// The panel is a 152x296 tri-color display. In the standard three-color
// mode only global (full panel) refreshes are available. The driver also
// supports a two-color mode in which a custom waveform enables faster
// partial refreshes; in that mode the red buffer can still be written to
// but its content is not displayed.
//
// Partial refresh is not officially supported by the display OEM. It
// relies on an undocumented waveform and may degrade or damage the panel;
// use it at your own risk. The driver also does not verify that the panel
// is free of red content before entering partial mode, which the hardware
// appears to require for artifact-free updates. That precondition is the
// caller's responsibility.
//
// Datasheet
//
// https://www.waveshare.com/w/upload/8/8a/2.66inch-e-paper-b-specification.pdf
//
// Product page:
//
// https://www.waveshare.com/wiki/2.66inch_e-Paper_Module_(B)
package epd2in66b
