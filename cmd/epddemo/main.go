// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// epddemo exercises the Waveshare 2.66 inch (B) panel: a two-color partial
// refresh session followed by a three-color global session, mirroring the
// vendor test sequence.
package main

import (
	"flag"
	"image"
	"image/draw"
	"io/ioutil"
	"log"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/gxt-dev/epd2in66b"
	"github.com/gxt-dev/epd2in66b/epdterm"
	"github.com/gxt-dev/epd2in66b/monofb"
)

func main() {
	spiID := flag.String("spi", "", "SPI port to use, empty for the first available")
	orientation := epd2in66b.LandscapeFlipped
	flag.Var(&orientation, "orientation", "panel orientation: portrait, portrait_flipped, landscape or landscape_flipped")
	fontPath := flag.String("font", "", "TTF font for the banner, empty for the builtin 7x13 font")
	preview := flag.Bool("preview", false, "render every update to the terminal as well")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := spireg.Open(*spiID)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := epd2in66b.EPD2in66B
	opts.Orientation = orientation
	dev, err := epd2in66b.NewHat(b, &opts)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}
	if err := dev.Init(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}
	if err := dev.Clear(epd2in66b.Global); err != nil {
		log.Fatal(err)
	}

	var term *epdterm.Dev
	if *preview {
		term = epdterm.New(&epdterm.Opts{})
	}
	show := func() {
		if err := dev.Draw(); err != nil {
			log.Fatal(err)
		}
		if term != nil {
			if err := term.Show(dev.Black(), dev.Red()); err != nil {
				log.Fatal(err)
			}
		}
	}

	black := dev.Black()
	red := dev.Red()
	w := dev.Bounds().Dx()
	h := dev.Bounds().Dy()

	// Two-color partial refresh session.
	log.Print("2-color partial refresh demo")
	if err := dev.SetColorMode(epd2in66b.TwoColor, false); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetRefreshMode(epd2in66b.Partial); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetAutoRefresh(true, 8); err != nil {
		log.Fatal(err)
	}

	// Corner marks.
	black.Rect(0, 0, 4, 16, monofb.Off, true)
	black.Rect(0, 0, 16, 4, monofb.Off, true)
	black.Rect(w-16, h-4, 16, 4, monofb.Off, true)
	black.Rect(w-4, h-16, 4, 16, monofb.Off, true)
	show()

	if err := dev.Clear(epd2in66b.Partial); err != nil {
		log.Fatal(err)
	}
	black.Text("3-color epaper partial refresh demo", 10, 10, monofb.Off)
	show()
	black.Text("Waveshare 2in66b", 10, 25, monofb.Off)
	red.Text("hidden text :)", 176, 25, monofb.Off)
	show()
	black.Text("Resolution: 296x152", 10, 40, monofb.Off)
	show()

	// Three-color global session.
	log.Print("3-color global refresh demo")
	if err := dev.SetColorMode(epd2in66b.ThreeColor, false); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetRefreshMode(epd2in66b.Global); err != nil {
		log.Fatal(err)
	}

	red.VLine(10, 90, 40, monofb.Off)
	red.VLine(90, 90, 40, monofb.Off)
	black.HLine(10, 90, 80, monofb.Off)
	black.HLine(10, 129, 80, monofb.Off)
	red.Line(10, 90, 90, 129, monofb.Off)
	black.Line(90, 90, 10, 129, monofb.Off)
	black.Rect(120, 90, 40, 40, monofb.Off, true)
	red.Rect(190, 90, 40, 40, monofb.Off, true)

	if err := drawBanner(black, *fontPath, "Hello from Go", w, 24); err != nil {
		log.Fatal(err)
	}
	show()

	if err := dev.Clear(epd2in66b.Global); err != nil {
		log.Fatal(err)
	}
	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}
}

// drawBanner renders text into the top band of the buffer, with a TTF face
// when one is given and the builtin font otherwise.
func drawBanner(dst *monofb.Image, fontPath, text string, w, h int) error {
	if fontPath == "" {
		dst.Text(text, 10, 55, monofb.Off)
		return nil
	}

	raw, err := ioutil.ReadFile(fontPath)
	if err != nil {
		return err
	}
	f, err := truetype.Parse(raw)
	if err != nil {
		return err
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: float64(h) * 0.75}))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.5)

	// Threshold onto the 1-bit buffer.
	draw.Draw(dst, image.Rect(0, 48, w, 48+h), dc.Image(), image.Point{}, draw.Src)
	return nil
}
