// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framebuf provides in-memory pixel surfaces backed by a
// stride-addressed byte buffer, matching the layouts small display
// controllers consume directly (RGB565, vertical-bit mono pages).
//
// A Device satisfies the microgui Surface contract. Present is a flush
// callback: real drivers hand the raw buffer to SPI/I2C transfer code,
// tests and tools read it back through Snapshot.
package framebuf

import (
	"image"
	"image/color"

	"github.com/gogpu/microgui"
)

// Format selects the in-memory pixel layout.
type Format uint8

const (
	// RGB565 stores 16 bits per pixel, little-endian, two bytes per
	// pixel with stride = width*2.
	RGB565 Format = iota

	// MonoVLSB stores 1 bit per pixel in vertical bytes: bit n of the
	// byte at (page*width + x) is the pixel at y = page*8 + n. This is
	// the native layout of SSD1306-class OLED controllers.
	MonoVLSB
)

// FlushFunc transfers the raw buffer to the physical display.
type FlushFunc func(buf []byte) error

// Compile-time check that Device implements the surface contract.
var _ microgui.Surface = (*Device)(nil)

// Device is an in-memory framebuffer surface.
type Device struct {
	width  int
	height int
	stride int
	format Format
	buf    []byte
	flush  FlushFunc
}

// New creates a framebuffer of the given dimensions and format. flush
// may be nil for purely in-memory use; Show is then a no-op.
func New(width, height int, format Format, flush FlushFunc) *Device {
	d := &Device{
		width:  width,
		height: height,
		format: format,
		flush:  flush,
	}
	switch format {
	case MonoVLSB:
		d.stride = width
		pages := (height + 7) / 8
		d.buf = make([]byte, width*pages)
	default:
		d.stride = width * 2
		d.buf = make([]byte, d.stride*height)
	}
	return d
}

// Width returns the surface width in pixels.
func (d *Device) Width() int { return d.width }

// Height returns the surface height in pixels.
func (d *Device) Height() int { return d.height }

// Format returns the buffer's pixel layout.
func (d *Device) Format() Format { return d.format }

// Buffer returns the raw backing buffer in the device's native layout.
func (d *Device) Buffer() []byte { return d.buf }

// SetPixel writes a single pixel. Out-of-bounds writes are clipped.
func (d *Device) SetPixel(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.set(x, y, c)
}

// set writes without bounds checking; callers must clip first.
func (d *Device) set(x, y int, c color.Color) {
	switch d.format {
	case MonoVLSB:
		off := (y>>3)*d.stride + x
		bit := byte(1) << (y & 7)
		if monoOn(c) {
			d.buf[off] |= bit
		} else {
			d.buf[off] &^= bit
		}
	default:
		p := rgb565From(c)
		off := y*d.stride + x*2
		d.buf[off] = byte(p)
		d.buf[off+1] = byte(p >> 8)
	}
}

// Pixel reads back a single pixel, expanded to 8-bit RGBA.
// Out-of-bounds reads return opaque black.
func (d *Device) Pixel(x, y int) color.Color {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return color.RGBA{A: 0xff}
	}
	switch d.format {
	case MonoVLSB:
		off := (y>>3)*d.stride + x
		if d.buf[off]&(1<<(y&7)) != 0 {
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return color.RGBA{A: 0xff}
	default:
		off := y*d.stride + x*2
		p := uint16(d.buf[off]) | uint16(d.buf[off+1])<<8
		return rgb565To(p)
	}
}

// Line draws a straight segment between two points, inclusive of both
// endpoints. Horizontal and vertical segments take fast paths; the
// general case is integer Bresenham.
func (d *Device) Line(x0, y0, x1, y1 int, c color.Color) {
	if y0 == y1 {
		d.hline(x0, x1, y0, c)
		return
	}
	if x0 == x1 {
		d.vline(x0, y0, y1, c)
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (d *Device) hline(x0, x1, y int, c color.Color) {
	if y < 0 || y >= d.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, d.width-1)
	for x := x0; x <= x1; x++ {
		d.set(x, y, c)
	}
}

func (d *Device) vline(x, y0, y1 int, c color.Color) {
	if x < 0 || x >= d.width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, d.height-1)
	for y := y0; y <= y1; y++ {
		d.set(x, y, c)
	}
}

// FillRect fills the w×h rectangle at (x, y), clipped to the surface.
func (d *Device) FillRect(x, y, w, h int, c color.Color) {
	x1 := min(x+w-1, d.width-1)
	y1 := min(y+h-1, d.height-1)
	x = max(x, 0)
	y = max(y, 0)
	for row := y; row <= y1; row++ {
		for col := x; col <= x1; col++ {
			d.set(col, row, c)
		}
	}
}

// Rect draws the one-pixel outline of the w×h rectangle at (x, y).
func (d *Device) Rect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	d.hline(x, x+w-1, y, c)
	d.hline(x, x+w-1, y+h-1, c)
	d.vline(x, y, y+h-1, c)
	d.vline(x+w-1, y, y+h-1, c)
}

// Fill clears the whole surface to the given color.
func (d *Device) Fill(c color.Color) {
	switch d.format {
	case MonoVLSB:
		b := byte(0)
		if monoOn(c) {
			b = 0xff
		}
		for i := range d.buf {
			d.buf[i] = b
		}
	default:
		p := rgb565From(c)
		lo := byte(p)
		hi := byte(p >> 8)
		for i := 0; i < len(d.buf); i += 2 {
			d.buf[i] = lo
			d.buf[i+1] = hi
		}
	}
}

// Show hands the raw buffer to the flush callback, or does nothing if
// none was configured.
func (d *Device) Show() error {
	if d.flush == nil {
		return nil
	}
	return d.flush(d.buf)
}

// Snapshot returns a copy of the surface contents as an RGBA image.
func (d *Device) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			img.Set(x, y, d.Pixel(x, y))
		}
	}
	return img
}

// rgb565From packs a color into 5-6-5 bits.
func rgb565From(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
}

// rgb565To expands a 5-6-5 pixel to 8-bit channels, replicating the
// high bits into the low bits so full intensity maps to 0xff.
func rgb565To(p uint16) color.RGBA {
	r := uint8(p >> 11)
	g := uint8(p >> 5 & 0x3f)
	b := uint8(p & 0x1f)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// monoOn reports whether a color is "lit" on a 1-bit display, using a
// half-intensity luminance threshold.
func monoOn(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	lum := (299*uint64(r) + 587*uint64(g) + 114*uint64(b)) / 1000
	return lum >= 0x8000
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
