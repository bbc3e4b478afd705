// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellfb renders a microgui pixel surface into a terminal via
// tcell, one character cell per pixel. It exists for development and
// demos: the same widget code that targets a hardware framebuffer runs
// unmodified against a terminal window.
package tcellfb

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/microgui"
)

// pixelRune is the glyph used for a lit cell; its foreground color
// carries the pixel color.
const pixelRune = '█'

// Compile-time check that Surface implements the surface contract.
var _ microgui.Surface = (*Surface)(nil)

// Surface adapts a tcell screen to the microgui Surface contract.
type Surface struct {
	screen tcell.Screen
	width  int
	height int
}

// New wraps an initialized tcell screen as a width×height pixel
// surface. The logical size is clamped to the screen size at creation.
func New(screen tcell.Screen, width, height int) *Surface {
	sw, sh := screen.Size()
	return &Surface{
		screen: screen,
		width:  min(width, sw),
		height: min(height, sh),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// SetPixel writes a single pixel. Out-of-bounds writes are clipped.
func (s *Surface) SetPixel(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(c))
	s.screen.SetContent(x, y, pixelRune, nil, style)
}

// Line draws a straight segment between two points, inclusive of both
// endpoints, using integer Bresenham stepping.
func (s *Surface) Line(x0, y0, x1, y1 int, c color.Color) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y0 - y1
	if dy > 0 {
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
	err := dx + dy
	for {
		s.SetPixel(x0, y0, c)
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

// FillRect fills the w×h rectangle at (x, y).
func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetPixel(col, row, c)
		}
	}
}

// Rect draws the one-pixel outline of the w×h rectangle at (x, y).
func (s *Surface) Rect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Line(x, y, x+w-1, y, c)
	s.Line(x, y+h-1, x+w-1, y+h-1, c)
	s.Line(x, y, x, y+h-1, c)
	s.Line(x+w-1, y, x+w-1, y+h-1, c)
}

// Fill clears the whole surface to the given color.
func (s *Surface) Fill(c color.Color) {
	s.FillRect(0, 0, s.width, s.height, c)
}

// Show presents pending cell updates to the terminal.
func (s *Surface) Show() error {
	s.screen.Show()
	return nil
}

// toTcell converts an opaque color value to a 24-bit tcell color.
func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
