package microgui

import (
	"errors"
	"image/color"
)

// Surface is the pixel target abstraction every draw call renders to.
//
// A Surface is a rectangular pixel grid with a present step that
// transfers the buffer to physical hardware. Implementations may back
// it with a byte buffer (framebuf), a terminal (tcellfb), or any
// display driver. Pixel writes outside the surface bounds must be
// clipped, not panicked on.
//
// Color values are opaque: a surface converts them to its own pixel
// format and callers must not assume a specific bit depth.
//
// Surface identity matters. The registry keys pending widgets by the
// interface value, so two surfaces with identical dimensions are still
// distinct targets.
//
// Surfaces are NOT thread-safe. Each surface should be used from a
// single goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetPixel writes a single pixel.
	SetPixel(x, y int, c color.Color)

	// Line draws a straight segment between two points, inclusive of
	// both endpoints.
	Line(x0, y0, x1, y1 int, c color.Color)

	// FillRect fills the w×h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int, c color.Color)

	// Rect draws the one-pixel outline of the w×h rectangle whose
	// top-left corner is (x, y).
	Rect(x, y, w, h int, c color.Color)

	// Fill clears the entire surface to the given color.
	Fill(c color.Color)

	// Show presents the buffer on the physical display.
	// For purely in-memory surfaces this may be a no-op.
	Show() error
}

// ErrInvalidSurface is returned by Refresh when the target does not
// satisfy the surface contract (nil, or degenerate dimensions).
var ErrInvalidSurface = errors.New("microgui: invalid surface")

// validateSurface rejects targets that cannot be drawn on.
func validateSurface(dev Surface) error {
	if dev == nil {
		return ErrInvalidSurface
	}
	if dev.Width() <= 0 || dev.Height() <= 0 {
		return ErrInvalidSurface
	}
	return nil
}
