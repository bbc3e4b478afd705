package microgui

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Writer is the text context widgets bind to: a font face, default
// colors and a text position on one surface. It renders glyph masks
// pixel by pixel through the surface contract, so it works on any
// backend regardless of pixel format.
//
// The default face is the fixed-metric basicfont.Face7x13, which suits
// the small monochrome and RGB565 displays this package targets.
type Writer struct {
	dev  Surface
	face font.Face

	fg, bg color.Color

	// Text position: row is the top of the current glyph line.
	row, col int

	// Clip state. rowClip stops output at the bottom edge instead of
	// scrolling; colClip stops at the right edge; wrap continues on
	// the next line when colClip is off.
	rowClip, colClip, wrap bool

	// clipped reports whether the last WriteString lost characters to
	// an edge.
	clipped bool
}

// NewWriter binds a text context to a surface. A nil face selects
// basicfont.Face7x13; fg and bg default to white on black.
func NewWriter(dev Surface, face font.Face, fg, bg color.Color) *Writer {
	if face == nil {
		face = basicfont.Face7x13
	}
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Black
	}
	return &Writer{
		dev:     dev,
		face:    face,
		fg:      fg,
		bg:      bg,
		rowClip: true,
		colClip: false,
		wrap:    true,
	}
}

// Device returns the surface this writer renders to.
func (w *Writer) Device() Surface { return w.dev }

// Fg returns the writer's default foreground color.
func (w *Writer) Fg() color.Color { return w.fg }

// Bg returns the writer's default background color.
func (w *Writer) Bg() color.Color { return w.bg }

// SetColors changes the colors used for subsequent glyphs. Nil values
// keep the current color.
func (w *Writer) SetColors(fg, bg color.Color) {
	if fg != nil {
		w.fg = fg
	}
	if bg != nil {
		w.bg = bg
	}
}

// SetClip configures edge behavior: rowClip stops output at the bottom
// edge, colClip stops at the right edge, wrap continues long lines on
// the next row. Widgets disable scrolling and wrapping at binding time.
func (w *Writer) SetClip(rowClip, colClip, wrap bool) {
	w.rowClip = rowClip
	w.colClip = colClip
	w.wrap = wrap
}

// SetTextPos moves the text insertion point. row is the top of the
// glyph line, col the left edge of the next glyph.
func (w *Writer) SetTextPos(row, col int) {
	w.row = row
	w.col = col
}

// TextPos returns the current insertion point.
func (w *Writer) TextPos() (row, col int) {
	return w.row, w.col
}

// Height returns the line height of the writer's face in pixels.
func (w *Writer) Height() int {
	return w.face.Metrics().Height.Ceil()
}

// StringWidth returns the rendered width of s in pixels.
func (w *Writer) StringWidth(s string) int {
	width := fixed.I(0)
	for _, r := range s {
		adv, ok := w.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width += adv
	}
	return width.Ceil()
}

// Clipped reports whether the last WriteString lost characters to a
// surface edge.
func (w *Writer) Clipped() bool { return w.clipped }

// WriteString renders s at the current text position, advancing it.
// Newlines move to column 0 of the next line. Behavior at the right
// and bottom edges follows the SetClip configuration.
func (w *Writer) WriteString(s string) {
	w.clipped = false
	m := w.face.Metrics()
	ascent := m.Ascent.Ceil()
	height := m.Height.Ceil()
	for _, r := range s {
		if r == '\n' {
			if !w.newline(height) {
				return
			}
			continue
		}
		adv, ok := w.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		cellW := adv.Ceil()
		if w.col+cellW > w.dev.Width() {
			if w.colClip || !w.wrap {
				w.clipped = true
				return
			}
			if !w.newline(height) {
				return
			}
		}
		w.dev.FillRect(w.col, w.row, cellW, height, w.bg)
		dot := fixed.P(w.col, w.row+ascent)
		dr, mask, maskp, _, ok := w.face.Glyph(dot, r)
		if ok {
			for y := dr.Min.Y; y < dr.Max.Y; y++ {
				for x := dr.Min.X; x < dr.Max.X; x++ {
					_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
					if a >= 0x8000 {
						w.dev.SetPixel(x, y, w.fg)
					}
				}
			}
		}
		w.col += cellW
	}
}

// newline advances to the next line, reporting false when the bottom
// edge clips further output.
func (w *Writer) newline(height int) bool {
	w.col = 0
	w.row += height
	if w.row+height > w.dev.Height() && w.rowClip {
		w.clipped = true
		return false
	}
	return true
}
