package microgui

import (
	"errors"
	"image/color"
)

// ErrMissingLabel is returned by Text when the widget has no label
// capability.
var ErrMissingLabel = errors.New("microgui: widget has no label")

// borderMargin is how far outside the content box the border outline
// is drawn, in pixels.
const borderMargin = 2

type borderStyle uint8

const (
	borderDefault borderStyle = iota // resolve to foreground at construction
	borderNone
	borderBackground
	borderColored
)

// Border describes a widget's border state: absent, drawn in the
// widget's background color (invisible, but erases stale pixels), or
// an explicit color. The zero value defaults to the widget's
// foreground color.
type Border struct {
	style borderStyle
	color color.Color
}

// NoBorder returns the border sentinel for "no border drawn".
func NoBorder() Border {
	return Border{style: borderNone}
}

// BackgroundBorder returns a border drawn in the widget's background
// color.
func BackgroundBorder() Border {
	return Border{style: borderBackground}
}

// BorderColor returns an explicit-color border. A nil color behaves
// like the zero value (foreground).
func BorderColor(c color.Color) Border {
	if c == nil {
		return Border{}
	}
	return Border{style: borderColored, color: c}
}

// Labeled is the capability interface for widgets that carry a text
// label. Text dispatches on it instead of probing for attributes.
type Labeled interface {
	Label() *Label
}

// Text updates the label attached to a widget. It fails with
// ErrMissingLabel if the widget does not implement the Labeled
// capability (or implements it but has no label attached).
func Text(w Widget, text string) error {
	l, ok := w.(Labeled)
	if !ok || l.Label() == nil {
		return ErrMissingLabel
	}
	l.Label().SetText(text)
	return nil
}

// Base carries the state shared by every widget: a rectangular region
// on one surface, foreground/background/border colors with saved
// defaults, and an opaque display value. Concrete widgets embed Base,
// implement Show, and pend themselves after mutating state.
//
// A Base is created once per on-screen element and persists for the
// element's lifetime; there is no explicit teardown.
type Base struct {
	wr  *Writer
	dev Surface
	reg *Registry

	row, col      int
	height, width int

	fg, bg color.Color
	bd     Border

	// Saved defaults allow restoration after a dynamic color change.
	defFg color.Color
	defBg color.Color
	defBd Border

	// hasBorder tracks whether a border outline is currently on the
	// surface, so erasing is correct and idempotent.
	hasBorder bool

	// val is the opaque display value; nil means "do not display".
	val any
}

// NewBase constructs the shared widget state. fg, bg default to the
// writer's colors when nil; the border defaults to the foreground
// color unless a sentinel (NoBorder, BackgroundBorder) or explicit
// color is given.
//
// Out-of-bounds geometry is clamped into the drawable area and logged
// as a warning rather than rejected: a misplaced decorative widget
// should not abort program startup.
func NewBase(wr *Writer, reg *Registry, row, col, height, width int, fg, bg color.Color, bd Border) *Base {
	wr.SetClip(true, true, false) // widgets never scroll or wrap text
	dev := wr.Device()
	if reg == nil {
		reg = Default()
	}
	clamped := false
	if row < 0 {
		row = 0
		clamped = true
	} else if row+height >= dev.Height() {
		row = dev.Height() - height - 1
		clamped = true
	}
	if col < 0 {
		col = 0
		clamped = true
	} else if col+width >= dev.Width() {
		col = dev.Width() - width - 1
		clamped = true
	}
	if clamped {
		Logger().Warn("microgui: widget outside screen dimensions, geometry clamped",
			"row", row, "col", col, "height", height, "width", width)
	}
	if fg == nil {
		fg = wr.Fg()
	}
	if bg == nil {
		bg = wr.Bg()
	}
	if bd.style == borderDefault {
		bd = Border{style: borderColored, color: fg}
	}
	return &Base{
		wr:     wr,
		dev:    dev,
		reg:    reg,
		row:    row,
		col:    col,
		height: height,
		width:  width,
		fg:     fg,
		bg:     bg,
		bd:     bd,
		defFg:  fg,
		defBg:  bg,
		defBd:  bd,
	}
}

// Device returns the surface the widget lives on.
func (b *Base) Device() Surface { return b.dev }

// Writer returns the text context the widget was bound to.
func (b *Base) Writer() *Writer { return b.wr }

// Registry returns the registry the widget pends on.
func (b *Base) Registry() *Registry { return b.reg }

// Row returns the widget's top row.
func (b *Base) Row() int { return b.row }

// Col returns the widget's left column.
func (b *Base) Col() int { return b.col }

// Size returns the widget's height and width.
func (b *Base) Size() (height, width int) { return b.height, b.width }

// Fg returns the current foreground color.
func (b *Base) Fg() color.Color { return b.fg }

// Bg returns the current background color.
func (b *Base) Bg() color.Color { return b.bg }

// SetFg changes the foreground color. Takes effect on the next Show.
func (b *Base) SetFg(c color.Color) { b.fg = c }

// SetBg changes the background color. Takes effect on the next Show.
func (b *Base) SetBg(c color.Color) { b.bg = c }

// SetBorder changes the border state. Takes effect on the next Show.
func (b *Base) SetBorder(bd Border) {
	if bd.style == borderDefault {
		bd = Border{style: borderColored, color: b.fg}
	}
	b.bd = bd
}

// RestoreColors resets foreground, background and border to the values
// the widget was constructed with.
func (b *Base) RestoreColors() {
	b.fg = b.defFg
	b.bg = b.defBg
	b.bd = b.defBd
}

// Value returns the opaque display value; nil means "do not display".
func (b *Base) Value() any { return b.val }

// SetValue updates the display value and returns it. Passing nil
// explicitly clears the value; use Value for a pure read.
func (b *Base) SetValue(v any) any {
	b.val = v
	return b.val
}

// Show blanks the widget's working area to its background color and
// renders the border state: draw the outline borderMargin pixels
// outside the content box when a border color applies, erase a
// previously drawn outline when the border was removed, or do nothing.
func (b *Base) Show() {
	dev := b.dev
	dev.FillRect(b.col, b.row, b.width, b.height, b.bg)
	switch b.bd.style {
	case borderNone:
		if b.hasBorder {
			b.drawBorder(b.bg)
			b.hasBorder = false
		}
	case borderBackground:
		b.drawBorder(b.bg)
		b.hasBorder = true
	case borderColored:
		b.drawBorder(b.bd.color)
		b.hasBorder = true
	}
}

func (b *Base) drawBorder(c color.Color) {
	b.dev.Rect(b.col-borderMargin, b.row-borderMargin,
		b.width+2*borderMargin, b.height+2*borderMargin, c)
}
