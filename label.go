package microgui

import "image/color"

// Label is a widget displaying a single line of text. It is the
// minimal Labeled implementation; widgets that expose a text face
// attach one and forward Text calls to it.
type Label struct {
	Base
}

// NewLabel creates a label sized to its initial text and schedules it
// for drawing on the next refresh. Colors follow the usual widget
// defaults.
func NewLabel(wr *Writer, reg *Registry, row, col int, text string, fg, bg color.Color, bd Border) *Label {
	width := wr.StringWidth(text)
	if width == 0 {
		width = wr.StringWidth(" ")
	}
	l := &Label{Base: *NewBase(wr, reg, row, col, wr.Height(), width, fg, bg, bd)}
	l.val = text
	l.reg.Pend(l)
	return l
}

// Label implements the Labeled capability by returning itself.
func (l *Label) Label() *Label { return l }

// SetText replaces the label text and pends a redraw.
func (l *Label) SetText(s string) {
	l.val = s
	l.reg.Pend(l)
}

// Show blanks the label area, renders the border state, then draws the
// text. A nil value displays nothing beyond the blank area.
func (l *Label) Show() {
	l.Base.Show()
	s, ok := l.val.(string)
	if !ok || s == "" {
		return
	}
	l.wr.SetColors(l.fg, l.bg)
	l.wr.SetTextPos(l.row, l.col)
	l.wr.WriteString(s)
}
