// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tcellfb

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/microgui"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func newSimSurface(t *testing.T, w, h int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init() = %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return New(sim, w, h), sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	primary, _, style, _ := sim.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return primary, fg
}

func TestSetPixel(t *testing.T) {
	s, sim := newSimSurface(t, 20, 10)

	s.SetPixel(3, 4, red)
	r, fg := cellAt(sim, 3, 4)
	if r != pixelRune {
		t.Errorf("cell rune = %q, want %q", r, pixelRune)
	}
	if want := tcell.NewRGBColor(255, 0, 0); fg != want {
		t.Errorf("cell color = %v, want %v", fg, want)
	}
}

func TestSetPixelClips(t *testing.T) {
	s, _ := newSimSurface(t, 20, 10)
	// Must not panic.
	s.SetPixel(-1, 0, red)
	s.SetPixel(0, -1, red)
	s.SetPixel(20, 0, red)
	s.SetPixel(0, 10, red)
}

func TestDimensionsClampToScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init() = %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(15, 8)

	s := New(sim, 100, 100)
	if s.Width() != 15 || s.Height() != 8 {
		t.Errorf("surface = %dx%d, want clamped to 15x8", s.Width(), s.Height())
	}
}

func TestLineEndpoints(t *testing.T) {
	s, sim := newSimSurface(t, 20, 10)
	s.Line(1, 1, 8, 6, red)

	for _, p := range [][2]int{{1, 1}, {8, 6}} {
		if r, _ := cellAt(sim, p[0], p[1]); r != pixelRune {
			t.Errorf("line endpoint %v not drawn", p)
		}
	}
}

func TestFillAndRect(t *testing.T) {
	s, sim := newSimSurface(t, 10, 6)

	s.Fill(red)
	if r, _ := cellAt(sim, 9, 5); r != pixelRune {
		t.Error("Fill missed the far corner")
	}

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	s.Rect(2, 1, 4, 3, white)
	want := tcell.NewRGBColor(255, 255, 255)
	if _, fg := cellAt(sim, 2, 1); fg != want {
		t.Error("Rect corner not drawn in outline color")
	}
	if _, fg := cellAt(sim, 3, 2); fg == want {
		t.Error("Rect filled its interior")
	}
}

func TestShow(t *testing.T) {
	s, _ := newSimSurface(t, 10, 6)
	if err := s.Show(); err != nil {
		t.Errorf("Show() = %v, want nil", err)
	}
}

func TestWidgetsOnTerminal(t *testing.T) {
	// The widget pipeline runs unmodified against the terminal backend.
	s, _ := newSimSurface(t, 60, 20)
	reg := microgui.NewRegistry()
	if err := reg.Refresh(s, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}

	wr := microgui.NewWriter(s, nil, nil, nil)
	l := microgui.NewLabel(wr, reg, 3, 2, "ok", nil, nil, microgui.NoBorder())
	if err := reg.Refresh(s, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if l.Value() != "ok" {
		t.Errorf("label value = %v, want %q", l.Value(), "ok")
	}
}
