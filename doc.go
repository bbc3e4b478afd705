// Package microgui provides a compact 2D rendering core for small
// framebuffer displays.
//
// # Overview
//
// microgui draws vector primitives (circles, filled circles, polar
// lines, arrows) onto any pixel surface, and provides the base
// abstraction for rectangular widgets that own a region of that
// surface and are redrawn on demand. Rendering is deferred: widgets
// register themselves as pending on their surface, and a single
// Refresh call redraws everything pending and presents the buffer to
// hardware exactly once.
//
// The raster algorithms are integer-only in their per-pixel loops
// (midpoint circle stepping, Bresenham lines in the framebuf backend)
// so the core stays fast on memory-constrained targets.
//
// # Quick Start
//
//	import "github.com/gogpu/microgui"
//	import "github.com/gogpu/microgui/framebuf"
//
//	dev := framebuf.New(128, 64, framebuf.RGB565, nil)
//	reg := microgui.NewRegistry()
//
//	// First refresh initializes the surface: blank and present.
//	reg.Refresh(dev, false)
//
//	microgui.DrawCircle(dev, 64, 32, 20, color.White, 1)
//	microgui.DrawArrow(dev, microgui.V(64, 32), microgui.Polar(18, 0.5), 5, color.White)
//	dev.Show()
//
// # Surfaces
//
// Any type satisfying the Surface interface is a render target. The
// framebuf subpackage provides in-memory byte buffers (RGB565, 1-bit
// mono) with a flush hook for real display drivers; the tcellfb
// subpackage renders pixels into a terminal for development.
//
// # Coordinate System
//
// Surface space is standard raster: origin top-left, X right, Y down.
// Vec values used by DrawPolarLine and DrawArrow follow mathematical
// convention instead (+Y up); the draw calls perform the sign flip.
//
// # Widgets
//
// Base carries the geometry, color state and border handling shared by
// all widget types. Concrete widgets embed Base, implement Show, and
// call Pend after mutating state; the next Refresh redraws them.
package microgui
