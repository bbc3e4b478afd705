package microgui

import (
	"image/color"
	"math"
)

// circle1 draws a single-pixel-thick circle of radius r using the
// integer midpoint algorithm. Four symmetric pixels are written per
// step; no trigonometry or floating point appears in the loop.
//
// r == 0 degenerates to the center pixel; r < 0 draws nothing because
// the loop condition fails immediately.
func circle1(dev Surface, x0, y0, r int, c color.Color) {
	x := -r
	y := 0
	err := 2 - 2*r
	for x <= 0 {
		dev.SetPixel(x0-x, y0+y, c)
		dev.SetPixel(x0+x, y0+y, c)
		dev.SetPixel(x0+x, y0-y, c)
		dev.SetPixel(x0-x, y0-y, c)
		e2 := err
		if e2 <= y {
			y++
			err += y*2 + 1
			if -x == y && e2 <= x {
				e2 = 0
			}
		}
		if e2 > x {
			x++
			err += x*2 + 1
		}
	}
}

// DrawCircle draws a circle outline of the given radius centered at
// (x0, y0). width is the stroke thickness, rendered as concentric
// single-pixel circles at radii r, r-1, …, r-width+1.
func DrawCircle(dev Surface, x0, y0, r int, c color.Color, width int) {
	for ri := r; ri > r-width; ri-- {
		circle1(dev, x0, y0, ri, c)
	}
}

// DrawFillCircle draws a filled circle of the given radius centered at
// (x0, y0). It uses the same error-driven stepping as DrawCircle but
// emits two boundary-to-boundary line segments per step instead of
// four pixels, which is an order of magnitude fewer draw calls.
func DrawFillCircle(dev Surface, x0, y0, r int, c color.Color) {
	x := -r
	y := 0
	err := 2 - 2*r
	for x <= 0 {
		dev.Line(x0-x, y0-y, x0-x, y0+y, c)
		dev.Line(x0+x, y0-y, x0+x, y0+y, c)
		e2 := err
		if e2 <= y {
			y++
			err += y*2 + 1
			if -x == y && e2 <= x {
				e2 = 0
			}
		}
		if e2 > x {
			x++
			err += x*2 + 1
		}
	}
}

// DrawPolarLine draws a segment from origin to origin+vec.
//
// origin is a position in surface space (+Y down); vec is a
// displacement in mathematical convention (+Y up). The endpoint is
// (origin.X+vec.X, origin.Y-vec.Y), rounded to nearest. Getting this
// sign flip wrong silently mirrors every vector-based drawing, so it
// lives in exactly one place.
func DrawPolarLine(dev Surface, origin, vec Vec, c color.Color) {
	dev.Line(round(origin.X), round(origin.Y),
		round(origin.X+vec.X), round(origin.Y-vec.Y), c)
}

// Chevron strokes are the ±135° unit rotations composed with the
// shaft direction.
var (
	arrowCCW = Polar(1, 3*math.Pi/4)
	arrowCW  = Polar(1, -3*math.Pi/4)
)

// DrawArrow draws an arrow from origin to origin+vec with a chevron
// pair at the tip. lc is the chevron length.
//
// Long shafts (|vec| > 3·lc) are drawn as two segments split lc units
// from the origin, and a second chevron pair marks the tail at the
// split point so it does not collide with the origin pixel. The tail
// pair is suppressed entirely for |vec| <= lc, where it would only
// clutter a short vector.
func DrawArrow(dev Surface, origin, vec Vec, lc float64, c color.Color) {
	length := vec.Length()
	uv := vec.Normalize()
	tip := Vec{X: origin.X + vec.X, Y: origin.Y - vec.Y}
	tail := origin
	shaft := vec
	if length > 3*lc {
		ds := uv.Mul(lc)
		tail = Vec{X: origin.X + ds.X, Y: origin.Y - ds.Y}
		shaft = vec.Sub(ds)
		DrawPolarLine(dev, origin, ds, c)
	}
	DrawPolarLine(dev, tail, shaft, c)
	chev := Vec{X: lc}
	DrawPolarLine(dev, tip, chev.MulVec(arrowCCW).MulVec(uv), c)
	DrawPolarLine(dev, tip, chev.MulVec(arrowCW).MulVec(uv), c)
	if length > lc {
		DrawPolarLine(dev, tail, chev.MulVec(arrowCCW).MulVec(uv), c)
		DrawPolarLine(dev, tail, chev.MulVec(arrowCW).MulVec(uv), c)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
