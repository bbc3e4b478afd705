package microgui

import "math"

// Vec represents a 2D point or displacement vector.
//
// DrawPolarLine and DrawArrow interpret Vec displacements with +Y up
// (mathematical convention); positions use surface convention (+Y down).
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Polar creates a Vec of the given length at angle theta radians,
// measured counter-clockwise from +X.
func Polar(length, theta float64) Vec {
	return Vec{X: length * math.Cos(theta), Y: length * math.Sin(theta)}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// MulVec returns the complex-style product of two vectors, treating
// (X, Y) as (real, imaginary). Multiplying by a unit vector rotates
// without scaling, so rotations compose by multiplication.
func (v Vec) MulVec(w Vec) Vec {
	return Vec{
		X: v.X*w.X - v.Y*w.Y,
		Y: v.X*w.Y + v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Atan2 returns the angle of the vector in radians.
func (v Vec) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec) Approx(w Vec, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
