// Package geom provides the small 2D vector type used throughout the
// simulation for positions, velocities and forces.
package geom

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the magnitude of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LenSq returns the squared magnitude (cheaper for comparisons).
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns a unit vector in the direction of v.
// The zero vector normalizes to (1, 0) so callers never divide by zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{X: 1}
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle builds a vector of the given magnitude pointing along angle.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{magnitude * math.Cos(angle), magnitude * math.Sin(angle)}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
