package bitpaint

import (
	"math"

	"github.com/jbeda/geom"
)

// Vec2 represents an immutable 2D point or displacement.
// Every method returns a new value; no method mutates its receiver.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Rotate returns the vector rotated by degrees around the origin.
// Positive angles turn +X towards +Y (counter-clockwise in a y-up frame).
func (v Vec2) Rotate(degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround returns the vector rotated by degrees around center.
func (v Vec2) RotateAround(center Vec2, degrees float64) Vec2 {
	return center.Add(v.Sub(center).Rotate(degrees))
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// AsTuple returns the coordinates as a pair.
func (v Vec2) AsTuple() (x, y float64) {
	return v.X, v.Y
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// Coord converts the vector to a geom.Coord.
func (v Vec2) Coord() geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

// FromCoord converts a geom.Coord to a Vec2.
func FromCoord(c geom.Coord) Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}
