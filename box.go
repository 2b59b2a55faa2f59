package bitpaint

import "github.com/jbeda/geom"

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec2
}

// UnitBox is the bounding box of the unit square, also reported for empty
// shapes.
var UnitBox = Box{Min: V2(0, 0), Max: V2(1, 1)}

// BoundsOf returns the bounding box of points, or UnitBox if there are none.
func BoundsOf(points []Vec2) Box {
	if len(points) == 0 {
		return UnitBox
	}
	r := geom.Rect{Min: points[0].Coord(), Max: points[0].Coord()}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p.Coord())
	}
	return Box{Min: FromCoord(r.Min), Max: FromCoord(r.Max)}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	r := geom.Rect{Min: b.Min.Coord(), Max: b.Max.Coord()}
	r.ExpandToContainCoord(o.Min.Coord())
	r.ExpandToContainCoord(o.Max.Coord())
	return Box{Min: FromCoord(r.Min), Max: FromCoord(r.Max)}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Dimensions returns (width, height) as a vector.
func (b Box) Dimensions() Vec2 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b Box) Center() Vec2 { return b.Min.Add(b.Max).Mul(0.5) }

// Approx reports whether both corners match within epsilon.
func (b Box) Approx(o Box, epsilon float64) bool {
	return b.Min.Approx(o.Min, epsilon) && b.Max.Approx(o.Max, epsilon)
}
