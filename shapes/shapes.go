// Package shapes builds bitpaint shapes: regular polygons, rectangles and
// stars, plus compositions that repeat or merge existing shapes.
//
// Generated shapes are authored in the unit square; render them with
// bitpaint.UnitViewport to cover the whole bitmap.
package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/bitpaint"
)

// ErrInvalidParameter is returned for out-of-range generator parameters.
var ErrInvalidParameter = errors.New("shapes: invalid parameter")

// Iteration limits for the compositions.
const (
	MaxGridCells = 256 * 256
	MaxCopies    = 4096
	MaxEdges     = 1000
)

// NPolygon returns a regular polygon with the given number of edges inscribed
// in a width x height ellipse centered at (cx, cy). Vertex i lies at
// (cx + w/2·sin(2πi/n), cy + h/2·cos(2πi/n)).
func NPolygon(width, height, cx, cy float64, edges int) (*bitpaint.Shape, error) {
	if edges < 3 || edges > MaxEdges {
		return nil, fmt.Errorf("%w: %d edges", ErrInvalidParameter, edges)
	}
	c := bitpaint.V2(cx, cy)
	vs := make([]bitpaint.Vec2, edges)
	for i := range vs {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(edges))
		vs[i] = c.Add(bitpaint.V2(width*0.5*sin, height*0.5*cos))
	}
	return bitpaint.ShapeOf(bitpaint.NewPolygon(vs...)), nil
}

// Rectangle returns an axis-aligned width x height rectangle centered at
// (cx, cy).
func Rectangle(width, height, cx, cy float64) *bitpaint.Shape {
	hw, hh := width*0.5, height*0.5
	return bitpaint.ShapeOf(bitpaint.NewPolygon(
		bitpaint.V2(cx+hw, cy+hh),
		bitpaint.V2(cx+hw, cy-hh),
		bitpaint.V2(cx-hw, cy-hh),
		bitpaint.V2(cx-hw, cy+hh),
	))
}

// Star returns a star with the given number of points. Vertices alternate
// between the inner and the outer circle, starting with the inner one
// straight below the center.
func Star(points int, outer, inner, cx, cy float64) (*bitpaint.Shape, error) {
	if points < 3 || points > MaxEdges {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidParameter, points)
	}
	if !(outer > 0) || !(inner > 0) {
		return nil, fmt.Errorf("%w: diameters %g/%g", ErrInvalidParameter, outer, inner)
	}
	c := bitpaint.V2(cx, cy)
	vi := bitpaint.V2(0, inner*0.5)
	vo := bitpaint.V2(0, outer*0.5)
	step := 360.0 / float64(2*points)
	vs := make([]bitpaint.Vec2, 2*points)
	for i := range vs {
		r := vo
		if i%2 == 0 {
			r = vi
		}
		vs[i] = c.Add(r.Rotate(step * float64(i)))
	}
	return bitpaint.ShapeOf(bitpaint.NewPolygon(vs...)), nil
}

// Combine returns a shape holding a copy of every non-nil shape as a group,
// in order.
func Combine(shapes ...*bitpaint.Shape) *bitpaint.Shape {
	out := bitpaint.NewShape()
	for _, s := range shapes {
		if s != nil {
			out.Append(bitpaint.Group(s.Copy()))
		}
	}
	return out
}
