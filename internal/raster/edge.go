// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Point represents a 2D point in pixel space (internal copy to avoid import cycle).
// Integer coordinates address pixel centers.
type Point struct {
	X, Y float64
}

// Edge represents a non-horizontal polygon edge for scanline rasterization.
type Edge struct {
	x0, y0 float64 // Upper end point (y0 < y1)
	x1, y1 float64 // Lower end point
	dxdy   float64 // Inverse slope
	dir    int     // Winding direction: +1 downwards, -1 upwards
}

// NewEdge creates an edge from two points.
// Returns false for horizontal (or nearly horizontal) edges, which never
// cross a scanline and are left to the outline pass.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if math.Abs(p1.Y-p0.Y) < 1e-9 {
		return Edge{}, false
	}

	// Determine direction BEFORE swap (for non-zero winding rule)
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}, true
}

// Crosses reports whether the scanline at y intersects the edge.
// The interval is half-open so a shared vertex is counted once.
func (e Edge) Crosses(y float64) bool {
	return e.y0 <= y && y < e.y1
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// YRange returns the vertical extent of the edge.
func (e Edge) YRange() (float64, float64) {
	return e.y0, e.y1
}

// Crossing is an edge intersection with the current scanline.
type Crossing struct {
	X   float64
	Dir int
}

// ActiveEdgeTable collects the crossings of a single scanline.
type ActiveEdgeTable struct {
	crossings []Crossing
}

// NewActiveEdgeTable creates a new active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{
		crossings: make([]Crossing, 0, 32),
	}
}

// Add records the crossing of edge with scanline y.
func (aet *ActiveEdgeTable) Add(edge Edge, y float64) {
	aet.crossings = append(aet.crossings, Crossing{X: edge.XAtY(y), Dir: edge.dir})
}

// Sort sorts crossings by x coordinate (insertion sort for small lists).
func (aet *ActiveEdgeTable) Sort() {
	for i := 1; i < len(aet.crossings); i++ {
		key := aet.crossings[i]
		j := i - 1
		for j >= 0 && aet.crossings[j].X > key.X {
			aet.crossings[j+1] = aet.crossings[j]
			j--
		}
		aet.crossings[j+1] = key
	}
}

// Crossings returns the collected crossings.
func (aet *ActiveEdgeTable) Crossings() []Crossing {
	return aet.crossings
}

// Clear clears all crossings.
func (aet *ActiveEdgeTable) Clear() {
	aet.crossings = aet.crossings[:0]
}
