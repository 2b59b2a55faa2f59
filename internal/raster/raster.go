// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides 1-bit scanline rasterization for the bitpaint canvas.
//
// Pixel (x, y) is sampled at its center, which sits at the integer
// coordinate (x, y). No coverage is computed: a pixel is either inside a
// primitive or it is not.
package raster

import "math"

// Surface is the 1-bit pixel sink written by the rasterizer (avoids import cycle).
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, on bool)
}

// SpanFiller is an optional interface that surfaces can implement for
// optimized span filling. The span covers x1..x2 inclusive.
type SpanFiller interface {
	FillSpan(x1, x2, y int, on bool)
}

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero
)

// Rasterizer performs scanline rasterization onto a Surface.
// A Rasterizer reuses its scratch buffers and must not be shared between
// goroutines.
type Rasterizer struct {
	aet   *ActiveEdgeTable
	edges []Edge
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		aet: NewActiveEdgeTable(),
	}
}

// Fill rasterizes the interior of the closed polygon through points.
// The closing edge from the last point back to the first is implied.
// Only the interior is filled; callers draw the outline separately when
// boundary pixels must be included.
func (r *Rasterizer) Fill(s Surface, points []Point, rule FillRule, on bool) {
	if len(points) < 3 {
		return
	}

	r.edges = r.edges[:0]
	for i := range points {
		if e, ok := NewEdge(points[i], points[(i+1)%len(points)]); ok {
			r.edges = append(r.edges, e)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range r.edges {
		y0, y1 := e.YRange()
		yMin = math.Min(yMin, y0)
		yMax = math.Max(yMax, y1)
	}

	// Clamp to surface bounds
	yStart := max(int(math.Ceil(yMin)), 0)
	yEnd := min(int(math.Floor(yMax)), s.Height()-1)

	for y := yStart; y <= yEnd; y++ {
		r.scanline(s, float64(y), y, rule, on)
	}
}

// scanline processes a single scanline.
func (r *Rasterizer) scanline(s Surface, scanY float64, y int, rule FillRule, on bool) {
	r.aet.Clear()
	for _, e := range r.edges {
		if e.Crosses(scanY) {
			r.aet.Add(e, scanY)
		}
	}
	if len(r.aet.Crossings()) < 2 {
		return
	}
	r.aet.Sort()

	crossings := r.aet.Crossings()
	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, c := range crossings {
			if winding == 0 {
				x1 = c.X
			}
			winding += c.Dir
			if winding == 0 {
				fillSpanF(s, x1, c.X, y, on)
			}
		}
		return
	}

	for i := 0; i+1 < len(crossings); i += 2 {
		fillSpanF(s, crossings[i].X, crossings[i+1].X, y, on)
	}
}

// fillSpanF fills the pixel centers lying between two real x positions.
func fillSpanF(s Surface, xa, xb float64, y int, on bool) {
	const eps = 1e-9
	FillSpan(s, int(math.Ceil(xa-eps)), int(math.Floor(xb+eps)), y, on)
}

// FillSpan fills the horizontal span x1..x2 (inclusive) clipped to the surface.
func FillSpan(s Surface, x1, x2, y int, on bool) {
	if y < 0 || y >= s.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, s.Width()-1)
	if x1 > x2 {
		return
	}

	// Try to use optimized FillSpan if available
	if sf, ok := s.(SpanFiller); ok {
		sf.FillSpan(x1, x2, y, on)
		return
	}

	for x := x1; x <= x2; x++ {
		s.SetPixel(x, y, on)
	}
}

// Line draws a one pixel wide line between the rounded end points
// using Bresenham's algorithm. Segments reaching past the surface are
// clipped to it first, so the work is bounded by the surface size.
func Line(s Surface, p0, p1 Point, on bool) {
	if p0.isNaN() || p1.isNaN() {
		return
	}
	// One pixel of margin keeps the rounding of on-surface segments intact.
	lo := Point{X: -1, Y: -1}
	hi := Point{X: float64(s.Width()), Y: float64(s.Height())}
	if !p0.within(lo, hi) || !p1.within(lo, hi) {
		var ok bool
		if p0, p1, ok = clipSegment(p0, p1, lo, hi); !ok {
			return
		}
	}

	x0, y0 := roundInt(p0.X), roundInt(p0.Y)
	x1, y1 := roundInt(p1.X), roundInt(p1.Y)

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && y0 >= 0 && x0 < s.Width() && y0 < s.Height() {
			s.SetPixel(x0, y0, on)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Stroke draws the open polyline through points with the given width.
// Widths up to one pixel produce hairlines. Segments are stroked
// independently; there are no joins or caps.
func (r *Rasterizer) Stroke(s Surface, points []Point, width float64, on bool) {
	if len(points) == 1 {
		Line(s, points[0], points[0], on)
		return
	}
	for i := 0; i+1 < len(points); i++ {
		r.strokeLine(s, points[i], points[i+1], width, on)
	}
}

// strokeLine draws a thick line as a filled quad around the segment.
func (r *Rasterizer) strokeLine(s Surface, p0, p1 Point, width float64, on bool) {
	// The center line keeps thin or very short segments connected.
	Line(s, p0, p1, on)
	if width <= 1 {
		return
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Perpendicular vector offset by half width
	offset := width / 2
	nx := -dy / length * offset
	ny := dx / length * offset

	quad := []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.Fill(s, quad, FillRuleNonZero, on)
}

func (p Point) isNaN() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

func (p Point) within(lo, hi Point) bool {
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// clipSegment clips p0-p1 to the box lo..hi using the Liang-Barsky
// algorithm. It reports false when the segment misses the box.
func clipSegment(p0, p1, lo, hi Point) (Point, Point, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	t0, t1 := 0.0, 1.0
	for _, c := range [4][2]float64{
		{-dx, p0.X - lo.X},
		{dx, hi.X - p0.X},
		{-dy, p0.Y - lo.Y},
		{dy, hi.Y - p0.Y},
	} {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return p0, p1, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return p0, p1, false
			}
			t1 = min(t1, r)
		}
	}
	a := Point{X: p0.X + t0*dx, Y: p0.Y + t0*dy}
	b := Point{X: p0.X + t1*dx, Y: p0.Y + t1*dy}
	// Infinite input yields NaN here.
	if a.isNaN() || b.isNaN() {
		return p0, p1, false
	}
	return a, b, true
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
