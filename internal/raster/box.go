// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// FillRect fills the inclusive box x0..x1, y0..y1.
// Corners must already be ordered (x0 <= x1, y0 <= y1).
func FillRect(s Surface, x0, y0, x1, y1 int, on bool) {
	for y := max(y0, 0); y <= min(y1, s.Height()-1); y++ {
		FillSpan(s, x0, x1, y, on)
	}
}

// StrokeRect draws the one pixel outline of the inclusive box x0..x1, y0..y1.
func StrokeRect(s Surface, x0, y0, x1, y1 int, on bool) {
	FillSpan(s, x0, x1, y0, on)
	FillSpan(s, x0, x1, y1, on)
	for y := max(y0+1, 0); y < min(y1, s.Height()); y++ {
		FillSpan(s, x0, x0, y, on)
		FillSpan(s, x1, x1, y, on)
	}
}

// ellipseSpans computes the first and last pixel inside the ellipse
// inscribed in the inclusive box, for the rows of the box that fall in
// top..bottom. Row i of the result is y = first+i. Rows without pixels get
// lo > hi.
func ellipseSpans(x0, y0, x1, y1, top, bottom int) (first int, lo, hi []int) {
	const eps = 1e-9

	cx := (float64(x0) + float64(x1)) / 2
	cy := (float64(y0) + float64(y1)) / 2
	// Half a pixel of slack so the ellipse touches every side of the box.
	rx := (float64(x1)-float64(x0))/2 + 0.5
	ry := (float64(y1)-float64(y0))/2 + 0.5

	first = max(y0, top)
	rows := min(y1, bottom) - first + 1
	if rows <= 0 {
		return first, nil, nil
	}
	lo = make([]int, rows)
	hi = make([]int, rows)
	for i := range rows {
		dy := (float64(first+i) - cy) / ry
		t := 1 - dy*dy
		if t < 0 {
			lo[i], hi[i] = 1, 0
			continue
		}
		half := rx * math.Sqrt(t)
		lo[i] = max(int(math.Ceil(cx-half-eps)), x0)
		hi[i] = min(int(math.Floor(cx+half+eps)), x1)
	}
	return first, lo, hi
}

// FillEllipse fills the ellipse inscribed in the inclusive box x0..x1, y0..y1.
func FillEllipse(s Surface, x0, y0, x1, y1 int, on bool) {
	first, lo, hi := ellipseSpans(x0, y0, x1, y1, 0, s.Height()-1)
	for i := range lo {
		if lo[i] <= hi[i] {
			FillSpan(s, lo[i], hi[i], first+i, on)
		}
	}
}

// StrokeEllipse draws the one pixel outline of the ellipse inscribed in the
// inclusive box x0..x1, y0..y1. A pixel belongs to the outline when it is
// inside the ellipse and one of its 4-neighbours is not.
func StrokeEllipse(s Surface, x0, y0, x1, y1 int, on bool) {
	// One extra row above and below for the neighbour test.
	first, lo, hi := ellipseSpans(x0, y0, x1, y1, -1, s.Height())
	inside := func(row, x int) bool {
		if row < 0 || row >= len(lo) {
			return false
		}
		return x >= lo[row] && x <= hi[row]
	}
	for i := range lo {
		y := first + i
		if y < 0 || y >= s.Height() {
			continue
		}
		for x := max(lo[i], 0); x <= min(hi[i], s.Width()-1); x++ {
			if x == lo[i] || x == hi[i] || !inside(i-1, x) || !inside(i+1, x) {
				FillSpan(s, x, x, y, on)
			}
		}
	}
}
