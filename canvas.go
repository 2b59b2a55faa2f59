package bitpaint

import (
	"math"

	"github.com/gogpu/bitpaint/internal/raster"
)

// Diagnostics collects non-fatal anomalies observed while drawing.
type Diagnostics struct {
	// OutOfViewport counts vectors that MapToPixels placed outside the
	// pixel grid. Such vectors are still drawn and clipped by rasterization.
	OutOfViewport int
}

// Canvas is a mutable 1-bit drawing surface.
//
// A Canvas has two toggles that gate subsequent draw calls: the draw color
// (Black or White) and the fill mode (filled or outline). Every combination
// is valid. A new canvas is cleared to Black and draws filled in White.
type Canvas struct {
	plane  *plane
	color  Color
	fill   bool
	raster *raster.Rasterizer
	diag   Diagnostics
}

// NewCanvas creates a cleared canvas. Sizes are rounded to the nearest
// integer, non-positive sizes become one pixel, and sizes below MinSize are
// scaled up proportionally.
func NewCanvas(width, height float64) *Canvas {
	w, h, corrected := fitMinSize(int(math.Round(width)), int(math.Round(height)))
	if corrected {
		Logger().Debug("bitpaint: canvas size raised to minimum",
			"requested_width", width, "requested_height", height,
			"width", w, "height", h)
	}
	return newCanvasPlane(newPlane(w, h))
}

func newCanvasPlane(p *plane) *Canvas {
	return &Canvas{
		plane:  p,
		color:  White,
		fill:   true,
		raster: raster.NewRasterizer(),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.plane.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.plane.height }

// SetColor sets the draw color.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// SetColorBool sets the draw color from a selector: true is White.
func (c *Canvas) SetColorBool(on bool) {
	c.color = ColorFromBool(on)
}

// FlipDrawColor toggles the draw color between Black and White.
func (c *Canvas) FlipDrawColor() {
	c.color = c.color.Flip()
}

// Color returns the current draw color.
func (c *Canvas) Color() Color { return c.color }

// SetFill selects filled (true) or outline-only (false) drawing.
func (c *Canvas) SetFill(fill bool) {
	c.fill = fill
}

// Fill reports whether closed primitives are filled.
func (c *Canvas) Fill() bool { return c.fill }

// Pixel returns the color of the pixel at (x, y).
// Coordinates outside the canvas read as Black.
func (c *Canvas) Pixel(x, y int) Color {
	return ColorFromBool(c.plane.Get(x, y))
}

// Diagnostics returns the anomalies observed so far.
func (c *Canvas) Diagnostics() Diagnostics { return c.diag }

// Line draws a line between p1 and p2 in pixel coordinates.
func (c *Canvas) Line(p1, p2 Vec2, width float64) {
	c.raster.Stroke(c.plane, []raster.Point{toRasterPoint(p1), toRasterPoint(p2)}, width, c.color.On())
}

// Polyline draws the open chain through points.
func (c *Canvas) Polyline(points []Vec2, width float64) {
	if len(points) == 0 {
		return
	}
	c.raster.Stroke(c.plane, toRasterPoints(points), width, c.color.On())
}

// Polygon draws the closed polygon through points, filled or outlined
// according to the fill mode. Polygons with fewer than three points
// degenerate to a point or a segment.
func (c *Canvas) Polygon(points []Vec2) {
	if len(points) == 0 {
		return
	}
	pts := toRasterPoints(points)
	on := c.color.On()
	if c.fill && len(pts) >= 3 {
		c.raster.Fill(c.plane, pts, raster.FillRuleEvenOdd, on)
	}
	c.raster.Stroke(c.plane, append(pts, pts[0]), 1, on)
}

// Rectangle draws the axis-aligned box spanned by two arbitrary corners.
// Corners are rounded to pixels and both are included.
func (c *Canvas) Rectangle(corner1, corner2 Vec2) {
	x0, y0, x1, y1, ok := pixelBox(corner1, corner2)
	if !ok {
		return
	}
	if c.fill {
		raster.FillRect(c.plane, x0, y0, x1, y1, c.color.On())
		return
	}
	raster.StrokeRect(c.plane, x0, y0, x1, y1, c.color.On())
}

// Ellipse draws the ellipse inscribed in the box spanned by two arbitrary
// corners.
func (c *Canvas) Ellipse(corner1, corner2 Vec2) {
	x0, y0, x1, y1, ok := pixelBox(corner1, corner2)
	if !ok {
		return
	}
	if c.fill {
		raster.FillEllipse(c.plane, x0, y0, x1, y1, c.color.On())
		return
	}
	raster.StrokeEllipse(c.plane, x0, y0, x1, y1, c.color.On())
}

// MapToPixels maps v from viewport coordinates to pixel coordinates:
// v is normalized relative to the viewport and scaled by
// (width-1, height-1). Results outside the pixel grid are returned as is
// and recorded in Diagnostics.
func (c *Canvas) MapToPixels(v Vec2, vp Viewport) (Vec2, error) {
	if err := vp.Validate(); err != nil {
		return Vec2{}, err
	}
	n := vp.Normalize(v)
	p := Vec2{X: n.X * float64(c.Width()-1), Y: n.Y * float64(c.Height()-1)}

	const eps = 1e-9
	if p.X < -eps || p.Y < -eps || p.X > float64(c.Width()-1)+eps || p.Y > float64(c.Height()-1)+eps {
		c.diag.OutOfViewport++
		Logger().Debug("bitpaint: vector outside viewport",
			"x", v.X, "y", v.Y, "px", p.X, "py", p.Y)
	}
	return p, nil
}

// CombineXOR toggles every pixel of c that is set in other.
func (c *Canvas) CombineXOR(other *Canvas) error {
	if !c.plane.sameSize(other.plane) {
		return &DimensionMismatchError{
			Op:    "combine xor",
			Width: c.Width(), Height: c.Height(),
			OtherWidth: other.Width(), OtherHeight: other.Height(),
		}
	}
	c.plane.xorInPlace(other.plane)
	return nil
}

// ClearCopy returns a new cleared canvas of the same size in the default
// draw state.
func (c *Canvas) ClearCopy() *Canvas {
	return newCanvasPlane(newPlane(c.Width(), c.Height()))
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col Color) {
	c.plane.fill(col.On())
}

// Bitmap returns a snapshot of the canvas. Later drawing does not affect it.
func (c *Canvas) Bitmap() *Bitmap {
	return &Bitmap{plane: c.plane.clone()}
}

// maxPixelCoord bounds rounded coordinates so they convert to int exactly.
const maxPixelCoord = 1 << 52

// pixelBox rounds two corners to pixels and orders them. It reports false
// if a corner is NaN.
func pixelBox(c1, c2 Vec2) (x0, y0, x1, y1 int, ok bool) {
	if math.IsNaN(c1.X+c1.Y) || math.IsNaN(c2.X+c2.Y) {
		return 0, 0, 0, 0, false
	}
	ax, ay := pixelCoord(c1.X), pixelCoord(c1.Y)
	bx, by := pixelCoord(c2.X), pixelCoord(c2.Y)
	return min(ax, bx), min(ay, by), max(ax, bx), max(ay, by), true
}

func pixelCoord(v float64) int {
	return int(math.Max(-maxPixelCoord, math.Min(maxPixelCoord, math.Round(v))))
}

func toRasterPoint(v Vec2) raster.Point {
	return raster.Point{X: v.X, Y: v.Y}
}

func toRasterPoints(vs []Vec2) []raster.Point {
	pts := make([]raster.Point, len(vs), len(vs)+1)
	for i, v := range vs {
		pts[i] = toRasterPoint(v)
	}
	return pts
}
