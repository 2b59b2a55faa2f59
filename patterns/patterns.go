// Package patterns generates common guide bitmaps: rectangles, ellipses,
// elliptical and rectangular bullseyes, and checkerboards.
//
// All generators draw White on a Black background and validate their
// parameters before allocating anything.
package patterns

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/bitpaint"
)

// ErrInvalidParameter is returned for out-of-range generator parameters.
var ErrInvalidParameter = errors.New("patterns: invalid parameter")

// Parameter limits. MaxSize bounds bitmap sides, shape sizes and the
// absolute value of centers.
const (
	MaxSize  = 10000
	MaxCells = 1 << 20
)

func validSize(w, h int) bool {
	return w >= 1 && h >= 1 && w <= MaxSize && h <= MaxSize
}

// Box describes a shape of Width x Height centered at (CenterX, CenterY)
// on a BitmapWidth x BitmapHeight bitmap.
type Box struct {
	BitmapWidth  int
	BitmapHeight int
	Width        float64
	Height       float64
	CenterX      float64
	CenterY      float64
}

func (b Box) validate() error {
	if !validSize(b.BitmapWidth, b.BitmapHeight) {
		return fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidParameter, b.BitmapWidth, b.BitmapHeight)
	}
	if !(b.Width >= 1 && b.Width <= MaxSize) || !(b.Height >= 1 && b.Height <= MaxSize) {
		return fmt.Errorf("%w: shape size %gx%g", ErrInvalidParameter, b.Width, b.Height)
	}
	if !(math.Abs(b.CenterX) <= MaxSize) || !(math.Abs(b.CenterY) <= MaxSize) {
		return fmt.Errorf("%w: center (%g, %g)", ErrInvalidParameter, b.CenterX, b.CenterY)
	}
	return nil
}

func (b Box) corners() (bitpaint.Vec2, bitpaint.Vec2) {
	return bitpaint.V2(b.CenterX-b.Width/2, b.CenterY-b.Height/2),
		bitpaint.V2(b.CenterX+b.Width/2, b.CenterY+b.Height/2)
}

// Rectangle returns a bitmap with a filled rectangle.
func Rectangle(b Box) (*bitpaint.Bitmap, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	c := bitpaint.NewCanvas(float64(b.BitmapWidth), float64(b.BitmapHeight))
	c.Rectangle(b.corners())
	return c.Bitmap(), nil
}

// Ellipse returns a bitmap with a filled ellipse.
func Ellipse(b Box) (*bitpaint.Bitmap, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	c := bitpaint.NewCanvas(float64(b.BitmapWidth), float64(b.BitmapHeight))
	c.Ellipse(b.corners())
	return c.Bitmap(), nil
}

// Rings describes concentric rings of LineWidthX x LineWidthY thickness
// around (CenterX, CenterY) that cover a Width x Height bitmap.
type Rings struct {
	Width      int
	Height     int
	LineWidthX int
	LineWidthY int
	CenterX    int
	CenterY    int
}

func (r Rings) validate() error {
	if !validSize(r.Width, r.Height) {
		return fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidParameter, r.Width, r.Height)
	}
	if !validSize(r.LineWidthX, r.LineWidthY) {
		return fmt.Errorf("%w: line width %dx%d", ErrInvalidParameter, r.LineWidthX, r.LineWidthY)
	}
	if r.CenterX < -MaxSize || r.CenterX > MaxSize || r.CenterY < -MaxSize || r.CenterY > MaxSize {
		return fmt.Errorf("%w: center (%d, %d)", ErrInvalidParameter, r.CenterX, r.CenterY)
	}
	return nil
}

// Count returns the number of rings needed to reach the farthest edge:
// 1 + max(round(dx/lwx), round(dy/lwy)), where dx and dy are the larger
// distances from the center to the bitmap edges.
func (r Rings) Count() int {
	dx := max(abs(r.Width-r.CenterX), abs(r.CenterX))
	dy := max(abs(r.Height-r.CenterY), abs(r.CenterY))
	nx := int(math.RoundToEven(float64(dx) / float64(r.LineWidthX)))
	ny := int(math.RoundToEven(float64(dy) / float64(r.LineWidthY)))
	return 1 + max(nx, ny)
}

// Ring is one entry of a ring plan, drawn from the outside in.
type Ring struct {
	RadiusX int
	RadiusY int
	Color   bitpaint.Color
}

func (r Rings) plan(first bitpaint.Color) []Ring {
	n := r.Count()
	out := make([]Ring, n)
	col := first
	for i := range out {
		out[i] = Ring{
			RadiusX: r.LineWidthX * (n - i),
			RadiusY: r.LineWidthY * (n - i),
			Color:   col,
		}
		col = col.Flip()
	}
	return out
}

// BullseyeRings returns the ring plan of Bullseye. The outermost ring is
// Black and colors alternate inwards.
func BullseyeRings(r Rings) ([]Ring, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r.plan(bitpaint.Black), nil
}

// RectangularBullseyeRings returns the ring plan of RectangularBullseye.
// The outermost ring is White and colors alternate inwards.
func RectangularBullseyeRings(r Rings) ([]Ring, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r.plan(bitpaint.White), nil
}

// Bullseye returns concentric filled ellipses of alternating color.
func Bullseye(r Rings) (*bitpaint.Bitmap, error) {
	plan, err := BullseyeRings(r)
	if err != nil {
		return nil, err
	}
	return drawRings(r, plan, (*bitpaint.Canvas).Ellipse), nil
}

// RectangularBullseye returns concentric filled rectangles of alternating
// color.
func RectangularBullseye(r Rings) (*bitpaint.Bitmap, error) {
	plan, err := RectangularBullseyeRings(r)
	if err != nil {
		return nil, err
	}
	return drawRings(r, plan, (*bitpaint.Canvas).Rectangle), nil
}

func drawRings(r Rings, plan []Ring, draw func(*bitpaint.Canvas, bitpaint.Vec2, bitpaint.Vec2)) *bitpaint.Bitmap {
	c := bitpaint.NewCanvas(float64(r.Width), float64(r.Height))
	cx, cy := float64(r.CenterX), float64(r.CenterY)
	for _, ring := range plan {
		rx, ry := float64(ring.RadiusX), float64(ring.RadiusY)
		c.SetColor(ring.Color)
		draw(c, bitpaint.V2(cx-rx, cy-ry), bitpaint.V2(cx+rx, cy+ry))
	}
	bitpaint.Logger().Debug("patterns: rings drawn", "count", len(plan))
	return c.Bitmap()
}

// Checkerboard returns a board of columns x rows cells whose top-left cell
// is White. Cell edges are rounded to whole pixels so the cells tile the
// bitmap exactly.
func Checkerboard(width, height, columns, rows int) (*bitpaint.Bitmap, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidParameter, width, height)
	}
	if columns < 1 || rows < 1 || columns > MaxCells/rows {
		return nil, fmt.Errorf("%w: %d columns, %d rows", ErrInvalidParameter, columns, rows)
	}

	c := bitpaint.NewCanvas(float64(width), float64(height))
	stepX := float64(c.Width()) / float64(columns)
	stepY := float64(c.Height()) / float64(rows)
	for row := range rows {
		y0 := math.Round(float64(row) * stepY)
		y1 := math.Round(float64(row+1)*stepY) - 1
		for col := range columns {
			if (row+col)%2 != 0 {
				continue
			}
			x0 := math.Round(float64(col) * stepX)
			x1 := math.Round(float64(col+1)*stepX) - 1
			if x1 < x0 || y1 < y0 {
				continue
			}
			c.Rectangle(bitpaint.V2(x0, y0), bitpaint.V2(x1, y1))
		}
	}
	return c.Bitmap(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
