package bitpaint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap is an immutable 1-bit image. Every operation returns a new Bitmap.
//
// Both dimensions are at least MinSize; smaller results are scaled up
// proportionally with nearest-neighbour sampling.
//
// Bitmap implements image.Image with color.GrayModel: off pixels are
// color.Gray{0} and on pixels are color.Gray{255}.
type Bitmap struct {
	plane *plane
}

// newBitmap wraps p, enforcing the minimum size floor.
func newBitmap(p *plane) *Bitmap {
	w, h, corrected := fitMinSize(p.width, p.height)
	if !corrected {
		return &Bitmap{plane: p}
	}
	Logger().Debug("bitpaint: bitmap size raised to minimum",
		"requested_width", p.width, "requested_height", p.height,
		"width", w, "height", h)
	return &Bitmap{plane: scalePlane(p, w, h, draw.NearestNeighbor)}
}

// NewBitmapOfSize creates a bitmap with every pixel set to fill.
func NewBitmapOfSize(width, height int, fill Color) *Bitmap {
	w, h, _ := fitMinSize(width, height)
	p := newPlane(w, h)
	p.fill(fill.On())
	return &Bitmap{plane: p}
}

// NewBitmapFromGray creates a bitmap from a gray image. Values of 128 and
// above become White.
func NewBitmapFromGray(g *image.Gray) *Bitmap {
	return newBitmap(planeFromGray(g))
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.plane.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.plane.height }

// Bit reports whether the pixel at (x, y) is White.
// Coordinates outside the bitmap read as Black.
func (b *Bitmap) Bit(x, y int) bool {
	return b.plane.Get(x, y)
}

// Pixel returns the color of the pixel at (x, y).
func (b *Bitmap) Pixel(x, y int) Color {
	return ColorFromBool(b.plane.Get(x, y))
}

// Count returns the number of White pixels.
func (b *Bitmap) Count() int {
	return b.plane.count()
}

// Equal reports whether both bitmaps have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	return b.plane.equal(o.plane)
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.plane.width, b.plane.height)
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return b.Pixel(x, y).Gray()
}

// Gray returns the bitmap as a new 8-bit gray image.
func (b *Bitmap) Gray() *image.Gray {
	return b.plane.toGray()
}

// Canvas returns a canvas initialised with a copy of the bitmap's pixels.
func (b *Bitmap) Canvas() *Canvas {
	return newCanvasPlane(b.plane.clone())
}

// And returns the pixelwise AND of two bitmaps of equal size.
func (b *Bitmap) And(o *Bitmap) (*Bitmap, error) {
	return b.combine("and", o, func(x, y uint64) uint64 { return x & y })
}

// Or returns the pixelwise OR of two bitmaps of equal size.
func (b *Bitmap) Or(o *Bitmap) (*Bitmap, error) {
	return b.combine("or", o, func(x, y uint64) uint64 { return x | y })
}

// Xor returns the pixelwise XOR of two bitmaps of equal size.
func (b *Bitmap) Xor(o *Bitmap) (*Bitmap, error) {
	return b.combine("xor", o, func(x, y uint64) uint64 { return x ^ y })
}

func (b *Bitmap) combine(op string, o *Bitmap, fn func(x, y uint64) uint64) (*Bitmap, error) {
	if !b.plane.sameSize(o.plane) {
		return nil, &DimensionMismatchError{
			Op:    op,
			Width: b.Width(), Height: b.Height(),
			OtherWidth: o.Width(), OtherHeight: o.Height(),
		}
	}
	return &Bitmap{plane: b.plane.combine(o.plane, fn)}, nil
}

// Invert returns the bitmap with every pixel flipped.
func (b *Bitmap) Invert() *Bitmap {
	return &Bitmap{plane: b.plane.inverted()}
}

// EdgeDetect applies the 3x3 kernel
//
//	-1 -1 -1
//	-1  8 -1
//	-1 -1 -1
//
// with replicated borders and sets the pixels whose response is positive.
// On a 1-bit image these are the White pixels with at least one Black
// 8-neighbour.
func (b *Bitmap) EdgeDetect() *Bitmap {
	p := b.plane
	out := newPlane(p.width, p.height)
	at := func(x, y int) int {
		x = min(max(x, 0), p.width-1)
		y = min(max(y, 0), p.height-1)
		if p.Get(x, y) {
			return 1
		}
		return 0
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			sum := 8 * at(x, y)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx != 0 || dy != 0 {
						sum -= at(x+dx, y+dy)
					}
				}
			}
			if sum > 0 {
				out.SetPixel(x, y, true)
			}
		}
	}
	return &Bitmap{plane: out}
}
