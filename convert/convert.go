// Package convert maps bitpaint bitmaps to and from color images and image
// files.
//
// A Palette assigns a color to each of the two pixel states. Decoding
// thresholds the gray value of every pixel.
package convert

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/bitpaint"
)

// Palette assigns a color to each pixel state.
type Palette struct {
	Zero color.NRGBA // Black pixels
	One  color.NRGBA // White pixels
}

// Monochrome is the identity palette: Black pixels are black, White pixels
// are white.
var Monochrome = Palette{
	Zero: color.NRGBA{A: 0xff},
	One:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// NewPalette parses two colors accepted by ParseColor.
func NewPalette(zero, one string) (Palette, error) {
	z, err := ParseColor(zero)
	if err != nil {
		return Palette{}, err
	}
	o, err := ParseColor(one)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Zero: z, One: o}, nil
}

// AlphaPair overrides the alpha of the palette colors per pixel state.
type AlphaPair struct {
	Zero uint8
	One  uint8
}

// ToImage expands bm into an NRGBA image using p. When alpha is non-nil its
// values replace the palette alphas.
func ToImage(bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) *image.NRGBA {
	zero, one := p.Zero, p.One
	if alpha != nil {
		zero.A, one.A = alpha.Zero, alpha.One
	}
	w, h := bm.Width(), bm.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := 0; x < w; x++ {
			c := zero
			if bm.Bit(x, y) {
				c = one
			}
			row[4*x], row[4*x+1], row[4*x+2], row[4*x+3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// FromImage thresholds img into a bitmap: pixels whose gray value exceeds
// round(255 * threshold) become White. threshold is clamped to [0, 1].
func FromImage(img image.Image, threshold float64) *bitpaint.Bitmap {
	t := uint8(math.Round(255 * math.Min(math.Max(threshold, 0), 1)))
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if v.Y > t {
				g.Pix[y*g.Stride+x] = 0xff
			}
		}
	}
	return bitpaint.NewBitmapFromGray(g)
}
