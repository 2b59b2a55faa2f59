package bitpaint

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelFace is the fixed bitmap face used by Canvas.Text.
var LabelFace font.Face = basicfont.Face7x13

// Text draws s with its baseline starting at origin (pixel coordinates) in
// the current draw color. Glyph pixels with at least half coverage are set.
// The fill mode does not affect text.
func (c *Canvas) Text(origin Vec2, s string) {
	if s == "" {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, c.Width(), c.Height()))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: LabelFace,
		Dot:  fixed.P(int(math.Round(origin.X)), int(math.Round(origin.Y))),
	}
	d.DrawString(s)

	on := c.color.On()
	for y := 0; y < c.Height(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+c.Width()]
		for x, a := range row {
			if a >= 0x80 {
				c.plane.SetPixel(x, y, on)
			}
		}
	}
}

// TextBounds returns the advance width and line height of s in pixels.
func TextBounds(s string) (width, height int) {
	adv := font.MeasureString(LabelFace, s)
	m := LabelFace.Metrics()
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}
