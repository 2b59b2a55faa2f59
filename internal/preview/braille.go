package preview

import (
	"strings"

	"github.com/gogpu/bitpaint"
)

// brailleBuf is a grid of braille cells, each holding a 2x4 dot mask.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits maps a dot position inside a cell to its bit in U+2800..U+28FF.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setDot sets the dot at micro coordinates (2x4 dots per cell).
func (b *brailleBuf) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

func (b *brailleBuf) lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// fitDots returns the dot grid size that fits a width x height bitmap into
// cols x rows cells with the aspect ratio kept.
func fitDots(width, height, cols, rows int) (int, int) {
	s := min(float64(2*cols)/float64(width), float64(4*rows)/float64(height))
	return max(1, int(float64(width)*s)), max(1, int(float64(height)*s))
}

// Braille renders bm into at most cols x rows braille cells. A dot is set
// when any White pixel falls into its block, so one pixel lines survive
// downscaling.
func Braille(bm *bitpaint.Bitmap, cols, rows int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	w, h := bm.Width(), bm.Height()
	dw, dh := fitDots(w, h, cols, rows)
	buf := newBrailleBuf((dw+1)/2, (dh+3)/4)

	for my := 0; my < dh; my++ {
		y0 := my * h / dh
		y1 := max(y0+1, (my+1)*h/dh)
		for mx := 0; mx < dw; mx++ {
			x0 := mx * w / dw
			x1 := max(x0+1, (mx+1)*w/dw)
			if anySet(bm, x0, y0, x1, y1) {
				buf.setDot(mx, my)
			}
		}
	}
	return buf.lines()
}

func anySet(bm *bitpaint.Bitmap, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if bm.Bit(x, y) {
				return true
			}
		}
	}
	return false
}

// BrailleString joins the Braille lines with newlines.
func BrailleString(bm *bitpaint.Bitmap, cols, rows int) string {
	return strings.Join(Braille(bm, cols, rows), "\n")
}
