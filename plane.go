package bitpaint

import (
	"image"
	"math"
	"math/bits"
)

// MinSize is the smallest width and height of a canvas or bitmap in pixels.
const MinSize = 4

// fitMinSize clamps non-positive sizes to one pixel and scales undersized
// dimensions up proportionally so both sides reach MinSize.
// It reports whether the size was changed by the floor.
func fitMinSize(w, h int) (int, int, bool) {
	w, h = max(w, 1), max(h, 1)
	if w >= MinSize && h >= MinSize {
		return w, h, false
	}
	f := float64(MinSize) / float64(min(w, h))
	return max(MinSize, int(math.Round(float64(w)*f))),
		max(MinSize, int(math.Round(float64(h)*f))), true
}

// plane is a packed 1-bit pixel buffer. Pixel x of row y is bit x%64 of
// word y*stride + x/64. Padding bits past the width are always zero.
type plane struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

func newPlane(width, height int) *plane {
	stride := (width + 63) / 64
	return &plane{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// Width returns the plane width.
func (p *plane) Width() int { return p.width }

// Height returns the plane height.
func (p *plane) Height() int { return p.height }

// Get returns the pixel at (x, y). Coordinates outside the plane read as off.
func (p *plane) Get(x, y int) bool {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return false
	}
	return p.words[y*p.stride+x/64]&(1<<uint(x%64)) != 0
}

// SetPixel sets the pixel at (x, y). Coordinates outside the plane are ignored.
func (p *plane) SetPixel(x, y int, on bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := y*p.stride + x/64
	bit := uint64(1) << uint(x%64)
	if on {
		p.words[i] |= bit
	} else {
		p.words[i] &^= bit
	}
}

// FillSpan sets pixels x1..x2 (inclusive) of row y, clipped to the plane.
func (p *plane) FillSpan(x1, x2, y int, on bool) {
	if y < 0 || y >= p.height {
		return
	}
	x1, x2 = max(x1, 0), min(x2, p.width-1)
	row := p.words[y*p.stride : (y+1)*p.stride]
	for x1 <= x2 {
		wi := x1 / 64
		lo := uint(x1 % 64)
		hi := uint(63)
		if x2/64 == wi {
			hi = uint(x2 % 64)
		}
		mask := (^uint64(0) >> (63 - hi)) &^ (uint64(1)<<lo - 1)
		if on {
			row[wi] |= mask
		} else {
			row[wi] &^= mask
		}
		x1 = (wi + 1) * 64
	}
}

// padMask returns the mask of valid bits in the last word of a row.
func (p *plane) padMask() uint64 {
	if r := p.width % 64; r != 0 {
		return uint64(1)<<uint(r) - 1
	}
	return ^uint64(0)
}

// clearPadding zeroes the bits past the width in every row.
func (p *plane) clearPadding() {
	m := p.padMask()
	for y := 0; y < p.height; y++ {
		p.words[(y+1)*p.stride-1] &= m
	}
}

// fill sets every pixel.
func (p *plane) fill(on bool) {
	var w uint64
	if on {
		w = ^uint64(0)
	}
	for i := range p.words {
		p.words[i] = w
	}
	p.clearPadding()
}

func (p *plane) clone() *plane {
	c := &plane{width: p.width, height: p.height, stride: p.stride, words: make([]uint64, len(p.words))}
	copy(c.words, p.words)
	return c
}

func (p *plane) sameSize(o *plane) bool {
	return p.width == o.width && p.height == o.height
}

// combine applies op word by word into a new plane. Sizes must match.
func (p *plane) combine(o *plane, op func(a, b uint64) uint64) *plane {
	c := newPlane(p.width, p.height)
	for i := range p.words {
		c.words[i] = op(p.words[i], o.words[i])
	}
	return c
}

// xorInPlace toggles every pixel of p that is set in o. Sizes must match.
func (p *plane) xorInPlace(o *plane) {
	for i := range p.words {
		p.words[i] ^= o.words[i]
	}
}

func (p *plane) inverted() *plane {
	c := newPlane(p.width, p.height)
	for i := range p.words {
		c.words[i] = ^p.words[i]
	}
	c.clearPadding()
	return c
}

func (p *plane) count() int {
	n := 0
	for _, w := range p.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (p *plane) equal(o *plane) bool {
	if !p.sameSize(o) {
		return false
	}
	for i := range p.words {
		if p.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// toGray expands the plane into an 8-bit gray image (off = 0, on = 255).
func (p *plane) toGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+p.width]
		for x := range row {
			if p.Get(x, y) {
				row[x] = 0xff
			}
		}
	}
	return g
}

// planeFromGray thresholds a gray image: values >= 128 become on.
func planeFromGray(g *image.Gray) *plane {
	b := g.Bounds()
	p := newPlane(b.Dx(), b.Dy())
	for y := 0; y < p.height; y++ {
		off := (y+b.Min.Y-g.Rect.Min.Y)*g.Stride + (b.Min.X - g.Rect.Min.X)
		row := g.Pix[off : off+p.width]
		for x, v := range row {
			if v >= 0x80 {
				p.words[y*p.stride+x/64] |= 1 << uint(x%64)
			}
		}
	}
	return p
}
