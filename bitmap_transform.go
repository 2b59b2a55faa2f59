package bitpaint

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Resampling selects the interpolation used by Bitmap.ResizeWith.
type Resampling int

const (
	// ResampleNearest picks the nearest source pixel.
	ResampleNearest Resampling = iota
	// ResampleBilinear interpolates linearly and thresholds at half gray.
	ResampleBilinear
	// ResampleCatmullRom uses the Catmull-Rom cubic kernel and thresholds
	// at half gray.
	ResampleCatmullRom
)

// String returns the resampling name.
func (r Resampling) String() string {
	switch r {
	case ResampleNearest:
		return "nearest"
	case ResampleBilinear:
		return "bilinear"
	case ResampleCatmullRom:
		return "catmullrom"
	default:
		return "unknown"
	}
}

func (r Resampling) scaler() draw.Scaler {
	switch r {
	case ResampleBilinear:
		return draw.ApproxBiLinear
	case ResampleCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// scalePlane resamples p to w x h through an 8-bit gray intermediate.
func scalePlane(p *plane, w, h int, s draw.Scaler) *plane {
	src := p.toGray()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return planeFromGray(dst)
}

// ResizeTo returns the bitmap scaled to width x height with nearest-neighbour
// sampling. The minimum size floor applies.
func (b *Bitmap) ResizeTo(width, height int) *Bitmap {
	return b.ResizeWith(width, height, ResampleNearest)
}

// ResizeWith returns the bitmap scaled to width x height with the given
// resampling. The minimum size floor applies.
func (b *Bitmap) ResizeWith(width, height int, r Resampling) *Bitmap {
	w, h, _ := fitMinSize(width, height)
	if w == b.Width() && h == b.Height() {
		return &Bitmap{plane: b.plane.clone()}
	}
	return &Bitmap{plane: scalePlane(b.plane, w, h, r.scaler())}
}

// Crop returns the region of width x height starting at (x, y), clamped to
// the bitmap. An empty intersection yields a Black bitmap of MinSize.
func (b *Bitmap) Crop(x, y, width, height int) *Bitmap {
	r := image.Rect(x, y, x+width, y+height).Intersect(b.Bounds())
	out := newPlane(r.Dx(), r.Dy())
	for yy := 0; yy < r.Dy(); yy++ {
		for xx := 0; xx < r.Dx(); xx++ {
			if b.plane.Get(r.Min.X+xx, r.Min.Y+yy) {
				out.SetPixel(xx, yy, true)
			}
		}
	}
	return newBitmap(out)
}

// CropCenter returns the centered region of width x height, clamped to the
// bitmap.
func (b *Bitmap) CropCenter(width, height int) *Bitmap {
	x := int(math.Round(float64(b.Width()-width) / 2))
	y := int(math.Round(float64(b.Height()-height) / 2))
	return b.Crop(x, y, width, height)
}

// Paste returns a copy of b with o drawn at (x, y). Both White and Black
// pixels of o replace those of b; parts of o outside b are dropped.
func (b *Bitmap) Paste(o *Bitmap, x, y int) *Bitmap {
	out := b.plane.clone()
	pasteInto(out, o.plane, x, y)
	return &Bitmap{plane: out}
}

func pasteInto(dst, src *plane, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= dst.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dst.SetPixel(x+sx, dy, src.Get(sx, sy))
		}
	}
}

// Expand returns the bitmap surrounded by a border of the given width in
// pixels, filled with fill. Negative borders are treated as zero.
func (b *Bitmap) Expand(border int, fill Color) *Bitmap {
	border = max(border, 0)
	out := newPlane(b.Width()+2*border, b.Height()+2*border)
	out.fill(fill.On())
	pasteInto(out, b.plane, border, border)
	return &Bitmap{plane: out}
}

// Rotate returns the bitmap rotated counter-clockwise by degrees around
// (cx, cy), with nearest-neighbour sampling. Without expand the result keeps
// the original size and corners are cut off; with expand the result grows to
// hold the whole rotated image. Uncovered pixels are set to fill.
func (b *Bitmap) Rotate(cx, cy, degrees float64, expand bool, fill Color) *Bitmap {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	// Source to destination in y-down pixel space.
	m := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}

	w, h := b.Width(), b.Height()
	if expand {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, c := range [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
			px := m[0]*c[0] + m[1]*c[1] + m[2]
			py := m[3]*c[0] + m[4]*c[1] + m[5]
			minX, maxX = math.Min(minX, px), math.Max(maxX, px)
			minY, maxY = math.Min(minY, py), math.Max(maxY, py)
		}
		const eps = 1e-6
		w = int(math.Ceil(maxX - minX - eps))
		h = int(math.Ceil(maxY - minY - eps))
		m[2] -= minX
		m[5] -= minY
	}

	src := b.plane.toGray()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(fill.Gray()), image.Point{}, draw.Src)
	draw.NearestNeighbor.Transform(dst, m, src, src.Bounds(), draw.Src, nil)
	return newBitmap(planeFromGray(dst))
}
