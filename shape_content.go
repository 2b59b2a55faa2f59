package bitpaint

import "fmt"

// Kind is the primitive type of a ShapeContent.
type Kind int

const (
	// KindPolygon is a closed polygon. Fewer than three vectors degrade to a
	// point or a segment.
	KindPolygon Kind = iota
	// KindLine is a segment between exactly two vectors.
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ShapeContent is a single drawable primitive: an ordered list of vectors
// interpreted according to its Kind. Transform methods modify the receiver.
type ShapeContent struct {
	vectors []Vec2
	kind    Kind
}

// NewPolygon creates a polygon through the given vectors. The slice is copied.
func NewPolygon(vectors ...Vec2) *ShapeContent {
	return &ShapeContent{vectors: append([]Vec2(nil), vectors...), kind: KindPolygon}
}

// NewLine creates a segment from a to b.
func NewLine(a, b Vec2) *ShapeContent {
	return &ShapeContent{vectors: []Vec2{a, b}, kind: KindLine}
}

// Kind returns the primitive type.
func (sc *ShapeContent) Kind() Kind { return sc.kind }

// Vectors returns a copy of the vectors.
func (sc *ShapeContent) Vectors() []Vec2 {
	return append([]Vec2(nil), sc.vectors...)
}

// Len returns the number of vectors.
func (sc *ShapeContent) Len() int { return len(sc.vectors) }

// Copy returns a deep copy.
func (sc *ShapeContent) Copy() *ShapeContent {
	return &ShapeContent{vectors: sc.Vectors(), kind: sc.kind}
}

// Bounds returns the bounding box of the vectors, or UnitBox if empty.
func (sc *ShapeContent) Bounds() Box {
	return BoundsOf(sc.vectors)
}

// Dimensions returns the size of the bounding box.
func (sc *ShapeContent) Dimensions() Vec2 {
	return sc.Bounds().Dimensions()
}

// Center returns the center of the bounding box.
func (sc *ShapeContent) Center() Vec2 {
	return sc.Bounds().Center()
}

// ApplyVectorOp replaces every vector v with op(v).
func (sc *ShapeContent) ApplyVectorOp(op func(Vec2) Vec2) {
	for i, v := range sc.vectors {
		sc.vectors[i] = op(v)
	}
}

// Scale multiplies every vector component-wise by (fx, fy).
func (sc *ShapeContent) Scale(fx, fy float64) {
	sc.ApplyVectorOp(func(v Vec2) Vec2 { return Vec2{X: v.X * fx, Y: v.Y * fy} })
}

// ScaleAround scales every vector by (fx, fy) relative to center.
func (sc *ShapeContent) ScaleAround(center Vec2, fx, fy float64) {
	sc.ApplyVectorOp(func(v Vec2) Vec2 {
		d := v.Sub(center)
		return Vec2{X: center.X + d.X*fx, Y: center.Y + d.Y*fy}
	})
}

// Translate moves every vector by (dx, dy).
func (sc *ShapeContent) Translate(dx, dy float64) {
	sc.ApplyVectorOp(func(v Vec2) Vec2 { return Vec2{X: v.X + dx, Y: v.Y + dy} })
}

// Rotate rotates every vector by degrees around center.
func (sc *ShapeContent) Rotate(center Vec2, degrees float64) {
	sc.ApplyVectorOp(func(v Vec2) Vec2 { return v.RotateAround(center, degrees) })
}

// Flip mirrors the vectors across the vertical axis through center
// (horizontal) and/or the horizontal axis through center (vertical).
func (sc *ShapeContent) Flip(horizontal, vertical bool, center Vec2) {
	sc.ApplyVectorOp(func(v Vec2) Vec2 { return flipVec(v, horizontal, vertical, center) })
}

func flipVec(v Vec2, horizontal, vertical bool, center Vec2) Vec2 {
	if horizontal {
		v.X = 2*center.X - v.X
	}
	if vertical {
		v.Y = 2*center.Y - v.Y
	}
	return v
}

// Recenter translates the vectors so the bounding box center is (0.5, 0.5).
func (sc *ShapeContent) Recenter() {
	c := sc.Center()
	sc.Translate(0.5-c.X, 0.5-c.Y)
}

// DrawNormal draws the primitive onto canvas in White. Vectors are mapped
// through vp. Polygons are filled when fill is set and otherwise outlined
// with lineWidth; lines always use lineWidth. The canvas color and fill
// mode are restored afterwards.
func (sc *ShapeContent) DrawNormal(canvas *Canvas, fill bool, lineWidth float64, vp Viewport) error {
	if len(sc.vectors) == 0 {
		return nil
	}
	pts := make([]Vec2, 0, len(sc.vectors)+1)
	for _, v := range sc.vectors {
		p, err := canvas.MapToPixels(v, vp)
		if err != nil {
			return fmt.Errorf("bitpaint: draw %s: %w", sc.kind, err)
		}
		pts = append(pts, p)
	}

	prevColor, prevFill := canvas.Color(), canvas.Fill()
	defer func() {
		canvas.SetColor(prevColor)
		canvas.SetFill(prevFill)
	}()
	canvas.SetColor(White)
	canvas.SetFill(fill)

	switch {
	case sc.kind == KindLine:
		canvas.Polyline(pts, lineWidth)
	case fill:
		canvas.Polygon(pts)
	default:
		canvas.Polyline(append(pts, pts[0]), lineWidth)
	}
	return nil
}

// DrawXOR draws the primitive onto a cleared copy of canvas and XORs the
// result into canvas, toggling every covered pixel.
func (sc *ShapeContent) DrawXOR(canvas *Canvas, fill bool, lineWidth float64, vp Viewport) error {
	layer := canvas.ClearCopy()
	if err := sc.DrawNormal(layer, fill, lineWidth, vp); err != nil {
		return err
	}
	canvas.diag.OutOfViewport += layer.diag.OutOfViewport
	return canvas.CombineXOR(layer)
}
