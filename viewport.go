package bitpaint

import "fmt"

// Viewport is the rectangular region of shape space that is mapped onto the
// pixels of a canvas.
type Viewport struct {
	Min, Max Vec2
}

// UnitViewport maps the unit square onto the full canvas.
var UnitViewport = Viewport{Min: V2(0, 0), Max: V2(1, 1)}

// NewViewport creates a validated viewport from two corners.
func NewViewport(min, max Vec2) (Viewport, error) {
	vp := Viewport{Min: min, Max: max}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// Validate returns ErrInvalidViewport unless Max exceeds Min on both axes.
func (vp Viewport) Validate() error {
	if !(vp.Max.X > vp.Min.X) || !(vp.Max.Y > vp.Min.Y) {
		return fmt.Errorf("%w: min %v, max %v", ErrInvalidViewport, vp.Min, vp.Max)
	}
	return nil
}

// Extent returns the size of the viewport.
func (vp Viewport) Extent() Vec2 {
	return vp.Max.Sub(vp.Min)
}

// Normalize maps v into viewport-relative coordinates, where Min becomes
// (0, 0) and Max becomes (1, 1). The viewport must be valid.
func (vp Viewport) Normalize(v Vec2) Vec2 {
	e := vp.Extent()
	d := v.Sub(vp.Min)
	return Vec2{X: d.X / e.X, Y: d.Y / e.Y}
}

// Contains reports whether v lies inside the viewport (borders included).
func (vp Viewport) Contains(v Vec2) bool {
	return v.X >= vp.Min.X && v.X <= vp.Max.X && v.Y >= vp.Min.Y && v.Y <= vp.Max.Y
}
