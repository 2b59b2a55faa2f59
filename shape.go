package bitpaint

import "fmt"

// Element is one entry of a Shape: either a primitive (leaf) or a nested
// Shape (group). At most one of the two is set; an empty Element, such as
// Leaf(nil) or the zero value, is kept but draws nothing.
type Element struct {
	leaf  *ShapeContent
	group *Shape
}

// Leaf wraps a primitive as an Element.
func Leaf(c *ShapeContent) Element {
	return Element{leaf: c}
}

// Group wraps a nested shape as an Element.
func Group(s *Shape) Element {
	return Element{group: s}
}

// IsLeaf reports whether the element holds a primitive.
func (e Element) IsLeaf() bool { return e.leaf != nil }

// Content returns the primitive of a leaf element, or nil for a group.
func (e Element) Content() *ShapeContent { return e.leaf }

// Shape returns the nested shape of a group element, or nil for a leaf.
func (e Element) Shape() *Shape { return e.group }

func (e Element) copy() Element {
	switch {
	case e.leaf != nil:
		return Leaf(e.leaf.Copy())
	case e.group != nil:
		return Group(e.group.Copy())
	}
	return Element{}
}

// Shape is an ordered tree of primitives. Rendering a Shape is equivalent to
// rendering its leaves in order. Transform methods modify the receiver's
// tree; use Copy before transforming a tree that is shared.
type Shape struct {
	elements []Element
}

// NewShape creates a shape from elements.
func NewShape(elements ...Element) *Shape {
	return &Shape{elements: append([]Element(nil), elements...)}
}

// ShapeOf creates a shape with one leaf per primitive.
func ShapeOf(contents ...*ShapeContent) *Shape {
	s := &Shape{elements: make([]Element, 0, len(contents))}
	for _, c := range contents {
		s.elements = append(s.elements, Leaf(c))
	}
	return s
}

// Append adds elements to the end of the shape.
func (s *Shape) Append(elements ...Element) {
	s.elements = append(s.elements, elements...)
}

// Elements returns the direct children. The slice is a copy; the elements
// themselves are shared.
func (s *Shape) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// Leaves returns every primitive of the tree in drawing order.
func (s *Shape) Leaves() []*ShapeContent {
	var out []*ShapeContent
	s.walk(func(c *ShapeContent) { out = append(out, c) })
	return out
}

func (s *Shape) walk(fn func(*ShapeContent)) {
	for _, e := range s.elements {
		if e.leaf != nil {
			fn(e.leaf)
		} else if e.group != nil {
			e.group.walk(fn)
		}
	}
}

// Copy returns a deep copy of the tree.
func (s *Shape) Copy() *Shape {
	c := &Shape{elements: make([]Element, len(s.elements))}
	for i, e := range s.elements {
		c.elements[i] = e.copy()
	}
	return c
}

// Bounds returns the bounding box over every vector in the tree, or UnitBox
// if the tree has no vectors.
func (s *Shape) Bounds() Box {
	var pts []Vec2
	s.walk(func(c *ShapeContent) { pts = append(pts, c.vectors...) })
	return BoundsOf(pts)
}

// Dimensions returns the size of the bounding box.
func (s *Shape) Dimensions() Vec2 {
	return s.Bounds().Dimensions()
}

// Center returns the center of the bounding box.
func (s *Shape) Center() Vec2 {
	return s.Bounds().Center()
}

// ApplyVectorOp replaces every vector v in the tree with op(v).
func (s *Shape) ApplyVectorOp(op func(Vec2) Vec2) {
	s.walk(func(c *ShapeContent) { c.ApplyVectorOp(op) })
}

// Scale multiplies every vector component-wise by (fx, fy).
func (s *Shape) Scale(fx, fy float64) {
	s.walk(func(c *ShapeContent) { c.Scale(fx, fy) })
}

// ScaleAround scales every vector by (fx, fy) relative to center.
func (s *Shape) ScaleAround(center Vec2, fx, fy float64) {
	s.walk(func(c *ShapeContent) { c.ScaleAround(center, fx, fy) })
}

// Translate moves every vector by (dx, dy).
func (s *Shape) Translate(dx, dy float64) {
	s.walk(func(c *ShapeContent) { c.Translate(dx, dy) })
}

// Rotate rotates every vector by degrees around center.
func (s *Shape) Rotate(center Vec2, degrees float64) {
	s.walk(func(c *ShapeContent) { c.Rotate(center, degrees) })
}

// Flip mirrors every vector through center; see ShapeContent.Flip.
func (s *Shape) Flip(horizontal, vertical bool, center Vec2) {
	s.walk(func(c *ShapeContent) { c.Flip(horizontal, vertical, center) })
}

// Recenter translates the tree so its center is (0.5, 0.5).
func (s *Shape) Recenter() {
	s.MoveTo(0.5, 0.5)
}

// MoveTo translates the tree so its center is (x, y).
func (s *Shape) MoveTo(x, y float64) {
	c := s.Center()
	s.Translate(x-c.X, y-c.Y)
}

// Normalize maps the bounding box of the tree onto the unit square.
// It returns ErrDegenerateGeometry if the box has zero width or height, in
// which case the shape is left unchanged.
func (s *Shape) Normalize() error {
	b := s.Bounds()
	if b.Width() == 0 || b.Height() == 0 {
		return fmt.Errorf("%w: normalize %gx%g bounds", ErrDegenerateGeometry, b.Width(), b.Height())
	}
	s.Translate(-b.Min.X, -b.Min.Y)
	s.Scale(1/b.Width(), 1/b.Height())
	return nil
}

// Draw renders every leaf onto canvas through vp, in XOR mode when xor is set.
// Drawing stops at the first error.
func (s *Shape) Draw(canvas *Canvas, xor, fill bool, lineWidth float64, vp Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	for _, c := range s.Leaves() {
		var err error
		if xor {
			err = c.DrawXOR(canvas, fill, lineWidth, vp)
		} else {
			err = c.DrawNormal(canvas, fill, lineWidth, vp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DrawNormal renders every leaf onto canvas through vp.
func (s *Shape) DrawNormal(canvas *Canvas, fill bool, lineWidth float64, vp Viewport) error {
	return s.Draw(canvas, false, fill, lineWidth, vp)
}

// DrawXOR renders every leaf onto canvas through vp, toggling covered pixels.
func (s *Shape) DrawXOR(canvas *Canvas, fill bool, lineWidth float64, vp Viewport) error {
	return s.Draw(canvas, true, fill, lineWidth, vp)
}
