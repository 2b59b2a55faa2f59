package shapes

import (
	"fmt"

	"github.com/gogpu/bitpaint"
)

// GridOptions configures Grid.
type GridOptions struct {
	// Width and Height are the size of the whole grid in the unit square.
	Width  float64
	Height float64

	Columns int
	Rows    int

	// InbetweenSkip leaves that many cells empty between two filled ones.
	InbetweenSkip int
	// RowSkipOffset shifts the skip pattern by this many cells per row.
	RowSkipOffset int
}

func (o GridOptions) validate() error {
	if !(o.Width > 0) || !(o.Height > 0) {
		return fmt.Errorf("%w: grid size %gx%g", ErrInvalidParameter, o.Width, o.Height)
	}
	if o.Columns < 1 || o.Rows < 1 || o.Columns > MaxGridCells/o.Rows {
		return fmt.Errorf("%w: %d columns, %d rows", ErrInvalidParameter, o.Columns, o.Rows)
	}
	if o.InbetweenSkip < 0 || o.RowSkipOffset < 0 {
		return fmt.Errorf("%w: skip %d, offset %d", ErrInvalidParameter, o.InbetweenSkip, o.RowSkipOffset)
	}
	return nil
}

// selected reports whether the cell with the given 1-based running counter
// in row is filled.
func (o GridOptions) selected(counter, row int) bool {
	return (counter+o.RowSkipOffset*row)%(o.InbetweenSkip+1) == 0
}

// Grid lays out copies of shape on a columns x rows grid centered in the
// unit square. The copies are scaled to fit a cell; the resulting grid is
// normalized to Width x Height. shape is not modified.
func Grid(shape *bitpaint.Shape, o GridOptions) (*bitpaint.Shape, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	stepX := o.Width / float64(o.Columns)
	stepY := o.Height / float64(o.Rows)
	cell := shape.Copy()
	f := min(stepX, stepY)
	cell.Scale(f, f)

	startX := 0.5 - o.Width*0.5
	startY := 0.5 - o.Height*0.5
	center := bitpaint.V2(0.5, 0.5)

	out := bitpaint.NewShape()
	counter := 0
	for row := range o.Rows {
		for col := range o.Columns {
			counter++
			if !o.selected(counter, row) {
				continue
			}
			c := cell.Copy()
			t := bitpaint.V2(startX+float64(col)*stepX, startY+float64(row)*stepY).Sub(center)
			c.Translate(t.X, t.Y)
			out.Append(bitpaint.Group(c))
		}
	}

	if err := out.Normalize(); err != nil {
		return nil, fmt.Errorf("shapes: grid: %w", err)
	}
	out.Scale(o.Width, o.Height)
	out.Translate((1-o.Width)*0.5, (1-o.Height)*0.5)

	bitpaint.Logger().Debug("shapes: grid built",
		"columns", o.Columns, "rows", o.Rows, "cells", len(out.Elements()))
	return out, nil
}

// Step is the transform applied between two consecutive copies in Copycat.
// Rotation and scaling are relative to the center of the previous copy.
type Step struct {
	DX, DY  float64
	Degrees float64
	// ScaleX and ScaleY of zero mean 1.
	ScaleX, ScaleY float64
}

func (s Step) scale() (float64, float64) {
	fx, fy := s.ScaleX, s.ScaleY
	if fx == 0 {
		fx = 1
	}
	if fy == 0 {
		fy = 1
	}
	return fx, fy
}

// Copycat returns count copies of shape, the first unchanged and every
// following one derived from its predecessor by translating it by
// (DX, DY), rotating it about its center and scaling it about its center.
// shape is not modified.
func Copycat(shape *bitpaint.Shape, count int, step Step) (*bitpaint.Shape, error) {
	if count < 1 || count > MaxCopies {
		return nil, fmt.Errorf("%w: %d copies", ErrInvalidParameter, count)
	}
	fx, fy := step.scale()

	out := bitpaint.NewShape()
	cur := shape.Copy()
	for i := range count {
		if i > 0 {
			cur = cur.Copy()
			cur.Translate(step.DX, step.DY)
			c := cur.Center()
			cur.Rotate(c, step.Degrees)
			cur.ScaleAround(c, fx, fy)
		}
		out.Append(bitpaint.Group(cur))
	}
	return out, nil
}
