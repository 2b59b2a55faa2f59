package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/shapes"
)

func runShape(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("shape: want ngon, rect or star")
	}
	kind := args[0]

	fs, out := newFlagSet("shape")
	w := fs.Int("w", e.cfg.Render.Width, "bitmap width")
	h := fs.Int("h", e.cfg.Render.Height, "bitmap height")
	sw := fs.Float64("sw", 0.5, "shape width in the unit square (star: outer diameter)")
	sh := fs.Float64("sh", 0.5, "shape height in the unit square (star: inner diameter)")
	cx := fs.Float64("cx", 0.5, "shape center x in the unit square")
	cy := fs.Float64("cy", 0.5, "shape center y in the unit square")
	edges := fs.Int("edges", 6, "polygon edges or star points")
	rotate := fs.Float64("rotate", 0, "rotation about the shape center in degrees")
	normalize := fs.Bool("normalize", false, "stretch the shape to fill the unit square")

	cols := fs.Int("cols", 0, "grid columns; 0 disables the grid")
	rows := fs.Int("rows", 0, "grid rows; 0 means the same as -cols")
	gw := fs.Float64("gw", 1, "grid width in the unit square")
	gh := fs.Float64("gh", 1, "grid height in the unit square")
	skip := fs.Int("skip", 0, "empty grid cells between two filled ones")
	offset := fs.Int("offset", 0, "grid skip offset per row")

	copies := fs.Int("copies", 0, "number of copies; 0 disables copying")
	dx := fs.Float64("dx", 0, "translation between copies")
	dy := fs.Float64("dy", 0, "translation between copies")
	deg := fs.Float64("deg", 0, "rotation between copies in degrees")
	scale := fs.Float64("scale", 1, "scale between copies")

	xor := fs.Bool("xor", false, "combine overlapping parts with XOR")
	fill := fs.Bool("fill", e.cfg.Render.Fill, "fill polygons")
	lw := fs.Float64("lw", e.cfg.Render.LineWidth, "outline width in pixels")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	var (
		shape *bitpaint.Shape
		err   error
	)
	switch kind {
	case "ngon":
		shape, err = shapes.NPolygon(*sw, *sh, *cx, *cy, *edges)
	case "rect":
		shape = shapes.Rectangle(*sw, *sh, *cx, *cy)
	case "star":
		shape, err = shapes.Star(*edges, *sw, *sh, *cx, *cy)
	default:
		return fmt.Errorf("shape: unknown kind %q", kind)
	}
	if err != nil {
		return err
	}

	if *rotate != 0 {
		shape.Rotate(shape.Center(), *rotate)
	}
	if *normalize {
		if err := shape.Normalize(); err != nil {
			return fmt.Errorf("shape: %w", err)
		}
	}
	if *copies > 0 {
		step := shapes.Step{DX: *dx, DY: *dy, Degrees: *deg, ScaleX: *scale, ScaleY: *scale}
		if shape, err = shapes.Copycat(shape, *copies, step); err != nil {
			return err
		}
	}
	if *cols > 0 {
		r := *rows
		if r == 0 {
			r = *cols
		}
		shape, err = shapes.Grid(shape, shapes.GridOptions{
			Width: *gw, Height: *gh,
			Columns: *cols, Rows: r,
			InbetweenSkip: *skip, RowSkipOffset: *offset,
		})
		if err != nil {
			return err
		}
	}

	opts := e.cfg.RenderOptions()
	opts.XOR, opts.Fill, opts.LineWidth = *xor, *fill, *lw
	bm, err := bitpaint.Render(shape, *w, *h, opts)
	if err != nil {
		return err
	}
	return e.save(e.outputPath(*out, kind), bm)
}
