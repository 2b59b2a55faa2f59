package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/patterns"
)

func runPattern(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("pattern: want rect, ellipse, bullseye, rbullseye or checker")
	}
	kind := args[0]

	fs, out := newFlagSet("pattern")
	w := fs.Int("w", e.cfg.Render.Width, "bitmap width")
	h := fs.Int("h", e.cfg.Render.Height, "bitmap height")
	sw := fs.Float64("sw", 0, "shape width in pixels; 0 means half the bitmap")
	sh := fs.Float64("sh", 0, "shape height in pixels; 0 means half the bitmap")
	cx := fs.Float64("cx", -1, "center x; negative means the bitmap center")
	cy := fs.Float64("cy", -1, "center y; negative means the bitmap center")
	lwx := fs.Int("lwx", 0, "ring line width x; 0 means width/32")
	lwy := fs.Int("lwy", 0, "ring line width y; 0 means height/32")
	cols := fs.Int("cols", 8, "checkerboard columns")
	rows := fs.Int("rows", 8, "checkerboard rows")
	if err := parse(fs, args[1:]); err != nil {
		return err
	}

	centerX, centerY := *cx, *cy
	if centerX < 0 {
		centerX = float64(*w) / 2
	}
	if centerY < 0 {
		centerY = float64(*h) / 2
	}
	box := patterns.Box{
		BitmapWidth: *w, BitmapHeight: *h,
		Width: *sw, Height: *sh,
		CenterX: centerX, CenterY: centerY,
	}
	if box.Width == 0 {
		box.Width = float64(*w) / 2
	}
	if box.Height == 0 {
		box.Height = float64(*h) / 2
	}
	rings := patterns.Rings{
		Width: *w, Height: *h,
		LineWidthX: *lwx, LineWidthY: *lwy,
		CenterX: int(centerX), CenterY: int(centerY),
	}
	if rings.LineWidthX == 0 {
		rings.LineWidthX = max(1, *w/32)
	}
	if rings.LineWidthY == 0 {
		rings.LineWidthY = max(1, *h/32)
	}

	var (
		bm  *bitpaint.Bitmap
		err error
	)
	switch kind {
	case "rect":
		bm, err = patterns.Rectangle(box)
	case "ellipse":
		bm, err = patterns.Ellipse(box)
	case "bullseye":
		bitpaint.Logger().Debug("pattern: bullseye", "rings", rings.Count())
		bm, err = patterns.Bullseye(rings)
	case "rbullseye":
		bitpaint.Logger().Debug("pattern: rectangular bullseye", "rings", rings.Count())
		bm, err = patterns.RectangularBullseye(rings)
	case "checker":
		bm, err = patterns.Checkerboard(*w, *h, *cols, *rows)
	default:
		return fmt.Errorf("pattern: unknown kind %q", kind)
	}
	if err != nil {
		return err
	}
	return e.save(e.outputPath(*out, kind), bm)
}
