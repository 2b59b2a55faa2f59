// Package bitpaint generates monochrome guide graphics and composes them.
//
// # Overview
//
// bitpaint is a small Pure Go engine for 1-bit pictures: polygons, lines,
// ellipses, bullseyes and grids are built as vector shapes, transformed,
// rasterized onto a [Canvas] and frozen into an immutable [Bitmap]. Bitmaps
// support exact boolean pixel operations (AND, OR, XOR, INVERT) and the usual
// geometric transforms (resize, crop, paste, rotate).
//
// # Quick Start
//
//	import "github.com/gogpu/bitpaint"
//
//	// A hexagon authored in the unit square.
//	hex := bitpaint.NewShape(bitpaint.Leaf(bitpaint.NewPolygon(vertices...)))
//	hex.Rotate(bitpaint.V2(0.5, 0.5), 30)
//
//	bm, err := bitpaint.Render(hex, 512, 512, bitpaint.RenderOptions{Fill: true})
//	if err != nil {
//		return err
//	}
//	mask, err := bm.Xor(other)
//
// # Coordinate System
//
// Shapes are usually authored in the unit square [0,1]x[0,1] and mapped onto
// pixels through a [Viewport]:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, positive rotates from +X towards +Y
//
// Pixel (x, y) is addressed by its center at the integer coordinate (x, y).
//
// # Sizes
//
// Canvases and bitmaps are never smaller than [MinSize] pixels on either
// side. Smaller requests are scaled up proportionally instead of failing.
//
// # Concurrency
//
// Shapes, canvases and bitmaps are plain values without internal locking.
// A Canvas belongs to one render call; Bitmaps are immutable and can be
// shared freely.
package bitpaint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
