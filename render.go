package bitpaint

import "fmt"

// RenderOptions configures Render.
type RenderOptions struct {
	// XOR toggles covered pixels instead of setting them.
	XOR bool
	// Fill fills polygons; otherwise they are outlined with LineWidth.
	Fill bool
	// LineWidth is the stroke width in pixels. Zero means 1.
	LineWidth float64
	// Viewport is the region of shape space mapped onto the bitmap.
	// The zero value means UnitViewport.
	Viewport Viewport
}

// DefaultRenderOptions returns filled, one pixel wide rendering of the unit
// square.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Fill: true, LineWidth: 1, Viewport: UnitViewport}
}

// Render draws shape onto a new width x height canvas and returns the
// resulting bitmap.
func Render(shape *Shape, width, height int, opts RenderOptions) (*Bitmap, error) {
	if opts.Viewport == (Viewport{}) {
		opts.Viewport = UnitViewport
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	c := NewCanvas(float64(width), float64(height))
	if err := shape.Draw(c, opts.XOR, opts.Fill, opts.LineWidth, opts.Viewport); err != nil {
		return nil, fmt.Errorf("bitpaint: render: %w", err)
	}
	if n := c.Diagnostics().OutOfViewport; n > 0 {
		Logger().Debug("bitpaint: render finished with vectors outside viewport", "count", n)
	}
	return c.Bitmap(), nil
}
