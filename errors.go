package bitpaint

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bitpaint package.
var (
	// ErrDegenerateGeometry is returned when an operation needs a shape with
	// non-zero width and height, e.g. Normalize.
	ErrDegenerateGeometry = errors.New("bitpaint: degenerate geometry")

	// ErrDimensionMismatch is returned when two surfaces of different sizes
	// are combined pixel by pixel.
	ErrDimensionMismatch = errors.New("bitpaint: dimension mismatch")

	// ErrInvalidViewport is returned for a viewport whose max does not exceed
	// its min on both axes.
	ErrInvalidViewport = errors.New("bitpaint: invalid viewport")
)

// DimensionMismatchError is returned when combining surfaces of different sizes.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionMismatchError struct {
	Op          string
	Width       int
	Height      int
	OtherWidth  int
	OtherHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("bitpaint: %s: dimension mismatch %dx%d vs %dx%d",
		e.Op, e.Width, e.Height, e.OtherWidth, e.OtherHeight)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
