package bitpaint

import (
	"image/color"
	"strings"

	"golang.org/x/text/cases"
)

// Color is the state of a monochrome pixel.
type Color uint8

const (
	// Black is the cleared (off) state.
	Black Color = iota
	// White is the set (on) state.
	White
)

// Color names accepted by ParseColor.
const (
	ColorNameBlack = "black"
	ColorNameWhite = "white"
)

// ParseColor maps a color name to a Color. "white" (in any case, surrounding
// spaces ignored) selects White; every other value selects Black.
func ParseColor(name string) Color {
	if cases.Fold().String(strings.TrimSpace(name)) == ColorNameWhite {
		return White
	}
	return Black
}

// ColorFromBool maps a truthy selector to White and a falsy one to Black.
func ColorFromBool(on bool) Color {
	if on {
		return White
	}
	return Black
}

// On reports whether the color is the set pixel state.
func (c Color) On() bool {
	return c == White
}

// Flip returns the other color.
func (c Color) Flip() Color {
	if c == White {
		return Black
	}
	return White
}

// Gray returns the color as an 8-bit gray value.
func (c Color) Gray() color.Gray {
	if c == White {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return ColorNameWhite
	}
	return ColorNameBlack
}
