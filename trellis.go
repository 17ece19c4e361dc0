package trellis

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ToRGBA converts to a stdlib 8-bit color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clampFloat(c.R, 0, 1) * 255),
		G: uint8(clampFloat(c.G, 0, 1) * 255),
		B: uint8(clampFloat(c.B, 0, 1) * 255),
		A: uint8(clampFloat(c.A, 0, 1) * 255),
	}
}

// MouseButton identifies a pointing-device button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button

	numMouseButtons = 3
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// FontSize is a font size in view units.
type FontSize uint32

// TextAlign controls horizontal text alignment within a text widget's rect.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align lines to the left edge (default)
	TextAlignCenter                  // center lines horizontally
	TextAlignRight                   // align lines to the right edge
)

// LineCap selects how line segment endpoints are drawn.
type LineCap uint8

const (
	CapFlat  LineCap = iota // square endpoints
	CapRound                // rounded endpoints
)

// LinePattern selects the stroke pattern for lines and outlines.
// Only PatternSolid is implemented; drawing with PatternDashed or
// PatternDotted is a hard stop (see drawLines).
type LinePattern uint8

const (
	PatternSolid LinePattern = iota
	PatternDashed
	PatternDotted
)
