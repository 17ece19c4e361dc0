package trellis

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the attribute table style overrides fall back to. Every style
// getter in primitive.go resolves an optional per-widget override against one
// of these defaults.
type Theme struct {
	Name string `toml:"name"`

	// Shape defaults.
	ShapeColor  Color   `toml:"shape_color"`
	BorderColor Color   `toml:"border_color"`
	BorderWidth float64 `toml:"border_width"`

	// Label/text defaults.
	LabelColor     Color    `toml:"label_color"`
	FontSizeSmall  FontSize `toml:"font_size_small"`
	FontSizeMedium FontSize `toml:"font_size_medium"`
	FontSizeLarge  FontSize `toml:"font_size_large"`
	LineSpacing    float64  `toml:"line_spacing"`

	// Line defaults.
	LineThickness float64     `toml:"line_thickness"`
	LinePattern   LinePattern `toml:"line_pattern"`
	LineCap       LineCap     `toml:"line_cap"`
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:           "default",
		ShapeColor:     Color{0.2, 0.23, 0.27, 1},
		BorderColor:    Color{0.06, 0.06, 0.08, 1},
		BorderWidth:    1,
		LabelColor:     Color{0.92, 0.92, 0.92, 1},
		FontSizeSmall:  12,
		FontSizeMedium: 18,
		FontSizeLarge:  26,
		LineSpacing:    1,
		LineThickness:  1,
		LinePattern:    PatternSolid,
		LineCap:        CapFlat,
	}
}

// LoadTheme parses a TOML theme file. Attributes absent from the data keep
// the default theme's values.
func LoadTheme(data []byte) (*Theme, error) {
	theme := DefaultTheme()
	if err := toml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}

// Encode serializes the theme to TOML.
func (t *Theme) Encode() ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal theme: %w", err)
	}
	return data, nil
}

// --- Override resolution ---
//
// Builder-style optional overrides resolve against a theme default with a
// nil check; these helpers keep the style getters one-liners.

func resolveColor(override *Color, def Color) Color {
	if override != nil {
		return *override
	}
	return def
}

func resolveScalar(override *float64, def float64) float64 {
	if override != nil {
		return *override
	}
	return def
}

func resolveFontSize(override *FontSize, def FontSize) FontSize {
	if override != nil {
		return *override
	}
	return def
}

func resolvePattern(override *LinePattern, def LinePattern) LinePattern {
	if override != nil {
		return *override
	}
	return def
}

func resolveCap(override *LineCap, def LineCap) LineCap {
	if override != nil {
		return *override
	}
	return def
}

func resolveAlign(override *TextAlign, def TextAlign) TextAlign {
	if override != nil {
		return *override
	}
	return def
}
