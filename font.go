package trellis

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontCache is the glyph-measurement capability. Upstream line breaking
// (BreakLines) and the Ebitengine renderer both consume it.
type FontCache interface {
	// Advance returns the horizontal advance of s at the given size.
	Advance(s string, size FontSize) float64

	// LineHeight returns the vertical distance between baselines at the
	// given size.
	LineHeight(size FontSize) float64
}

// TextFaceCache is a FontCache backed by an Ebitengine text/v2 face source,
// caching one face per requested size.
type TextFaceCache struct {
	source *text.GoTextFaceSource
	faces  map[FontSize]*text.GoTextFace
}

// NewTextFaceCache parses raw TTF/OTF data into a face cache.
func NewTextFaceCache(ttfData []byte) (*TextFaceCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("parse font data: %w", err)
	}
	return &TextFaceCache{
		source: source,
		faces:  make(map[FontSize]*text.GoTextFace),
	}, nil
}

// Face returns the cached face for the given size, creating it on first use.
func (c *TextFaceCache) Face(size FontSize) *text.GoTextFace {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: c.source, Size: float64(size)}
	c.faces[size] = face
	return face
}

// Advance returns the horizontal advance of s at the given size.
func (c *TextFaceCache) Advance(s string, size FontSize) float64 {
	w, _ := text.Measure(s, c.Face(size), 0)
	return w
}

// LineHeight returns ascent + descent + line gap at the given size.
func (c *TextFaceCache) LineHeight(size FontSize) float64 {
	m := c.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
