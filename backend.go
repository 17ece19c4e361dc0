package trellis

import "image"

// Renderer is the draw-primitive capability the traversal dispatches into.
// Implementations receive view-space geometry plus the RenderContext that
// maps it to device space and carries the active scissor; the core computes
// correct transform/scissor/parameter values, the renderer rasterizes.
//
// A recording fake satisfies this for tests; EbitenRenderer is the shipped
// implementation.
type Renderer interface {
	// FillPolygon fills the polygon with the given color.
	FillPolygon(ctx RenderContext, points []Point, color Color)

	// Line strokes a single segment with the given thickness and cap style.
	Line(ctx RenderContext, start, end Point, thickness float64, cap LineCap, color Color)

	// FillRectangle fills the rectangle with the given color.
	FillRectangle(ctx RenderContext, rect Rect, color Color)

	// GlyphRun draws one line of text with its top-left corner at pos.
	GlyphRun(ctx RenderContext, line string, pos Point, size FontSize, color Color)

	// Image draws the registered image into dst, sampling src texture pixels
	// (nil = whole image), tinted when tint is non-nil.
	Image(ctx RenderContext, id ImageID, src *image.Rectangle, dst Rect, tint *Color)
}
