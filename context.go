package trellis

// Viewport describes the device draw target when it differs from the virtual
// view size: the actual pixel dimensions primitives are rasterized into.
type Viewport struct {
	DrawW, DrawH float64 // device draw size in pixels
}

// Scissor is a device-space clip rectangle: top-left origin, Y down,
// unsigned pixel units. A zero-width or zero-height scissor hides everything
// drawn under it.
type Scissor struct {
	X, Y, W, H uint32
}

// RenderContext carries everything a primitive draw needs to land in the
// right device pixels: the view-to-device affine transform, the virtual view
// size, the optional device viewport, and the active scissor.
//
// Contexts are values; derived contexts (translated, scaled, cropped) are
// copies, so the draw traversal can stack them freely.
type RenderContext struct {
	// Transform maps view space to device space.
	// Matrix layout [a, b, c, d, tx, ty]:
	//	| a  c  tx |
	//	| b  d  ty |
	Transform [6]float64

	// ViewSize is the virtual window size. Widget rectangles are expressed
	// against this no matter the display.
	ViewSize Dimensions

	// Viewport is the actual device draw size. Nil means the device size
	// equals the view size.
	Viewport *Viewport

	// Scissor is the active device clip region. Nil means unclipped.
	Scissor *Scissor
}

// NewRenderContext builds the base context for a frame: a transform mapping
// view space (center origin, Y up) onto the device target (top-left origin,
// Y down), scaled by the device/view size ratio.
func NewRenderContext(viewSize Dimensions, viewport *Viewport) RenderContext {
	draw := drawSize(viewSize, viewport)
	sx := 1.0
	sy := 1.0
	if viewSize.W != 0 {
		sx = draw.W / viewSize.W
	}
	if viewSize.H != 0 {
		sy = draw.H / viewSize.H
	}
	return RenderContext{
		Transform: [6]float64{sx, 0, 0, -sy, draw.W / 2, draw.H / 2},
		ViewSize:  viewSize,
		Viewport:  viewport,
	}
}

// DrawSize returns the device draw size: the viewport's when present,
// otherwise the view size.
func (c RenderContext) DrawSize() Dimensions {
	return drawSize(c.ViewSize, c.Viewport)
}

func drawSize(view Dimensions, viewport *Viewport) Dimensions {
	if viewport != nil {
		return Dimensions{viewport.DrawW, viewport.DrawH}
	}
	return view
}

// Trans returns a copy of the context translated by (x, y) in view units.
func (c RenderContext) Trans(x, y float64) RenderContext {
	c.Transform = multiplyAffine(c.Transform, [6]float64{1, 0, 0, 1, x, y})
	return c
}

// Scale returns a copy of the context scaled by (sx, sy).
func (c RenderContext) Scale(sx, sy float64) RenderContext {
	c.Transform = multiplyAffine(c.Transform, [6]float64{sx, 0, 0, sy, 0, 0})
	return c
}

// PixelScale returns the horizontal view-to-device scale factor. Thickness
// and size values in view units multiply by this to land in pixels.
func (c RenderContext) PixelScale() float64 {
	s := c.Transform[0]
	if s < 0 {
		return -s
	}
	return s
}

// DevicePoint maps a view-space point through the context transform.
func (c RenderContext) DevicePoint(p Point) (x, y float64) {
	return transformPoint(c.Transform, p.X, p.Y)
}

// --- Affine helpers ---

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
