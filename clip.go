package trellis

// cropContext crops the given context to the given view-space rectangle,
// producing a context whose scissor is the device-space image of rect
// intersected with any scissor already active.
//
// The conversion distinguishes the virtual view size from the actual device
// draw size: the rectangle's top-left corner is remapped per axis from view
// space (center origin, Y up) to device space (top-left origin, Y down), and
// the dimensions are scaled by the device/view ratio. A corner that maps to
// negative coordinates is clamped to zero with the dimensions reduced by the
// clamped amount; dimensions never go negative.
func cropContext(ctx RenderContext, rect Rect) RenderContext {
	view := ctx.ViewSize
	draw := ctx.DrawSize()

	// Distances to the window edges from the center.
	left := -view.W / 2
	right := view.W / 2
	bottom := -view.H / 2
	top := view.H / 2

	// The rect's center to its top-left corner.
	leftX := rect.X - rect.W/2
	topY := rect.Y + rect.H/2

	// Map the top-left corner into device pixels. Device Y runs downward, so
	// the view top maps to device 0.
	x := int64(mapRange(leftX, left, right, 0, draw.W))
	y := int64(mapRange(topY, top, bottom, 0, draw.H))

	// Scale the dimensions by the device/view size ratio.
	w := rect.W
	h := rect.H
	if view.W != 0 {
		w *= draw.W / view.W
	}
	if view.H != 0 {
		h *= draw.H / view.H
	}

	// Clamp a negative corner to zero and compensate the dimensions so the
	// region never wraps. A fully negative region collapses to zero size.
	var xNeg, yNeg int64
	if x < 0 {
		xNeg = x
		x = 0
	}
	if y < 0 {
		yNeg = y
		y = 0
	}
	wi := int64(w) + xNeg
	hi := int64(h) + yNeg
	if wi < 0 {
		wi = 0
	}
	if hi < 0 {
		hi = 0
	}

	scissor := Scissor{X: uint32(x), Y: uint32(y), W: uint32(wi), H: uint32(hi)}
	if prev := ctx.Scissor; prev != nil {
		scissor = intersectScissor(scissor, *prev)
	}
	ctx.Scissor = &scissor
	return ctx
}

// intersectScissor returns the intersection of two device scissors. Disjoint
// scissors yield a zero-size result positioned at a's corner, which hides
// everything drawn under it.
func intersectScissor(a, b Scissor) Scissor {
	if a.X+a.W < b.X || b.X+b.W < a.X || a.Y+a.H < b.Y || b.Y+b.H < a.Y {
		return Scissor{X: a.X, Y: a.Y}
	}
	l := maxUint32(a.X, b.X)
	r := minUint32(a.X+a.W, b.X+b.W)
	t := maxUint32(a.Y, b.Y)
	bo := minUint32(a.Y+a.H, b.Y+b.H)
	return Scissor{X: l, Y: t, W: r - l, H: bo - t}
}

func minUint32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
