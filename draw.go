package trellis

import "math"

// cropEntry is one level of the active clip stack: the crop-owning widget and
// the context cropped to its content area.
type cropEntry struct {
	owner WidgetIndex
	ctx   RenderContext
}

// DrawGraph draws every visible widget of the graph in depth order (painter's
// algorithm, back to front) with the correct clip context applied.
//
// The depth order must be a valid topological ordering of the depth edges: a
// cropping parent always precedes the descendants it crops. The crop stack
// then stays bounded by the nesting depth of active crop ancestors — an entry
// is popped as soon as the current widget is not a descendant of its owner.
//
// An absent root window (index 0) makes the whole call a silent no-op.
func DrawGraph(ctx RenderContext, r Renderer, g *Graph, depthOrder []WidgetIndex, theme *Theme) {
	drawGraph(ctx, r, g, depthOrder, theme, nil)
}

func drawGraph(ctx RenderContext, r Renderer, g *Graph, depthOrder []WidgetIndex, theme *Theme, stats *drawStats) {
	// Without the window widget there are no widgets at all.
	window := g.Widget(0)
	if window == nil {
		return
	}

	var cropStack []cropEntry

	for _, idx := range depthOrder {
		container := g.Widget(idx)
		if container == nil {
			continue
		}

		// Pop every context whose owner is no longer an ancestor of the
		// current widget.
		for len(cropStack) > 0 {
			top := cropStack[len(cropStack)-1]
			if g.RecursiveDepthEdgeExists(top.owner, idx) {
				break
			}
			cropStack = cropStack[:len(cropStack)-1]
			if stats != nil {
				stats.cropPops++
			}
		}

		active := ctx
		if len(cropStack) > 0 {
			active = cropStack[len(cropStack)-1].ctx
		}

		if isVisible(g, idx, container, window) {
			drawContainer(active, r, container, theme)
			if stats != nil {
				stats.widgetsDrawn++
			}
		} else if stats != nil {
			stats.widgetsSkipped++
		}

		// A cropping widget pushes a context clipped to its content area for
		// its descendants.
		if container.CropKids {
			cropStack = append(cropStack, cropEntry{
				owner: idx,
				ctx:   cropContext(active, container.KidArea),
			})
			if stats != nil {
				stats.cropPushes++
				if len(cropStack) > stats.maxStackDepth {
					stats.maxStackDepth = len(cropStack)
				}
			}
		}
	}
}

// isVisible reports whether the widget would appear on the window: its rect
// must overlap the window's, and the crop-aware visible-area query must be
// non-empty (this catches ancestor crops the stack check alone cannot, such
// as a widget hanging outside a non-cropping ancestor's on-screen bounds).
func isVisible(g *Graph, idx WidgetIndex, container, window *Container) bool {
	if _, ok := container.Rect.Overlap(window.Rect); !ok {
		return false
	}
	_, ok := g.CroppedArea(idx)
	return ok
}

// --- Per-kind dispatch ---

// ovalResolution is the number of segments an oval is tessellated into.
const ovalResolution = 50

// drawContainer renders a single widget with the active context. Unknown
// kinds and mismatched state payloads are silently skipped.
func drawContainer(ctx RenderContext, r Renderer, container *Container, theme *Theme) {
	switch container.Kind {

	case KindRectangle:
		state, ok := container.State.(*RectangleState)
		if !ok {
			return
		}
		if state.Style.Outlined {
			drawLines(ctx, r, theme, rectCorners(container.Rect, true), state.Style.Line)
		} else {
			r.FillRectangle(ctx, container.Rect, state.Style.GetColor(theme))
		}

	case KindBorderedRectangle:
		state, ok := container.State.(*BorderedRectangleState)
		if !ok {
			return
		}
		border := state.GetBorder(theme)
		if border > 0 {
			r.FillRectangle(ctx, container.Rect, state.GetBorderColor(theme))
		}
		r.FillRectangle(ctx, container.Rect.Pad(border), state.GetColor(theme))

	case KindOval:
		state, ok := container.State.(*OvalState)
		if !ok {
			return
		}
		points := ovalPoints(container.Rect)
		if state.Style.Outlined {
			drawLines(ctx, r, theme, points, state.Style.Line)
		} else {
			r.FillPolygon(ctx, points[:ovalResolution], state.Style.GetColor(theme))
		}

	case KindPolygon:
		state, ok := container.State.(*PolygonState)
		if !ok || len(state.Points) == 0 {
			return
		}
		if state.Style.Outlined {
			closed := append(append([]Point{}, state.Points...), state.Points[0])
			drawLines(ctx, r, theme, closed, state.Style.Line)
		} else {
			r.FillPolygon(ctx, state.Points, state.Style.GetColor(theme))
		}

	case KindLine:
		state, ok := container.State.(*LineState)
		if !ok {
			return
		}
		drawLines(ctx, r, theme, []Point{state.Start, state.End}, state.Style)

	case KindPointPath:
		state, ok := container.State.(*PointPathState)
		if !ok {
			return
		}
		drawLines(ctx, r, theme, state.Points, state.Style)

	case KindText:
		state, ok := container.State.(*TextState)
		if !ok {
			return
		}
		drawText(ctx, r, container.Rect, state, theme)

	case KindImage:
		state, ok := container.State.(*ImageState)
		if !ok {
			return
		}
		r.Image(ctx, state.ID, state.SrcRect, container.Rect, state.Color)
	}
}

// drawText draws each laid-out line at its line rectangle.
func drawText(ctx RenderContext, r Renderer, rect Rect, state *TextState, theme *Theme) {
	fontSize := state.Style.GetFontSize(theme)
	color := state.Style.GetColor(theme)
	align := state.Style.GetAlign(theme)
	spacing := state.Style.GetLineSpacing(theme)

	rects := LineRects(state.LineInfos, fontSize, rect, align, spacing)
	for i, info := range state.LineInfos {
		line := state.String[info.Start:info.End]
		lineRect := rects[i]
		pos := Point{lineRect.Left(), lineRect.Top()}
		r.GlyphRun(ctx, line, pos, fontSize, color)
	}
}

// drawLines strokes consecutive segments through the given points.
// Dashed and dotted patterns are unfinished feature support: drawing with
// them is a hard stop, unlike the silent no-ops elsewhere in the traversal.
func drawLines(ctx RenderContext, r Renderer, theme *Theme, points []Point, style LineStyle) {
	if len(points) < 2 {
		return
	}
	switch style.GetPattern(theme) {
	case PatternSolid:
		color := style.GetColor(theme)
		thickness := style.GetThickness(theme)
		lineCap := style.GetCap(theme)
		start := points[0]
		for _, end := range points[1:] {
			r.Line(ctx, start, end, thickness, lineCap, color)
			start = end
		}
	default:
		panic("trellis: dashed and dotted line patterns are not implemented")
	}
}

// rectCorners returns the corners of a rect in drawing order; closed repeats
// the first corner so drawLines strokes all four edges.
func rectCorners(rect Rect, closed bool) []Point {
	l, rt, b, t := rect.Left(), rect.Right(), rect.Bottom(), rect.Top()
	points := []Point{{l, b}, {l, t}, {rt, t}, {rt, b}}
	if closed {
		points = append(points, Point{l, b})
	}
	return points
}

// ovalPoints tessellates the oval inscribed in rect. The final point repeats
// the first so the slice can stroke a closed outline; fills use the first
// ovalResolution entries.
func ovalPoints(rect Rect) []Point {
	points := make([]Point, ovalResolution+1)
	t := 2 * math.Pi / ovalResolution
	hw := rect.W / 2
	hh := rect.H / 2
	for i := range points {
		points[i] = Point{
			X: rect.X + hw*math.Cos(t*float64(i)),
			Y: rect.Y + hh*math.Sin(t*float64(i)),
		}
	}
	return points
}
