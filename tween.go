package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields tied to a widget simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenColor) and call Update(dt) each frame. The group writes the values
// directly into the widget's container. If the target widget is removed from
// the graph, the group stops immediately.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	graph  *Graph
	target WidgetIndex
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target widget has been removed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.graph != nil && g.graph.Widget(g.target) == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates a widget's rect center to
// the given view-space coordinates over the specified duration using the
// easing function. Returns nil if the widget is absent.
func TweenPosition(graph *Graph, idx WidgetIndex, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	container := graph.Widget(idx)
	if container == nil {
		return nil
	}
	g := &TweenGroup{count: 2, graph: graph, target: idx}
	g.tweens[0] = gween.New(float32(container.Rect.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(container.Rect.Y), float32(toY), duration, fn)
	g.fields[0] = &container.Rect.X
	g.fields[1] = &container.Rect.Y
	return g
}

// TweenSize creates a TweenGroup that animates a widget's rect dimensions to
// the given values over the specified duration using the easing function.
// Returns nil if the widget is absent.
func TweenSize(graph *Graph, idx WidgetIndex, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	container := graph.Widget(idx)
	if container == nil {
		return nil
	}
	g := &TweenGroup{count: 2, graph: graph, target: idx}
	g.tweens[0] = gween.New(float32(container.Rect.W), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(container.Rect.H), float32(toH), duration, fn)
	g.fields[0] = &container.Rect.W
	g.fields[1] = &container.Rect.H
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// given color to the target color over the specified duration. The color is
// typically one owned by a widget's style; tying the group to the widget
// stops the animation when the widget is removed.
func TweenColor(graph *Graph, idx WidgetIndex, color *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	if graph.Widget(idx) == nil {
		return nil
	}
	g := &TweenGroup{count: 4, graph: graph, target: idx}
	g.tweens[0] = gween.New(float32(color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(color.A), float32(to.A), duration, fn)
	g.fields[0] = &color.R
	g.fields[1] = &color.G
	g.fields[2] = &color.B
	g.fields[3] = &color.A
	return g
}
