// Package trellis is the rendering and input-routing core of a retained-mode
// widget toolkit for [Ebitengine].
//
// Trellis provides the widget graph, depth-ordered crop-aware drawing, the
// clip compositor, per-widget event routing with mouse and keyboard capture,
// theming, text layout, and input injection that a widget toolkit needs
// under the hood.
//
// # Quick start
//
// Implement [ebiten.Game] yourself and call [UI.Update] and [UI.Draw]
// directly:
//
//	type Game struct{ ui *trellis.UI }
//
//	func (g *Game) Update() error              { g.ui.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.ui.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Widget graph
//
// Every widget is a [Container] held by the [Graph] at a stable
// [WidgetIndex]. Index 0 is always the window. Add widgets through
// [UI.AddWidget], position them with a center-origin Y-up [Rect], and give
// each a primitive [Kind] with a matching state payload:
//
//	ui := trellis.NewUI(trellis.Dimensions{W: 640, H: 480})
//
//	box := ui.AddWidget()
//	box.Rect = trellis.Rect{X: 0, Y: 0, W: 80, H: 40}
//	box.Kind = trellis.KindRectangle
//	box.State = &trellis.RectangleState{Style: trellis.Fill(nil)}
//
// Cropping parents set [Container.CropKids] and a kid area; descendants
// declared with [Graph.SetDepthParent] are clipped to it during drawing and
// hit testing.
//
// # Input
//
// Widgets pull their events each frame through [UI.WidgetInput], which
// yields only the events that concern that widget, translated into its local
// coordinates. Capture is tracked per device: a press seizes the mouse for
// the widget under the cursor, a click moves keyboard capture.
//
//	in := ui.WidgetInput(box.Index)
//	for drags := in.Drags(); ; {
//		drag, ok := drags.Next()
//		if !ok {
//			break
//		}
//		box.Rect.X += drag.To.X - drag.From.X
//		box.Rect.Y += drag.To.Y - drag.From.Y
//	}
//
// # Key features
//
// Trellis includes a fixed primitive set (rectangles, ovals, polygons,
// lines, point paths, text, images), TOML theme files, TTF text measurement
// and wrapping, tweens (via [gween]), synthetic input injection, and JSON
// test scripts for driving interactions headlessly.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package trellis
