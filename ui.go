package trellis

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// UI is the top-level object that owns the widget graph, the depth order,
// the theme, and the input state. It wires the capture layer, the routing
// layer, and the draw traversal into an ebiten game loop: call Update from
// the game's Update and Draw from the game's Draw.
//
// Index 0 always holds the window widget, whose rect spans the whole view.
type UI struct {
	graph *Graph
	theme *Theme
	debug bool

	// Depth order is painter order: back to front. Widgets enter at the top
	// as they are added; RaiseToTop reorders explicitly.
	depthOrder []WidgetIndex

	global  *GlobalInput
	capture *Capture

	// ViewSize is the virtual window size all widget rects are laid out
	// against. Viewport, when set, is the actual device pixel size.
	ViewSize Dimensions
	Viewport *Viewport

	// Fonts and Images back text and image widgets. Nil is fine when the
	// graph holds none.
	Fonts  *TextFaceCache
	Images *ImageMap

	injectQueue []DeviceFrame
	testRunner  *TestRunner
}

// NewUI creates a UI with the window widget pre-created at index 0.
func NewUI(viewSize Dimensions) *UI {
	graph := NewGraph()
	windowRect := Rect{W: viewSize.W, H: viewSize.H}
	window := graph.AddWidget(Container{
		Rect:    windowRect,
		KidArea: windowRect,
		Kind:    KindWindow,
	})

	global := NewGlobalInput()
	return &UI{
		graph:      graph,
		theme:      DefaultTheme(),
		depthOrder: []WidgetIndex{window},
		global:     global,
		capture:    NewCapture(global),
		ViewSize:   viewSize,
	}
}

// Graph returns the widget graph.
func (ui *UI) Graph() *Graph {
	return ui.graph
}

// Theme returns the active theme.
func (ui *UI) Theme() *Theme {
	return ui.theme
}

// SetTheme replaces the active theme.
func (ui *UI) SetTheme(theme Theme) {
	*ui.theme = theme
}

// Global returns the frame's global input buffer.
func (ui *UI) Global() *GlobalInput {
	return ui.global
}

// AddWidget allocates a widget, appends it to the top of the depth order,
// and returns its container for configuration.
func (ui *UI) AddWidget() *Container {
	idx := ui.graph.AddWidget(Container{})
	ui.depthOrder = append(ui.depthOrder, idx)
	return ui.graph.Widget(idx)
}

// Remove retires a widget and drops it from the depth order.
func (ui *UI) Remove(idx WidgetIndex) {
	if ui.debug {
		debugCheckRetired(ui.graph, idx, "Remove")
	}
	ui.graph.Remove(idx)
	for i, other := range ui.depthOrder {
		if other == idx {
			ui.depthOrder = append(ui.depthOrder[:i], ui.depthOrder[i+1:]...)
			break
		}
	}
}

// RaiseToTop moves a widget to the front of the depth order. Descendant
// ordering relative to crop ancestors must be restored by the caller when
// raising a cropping parent past its children.
func (ui *UI) RaiseToTop(idx WidgetIndex) {
	for i, other := range ui.depthOrder {
		if other == idx {
			ui.depthOrder = append(ui.depthOrder[:i], ui.depthOrder[i+1:]...)
			ui.depthOrder = append(ui.depthOrder, idx)
			return
		}
	}
}

// DepthOrder returns the painter-order widget list. The returned slice MUST
// NOT be mutated.
func (ui *UI) DepthOrder() []WidgetIndex {
	return ui.depthOrder
}

// SetViewSize changes the virtual window size. The window widget's rect
// follows, and the capture layer emits a WindowResized on the next Update.
func (ui *UI) SetViewSize(viewSize Dimensions) {
	ui.ViewSize = viewSize
	if window := ui.graph.Widget(0); window != nil {
		window.Rect = Rect{W: viewSize.W, H: viewSize.H}
		window.KidArea = window.Rect
	}
}

// WidgetInput returns the per-widget event router for idx, reading this
// frame's global stream. The zero router of an absent widget yields nothing.
func (ui *UI) WidgetInput(idx WidgetIndex) WidgetInput {
	container := ui.graph.Widget(idx)
	if container == nil {
		return WidgetInput{}
	}
	return For(idx, container.Rect, ui.global)
}

// Update begins a new input frame and feeds one device snapshot through the
// capture layer. Injected frames take priority over the real devices.
func (ui *UI) Update() {
	ui.global.NewFrame()

	if ui.testRunner != nil {
		ui.testRunner.step(ui)
	}

	frame, injected := ui.popInjected()
	if !injected {
		frame = ReadDeviceFrame(ui.ViewSize, ui.Viewport)
	}
	ui.ProcessFrame(frame)
}

// ProcessFrame folds one device snapshot into the event stream without
// touching the real devices. Headless tests drive the UI through this.
func (ui *UI) ProcessFrame(frame DeviceFrame) {
	if ui.debug {
		debugCheckDepthOrder(ui.graph, ui.depthOrder)
	}
	ui.capture.Process(frame, ui.graph, ui.depthOrder)
}

// Draw renders the widget graph onto the screen.
func (ui *UI) Draw(screen *ebiten.Image) {
	renderer := NewEbitenRenderer(screen, ui.Fonts, ui.Images)
	ui.DrawWith(renderer)
}

// DrawWith renders the widget graph through an arbitrary renderer.
func (ui *UI) DrawWith(renderer Renderer) {
	ctx := NewRenderContext(ui.ViewSize, ui.Viewport)

	if !ui.debug {
		drawGraph(ctx, renderer, ui.graph, ui.depthOrder, ui.theme, nil)
		return
	}

	var stats drawStats
	t0 := time.Now()
	drawGraph(ctx, renderer, ui.graph, ui.depthOrder, ui.theme, &stats)
	stats.traverseTime = time.Since(t0)
	debugCheckCropDepth(stats.maxStackDepth)
	ui.debugLog(stats)
}

// SetDebugMode enables or disables debug mode. When enabled, retired-widget
// access panics, stale depth orders are reported, and per-frame traversal
// stats are logged to stderr.
func (ui *UI) SetDebugMode(enabled bool) {
	ui.debug = enabled
}
