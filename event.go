package trellis

// Global events are the chronological input stream one frame captures: a
// tagged union of capture notifications, window resizes, and widget-targeted
// device events carrying payloads in global (view-space) coordinates.
//
// Widget events are the per-widget projection the router produces: capture
// notifications become bare transition signals, and positional payloads are
// translated relative to the target widget's rectangle center.

// UIEvent is one entry of the global event stream.
type UIEvent interface {
	isUIEvent()
}

// WidgetEvent is one entry of a per-widget event sequence.
type WidgetEvent interface {
	isWidgetEvent()
}

// --- Capture notifications (global stream only) ---

// WidgetCapturesMouse records the widget at Widget taking mouse capture.
type WidgetCapturesMouse struct {
	Widget WidgetIndex
}

// WidgetUncapturesMouse records the widget at Widget releasing mouse capture.
type WidgetUncapturesMouse struct {
	Widget WidgetIndex
}

// WidgetCapturesKeyboard records the widget at Widget taking keyboard capture.
type WidgetCapturesKeyboard struct {
	Widget WidgetIndex
}

// WidgetUncapturesKeyboard records the widget at Widget releasing keyboard
// capture.
type WidgetUncapturesKeyboard struct {
	Widget WidgetIndex
}

func (WidgetCapturesMouse) isUIEvent()      {}
func (WidgetUncapturesMouse) isUIEvent()    {}
func (WidgetCapturesKeyboard) isUIEvent()   {}
func (WidgetUncapturesKeyboard) isUIEvent() {}

// --- Capture transition signals (widget projection) ---

// CapturesMouse signals that the observed widget took mouse capture.
type CapturesMouse struct{}

// UncapturesMouse signals that the observed widget released mouse capture.
type UncapturesMouse struct{}

// CapturesKeyboard signals that the observed widget took keyboard capture.
type CapturesKeyboard struct{}

// UncapturesKeyboard signals that the observed widget released keyboard
// capture.
type UncapturesKeyboard struct{}

func (CapturesMouse) isWidgetEvent()      {}
func (UncapturesMouse) isWidgetEvent()    {}
func (CapturesKeyboard) isWidgetEvent()   {}
func (UncapturesKeyboard) isWidgetEvent() {}

// --- Window resize (broadcast) ---

// WindowResized records a change of the window's view dimensions. It is
// delivered identically to every widget regardless of capture state.
type WindowResized struct {
	Dimensions Dimensions
}

func (WindowResized) isUIEvent()     {}
func (WindowResized) isWidgetEvent() {}

// --- Targeted global events ---

// TextEvent is text input targeted at a widget.
type TextEvent struct {
	Target WidgetIndex // NoWidget when nothing holds keyboard capture
	Text   Text
}

// MoveEvent is pointer motion targeted at a widget. The payload's relativity
// is whatever the producing layer assigned; the router passes it through
// unmodified.
type MoveEvent struct {
	Target WidgetIndex
	Move   Move
}

// PressEvent is a button press targeted at a widget.
type PressEvent struct {
	Target WidgetIndex
	Press  Press
}

// ReleaseEvent is a button release targeted at a widget.
type ReleaseEvent struct {
	Target  WidgetIndex
	Release Release
}

// ClickEvent is a synthesized click (press and release over the same widget)
// targeted at that widget. The router only projects clicks; it never infers
// them from press/release pairs.
type ClickEvent struct {
	Target WidgetIndex
	Click  Click
}

// DoubleClickEvent is a synthesized double click targeted at a widget.
type DoubleClickEvent struct {
	Target      WidgetIndex
	DoubleClick DoubleClick
}

// DragEvent is a pointer drag targeted at the widget the drag started over.
type DragEvent struct {
	Target WidgetIndex
	Drag   Drag
}

// ScrollEvent is scroll-wheel motion targeted at a widget.
type ScrollEvent struct {
	Target WidgetIndex
	Scroll Scroll
}

func (TextEvent) isUIEvent()        {}
func (MoveEvent) isUIEvent()        {}
func (PressEvent) isUIEvent()       {}
func (ReleaseEvent) isUIEvent()     {}
func (ClickEvent) isUIEvent()       {}
func (DoubleClickEvent) isUIEvent() {}
func (DragEvent) isUIEvent()        {}
func (ScrollEvent) isUIEvent()      {}

// --- Payloads ---
//
// Payload structs double as the widget-event variants: the router re-emits
// them directly (positionally translated where applicable).

// Text carries entered text.
type Text struct {
	Str       string
	Modifiers KeyModifiers
}

// Move carries pointer motion.
type Move struct {
	XY        Point
	Delta     Point
	Modifiers KeyModifiers
}

// Press carries a button press at a position.
type Press struct {
	Button    MouseButton
	XY        Point
	Modifiers KeyModifiers
}

// Release carries a button release at a position.
type Release struct {
	Button    MouseButton
	XY        Point
	Modifiers KeyModifiers
}

// Click carries a synthesized click at a position.
type Click struct {
	Button    MouseButton
	XY        Point
	Modifiers KeyModifiers
}

// DoubleClick carries a synthesized double click at a position.
type DoubleClick struct {
	Button    MouseButton
	XY        Point
	Modifiers KeyModifiers
}

// Drag carries one step of a pointer drag: where the drag started, the
// previous position, and the current position.
type Drag struct {
	Button    MouseButton
	Origin    Point
	From      Point
	To        Point
	Modifiers KeyModifiers
}

// Scroll carries scroll-wheel motion. X and Y are scroll amounts, not
// positions, so the router passes them through untranslated.
type Scroll struct {
	X, Y      float64
	Modifiers KeyModifiers
}

func (Text) isWidgetEvent()        {}
func (Move) isWidgetEvent()        {}
func (Press) isWidgetEvent()       {}
func (Release) isWidgetEvent()     {}
func (Click) isWidgetEvent()       {}
func (DoubleClick) isWidgetEvent() {}
func (Drag) isWidgetEvent()        {}
func (Scroll) isWidgetEvent()      {}

// --- Widget-relative translation ---

// RelativeTo returns the press with its position translated so that p is the
// origin.
func (e Press) RelativeTo(p Point) Press {
	e.XY = e.XY.Sub(p)
	return e
}

// RelativeTo returns the release with its position translated so that p is
// the origin.
func (e Release) RelativeTo(p Point) Release {
	e.XY = e.XY.Sub(p)
	return e
}

// RelativeTo returns the click with its position translated so that p is the
// origin.
func (e Click) RelativeTo(p Point) Click {
	e.XY = e.XY.Sub(p)
	return e
}

// RelativeTo returns the double click with its position translated so that p
// is the origin.
func (e DoubleClick) RelativeTo(p Point) DoubleClick {
	e.XY = e.XY.Sub(p)
	return e
}

// RelativeTo returns the drag with all three endpoints translated so that p
// is the origin.
func (e Drag) RelativeTo(p Point) Drag {
	e.Origin = e.Origin.Sub(p)
	e.From = e.From.Sub(p)
	e.To = e.To.Sub(p)
	return e
}
