package trellis

// ButtonState is the state of a single mouse button: whether it is down, and
// the global position at which it was last pressed.
type ButtonState struct {
	Down bool
	XY   Point // position of the most recent press
}

// ButtonMap holds the state of every mouse button.
type ButtonMap [numMouseButtons]ButtonState

// Button returns the state of the given button.
func (m *ButtonMap) Button(b MouseButton) ButtonState {
	return m[b]
}

// Left returns the state of the left button.
func (m *ButtonMap) Left() ButtonState { return m[MouseButtonLeft] }

// Middle returns the state of the middle button.
func (m *ButtonMap) Middle() ButtonState { return m[MouseButtonMiddle] }

// Right returns the state of the right button.
func (m *ButtonMap) Right() ButtonState { return m[MouseButtonRight] }

// MouseState is the global pointer state.
type MouseState struct {
	XY      Point // absolute position in view space
	Buttons ButtonMap
}

// InputState is a snapshot of device and capture state at a point in the
// event stream. Exactly zero or one widget holds each capture at a time.
type InputState struct {
	Mouse             MouseState
	CapturingMouse    WidgetIndex // NoWidget when free
	CapturingKeyboard WidgetIndex // NoWidget when free
	WindowDim         Dimensions
}

// newInputState returns an InputState with both captures free.
func newInputState() InputState {
	return InputState{CapturingMouse: NoWidget, CapturingKeyboard: NoWidget}
}

// GlobalInput owns the frame's captured event stream plus the running and
// start-of-frame state snapshots. The capture layer pushes events as it
// observes the devices; widgets read the stream through per-widget routers
// (see WidgetInput). The stream is immutable for the duration of routing:
// replaying it always yields the same capture transitions.
type GlobalInput struct {
	events []UIEvent

	// Start is the state as it was when the current frame began.
	Start InputState

	// Current tracks every pushed event, so it reflects the stream's end.
	Current InputState
}

// NewGlobalInput creates an empty global input buffer.
func NewGlobalInput() *GlobalInput {
	return &GlobalInput{
		Start:   newInputState(),
		Current: newInputState(),
	}
}

// Push appends an event to the stream and folds it into the Current snapshot.
func (g *GlobalInput) Push(e UIEvent) {
	switch ev := e.(type) {
	case WidgetCapturesMouse:
		g.Current.CapturingMouse = ev.Widget
	case WidgetUncapturesMouse:
		if g.Current.CapturingMouse == ev.Widget {
			g.Current.CapturingMouse = NoWidget
		}
	case WidgetCapturesKeyboard:
		g.Current.CapturingKeyboard = ev.Widget
	case WidgetUncapturesKeyboard:
		if g.Current.CapturingKeyboard == ev.Widget {
			g.Current.CapturingKeyboard = NoWidget
		}
	case WindowResized:
		g.Current.WindowDim = ev.Dimensions
	case MoveEvent:
		g.Current.Mouse.XY = ev.Move.XY
	case PressEvent:
		g.Current.Mouse.Buttons[ev.Press.Button] = ButtonState{Down: true, XY: ev.Press.XY}
		g.Current.Mouse.XY = ev.Press.XY
	case ReleaseEvent:
		g.Current.Mouse.Buttons[ev.Release.Button].Down = false
		g.Current.Mouse.XY = ev.Release.XY
	case DragEvent:
		g.Current.Mouse.XY = ev.Drag.To
	}
	g.events = append(g.events, e)
}

// NewFrame discards the stream and promotes Current to the new frame-start
// snapshot. Called once per frame, before the capture layer runs.
func (g *GlobalInput) NewFrame() {
	g.events = g.events[:0]
	g.Start = g.Current
}

// EventCount returns the number of events captured so far this frame.
func (g *GlobalInput) EventCount() int {
	return len(g.events)
}

// eventAt returns the i'th event of the frame. Cursors use this for their
// single forward pass.
func (g *GlobalInput) eventAt(i int) UIEvent {
	return g.events[i]
}
