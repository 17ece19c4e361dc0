package trellis

import (
	"testing"
	"time"
)

// captureFixture is a window with a single 40x40 button centered at (50, 0).
type captureFixture struct {
	global  *GlobalInput
	capture *Capture
	graph   *Graph
	order   []WidgetIndex
	window  WidgetIndex
	button  WidgetIndex
}

func newCaptureFixture(t *testing.T) *captureFixture {
	t.Helper()
	g := NewGraph()
	window := g.AddWidget(Container{Rect: Rect{W: 200, H: 200}, Kind: KindWindow})
	button := g.AddWidget(Container{Rect: Rect{X: 50, Y: 0, W: 40, H: 40}})

	global := NewGlobalInput()
	capture := NewCapture(global)
	f := &captureFixture{
		global:  global,
		capture: capture,
		graph:   g,
		order:   []WidgetIndex{window, button},
		window:  window,
		button:  button,
	}
	// Establish the window dimension without recording a resize in the
	// frames under test.
	f.frame(DeviceFrame{WindowDim: Dimensions{W: 200, H: 200}})
	global.NewFrame()
	return f
}

func (f *captureFixture) frame(frame DeviceFrame) {
	if frame.WindowDim == (Dimensions{}) {
		frame.WindowDim = Dimensions{W: 200, H: 200}
	}
	f.capture.Process(frame, f.graph, f.order)
}

func eventTypes(g *GlobalInput) []string {
	var types []string
	for i := 0; i < g.EventCount(); i++ {
		switch g.eventAt(i).(type) {
		case WidgetCapturesMouse:
			types = append(types, "captures-mouse")
		case WidgetUncapturesMouse:
			types = append(types, "uncaptures-mouse")
		case WidgetCapturesKeyboard:
			types = append(types, "captures-keyboard")
		case WidgetUncapturesKeyboard:
			types = append(types, "uncaptures-keyboard")
		case WindowResized:
			types = append(types, "resized")
		case PressEvent:
			types = append(types, "press")
		case ReleaseEvent:
			types = append(types, "release")
		case ClickEvent:
			types = append(types, "click")
		case DoubleClickEvent:
			types = append(types, "double-click")
		case DragEvent:
			types = append(types, "drag")
		case MoveEvent:
			types = append(types, "move")
		case ScrollEvent:
			types = append(types, "scroll")
		case TextEvent:
			types = append(types, "text")
		}
	}
	return types
}

func assertEventTypes(t *testing.T, g *GlobalInput, want ...string) {
	t.Helper()
	got := eventTypes(g)
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

// --- Press / release / capture ---

func TestCapturePressSeizesMouse(t *testing.T) {
	f := newCaptureFixture(t)

	press := DeviceFrame{Cursor: Point{50, 0}}
	press.Buttons[MouseButtonLeft] = true
	f.frame(press)

	assertEventTypes(t, f.global, "move", "captures-mouse", "press")
	if f.global.Current.CapturingMouse != f.button {
		t.Errorf("CapturingMouse = %d, want %d", f.global.Current.CapturingMouse, f.button)
	}
}

func TestCaptureClickSequence(t *testing.T) {
	f := newCaptureFixture(t)

	press := DeviceFrame{Cursor: Point{50, 0}}
	press.Buttons[MouseButtonLeft] = true
	f.frame(press)
	f.frame(DeviceFrame{Cursor: Point{50, 0}})

	assertEventTypes(t, f.global,
		"move", "captures-mouse", "press",
		"release", "click", "captures-keyboard", "uncaptures-mouse")
	if f.global.Current.CapturingMouse != NoWidget {
		t.Error("mouse capture should be free after release")
	}
	if f.global.Current.CapturingKeyboard != f.button {
		t.Error("clicked widget should hold keyboard capture")
	}
}

func TestCaptureDoubleClick(t *testing.T) {
	f := newCaptureFixture(t)
	clock := time.Unix(0, 0)
	f.capture.now = func() time.Time { return clock }

	click := func() {
		press := DeviceFrame{Cursor: Point{50, 0}}
		press.Buttons[MouseButtonLeft] = true
		f.frame(press)
		f.frame(DeviceFrame{Cursor: Point{50, 0}})
	}

	click()
	clock = clock.Add(100 * time.Millisecond)
	click()

	types := eventTypes(f.global)
	found := false
	for _, typ := range types {
		if typ == "double-click" {
			found = true
		}
	}
	if !found {
		t.Errorf("no double-click in %v", types)
	}

	// A third click right after a double click starts a fresh pair.
	before := len(eventTypes(f.global))
	clock = clock.Add(100 * time.Millisecond)
	click()
	for _, typ := range eventTypes(f.global)[before:] {
		if typ == "double-click" {
			t.Error("double click must not chain into triples")
		}
	}
}

func TestCaptureDoubleClickWindowExpires(t *testing.T) {
	f := newCaptureFixture(t)
	clock := time.Unix(0, 0)
	f.capture.now = func() time.Time { return clock }

	click := func() {
		press := DeviceFrame{Cursor: Point{50, 0}}
		press.Buttons[MouseButtonLeft] = true
		f.frame(press)
		f.frame(DeviceFrame{Cursor: Point{50, 0}})
	}

	click()
	clock = clock.Add(2 * time.Second)
	click()

	for _, typ := range eventTypes(f.global) {
		if typ == "double-click" {
			t.Error("clicks far apart in time must not double")
		}
	}
}

// --- Dragging ---

func TestCaptureDragPastDeadZone(t *testing.T) {
	f := newCaptureFixture(t)

	press := DeviceFrame{Cursor: Point{50, 0}}
	press.Buttons[MouseButtonLeft] = true
	f.frame(press)

	// One unit of travel: inside the dead zone, no drag yet.
	small := DeviceFrame{Cursor: Point{51, 0}}
	small.Buttons[MouseButtonLeft] = true
	f.frame(small)
	assertEventTypes(t, f.global, "move", "captures-mouse", "press", "move")

	// Past the dead zone the held motion becomes drags.
	far := DeviceFrame{Cursor: Point{60, 0}}
	far.Buttons[MouseButtonLeft] = true
	f.frame(far)
	f.frame(DeviceFrame{Cursor: Point{60, 0}})

	assertEventTypes(t, f.global,
		"move", "captures-mouse", "press", "move",
		"move", "drag", "release", "uncaptures-mouse")

	// A drag suppresses the click.
	for _, typ := range eventTypes(f.global) {
		if typ == "click" {
			t.Error("a drag must not also click")
		}
	}
}

func TestCaptureDragCarriesEndpoints(t *testing.T) {
	f := newCaptureFixture(t)

	press := DeviceFrame{Cursor: Point{50, 0}}
	press.Buttons[MouseButtonLeft] = true
	f.frame(press)

	far := DeviceFrame{Cursor: Point{60, 10}}
	far.Buttons[MouseButtonLeft] = true
	f.frame(far)

	var drag Drag
	found := false
	for i := 0; i < f.global.EventCount(); i++ {
		if ev, ok := f.global.eventAt(i).(DragEvent); ok {
			drag = ev.Drag
			found = true
			if ev.Target != f.button {
				t.Errorf("drag target = %d, want %d", ev.Target, f.button)
			}
		}
	}
	if !found {
		t.Fatal("no drag event")
	}
	if drag.Origin != (Point{50, 0}) || drag.From != (Point{50, 0}) || drag.To != (Point{60, 10}) {
		t.Errorf("drag = %+v", drag)
	}
}

// --- Motion, scroll, text ---

func TestCaptureMotionTargetsHover(t *testing.T) {
	f := newCaptureFixture(t)

	f.frame(DeviceFrame{Cursor: Point{50, 0}})
	if f.global.EventCount() != 1 {
		t.Fatalf("EventCount = %d, want 1", f.global.EventCount())
	}
	move, ok := f.global.eventAt(0).(MoveEvent)
	if !ok || move.Target != f.button {
		t.Errorf("event = %#v, want move targeting the button", f.global.eventAt(0))
	}
	if move.Move.Delta != (Point{50, 0}) {
		t.Errorf("delta = %v, want {50 0}", move.Move.Delta)
	}
}

func TestCaptureScrollTargetsHover(t *testing.T) {
	f := newCaptureFixture(t)

	f.frame(DeviceFrame{Cursor: Point{50, 0}, WheelY: 2})
	// Move plus scroll, both at the button.
	assertEventTypes(t, f.global, "move", "scroll")
	scroll := f.global.eventAt(1).(ScrollEvent)
	if scroll.Target != f.button || scroll.Scroll.Y != 2 {
		t.Errorf("scroll = %#v", scroll)
	}
}

func TestCaptureTextTargetsKeyboardCapturer(t *testing.T) {
	f := newCaptureFixture(t)

	// Without a capturer the text is recorded but targets nothing.
	f.frame(DeviceFrame{Text: "a"})
	text := f.global.eventAt(0).(TextEvent)
	if text.Target != NoWidget {
		t.Errorf("uncaptured text target = %d, want NoWidget", text.Target)
	}

	// Click the button to give it keyboard capture, then type.
	press := DeviceFrame{Cursor: Point{50, 0}}
	press.Buttons[MouseButtonLeft] = true
	f.frame(press)
	f.frame(DeviceFrame{Cursor: Point{50, 0}})
	f.global.NewFrame()

	f.frame(DeviceFrame{Cursor: Point{50, 0}, Text: "b"})
	got := f.global.eventAt(0).(TextEvent)
	if got.Target != f.button || got.Text.Str != "b" {
		t.Errorf("text = %#v, want %q at the button", got, "b")
	}
}

// --- Resize ---

func TestCaptureWindowResize(t *testing.T) {
	f := newCaptureFixture(t)

	f.frame(DeviceFrame{WindowDim: Dimensions{W: 320, H: 240}})
	assertEventTypes(t, f.global, "resized")

	// Unchanged dimensions stay quiet.
	f.global.NewFrame()
	f.frame(DeviceFrame{WindowDim: Dimensions{W: 320, H: 240}})
	if f.global.EventCount() != 0 {
		t.Errorf("EventCount = %d, want 0", f.global.EventCount())
	}
}

// --- Hit testing ---

func TestPickWidgetTopmostWins(t *testing.T) {
	g := NewGraph()
	window := g.AddWidget(Container{Rect: Rect{W: 200, H: 200}})
	under := g.AddWidget(Container{Rect: Rect{X: 0, Y: 0, W: 100, H: 100}})
	over := g.AddWidget(Container{Rect: Rect{X: 20, Y: 20, W: 40, H: 40}})
	order := []WidgetIndex{window, under, over}

	tests := []struct {
		name string
		p    Point
		want WidgetIndex
	}{
		{"topmost", Point{20, 20}, over},
		{"underneath only", Point{-40, -40}, under},
		{"window", Point{90, 90}, window},
		{"outside", Point{500, 0}, NoWidget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickWidget(g, order, tt.p); got != tt.want {
				t.Errorf("pickWidget(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestPickWidgetHonorsCrop(t *testing.T) {
	g := NewGraph()
	window := g.AddWidget(Container{Rect: Rect{W: 200, H: 200}})
	panel := g.AddWidget(Container{
		Rect: Rect{W: 60, H: 60}, KidArea: Rect{W: 60, H: 60}, CropKids: true,
	})
	child := g.AddWidget(Container{Rect: Rect{X: 40, Y: 0, W: 40, H: 40}})
	g.SetDepthParent(window, panel)
	g.SetDepthParent(panel, child)
	order := []WidgetIndex{window, panel, child}

	// Inside the child and inside the panel's kid area.
	if got := pickWidget(g, order, Point{25, 0}); got != child {
		t.Errorf("pick inside crop = %d, want %d", got, child)
	}
	// Inside the child's rect but cropped away by the panel.
	if got := pickWidget(g, order, Point{45, 0}); got != window {
		t.Errorf("pick in cropped region = %d, want window %d", got, window)
	}
}
