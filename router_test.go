package trellis

import (
	"reflect"
	"testing"
)

const (
	testWidget  WidgetIndex = 1
	otherWidget WidgetIndex = 2
)

var testRect = Rect{X: 50, Y: -30, W: 40, H: 20}

// collectEvents drains a widget's Events cursor.
func collectEvents(t *testing.T, in WidgetInput) []WidgetEvent {
	t.Helper()
	var events []WidgetEvent
	cursor := in.Events()
	for {
		event, ok := cursor.Next()
		if !ok {
			return events
		}
		events = append(events, event)
	}
}

// pressSequence pushes the canonical press-drag-release stream targeting idx.
func pressSequence(g *GlobalInput, idx WidgetIndex) {
	g.Push(WidgetCapturesMouse{Widget: idx})
	g.Push(PressEvent{Target: idx, Press: Press{Button: MouseButtonLeft, XY: Point{50, -30}}})
	g.Push(DragEvent{Target: idx, Drag: Drag{
		Button: MouseButtonLeft,
		Origin: Point{50, -30}, From: Point{50, -30}, To: Point{60, -20},
	}})
	g.Push(ReleaseEvent{Target: idx, Release: Release{Button: MouseButtonLeft, XY: Point{60, -20}}})
	g.Push(ClickEvent{Target: idx, Click: Click{Button: MouseButtonLeft, XY: Point{60, -20}}})
	g.Push(WidgetUncapturesMouse{Widget: idx})
}

// --- Event projection ---

func TestEventsProjectsOwnEvents(t *testing.T) {
	g := NewGlobalInput()
	pressSequence(g, testWidget)

	events := collectEvents(t, For(testWidget, testRect, g))
	want := []WidgetEvent{
		CapturesMouse{},
		Press{Button: MouseButtonLeft, XY: Point{0, 0}},
		Drag{Button: MouseButtonLeft, Origin: Point{0, 0}, From: Point{0, 0}, To: Point{10, 10}},
		Release{Button: MouseButtonLeft, XY: Point{10, 10}},
		Click{Button: MouseButtonLeft, XY: Point{10, 10}},
		UncapturesMouse{},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v\nwant %#v", events, want)
	}
}

func TestEventsDeliveryIgnoresMidStreamCapture(t *testing.T) {
	// Delivery of non-capture events is gated on target equality only:
	// another widget seizing the mouse earlier in the stream must not keep
	// a targeted event from reaching its widget.
	g := NewGlobalInput()
	g.Push(WidgetCapturesMouse{Widget: otherWidget})
	g.Push(PressEvent{Target: testWidget, Press: Press{Button: MouseButtonLeft, XY: Point{50, -30}}})

	events := collectEvents(t, For(testWidget, testRect, g))
	want := []WidgetEvent{
		Press{Button: MouseButtonLeft, XY: Point{0, 0}},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v\nwant %#v", events, want)
	}
}

func TestEventsIgnoresOtherWidgets(t *testing.T) {
	g := NewGlobalInput()
	pressSequence(g, testWidget)

	events := collectEvents(t, For(otherWidget, Rect{W: 10, H: 10}, g))
	if len(events) != 0 {
		t.Errorf("bystander saw %d events: %#v", len(events), events)
	}
}

func TestEventsRelativeTranslation(t *testing.T) {
	g := NewGlobalInput()
	g.Push(PressEvent{Target: testWidget, Press: Press{Button: MouseButtonRight, XY: Point{55, -25}}})

	events := collectEvents(t, For(testWidget, testRect, g))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	press := events[0].(Press)
	// Widget center (50, -30): global (55, -25) is (5, 5) relative.
	if press.XY != (Point{5, 5}) {
		t.Errorf("press.XY = %v, want {5 5}", press.XY)
	}
}

func TestEventsPassesNonPositionalUnchanged(t *testing.T) {
	g := NewGlobalInput()
	g.Push(ScrollEvent{Target: testWidget, Scroll: Scroll{X: 3, Y: -2}})
	g.Push(TextEvent{Target: testWidget, Text: Text{Str: "hi", Modifiers: ModShift}})

	events := collectEvents(t, For(testWidget, testRect, g))
	want := []WidgetEvent{
		Scroll{X: 3, Y: -2},
		Text{Str: "hi", Modifiers: ModShift},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v\nwant %#v", events, want)
	}
}

func TestWindowResizedBroadcast(t *testing.T) {
	g := NewGlobalInput()
	g.Push(WindowResized{Dimensions: Dimensions{W: 1024, H: 768}})

	for _, idx := range []WidgetIndex{testWidget, otherWidget} {
		events := collectEvents(t, For(idx, testRect, g))
		if len(events) != 1 {
			t.Fatalf("widget %d saw %d events, want 1", idx, len(events))
		}
		resized, ok := events[0].(WindowResized)
		if !ok || resized.Dimensions != (Dimensions{W: 1024, H: 768}) {
			t.Errorf("widget %d event = %#v", idx, events[0])
		}
	}
}

func TestEventsKeyboardCaptureSignals(t *testing.T) {
	g := NewGlobalInput()
	g.Push(WidgetCapturesKeyboard{Widget: testWidget})
	g.Push(TextEvent{Target: testWidget, Text: Text{Str: "a"}})
	g.Push(WidgetUncapturesKeyboard{Widget: testWidget})
	g.Push(WidgetCapturesKeyboard{Widget: otherWidget})
	g.Push(TextEvent{Target: otherWidget, Text: Text{Str: "b"}})

	events := collectEvents(t, For(testWidget, testRect, g))
	want := []WidgetEvent{
		CapturesKeyboard{},
		Text{Str: "a"},
		UncapturesKeyboard{},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v\nwant %#v", events, want)
	}
}

func TestEventsSinglePass(t *testing.T) {
	g := NewGlobalInput()
	g.Push(ClickEvent{Target: testWidget, Click: Click{Button: MouseButtonLeft}})

	in := For(testWidget, testRect, g)
	cursor := in.Events()
	if _, ok := cursor.Next(); !ok {
		t.Fatal("first Next should yield the click")
	}
	if _, ok := cursor.Next(); ok {
		t.Error("exhausted cursor should stay exhausted")
	}

	// A fresh cursor re-scans from the start of the frame.
	if _, ok := in.Events().Next(); !ok {
		t.Error("fresh cursor should see the click again")
	}
}

// --- Filtered cursors ---

func TestClicksFilter(t *testing.T) {
	g := NewGlobalInput()
	g.Push(ClickEvent{Target: testWidget, Click: Click{Button: MouseButtonLeft, XY: Point{50, -30}}})
	g.Push(ScrollEvent{Target: testWidget, Scroll: Scroll{Y: 1}})
	g.Push(ClickEvent{Target: testWidget, Click: Click{Button: MouseButtonRight, XY: Point{50, -30}}})
	g.Push(ClickEvent{Target: otherWidget, Click: Click{Button: MouseButtonLeft}})

	in := For(testWidget, testRect, g)

	var buttons []MouseButton
	clicks := in.Clicks()
	for {
		click, ok := clicks.Next()
		if !ok {
			break
		}
		buttons = append(buttons, click.Button)
	}
	if !reflect.DeepEqual(buttons, []MouseButton{MouseButtonLeft, MouseButtonRight}) {
		t.Errorf("click buttons = %v", buttons)
	}

	lefts := in.Clicks().Left()
	if click, ok := lefts.Next(); !ok || click.Button != MouseButtonLeft {
		t.Errorf("Left().Next() = %v, %v", click, ok)
	}
	if _, ok := lefts.Next(); ok {
		t.Error("only one left click expected")
	}
}

func TestDragsFilter(t *testing.T) {
	g := NewGlobalInput()
	g.Push(DragEvent{Target: testWidget, Drag: Drag{Button: MouseButtonLeft, To: Point{51, -29}}})
	g.Push(DragEvent{Target: testWidget, Drag: Drag{Button: MouseButtonRight, To: Point{52, -28}}})

	rights := For(testWidget, testRect, g).Drags().Right()
	drag, ok := rights.Next()
	if !ok || drag.Button != MouseButtonRight {
		t.Fatalf("Right().Next() = %v, %v", drag, ok)
	}
	if drag.To != (Point{2, 2}) {
		t.Errorf("drag.To = %v, want {2 2}", drag.To)
	}
}

func TestTextsAndScrollsFilters(t *testing.T) {
	g := NewGlobalInput()
	g.Push(TextEvent{Target: testWidget, Text: Text{Str: "x"}})
	g.Push(ScrollEvent{Target: testWidget, Scroll: Scroll{Y: -4}})

	texts := For(testWidget, testRect, g).Texts()
	if text, ok := texts.Next(); !ok || text.Str != "x" {
		t.Errorf("Texts().Next() = %v, %v", text, ok)
	}

	scrolls := For(testWidget, testRect, g).Scrolls()
	if scroll, ok := scrolls.Next(); !ok || scroll.Y != -4 {
		t.Errorf("Scrolls().Next() = %v, %v", scroll, ok)
	}
}

// --- Mouse gating ---

func TestMouseRequiresStartOfFrameCapture(t *testing.T) {
	g := NewGlobalInput()
	g.Push(WidgetCapturesMouse{Widget: testWidget})
	g.Push(MoveEvent{Target: testWidget, Move: Move{XY: Point{55, -25}}})

	// Capture was taken mid-frame: not visible to Mouse yet.
	if _, ok := For(testWidget, testRect, g).Mouse(); ok {
		t.Error("Mouse should be absent before the capture reaches frame start")
	}

	g.NewFrame()
	mouse, ok := For(testWidget, testRect, g).Mouse()
	if !ok {
		t.Fatal("Mouse should be available once capture is in the start snapshot")
	}
	if mouse.AbsXY() != (Point{55, -25}) {
		t.Errorf("AbsXY = %v, want {55 -25}", mouse.AbsXY())
	}
	if mouse.RelXY() != (Point{5, 5}) {
		t.Errorf("RelXY = %v, want {5 5}", mouse.RelXY())
	}
	if !mouse.IsOver() {
		t.Error("mouse at {55 -25} is over the widget rect")
	}

	if _, ok := For(otherWidget, testRect, g).Mouse(); ok {
		t.Error("non-capturing widget must not see the mouse")
	}
}

func TestZeroWidgetInputYieldsNothing(t *testing.T) {
	var in WidgetInput

	if _, ok := in.Events().Next(); ok {
		t.Error("zero WidgetInput must yield no events")
	}
	if _, ok := in.Clicks().Next(); ok {
		t.Error("zero WidgetInput must yield no clicks")
	}
	if _, ok := in.Drags().Next(); ok {
		t.Error("zero WidgetInput must yield no drags")
	}
	if _, ok := in.Texts().Next(); ok {
		t.Error("zero WidgetInput must yield no texts")
	}
	if _, ok := in.Scrolls().Next(); ok {
		t.Error("zero WidgetInput must yield no scrolls")
	}
	if _, ok := in.Mouse(); ok {
		t.Error("zero WidgetInput must not expose the mouse")
	}
}

func TestAbsentWidgetInputYieldsNothing(t *testing.T) {
	ui := NewUI(Dimensions{W: 200, H: 200})
	w := ui.AddWidget()
	idx := w.Index
	ui.Remove(idx)

	in := ui.WidgetInput(idx)
	if _, ok := in.Events().Next(); ok {
		t.Error("removed widget must yield no events")
	}
	if _, ok := in.Mouse(); ok {
		t.Error("removed widget must not expose the mouse")
	}
}
