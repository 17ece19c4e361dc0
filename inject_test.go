package trellis

import "testing"

// pumpFrame advances the UI one frame using only injected input, mirroring
// Update without touching the real devices.
func pumpFrame(ui *UI) {
	ui.global.NewFrame()
	if ui.testRunner != nil {
		ui.testRunner.step(ui)
	}
	if frame, ok := ui.popInjected(); ok {
		ui.ProcessFrame(frame)
	}
}

func newTestUI(t *testing.T) (*UI, WidgetIndex) {
	t.Helper()
	ui := NewUI(Dimensions{W: 200, H: 200})
	button := ui.AddWidget()
	button.Rect = Rect{X: 0, Y: 0, W: 100, H: 100}
	button.Kind = KindRectangle
	button.State = &RectangleState{Style: Fill(nil)}
	return ui, button.Index
}

// --- Click injection ---

func TestInjectClickReachesWidget(t *testing.T) {
	ui, button := newTestUI(t)

	ui.InjectClick(0, 0)
	pumpFrame(ui) // press
	pumpFrame(ui) // release

	clicks := ui.WidgetInput(button).Clicks()
	click, ok := clicks.Next()
	if !ok {
		t.Fatal("expected a click on the widget")
	}
	if click.Button != MouseButtonLeft {
		t.Errorf("click button = %d, want left", click.Button)
	}
	if click.XY != (Point{0, 0}) {
		t.Errorf("click XY = %v, want widget center", click.XY)
	}
	if _, ok := clicks.Next(); ok {
		t.Error("only one click expected")
	}
}

func TestInjectClickMissesOtherWidgets(t *testing.T) {
	ui, _ := newTestUI(t)
	aside := ui.AddWidget()
	aside.Rect = Rect{X: 80, Y: 80, W: 20, H: 20}

	ui.InjectClick(0, 0)
	pumpFrame(ui)
	pumpFrame(ui)

	if _, ok := ui.WidgetInput(aside.Index).Clicks().Next(); ok {
		t.Error("widget away from the click must not see it")
	}
}

// --- Drag injection ---

func TestInjectDragProducesDrags(t *testing.T) {
	ui, button := newTestUI(t)

	ui.InjectDrag(0, 0, 40, 0, 4)
	if len(ui.injectQueue) != 4 {
		t.Fatalf("queue length = %d, want 4", len(ui.injectQueue))
	}

	var drags []Drag
	for i := 0; i < 4; i++ {
		pumpFrame(ui)
		cursor := ui.WidgetInput(button).Drags()
		for {
			drag, ok := cursor.Next()
			if !ok {
				break
			}
			drags = append(drags, drag)
		}
	}

	if len(drags) != 2 {
		t.Fatalf("got %d drags, want 2", len(drags))
	}
	if drags[0].Origin != (Point{0, 0}) {
		t.Errorf("drag origin = %v, want {0 0}", drags[0].Origin)
	}
	// The last drag ends at the final interpolated move position.
	last := drags[len(drags)-1]
	if last.To.X <= drags[0].To.X {
		t.Errorf("drag positions should advance: %v then %v", drags[0].To, last.To)
	}

	// No click from a drag.
	if _, ok := ui.WidgetInput(button).Clicks().Next(); ok {
		t.Error("drag must not produce a click")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.InjectDrag(0, 0, 10, 0, 0)
	if len(ui.injectQueue) != 2 {
		t.Errorf("queue length = %d, want press + release", len(ui.injectQueue))
	}
}

// --- Scroll and text injection ---

func TestInjectScroll(t *testing.T) {
	ui, button := newTestUI(t)

	// Park the cursor over the widget first so the scroll targets it.
	ui.InjectRelease(0, 0)
	pumpFrame(ui)

	ui.InjectScroll(0, -3)
	pumpFrame(ui)

	scroll, ok := ui.WidgetInput(button).Scrolls().Next()
	if !ok {
		t.Fatal("expected a scroll event")
	}
	if scroll.Y != -3 {
		t.Errorf("scroll.Y = %v, want -3", scroll.Y)
	}
}

func TestInjectText(t *testing.T) {
	ui, button := newTestUI(t)

	// Click to give the widget keyboard capture, then type.
	ui.InjectClick(0, 0)
	pumpFrame(ui)
	pumpFrame(ui)

	ui.InjectText("hey")
	pumpFrame(ui)

	text, ok := ui.WidgetInput(button).Texts().Next()
	if !ok {
		t.Fatal("expected a text event")
	}
	if text.Str != "hey" {
		t.Errorf("text = %q, want %q", text.Str, "hey")
	}
}
