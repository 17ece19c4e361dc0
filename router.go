package trellis

// WidgetInput provides only the events and input state relevant to a single
// widget. It is a cheap view over the frame's GlobalInput: construct one per
// widget per frame with For.
//
// All positional event payloads are made relative to the center of the
// widget's rectangle.
type WidgetInput struct {
	global *GlobalInput
	rect   Rect
	idx    WidgetIndex
}

// For returns a WidgetInput filtering the global stream for the widget at idx
// whose rectangle is rect.
func For(idx WidgetIndex, rect Rect, global *GlobalInput) WidgetInput {
	return WidgetInput{global: global, rect: rect, idx: idx}
}

// --- Mouse snapshot ---

// WidgetMouse is a per-widget view of the mouse, only obtainable while the
// widget holds mouse capture.
type WidgetMouse struct {
	rect  Rect
	absXY Point

	// Buttons is the state of each mouse button.
	Buttons ButtonMap
}

// AbsXY returns the absolute position of the mouse within the window.
func (m WidgetMouse) AbsXY() Point {
	return m.absXY
}

// RelXY returns the mouse position relative to the center of the widget's
// rectangle.
func (m WidgetMouse) RelXY() Point {
	return m.absXY.Sub(m.rect.XY())
}

// IsOver reports whether the mouse is currently over the widget's rectangle.
func (m WidgetMouse) IsOver() bool {
	return m.rect.IsOver(m.absXY)
}

// Mouse returns the state of the mouse if the widget held mouse capture when
// the frame began. ok is false — absence, not an error — when it did not.
func (w WidgetInput) Mouse() (mouse WidgetMouse, ok bool) {
	if w.global == nil || w.global.Start.CapturingMouse != w.idx {
		return WidgetMouse{}, false
	}
	return WidgetMouse{
		rect:    w.rect,
		absXY:   w.global.Current.Mouse.XY,
		Buttons: w.global.Current.Mouse.Buttons,
	}, true
}

// --- Event cursors ---

// Events returns a cursor yielding every event relevant to the widget, in
// stream order. The cursor is lazy, forward-only, and single-pass: call Next
// until ok is false. Constructing a fresh cursor re-scans from the start of
// the frame's captured stream.
func (w WidgetInput) Events() *Events {
	if w.global == nil {
		return &Events{}
	}
	return &Events{
		global:            w.global,
		capturingMouse:    w.global.Start.CapturingMouse,
		capturingKeyboard: w.global.Start.CapturingKeyboard,
		rect:              w.rect,
		idx:               w.idx,
	}
}

// Clicks returns a cursor yielding only the widget's Click events.
func (w WidgetInput) Clicks() *Clicks {
	return &Clicks{events: w.Events()}
}

// Drags returns a cursor yielding only the widget's Drag events.
func (w WidgetInput) Drags() *Drags {
	return &Drags{events: w.Events()}
}

// Texts returns a cursor yielding only the widget's Text events.
func (w WidgetInput) Texts() *Texts {
	return &Texts{events: w.Events()}
}

// Scrolls returns a cursor yielding only the widget's Scroll events.
func (w WidgetInput) Scrolls() *Scrolls {
	return &Scrolls{events: w.Events()}
}

// Events is a single-pass cursor over the widget's projection of the global
// stream.
//
// The capture-tracking fields are seeded from the start-of-frame snapshot and
// updated as capture events are scanned so that any state-dependent decision
// sees correct values mid-stream. Delivery of non-capture events is gated on
// target-index equality only, never on these fields.
type Events struct {
	global            *GlobalInput
	cursor            int
	capturingMouse    WidgetIndex
	capturingKeyboard WidgetIndex
	rect              Rect
	idx               WidgetIndex
}

// Next returns the next relevant widget event. ok is false once the frame's
// stream is exhausted.
func (e *Events) Next() (event WidgetEvent, ok bool) {
	if e.global == nil {
		return nil, false
	}
	for e.cursor < e.global.EventCount() {
		ev := e.global.eventAt(e.cursor)
		e.cursor++

		switch ev := ev.(type) {

		// Mouse capturing.
		case WidgetCapturesMouse:
			e.capturingMouse = ev.Widget
			if ev.Widget == e.idx {
				return CapturesMouse{}, true
			}
		case WidgetUncapturesMouse:
			if e.capturingMouse == ev.Widget {
				e.capturingMouse = NoWidget
			}
			if ev.Widget == e.idx {
				return UncapturesMouse{}, true
			}

		// Keyboard capturing.
		case WidgetCapturesKeyboard:
			e.capturingKeyboard = ev.Widget
			if ev.Widget == e.idx {
				return CapturesKeyboard{}, true
			}
		case WidgetUncapturesKeyboard:
			if e.capturingKeyboard == ev.Widget {
				e.capturingKeyboard = NoWidget
			}
			if ev.Widget == e.idx {
				return UncapturesKeyboard{}, true
			}

		case WindowResized:
			return ev, true

		case TextEvent:
			if ev.Target == e.idx {
				return ev.Text, true
			}
		case MoveEvent:
			if ev.Target == e.idx {
				return ev.Move, true
			}
		case PressEvent:
			if ev.Target == e.idx {
				return ev.Press.RelativeTo(e.rect.XY()), true
			}
		case ReleaseEvent:
			if ev.Target == e.idx {
				return ev.Release.RelativeTo(e.rect.XY()), true
			}
		case ClickEvent:
			if ev.Target == e.idx {
				return ev.Click.RelativeTo(e.rect.XY()), true
			}
		case DoubleClickEvent:
			if ev.Target == e.idx {
				return ev.DoubleClick.RelativeTo(e.rect.XY()), true
			}
		case DragEvent:
			if ev.Target == e.idx {
				return ev.Drag.RelativeTo(e.rect.XY()), true
			}
		case ScrollEvent:
			if ev.Target == e.idx {
				return ev.Scroll, true
			}
		}
	}
	return nil, false
}

// Clicks yields all Click events from an Events cursor.
type Clicks struct {
	events *Events
}

// Next returns the next click.
func (c *Clicks) Next() (click Click, ok bool) {
	for {
		event, ok := c.events.Next()
		if !ok {
			return Click{}, false
		}
		if click, ok := event.(Click); ok {
			return click, true
		}
	}
}

// Button restricts the cursor to clicks of the given button.
func (c *Clicks) Button(button MouseButton) *ButtonClicks {
	return &ButtonClicks{clicks: c, button: button}
}

// Left restricts the cursor to left-button clicks.
func (c *Clicks) Left() *ButtonClicks { return c.Button(MouseButtonLeft) }

// Middle restricts the cursor to middle-button clicks.
func (c *Clicks) Middle() *ButtonClicks { return c.Button(MouseButtonMiddle) }

// Right restricts the cursor to right-button clicks.
func (c *Clicks) Right() *ButtonClicks { return c.Button(MouseButtonRight) }

// ButtonClicks yields the clicks of a single button.
type ButtonClicks struct {
	clicks *Clicks
	button MouseButton
}

// Next returns the next click of the cursor's button.
func (c *ButtonClicks) Next() (click Click, ok bool) {
	for {
		click, ok := c.clicks.Next()
		if !ok {
			return Click{}, false
		}
		if click.Button == c.button {
			return click, true
		}
	}
}

// Drags yields all Drag events from an Events cursor.
type Drags struct {
	events *Events
}

// Next returns the next drag.
func (d *Drags) Next() (drag Drag, ok bool) {
	for {
		event, ok := d.events.Next()
		if !ok {
			return Drag{}, false
		}
		if drag, ok := event.(Drag); ok {
			return drag, true
		}
	}
}

// Button restricts the cursor to drags of the given button.
func (d *Drags) Button(button MouseButton) *ButtonDrags {
	return &ButtonDrags{drags: d, button: button}
}

// Left restricts the cursor to left-button drags.
func (d *Drags) Left() *ButtonDrags { return d.Button(MouseButtonLeft) }

// Middle restricts the cursor to middle-button drags.
func (d *Drags) Middle() *ButtonDrags { return d.Button(MouseButtonMiddle) }

// Right restricts the cursor to right-button drags.
func (d *Drags) Right() *ButtonDrags { return d.Button(MouseButtonRight) }

// ButtonDrags yields the drags of a single button.
type ButtonDrags struct {
	drags  *Drags
	button MouseButton
}

// Next returns the next drag of the cursor's button.
func (d *ButtonDrags) Next() (drag Drag, ok bool) {
	for {
		drag, ok := d.drags.Next()
		if !ok {
			return Drag{}, false
		}
		if drag.Button == d.button {
			return drag, true
		}
	}
}

// Texts yields all Text events from an Events cursor.
type Texts struct {
	events *Events
}

// Next returns the next text event.
func (t *Texts) Next() (text Text, ok bool) {
	for {
		event, ok := t.events.Next()
		if !ok {
			return Text{}, false
		}
		if text, ok := event.(Text); ok {
			return text, true
		}
	}
}

// Scrolls yields all Scroll events from an Events cursor.
type Scrolls struct {
	events *Events
}

// Next returns the next scroll event.
func (s *Scrolls) Next() (scroll Scroll, ok bool) {
	for {
		event, ok := s.events.Next()
		if !ok {
			return Scroll{}, false
		}
		if scroll, ok := event.(Scroll); ok {
			return scroll, true
		}
	}
}
