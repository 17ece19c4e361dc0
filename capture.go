package trellis

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	defaultDragDeadZone   = 4.0 // view units
	defaultDoubleClickGap = 500 * time.Millisecond
)

// DeviceFrame is a raw snapshot of the input devices for one frame, in view
// coordinates. The capture state machine consumes these; tests feed them
// directly, the real game loop reads them from ebiten.
type DeviceFrame struct {
	Cursor    Point
	Buttons   [numMouseButtons]bool
	WheelX    float64
	WheelY    float64
	Text      string
	Modifiers KeyModifiers
	WindowDim Dimensions
}

// --- Per-button state ---

type buttonPress struct {
	down     bool
	startXY  Point
	target   WidgetIndex
	dragging bool
}

type clickMemory struct {
	button MouseButton
	target WidgetIndex
	at     time.Time
	valid  bool
}

// Capture translates device snapshots into the global event stream: press and
// release edges, click and double-click synthesis, drags past the dead zone,
// pointer motion, scrolls, text, and window resizes. It also drives the
// capture transitions: a press seizes mouse capture for the widget under the
// cursor and the matching release frees it, and a click moves keyboard
// capture to the clicked widget (or frees it when empty space is clicked).
type Capture struct {
	global *GlobalInput

	cursor    Point
	buttons   [numMouseButtons]buttonPress
	lastClick clickMemory
	windowDim Dimensions

	// DragDeadZone is the minimum cursor travel in view units before a held
	// button becomes a drag.
	DragDeadZone float64

	// DoubleClickGap is the longest pause between two clicks on the same
	// widget with the same button that still counts as a double click.
	DoubleClickGap time.Duration

	now func() time.Time
}

// NewCapture creates a capture layer feeding the given global input buffer.
func NewCapture(global *GlobalInput) *Capture {
	return &Capture{
		global:         global,
		DragDeadZone:   defaultDragDeadZone,
		DoubleClickGap: defaultDoubleClickGap,
		now:            time.Now,
	}
}

// Process folds one device snapshot into the event stream. The graph and
// depth order locate the widget under the cursor; topmost wins.
func (c *Capture) Process(frame DeviceFrame, g *Graph, depthOrder []WidgetIndex) {
	if frame.WindowDim != c.windowDim {
		c.windowDim = frame.WindowDim
		c.global.Push(WindowResized{Dimensions: frame.WindowDim})
	}

	picked := pickWidget(g, depthOrder, frame.Cursor)

	c.processMotion(frame, picked)
	for b := MouseButton(0); b < numMouseButtons; b++ {
		c.processButton(b, frame, picked)
	}
	c.processScroll(frame, picked)
	c.processText(frame)

	c.cursor = frame.Cursor
}

// mouseTarget returns the widget positional events go to: the mouse capturer
// when one exists, otherwise the widget under the cursor.
func (c *Capture) mouseTarget(picked WidgetIndex) WidgetIndex {
	if cap := c.global.Current.CapturingMouse; cap != NoWidget {
		return cap
	}
	return picked
}

func (c *Capture) processMotion(frame DeviceFrame, picked WidgetIndex) {
	if frame.Cursor == c.cursor {
		return
	}
	c.global.Push(MoveEvent{
		Target: c.mouseTarget(picked),
		Move: Move{
			XY:        frame.Cursor,
			Delta:     frame.Cursor.Sub(c.cursor),
			Modifiers: frame.Modifiers,
		},
	})
}

// processButton runs the press/drag/release state machine for one button.
func (c *Capture) processButton(b MouseButton, frame DeviceFrame, picked WidgetIndex) {
	bp := &c.buttons[b]
	pressed := frame.Buttons[b]

	switch {
	case pressed && !bp.down:
		// Press edge. The widget under the cursor seizes mouse capture for
		// the duration of the press.
		target := c.mouseTarget(picked)
		bp.down = true
		bp.startXY = frame.Cursor
		bp.target = target
		bp.dragging = false

		if c.global.Current.CapturingMouse == NoWidget && target != NoWidget {
			c.global.Push(WidgetCapturesMouse{Widget: target})
		}
		c.global.Push(PressEvent{
			Target: target,
			Press:  Press{Button: b, XY: frame.Cursor, Modifiers: frame.Modifiers},
		})

	case !pressed && bp.down:
		// Release edge.
		c.global.Push(ReleaseEvent{
			Target:  bp.target,
			Release: Release{Button: b, XY: frame.Cursor, Modifiers: frame.Modifiers},
		})

		if !bp.dragging && picked == bp.target {
			c.synthesizeClick(b, bp.target, frame)
		}

		if c.global.Current.CapturingMouse == bp.target && bp.target != NoWidget {
			c.global.Push(WidgetUncapturesMouse{Widget: bp.target})
		}
		bp.down = false
		bp.dragging = false

	case pressed && bp.down:
		// Held. Past the dead zone every cursor change is a drag step.
		if frame.Cursor == c.cursor {
			return
		}
		if !bp.dragging {
			d := frame.Cursor.Sub(bp.startXY)
			if math.Sqrt(d.X*d.X+d.Y*d.Y) > c.DragDeadZone {
				bp.dragging = true
			}
		}
		if bp.dragging {
			c.global.Push(DragEvent{
				Target: bp.target,
				Drag: Drag{
					Button:    b,
					Origin:    bp.startXY,
					From:      c.cursor,
					To:        frame.Cursor,
					Modifiers: frame.Modifiers,
				},
			})
		}
	}
}

// synthesizeClick pushes a click, upgrades it with a double click when the
// previous click was close enough, and hands keyboard capture to the clicked
// widget.
func (c *Capture) synthesizeClick(b MouseButton, target WidgetIndex, frame DeviceFrame) {
	c.global.Push(ClickEvent{
		Target: target,
		Click:  Click{Button: b, XY: frame.Cursor, Modifiers: frame.Modifiers},
	})

	now := c.now()
	if c.lastClick.valid &&
		c.lastClick.button == b &&
		c.lastClick.target == target &&
		now.Sub(c.lastClick.at) <= c.DoubleClickGap {
		c.global.Push(DoubleClickEvent{
			Target:      target,
			DoubleClick: DoubleClick{Button: b, XY: frame.Cursor, Modifiers: frame.Modifiers},
		})
		c.lastClick = clickMemory{}
	} else {
		c.lastClick = clickMemory{button: b, target: target, at: now, valid: true}
	}

	// Keyboard capture follows clicks.
	if prev := c.global.Current.CapturingKeyboard; prev != target {
		if prev != NoWidget {
			c.global.Push(WidgetUncapturesKeyboard{Widget: prev})
		}
		if target != NoWidget {
			c.global.Push(WidgetCapturesKeyboard{Widget: target})
		}
	}
}

func (c *Capture) processScroll(frame DeviceFrame, picked WidgetIndex) {
	if frame.WheelX == 0 && frame.WheelY == 0 {
		return
	}
	c.global.Push(ScrollEvent{
		Target: c.mouseTarget(picked),
		Scroll: Scroll{X: frame.WheelX, Y: frame.WheelY, Modifiers: frame.Modifiers},
	})
}

func (c *Capture) processText(frame DeviceFrame) {
	if frame.Text == "" {
		return
	}
	c.global.Push(TextEvent{
		Target: c.global.Current.CapturingKeyboard,
		Text:   Text{Str: frame.Text, Modifiers: frame.Modifiers},
	})
}

// --- Hit testing ---

// pickWidget finds the topmost widget whose visible (crop-aware) area is
// under the point. Depth order is painter order, so the scan runs backward.
func pickWidget(g *Graph, depthOrder []WidgetIndex, p Point) WidgetIndex {
	for i := len(depthOrder) - 1; i >= 0; i-- {
		idx := depthOrder[i]
		if g.Widget(idx) == nil {
			continue
		}
		visible, ok := g.CroppedArea(idx)
		if !ok {
			continue
		}
		if visible.IsOver(p) {
			return idx
		}
	}
	return NoWidget
}

// --- Ebiten device readers ---

var inputCharBuf []rune

// ReadDeviceFrame snapshots ebiten's input devices in view coordinates. The
// cursor is mapped from the device target (top-left origin, Y down) back into
// view space using the same sizes the render context uses.
func ReadDeviceFrame(viewSize Dimensions, viewport *Viewport) DeviceFrame {
	draw := drawSize(viewSize, viewport)
	mx, my := ebiten.CursorPosition()

	sx := 1.0
	sy := 1.0
	if draw.W != 0 {
		sx = viewSize.W / draw.W
	}
	if draw.H != 0 {
		sy = viewSize.H / draw.H
	}

	wx, wy := ebiten.Wheel()
	inputCharBuf = ebiten.AppendInputChars(inputCharBuf[:0])

	frame := DeviceFrame{
		Cursor: Point{
			X: (float64(mx) - draw.W/2) * sx,
			Y: (draw.H/2 - float64(my)) * sy,
		},
		WheelX:    wx,
		WheelY:    wy,
		Text:      string(inputCharBuf),
		Modifiers: readModifiers(),
		WindowDim: viewSize,
	}
	frame.Buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.Buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	frame.Buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return frame
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
