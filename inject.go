package trellis

// Injection queues synthetic device frames that take the place of real input
// on subsequent Update calls, one frame per call. Coordinates are view-space,
// identical to what widgets observe, and the frames run through the same
// capture state machine as real mouse input.

// InjectPress queues a pointer press at the given view coordinates
// (left button). The frame is consumed on the next Update.
func (ui *UI) InjectPress(x, y float64) {
	frame := ui.syntheticFrame(x, y)
	frame.Buttons[MouseButtonLeft] = true
	ui.injectQueue = append(ui.injectQueue, frame)
}

// InjectMove queues a pointer move at the given view coordinates with the
// left button held down. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (ui *UI) InjectMove(x, y float64) {
	frame := ui.syntheticFrame(x, y)
	frame.Buttons[MouseButtonLeft] = true
	ui.injectQueue = append(ui.injectQueue, frame)
}

// InjectRelease queues a pointer release at the given view coordinates.
func (ui *UI) InjectRelease(x, y float64) {
	ui.injectQueue = append(ui.injectQueue, ui.syntheticFrame(x, y))
}

// InjectClick is a convenience that queues a press followed by a release at
// the same view coordinates. Consumes two frames.
func (ui *UI) InjectClick(x, y float64) {
	ui.InjectPress(x, y)
	ui.InjectRelease(x, y)
}

// InjectScroll queues a scroll-wheel frame at the current cursor position.
func (ui *UI) InjectScroll(x, y float64) {
	frame := ui.syntheticFrame(ui.capture.cursor.X, ui.capture.cursor.Y)
	frame.WheelX = x
	frame.WheelY = y
	ui.injectQueue = append(ui.injectQueue, frame)
}

// InjectText queues a text-entry frame.
func (ui *UI) InjectText(s string) {
	frame := ui.syntheticFrame(ui.capture.cursor.X, ui.capture.cursor.Y)
	frame.Text = s
	ui.injectQueue = append(ui.injectQueue, frame)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames. Minimum is 2
// (press + release).
func (ui *UI) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	ui.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		ui.InjectMove(x, y)
	}
	ui.InjectRelease(toX, toY)
}

// syntheticFrame builds a quiet device frame at the given cursor position.
func (ui *UI) syntheticFrame(x, y float64) DeviceFrame {
	return DeviceFrame{
		Cursor:    Point{x, y},
		WindowDim: ui.ViewSize,
	}
}

// popInjected pops one frame from the inject queue. Returns false when the
// queue is empty and real device input should be read instead.
func (ui *UI) popInjected() (DeviceFrame, bool) {
	if len(ui.injectQueue) == 0 {
		return DeviceFrame{}, false
	}
	frame := ui.injectQueue[0]
	copy(ui.injectQueue, ui.injectQueue[1:])
	ui.injectQueue = ui.injectQueue[:len(ui.injectQueue)-1]
	return frame, true
}
