package trellis

// View space is the resolution-independent coordinate system all widget
// rectangles live in: origin at the center of the window, X increasing to the
// right, Y increasing upward. Device space (pixels, top-left origin, Y down)
// only appears at the clip/scissor boundary and inside renderers.

// Point is a position in view space.
type Point struct {
	X, Y float64
}

// Sub returns p - other, component-wise.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Add returns p + other, component-wise.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Dimensions is a width/height pair in view space.
type Dimensions struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in view space, stored as its center point
// plus dimensions. Center storage makes the widget-relative coordinate
// translation used by the event router a single subtraction.
type Rect struct {
	X, Y float64 // center
	W, H float64
}

// RectFromCorners builds a Rect from the bottom-left and top-right corners.
func RectFromCorners(bottomLeft, topRight Point) Rect {
	return Rect{
		X: (bottomLeft.X + topRight.X) / 2,
		Y: (bottomLeft.Y + topRight.Y) / 2,
		W: topRight.X - bottomLeft.X,
		H: topRight.Y - bottomLeft.Y,
	}
}

// XY returns the center point.
func (r Rect) XY() Point {
	return Point{r.X, r.Y}
}

// Dim returns the rectangle's dimensions.
func (r Rect) Dim() Dimensions {
	return Dimensions{r.W, r.H}
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Bottom returns the minimum Y edge.
func (r Rect) Bottom() float64 { return r.Y - r.H/2 }

// Top returns the maximum Y edge.
func (r Rect) Top() float64 { return r.Y + r.H/2 }

// BottomLeft returns the minimum corner.
func (r Rect) BottomLeft() Point { return Point{r.Left(), r.Bottom()} }

// TopRight returns the maximum corner.
func (r Rect) TopRight() Point { return Point{r.Right(), r.Top()} }

// IsOver reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) IsOver(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Overlap returns the intersection of r and other. ok is false when the
// rectangles do not overlap; sharing only an edge counts as no overlap
// (the intersection would be zero-area).
func (r Rect) Overlap(other Rect) (overlap Rect, ok bool) {
	l := maxFloat(r.Left(), other.Left())
	rt := minFloat(r.Right(), other.Right())
	b := maxFloat(r.Bottom(), other.Bottom())
	t := minFloat(r.Top(), other.Top())
	if l >= rt || b >= t {
		return Rect{}, false
	}
	return RectFromCorners(Point{l, b}, Point{rt, t}), true
}

// Pad shrinks the rectangle by the given amount on every side. A pad larger
// than half the width or height collapses that axis to zero.
func (r Rect) Pad(amount float64) Rect {
	w := r.W - amount*2
	h := r.H - amount*2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X, Y: r.Y, W: w, H: h}
}

// ShiftTo returns a copy of r centered at (x, y).
func (r Rect) ShiftTo(x, y float64) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// mapRange linearly remaps val from [inMin, inMax] to [outMin, outMax].
// Values outside the input range extrapolate.
func mapRange(val, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (outMax-outMin)*((val-inMin)/(inMax-inMin))
}

// clampFloat limits val to [lo, hi].
func clampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
