package trellis

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRenderer draws into an ebiten image. Scissor regions are applied by
// drawing into a SubImage of the target, which shares the target's coordinate
// space, so device coordinates pass through unchanged.
type EbitenRenderer struct {
	Target *ebiten.Image
	Fonts  *TextFaceCache
	Images *ImageMap
}

// NewEbitenRenderer builds a renderer for the given target image. Fonts may
// be nil if no text widgets are drawn, and Images nil if no image widgets.
func NewEbitenRenderer(target *ebiten.Image, fonts *TextFaceCache, images *ImageMap) *EbitenRenderer {
	return &EbitenRenderer{Target: target, Fonts: fonts, Images: images}
}

// dst returns the draw target with the context's scissor applied, or nil when
// the scissor has zero area and nothing should be drawn.
func (r *EbitenRenderer) dst(ctx RenderContext) *ebiten.Image {
	if ctx.Scissor == nil {
		return r.Target
	}
	s := ctx.Scissor
	if s.W == 0 || s.H == 0 {
		return nil
	}
	clip := image.Rect(int(s.X), int(s.Y), int(s.X+s.W), int(s.Y+s.H))
	return r.Target.SubImage(clip).(*ebiten.Image)
}

// FillPolygon fills the polygon through the given view-space points.
func (r *EbitenRenderer) FillPolygon(ctx RenderContext, points []Point, color Color) {
	dst := r.dst(ctx)
	if dst == nil || len(points) < 3 {
		return
	}
	var path vector.Path
	for i, p := range points {
		dx, dy := ctx.DevicePoint(p)
		if i == 0 {
			path.MoveTo(float32(dx), float32(dy))
		} else {
			path.LineTo(float32(dx), float32(dy))
		}
	}
	path.Close()

	drawOp := &vector.DrawPathOptions{}
	drawOp.AntiAlias = true
	drawOp.ColorScale.ScaleWithColor(color.ToRGBA())
	vector.FillPath(dst, &path, nil, drawOp)
}

// Line strokes a single segment with the given thickness and cap.
func (r *EbitenRenderer) Line(ctx RenderContext, start, end Point, thickness float64, lineCap LineCap, color Color) {
	dst := r.dst(ctx)
	if dst == nil {
		return
	}
	x0, y0 := ctx.DevicePoint(start)
	x1, y1 := ctx.DevicePoint(end)

	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))

	strokeOp := &vector.StrokeOptions{}
	strokeOp.Width = float32(thickness * ctx.PixelScale())
	switch lineCap {
	case CapRound:
		strokeOp.LineCap = vector.LineCapRound
	default:
		strokeOp.LineCap = vector.LineCapButt
	}

	drawOp := &vector.DrawPathOptions{}
	drawOp.AntiAlias = true
	drawOp.ColorScale.ScaleWithColor(color.ToRGBA())
	vector.StrokePath(dst, &path, strokeOp, drawOp)
}

// FillRectangle fills an axis-aligned rectangle.
func (r *EbitenRenderer) FillRectangle(ctx RenderContext, rect Rect, color Color) {
	dst := r.dst(ctx)
	if dst == nil {
		return
	}
	x, y := ctx.DevicePoint(Point{rect.Left(), rect.Top()})
	w := rect.W * ctx.PixelScale()
	h := rect.H * ctx.PixelScale()
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), color.ToRGBA(), false)
}

// GlyphRun draws one laid-out line of text. pos is the top-left corner of the
// line's rectangle in view space.
func (r *EbitenRenderer) GlyphRun(ctx RenderContext, line string, pos Point, size FontSize, color Color) {
	dst := r.dst(ctx)
	if dst == nil || r.Fonts == nil || line == "" {
		return
	}
	face := r.Fonts.Face(size)
	if face == nil {
		return
	}
	x, y := ctx.DevicePoint(pos)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.ToRGBA())
	text.Draw(dst, line, face, op)
}

// Image draws the image with the given ID scaled into dst. src selects a
// sub-region of the source image; nil uses the whole image. tint multiplies
// the image color; nil leaves it unmodified.
func (r *EbitenRenderer) Image(ctx RenderContext, id ImageID, src *image.Rectangle, dstRect Rect, tint *Color) {
	dst := r.dst(ctx)
	if dst == nil || r.Images == nil {
		return
	}
	img := r.Images.Image(id)
	if src != nil {
		img = img.SubImage(*src).(*ebiten.Image)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	x, y := ctx.DevicePoint(Point{dstRect.Left(), dstRect.Top()})
	sx := dstRect.W * ctx.PixelScale() / float64(bounds.Dx())
	sy := dstRect.H * ctx.PixelScale() / float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint.ToRGBA())
	}
	dst.DrawImage(img, op)
}
