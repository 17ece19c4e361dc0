package trellis

import "image"

// The primitive kinds are the draw-dispatch vocabulary: every drawable widget
// lowers to one of these during the application's update pass, and the draw
// traversal knows how to render exactly this set. Containers of any other
// kind are silently skipped.
const (
	// KindWindow marks the root window widget. It is never drawn itself.
	KindWindow Kind = "Window"

	KindRectangle         Kind = "Rectangle"
	KindBorderedRectangle Kind = "BorderedRectangle"
	KindOval              Kind = "Oval"
	KindPolygon           Kind = "Polygon"
	KindLine              Kind = "Line"
	KindPointPath         Kind = "PointPath"
	KindText              Kind = "Text"
	KindImage             Kind = "Image"
)

// --- Styles ---

// LineStyle describes how line segments and outlines are stroked. Nil fields
// fall back to the theme.
type LineStyle struct {
	Color     *Color
	Thickness *float64
	Pattern   *LinePattern
	Cap       *LineCap
}

// GetColor resolves the stroke color.
func (s LineStyle) GetColor(theme *Theme) Color {
	return resolveColor(s.Color, theme.ShapeColor)
}

// GetThickness resolves the stroke thickness.
func (s LineStyle) GetThickness(theme *Theme) float64 {
	return resolveScalar(s.Thickness, theme.LineThickness)
}

// GetPattern resolves the stroke pattern.
func (s LineStyle) GetPattern(theme *Theme) LinePattern {
	return resolvePattern(s.Pattern, theme.LinePattern)
}

// GetCap resolves the endpoint cap.
func (s LineStyle) GetCap(theme *Theme) LineCap {
	return resolveCap(s.Cap, theme.LineCap)
}

// ShapeStyle describes how a closed shape is rendered: filled, or outlined
// with a line style.
type ShapeStyle struct {
	Outlined bool
	Color    *Color    // fill or outline color override
	Line     LineStyle // used when Outlined
}

// Fill returns a filled shape style with an optional color override.
func Fill(color *Color) ShapeStyle {
	return ShapeStyle{Color: color}
}

// Outline returns an outlined shape style.
func Outline(line LineStyle) ShapeStyle {
	return ShapeStyle{Outlined: true, Line: line}
}

// GetColor resolves the shape color.
func (s ShapeStyle) GetColor(theme *Theme) Color {
	if s.Outlined {
		return s.Line.GetColor(theme)
	}
	return resolveColor(s.Color, theme.ShapeColor)
}

// TextStyle describes text rendering. Nil fields fall back to the theme.
type TextStyle struct {
	Color       *Color
	FontSize    *FontSize
	LineSpacing *float64
	Align       *TextAlign
}

// GetColor resolves the text color.
func (s TextStyle) GetColor(theme *Theme) Color {
	return resolveColor(s.Color, theme.LabelColor)
}

// GetFontSize resolves the font size.
func (s TextStyle) GetFontSize(theme *Theme) FontSize {
	return resolveFontSize(s.FontSize, theme.FontSizeMedium)
}

// GetLineSpacing resolves the gap between lines.
func (s TextStyle) GetLineSpacing(theme *Theme) float64 {
	return resolveScalar(s.LineSpacing, theme.LineSpacing)
}

// GetAlign resolves the horizontal alignment.
func (s TextStyle) GetAlign(theme *Theme) TextAlign {
	return resolveAlign(s.Align, TextAlignLeft)
}

// --- State payloads ---
//
// Each primitive kind stores one of these in its Container.State. The draw
// dispatch type-asserts and silently skips mismatches.

// RectangleState is the payload for KindRectangle.
type RectangleState struct {
	Style ShapeStyle
}

// BorderedRectangleState is the payload for KindBorderedRectangle: a filled
// rectangle inset within a border-colored one.
type BorderedRectangleState struct {
	Color       *Color
	Border      *float64
	BorderColor *Color
}

// GetColor resolves the inner fill color.
func (s BorderedRectangleState) GetColor(theme *Theme) Color {
	return resolveColor(s.Color, theme.ShapeColor)
}

// GetBorder resolves the border width.
func (s BorderedRectangleState) GetBorder(theme *Theme) float64 {
	return resolveScalar(s.Border, theme.BorderWidth)
}

// GetBorderColor resolves the border color.
func (s BorderedRectangleState) GetBorderColor(theme *Theme) Color {
	return resolveColor(s.BorderColor, theme.BorderColor)
}

// OvalState is the payload for KindOval. The oval fills the container's rect.
type OvalState struct {
	Style ShapeStyle
}

// PolygonState is the payload for KindPolygon. Points are absolute view-space
// positions.
type PolygonState struct {
	Points []Point
	Style  ShapeStyle
}

// LineState is the payload for KindLine: a single segment between two
// absolute view-space points.
type LineState struct {
	Start, End Point
	Style      LineStyle
}

// PointPathState is the payload for KindPointPath: an open polyline through
// absolute view-space points.
type PointPathState struct {
	Points []Point
	Style  LineStyle
}

// TextState is the payload for KindText. Line breaking happens upstream; the
// draw pass only consumes the LineInfos spans and per-line rectangles.
type TextState struct {
	String    string
	LineInfos []LineInfo
	Style     TextStyle
}

// ImageState is the payload for KindImage. The image is identified by an
// ImageMap ID; SrcRect selects texture pixels (nil = whole image) and Color
// is an optional tint.
type ImageState struct {
	ID      ImageID
	SrcRect *image.Rectangle
	Color   *Color
}
