package trellis

import "strings"

// LineInfo describes one laid-out line of a text widget: a byte span into the
// widget's string plus the line's measured width. Line breaking happens
// upstream of the draw traversal (see BreakLines); the traversal only turns
// infos into per-line rectangles.
type LineInfo struct {
	Start, End int // byte range [Start, End) into the string
	Width      float64
}

// LineRects converts line infos into per-line rectangles within rect.
// Lines stack downward from the top edge (text is always aligned to the top
// of its rect); horizontal placement follows align. Each line rect is
// fontSize tall with lineSpacing between lines.
func LineRects(infos []LineInfo, fontSize FontSize, rect Rect, align TextAlign, lineSpacing float64) []Rect {
	if len(infos) == 0 {
		return nil
	}
	h := float64(fontSize)
	rects := make([]Rect, len(infos))
	for i, info := range infos {
		top := rect.Top() - float64(i)*(h+lineSpacing)
		var x float64
		switch align {
		case TextAlignCenter:
			x = rect.X
		case TextAlignRight:
			x = rect.Right() - info.Width/2
		default:
			x = rect.Left() + info.Width/2
		}
		rects[i] = Rect{X: x, Y: top - h/2, W: info.Width, H: h}
	}
	return rects
}

// BreakLines greedily word-wraps s at wrapWidth view units, measuring with
// the given font cache, and returns the line spans with their widths.
// Explicit newlines always break; a wrapWidth of zero or less disables
// wrapping. A word wider than wrapWidth occupies a line by itself rather
// than being split mid-word.
func BreakLines(cache FontCache, s string, size FontSize, wrapWidth float64) []LineInfo {
	var infos []LineInfo

	lineStart := 0
	for lineStart <= len(s) {
		nl := strings.IndexByte(s[lineStart:], '\n')
		var hard int // index of the hard line end
		if nl < 0 {
			hard = len(s)
		} else {
			hard = lineStart + nl
		}

		segment := s[lineStart:hard]
		if wrapWidth <= 0 || cache.Advance(segment, size) <= wrapWidth {
			infos = append(infos, LineInfo{
				Start: lineStart,
				End:   hard,
				Width: cache.Advance(segment, size),
			})
		} else {
			infos = appendWrapped(infos, cache, s, lineStart, hard, size, wrapWidth)
		}

		if nl < 0 {
			break
		}
		lineStart = hard + 1
	}
	return infos
}

// appendWrapped wraps s[start:end] at wrapWidth, appending one LineInfo per
// produced line.
func appendWrapped(infos []LineInfo, cache FontCache, s string, start, end int, size FontSize, wrapWidth float64) []LineInfo {
	lineStart := start
	for lineStart < end {
		// Grow the line word by word until the next word would overflow.
		lineEnd := lineStart
		for lineEnd < end {
			next := nextWordEnd(s, lineEnd, end)
			if cache.Advance(s[lineStart:next], size) > wrapWidth && lineEnd > lineStart {
				break
			}
			lineEnd = next
		}
		infos = append(infos, LineInfo{
			Start: lineStart,
			End:   lineEnd,
			Width: cache.Advance(s[lineStart:lineEnd], size),
		})
		// Skip the space between lines.
		lineStart = lineEnd
		for lineStart < end && s[lineStart] == ' ' {
			lineStart++
		}
	}
	return infos
}

// nextWordEnd returns the index just past the word that begins at or after
// from, bounded by end.
func nextWordEnd(s string, from, end int) int {
	i := from
	for i < end && s[i] == ' ' {
		i++
	}
	for i < end && s[i] != ' ' {
		i++
	}
	return i
}
