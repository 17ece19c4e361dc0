package trellis

import (
	"fmt"
	"os"
	"time"
)

// drawStats holds per-frame traversal and draw metrics.
// Only populated when UI.debug is true.
type drawStats struct {
	layoutTime     time.Duration
	traverseTime   time.Duration
	widgetsDrawn   int
	widgetsSkipped int
	cropPushes     int
	cropPops       int
	maxStackDepth  int
}

// debugLog prints traversal stats to stderr.
func (ui *UI) debugLog(stats drawStats) {
	if !ui.debug {
		return
	}
	total := stats.layoutTime + stats.traverseTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] layout: %v | traverse: %v | total: %v\n",
		stats.layoutTime, stats.traverseTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] drawn: %d | skipped: %d | crop pushes: %d | pops: %d | max depth: %d\n",
		stats.widgetsDrawn, stats.widgetsSkipped, stats.cropPushes, stats.cropPops, stats.maxStackDepth)
}

// debugCheckRetired panics with a descriptive message when a retired widget
// index is used in a graph operation. Only called when the UI is in debug
// mode. In release mode callers skip this entirely.
func debugCheckRetired(g *Graph, idx WidgetIndex, op string) {
	if int(idx) >= 0 && int(idx) < len(g.nodes) && g.nodes[idx] != nil && g.nodes[idx].retired {
		panic(fmt.Sprintf("trellis debug: %s on retired widget %d", op, idx))
	}
}

// debugCheckDepthOrder warns on stderr if the depth order references widgets
// the graph does not hold, or skips widgets the graph does hold. Both are
// symptoms of a stale order after graph mutation.
func debugCheckDepthOrder(g *Graph, depthOrder []WidgetIndex) {
	seen := 0
	for _, idx := range depthOrder {
		if g.Widget(idx) == nil {
			_, _ = fmt.Fprintf(os.Stderr,
				"[trellis] warning: depth order references absent widget %d\n", idx)
			continue
		}
		seen++
	}
	if n := g.NumWidgets(); seen < n {
		_, _ = fmt.Fprintf(os.Stderr,
			"[trellis] warning: depth order visits %d of %d widgets\n", seen, n)
	}
}

// debugMaxCropDepth warns on stderr if the crop stack grows past a nesting
// level no reasonable layout reaches.
const debugMaxCropDepth = 32

func debugCheckCropDepth(depth int) {
	if depth > debugMaxCropDepth {
		_, _ = fmt.Fprintf(os.Stderr,
			"[trellis] warning: crop stack depth %d exceeds %d\n", depth, debugMaxCropDepth)
	}
}
