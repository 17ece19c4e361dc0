package trellis

// WidgetIndex is the stable identity of a widget instance. Indices are unique
// per live widget and stable across frames for as long as the widget persists.
// Index 0 is reserved for the root window widget.
type WidgetIndex int

// NoWidget is the absent-widget sentinel used wherever a WidgetIndex is
// optional (capture state, event targets).
const NoWidget WidgetIndex = -1

// Kind discriminates how a widget is drawn. The primitive kinds understood by
// the draw dispatch are declared in primitive.go; applications may register
// their own kinds, which the traversal silently skips.
type Kind string

// Container is one node of the widget graph: the per-widget data the core
// reads during traversal and routing. The surrounding application layer
// creates and mutates containers between frames; during a frame the graph is
// a read-only snapshot.
type Container struct {
	Index WidgetIndex

	// Rect is the widget's bounding rectangle in view space.
	Rect Rect

	// KidArea is the content-area rectangle children are cropped to when
	// CropKids is set. Usually Rect minus borders or scrollbars.
	KidArea Rect

	// CropKids marks this widget as cropping its descendants to KidArea.
	CropKids bool

	Kind  Kind
	State any // widget-kind-specific payload, opaque to the graph

	retired bool
}

// Graph is an arena of widget containers addressed by stable integer indices,
// with parent/child depth edges. The core only reads it during a frame;
// all mutation happens between frames, driven by the application layer.
type Graph struct {
	nodes  []*Container
	parent []WidgetIndex

	// ancestors[i] is a bitset over widget indices marking every recursive
	// depth-ancestor of i. Rebuilt on edge mutation so that the traversal's
	// hot-path ancestry query is a single word test instead of a parent-chain
	// walk.
	ancestors [][]uint64

	free []WidgetIndex
}

// NewGraph creates an empty widget graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddWidget places a container in the arena and returns its index.
// The container's Index field is overwritten with the assigned index.
// The first widget added receives index 0 and acts as the root window.
func (g *Graph) AddWidget(c Container) WidgetIndex {
	var idx WidgetIndex
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
		c.Index = idx
		node := c
		g.nodes[idx] = &node
		g.parent[idx] = NoWidget
		clearBitset(g.ancestors[idx])
	} else {
		idx = WidgetIndex(len(g.nodes))
		c.Index = idx
		node := c
		g.nodes = append(g.nodes, &node)
		g.parent = append(g.parent, NoWidget)
		g.ancestors = append(g.ancestors, nil)
	}
	return idx
}

// Widget returns the container at the given index, or nil when the index is
// out of range or the widget has been retired. A nil result is the silent
// "not present" answer the traversal relies on.
func (g *Graph) Widget(idx WidgetIndex) *Container {
	if idx < 0 || int(idx) >= len(g.nodes) {
		return nil
	}
	n := g.nodes[idx]
	if n == nil || n.retired {
		return nil
	}
	return n
}

// NumWidgets returns the number of live widgets.
func (g *Graph) NumWidgets() int {
	count := 0
	for _, n := range g.nodes {
		if n != nil && !n.retired {
			count++
		}
	}
	return count
}

// SetDepthParent sets parent as the depth parent of child and rebuilds the
// ancestor bitsets of child's subtree. Panics on unknown indices or when the
// edge would create a cycle.
func (g *Graph) SetDepthParent(parent, child WidgetIndex) {
	if g.Widget(parent) == nil || g.Widget(child) == nil {
		panic("trellis: SetDepthParent on unknown widget index")
	}
	if parent == child || g.RecursiveDepthEdgeExists(child, parent) {
		panic("trellis: depth edge would create a cycle")
	}
	g.parent[child] = parent
	g.rebuildAncestors(child)
}

// DepthParent returns the depth parent of idx, or NoWidget.
func (g *Graph) DepthParent(idx WidgetIndex) WidgetIndex {
	if idx < 0 || int(idx) >= len(g.parent) {
		return NoWidget
	}
	return g.parent[idx]
}

// Remove retires the widget at idx and detaches any children, recycling the
// index for later AddWidget calls. Children become parentless; retiring a
// whole subtree is the caller's loop.
func (g *Graph) Remove(idx WidgetIndex) {
	n := g.Widget(idx)
	if n == nil {
		return
	}
	for i := range g.parent {
		if g.parent[i] == idx {
			g.parent[i] = NoWidget
			g.rebuildAncestors(WidgetIndex(i))
		}
	}
	n.retired = true
	n.State = nil
	g.parent[idx] = NoWidget
	clearBitset(g.ancestors[idx])
	g.free = append(g.free, idx)
}

// RecursiveDepthEdgeExists reports whether ancestor is a depth ancestor
// (direct or transitive) of descendant. O(1): a single bitset word test.
func (g *Graph) RecursiveDepthEdgeExists(ancestor, descendant WidgetIndex) bool {
	if descendant < 0 || int(descendant) >= len(g.ancestors) || ancestor < 0 {
		return false
	}
	set := g.ancestors[descendant]
	word := int(ancestor) / 64
	if word >= len(set) {
		return false
	}
	return set[word]&(1<<(uint(ancestor)%64)) != 0
}

// CroppedArea returns the visible area of the widget after every cropping
// ancestor's kid area has been intersected with its rectangle. ok is false
// when the widget is absent or fully cropped away.
func (g *Graph) CroppedArea(idx WidgetIndex) (area Rect, ok bool) {
	n := g.Widget(idx)
	if n == nil {
		return Rect{}, false
	}
	area = n.Rect
	for p := g.parent[idx]; p != NoWidget; p = g.parent[p] {
		pn := g.Widget(p)
		if pn == nil {
			break
		}
		if pn.CropKids {
			area, ok = area.Overlap(pn.KidArea)
			if !ok {
				return Rect{}, false
			}
		}
	}
	return area, true
}

// --- Ancestor bitsets ---

// rebuildAncestors recomputes the bitset for idx from its parent chain, then
// recurses into every child since their ancestor sets embed this one.
func (g *Graph) rebuildAncestors(idx WidgetIndex) {
	words := (len(g.nodes) + 63) / 64
	set := g.ancestors[idx]
	if cap(set) < words {
		set = make([]uint64, words)
	} else {
		set = set[:words]
		clearBitset(set)
	}
	if p := g.parent[idx]; p != NoWidget {
		parentSet := g.ancestors[p]
		copy(set, parentSet)
		set[int(p)/64] |= 1 << (uint(p) % 64)
	}
	g.ancestors[idx] = set

	for i := range g.parent {
		if g.parent[i] == idx {
			g.rebuildAncestors(WidgetIndex(i))
		}
	}
}

func clearBitset(set []uint64) {
	for i := range set {
		set[i] = 0
	}
}
