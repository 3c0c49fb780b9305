package layout

// Viewport used when neither the caller nor the root's own size attribute
// pins a dimension.
const (
	fallbackWidth  = 800
	fallbackHeight = 600
)

// Tree owns a node tree and answers layout queries against it. It is not
// safe for concurrent mutation; Layout itself never mutates the tree.
type Tree struct {
	Root *Node
}

// New wraps an already-assembled node tree.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// Layout computes viewport-space rectangles for every reachable node,
// parents before children. A non-positive width or height means "not
// specified": the root's own size attribute is consulted first, then the
// 800x600 fallback. Repeated calls with equal inputs return identical
// output.
func (t *Tree) Layout(width, height int) []Rectangle {
	if t == nil || t.Root == nil {
		return nil
	}
	if width <= 0 {
		width = rootExtent(t.Root.Width, fallbackWidth)
	}
	if height <= 0 {
		height = rootExtent(t.Root.Height, fallbackHeight)
	}
	rects := make([]Rectangle, 0, countNodes(t.Root))
	place(t.Root, 0, 0, width, height, &rects)
	return rects
}

// rootExtent resolves the root's own spec with no container to measure
// against, so only absolute pixel sizes count; percentages and zero fall
// through to the fallback.
func rootExtent(d Dim, fallback int) int {
	if v, ok := d.Resolve(0); ok && v > 0 {
		return v
	}
	return fallback
}

// Find returns the first node with the given name in pre-order, or nil
// when no node carries it.
func (t *Tree) Find(name string) *Node {
	if t == nil {
		return nil
	}
	return t.Root.Find(name)
}

// SetSize pins a node's axes to fixed pixel sizes, the hook callers use to
// push runtime measurements (a text input's line height, a tile size) into
// the tree before laying it out. Only positive arguments take effect; pass
// 0 to leave an axis as it was. Unknown names are ignored.
func (t *Tree) SetSize(name string, width, height int) {
	n := t.Find(name)
	if n == nil {
		return
	}
	if width > 0 {
		n.Width = Pixels(width)
	}
	if height > 0 {
		n.Height = Pixels(height)
	}
}

func countNodes(n *Node) int {
	total := 1
	for _, child := range n.Children {
		total += countNodes(child)
	}
	return total
}
