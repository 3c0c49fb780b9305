// Package layout computes screen-space rectangles for a tree of named
// regions. Containers split their content area among children either
// horizontally or vertically; children can be fixed, percentage-sized, or
// flexible. The engine prefers degrading gracefully over reporting errors:
// bad size attributes read as unspecified, impossible geometry simply
// stops producing child rectangles.
package layout

// Direction selects the axis a container distributes its children along.
type Direction int

const (
	// Horizontal places children left to right.
	Horizontal Direction = iota
	// Vertical places children top to bottom.
	Vertical
)

// Node is one region of the layout tree. Fields are exported so any front
// end can assemble trees directly; the markup builder is just one producer.
type Node struct {
	Name     string
	Width    Dim
	Height   Dim
	Dir      Direction
	Border   int
	Gap      int
	Children []*Node
	// Attrs keeps every markup attribute verbatim (after binding
	// expansion), including the ones the engine itself interprets, so
	// renderers can read their own extensions from the same tree.
	Attrs map[string]string
}

// Find returns the first node with the given name in pre-order, or nil.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Rectangle is one placed region in viewport coordinates, origin top-left.
type Rectangle struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ByName indexes rectangles by region name. The first occurrence wins when
// names repeat, matching the lookup order of Find.
func ByName(rects []Rectangle) map[string]Rectangle {
	m := make(map[string]Rectangle, len(rects))
	for _, r := range rects {
		if _, ok := m[r.Name]; !ok {
			m[r.Name] = r
		}
	}
	return m
}
