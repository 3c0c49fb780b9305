package layout

// axis identifies a coordinate direction independent of any node's own
// orientation.
type axis int

const (
	axisX axis = iota
	axisY
)

// dim returns the node's size request on the given axis.
func (n *Node) dim(a axis) Dim {
	if a == axisX {
		return n.Width
	}
	return n.Height
}

// principal returns the axis the node distributes its children along.
func (n *Node) principal() axis {
	if n.Dir == Vertical {
		return axisY
	}
	return axisX
}

// minPercentBase is the container extent percentages resolve against while
// estimating minimums, before any real extent is known.
const minPercentBase = 1000

// minSize estimates the smallest extent the node needs on an axis to show
// its children at their requested sizes: children sum along the node's own
// distribution axis and the largest one wins across it, with gaps and
// border added on top. Leaves request nothing.
func minSize(n *Node, a axis) int {
	if len(n.Children) == 0 {
		return 0
	}
	if n.principal() == a {
		total := 0
		for _, child := range n.Children {
			if v, ok := child.dim(a).Resolve(minPercentBase); ok {
				total += v
			} else {
				total += minSize(child, a)
			}
		}
		if len(n.Children) > 1 {
			total += n.Gap * (len(n.Children) - 1)
		}
		return total + 2*n.Border
	}
	largest := 0
	for _, child := range n.Children {
		v, ok := child.dim(a).Resolve(minPercentBase)
		if !ok {
			v = minSize(child, a)
		}
		if v > largest {
			largest = v
		}
	}
	return largest + 2*n.Border
}

// requiresMin reports whether the node must be granted its minimum on the
// axis instead of joining the flexible pool. One genuinely flexible
// descendant chain is enough to make the whole subtree flexible: only
// nodes whose every child is pinned, either explicitly sized or itself
// requiring a minimum, push their minimum upward.
func requiresMin(n *Node, a axis) bool {
	if len(n.Children) == 0 {
		return false
	}
	for _, child := range n.Children {
		if child.dim(a).IsAuto() && !requiresMin(child, a) {
			return false
		}
	}
	return true
}
