package layout

// place emits the rectangle for n and recursively lays out its children
// inside the border-inset content box. Parents always precede their
// children in the output.
func place(n *Node, x, y, width, height int, out *[]Rectangle) {
	*out = append(*out, Rectangle{Name: n.Name, X: x, Y: y, Width: width, Height: height})
	if len(n.Children) == 0 {
		return
	}

	contentX := x + n.Border
	contentY := y + n.Border
	contentW := width - 2*n.Border
	contentH := height - 2*n.Border
	if contentW <= 0 || contentH <= 0 {
		// The border swallowed the whole box. The node itself stays
		// visible, its children have nowhere to live.
		return
	}

	along := n.principal()
	extent, cross := contentW, contentH
	if along == axisY {
		extent, cross = contentH, contentW
	}
	sizes := childExtents(n, along, extent)

	cx, cy := contentX, contentY
	for i, child := range n.Children {
		var cw, ch int
		if along == axisX {
			cw, ch = sizes[i], crossExtent(child, axisY, cross)
		} else {
			cw, ch = crossExtent(child, axisX, cross), sizes[i]
		}
		place(child, cx, cy, cw, ch, out)
		if along == axisX {
			cx += cw + n.Gap
		} else {
			cy += ch + n.Gap
		}
	}
}

// childExtents sizes every child along the distribution axis. Specified
// dimensions resolve against the content extent. A flexible child whose
// subtree genuinely needs room is granted its minimum and pinned; the
// remaining flexible children split the leftover evenly with floor
// division. The division remainder is dropped, not redistributed, and a
// share is never negative.
func childExtents(n *Node, a axis, extent int) []int {
	sizes := make([]int, len(n.Children))
	fixed := 0
	flexible := 0
	for i, child := range n.Children {
		if v, ok := child.dim(a).Resolve(extent); ok {
			sizes[i] = max(v, 0)
			fixed += sizes[i]
			continue
		}
		if m := minSize(child, a); m > 0 && requiresMin(child, a) {
			sizes[i] = m
			fixed += m
			continue
		}
		sizes[i] = -1
		flexible++
	}

	remaining := extent - fixed - n.Gap*(len(n.Children)-1)
	share := 0
	if flexible > 0 && remaining > 0 {
		share = remaining / flexible
	}
	for i, size := range sizes {
		if size < 0 {
			sizes[i] = share
		}
	}
	return sizes
}

// crossExtent sizes a child across the distribution axis: its own spec if
// it has one, otherwise the full content extent.
func crossExtent(child *Node, a axis, content int) int {
	if v, ok := child.dim(a).Resolve(content); ok {
		return max(v, 0)
	}
	return content
}
