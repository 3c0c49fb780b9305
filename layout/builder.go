package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/tessera/binding"
	"github.com/ByLCY/tessera/markup"
)

// FromMarkup parses markup text and builds a layout tree from it.
func FromMarkup(src string) (*Tree, error) {
	return FromMarkupWithOptions(src, Options{})
}

// FromMarkupWithOptions is FromMarkup with binding data and other knobs.
func FromMarkupWithOptions(src string, opts Options) (*Tree, error) {
	root, err := markup.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return FromElementWithOptions(root, opts), nil
}

// LayoutMarkup parses markup and lays it out in one call, against the
// markup's own root size or the fallback viewport.
func LayoutMarkup(src string) ([]Rectangle, error) {
	tree, err := FromMarkup(src)
	if err != nil {
		return nil, err
	}
	return tree.Layout(0, 0), nil
}

// FromElement builds a layout tree from an already-parsed element tree.
func FromElement(el *markup.Element) *Tree {
	return FromElementWithOptions(el, Options{})
}

// FromElementWithOptions is FromElement with binding data and other knobs.
func FromElementWithOptions(el *markup.Element, opts Options) *Tree {
	if el == nil {
		return New(nil)
	}
	return New(buildNode(el, opts.Data))
}

// buildNode maps one element onto a node. Attribute problems never abort
// the build: a bad size reads as unspecified, a bad border or gap as zero.
func buildNode(el *markup.Element, data any) *Node {
	attrs := make(map[string]string, len(el.Attrs))
	for _, attr := range el.Attrs {
		value := attr.Value
		if data != nil {
			value = binding.Expand(value, data)
		}
		attrs[attr.Key] = value
	}

	n := &Node{
		Name:   el.Name,
		Border: parsePixels(attrs["border"]),
		Gap:    parsePixels(attrs["gap"]),
		Attrs:  attrs,
	}
	n.Width, n.Height = ParseSizeSpec(attrs["size"])
	if attrs["layout"] == "vert" {
		n.Dir = Vertical
	}
	for _, child := range el.Children {
		n.Children = append(n.Children, buildNode(child, data))
	}
	return n
}

// parsePixels reads a non-negative pixel attribute, zero when absent or
// unusable.
func parsePixels(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
