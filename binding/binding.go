// Package binding substitutes ${path} placeholders with values from
// caller-supplied data, so markup attributes can reference runtime state.
package binding

import (
	"fmt"
	"strconv"
	"strings"
)

// Expand replaces every ${path} placeholder in text with the value found
// at that path in data. Data is expected to look like JSON decoded into
// maps and slices. Paths use dots for keys and [n] for slice indexes,
// e.g., ${panes[1].width}. Placeholders that cannot be resolved stay in the
// text untouched, as does a dangling ${ with no closing brace.
func Expand(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	var out strings.Builder
	rest := text
	for {
		before, after, found := strings.Cut(rest, "${")
		out.WriteString(before)
		if !found {
			return out.String()
		}
		expr, tail, closed := strings.Cut(after, "}")
		if !closed {
			out.WriteString("${")
			out.WriteString(after)
			return out.String()
		}
		if val, ok := Lookup(data, strings.TrimSpace(expr)); ok {
			out.WriteString(fmt.Sprint(val))
		} else {
			out.WriteString("${")
			out.WriteString(expr)
			out.WriteString("}")
		}
		rest = tail
	}
}

// Lookup walks a dotted path through nested maps and slices and returns
// the value it lands on. The boolean is false whenever any step of the
// path does not exist or the shapes do not match.
func Lookup(data any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := data
	for _, segment := range strings.Split(path, ".") {
		key, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if key != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			val, exists := m[key]
			if !exists {
				return nil, false
			}
			current = val
		}
		for _, idx := range indexes {
			s, isSlice := current.([]any)
			if !isSlice || idx < 0 || idx >= len(s) {
				return nil, false
			}
			current = s[idx]
		}
	}
	return current, true
}

// splitSegment separates "name[0][1]" into the name and its indexes. A
// segment may also be pure indexes (e.g., "[2]") after a path that already
// landed on a slice.
func splitSegment(segment string) (string, []int, bool) {
	name, rest, bracketed := strings.Cut(segment, "[")
	if !bracketed {
		return name, nil, name != ""
	}
	var indexes []int
	for {
		numStr, tail, closed := strings.Cut(rest, "]")
		if !closed {
			return "", nil, false
		}
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, n)
		if tail == "" {
			return name, indexes, true
		}
		if !strings.HasPrefix(tail, "[") {
			return "", nil, false
		}
		rest = tail[1:]
	}
}
