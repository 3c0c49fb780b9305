// Package renderer defines the contract for turning computed regions into
// an encoded image.
package renderer

import "github.com/ByLCY/tessera/layout"

// Renderer draws a resolved frame. Render receives the viewport size and
// the flat rectangle list in paint order (parents first) and returns the
// encoded bytes (e.g., a PNG).
type Renderer interface {
	Render(width, height int, regions []layout.Rectangle) ([]byte, error)
}
