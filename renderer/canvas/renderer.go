// Package canvasrenderer rasterizes layout frames with
// github.com/tdewolff/canvas. It is a preview backend: each region becomes
// a tinted, outlined rectangle so nesting and spacing are visible at a
// glance.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/ByLCY/tessera/layout"
	"github.com/ByLCY/tessera/renderer"
)

// Renderer draws regions via github.com/tdewolff/canvas.
type Renderer struct {
	scale float64 // output pixels per layout pixel
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer emitting one output pixel per layout
// pixel.
func NewRenderer() *Renderer {
	return &Renderer{scale: 1}
}

// NewScaledRenderer renders at scale output pixels per layout pixel, for
// crisper previews on dense displays. Non-positive scales fall back to 1.
func NewScaledRenderer(scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{scale: scale}
}

// palette is keyed by region name hash so a region keeps its tint across
// frames no matter where it moves.
var palette = []color.RGBA{
	{R: 0x4C, G: 0x78, B: 0xA8, A: 0xFF},
	{R: 0xF5, G: 0x8A, B: 0x5A, A: 0xFF},
	{R: 0x54, G: 0xA2, B: 0x4B, A: 0xFF},
	{R: 0xB2, G: 0x79, B: 0xC7, A: 0xFF},
	{R: 0xE4, G: 0x57, B: 0x56, A: 0xFF},
	{R: 0x84, G: 0x9C, B: 0x85, A: 0xFF},
	{R: 0xEC, G: 0xA8, B: 0x39, A: 0xFF},
	{R: 0x43, G: 0x9D, B: 0x9C, A: 0xFF},
}

// Render implements renderer.Renderer. The canvas matches the viewport;
// anything a fixed child pushes outside it is clipped by the rasterizer.
func (r *Renderer) Render(width, height int, regions []layout.Rectangle) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: viewport %dx%d is empty", width, height)
	}

	c := canvas.New(float64(width), float64(height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, same as layout

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(float64(width), float64(height)))

	for _, region := range regions {
		if region.Width <= 0 || region.Height <= 0 {
			continue
		}
		base := tintFor(region.Name)
		ctx.SetFillColor(withAlpha(base, 0x30))
		ctx.SetStrokeColor(base)
		ctx.SetStrokeWidth(1)
		ctx.DrawPath(float64(region.X), float64(region.Y),
			canvas.Rectangle(float64(region.Width), float64(region.Height)))
	}

	var buf bytes.Buffer
	if err := renderers.PNG(canvas.DPMM(r.scale))(&buf, c); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// tintFor hashes the region name into the palette.
func tintFor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}

// withAlpha returns the color at the given opacity, premultiplied the way
// color.RGBA expects.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
