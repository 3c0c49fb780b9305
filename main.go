package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/tessera/layout"
	"github.com/ByLCY/tessera/renderer"
	canvasrenderer "github.com/ByLCY/tessera/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/window.xml", "markup file path")
	output := flag.String("out", "output/layout.png", "PNG preview output path")
	debugPath := flag.String("debug", "", "rectangle debug JSON output path")
	width := flag.Int("w", 0, "viewport width, 0 uses the markup size or 800")
	height := flag.Int("h", 0, "viewport height, 0 uses the markup size or 600")
	scale := flag.Float64("scale", 1, "output pixels per layout pixel")
	dataJSON := flag.String("data", "", "JSON data bound into ${path} attribute placeholders")
	flag.Parse()

	var data any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	var r renderer.Renderer = canvasrenderer.NewScaledRenderer(*scale)
	if err := run(*input, *output, *debugPath, *width, *height, data, r); err != nil {
		log.Fatalf("layout failed: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// run chains parsing, layout, and rendering.
func run(inputPath, outputPath, debugPath string, width, height int, data any, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer must not be nil")
	}
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read markup file %s: %w", inputPath, err)
	}

	tree, err := layout.FromMarkupWithOptions(string(src), layout.Options{Data: data})
	if err != nil {
		return fmt.Errorf("build layout tree: %w", err)
	}

	rects := tree.Layout(width, height)
	if len(rects) == 0 {
		return fmt.Errorf("layout produced no regions")
	}
	// The root rectangle always spans the effective viewport, so the
	// renderer and the debug dump agree on the frame size.
	frameW, frameH := rects[0].Width, rects[0].Height

	if debugPath != "" {
		if err := writeDebug(rects, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pngBytes, err := r.Render(frameW, frameH, rects)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	if err := os.WriteFile(outputPath, pngBytes, 0o644); err != nil {
		return fmt.Errorf("write PNG file: %w", err)
	}

	return nil
}

func writeDebug(rects []layout.Rectangle, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := layout.WriteDebugJSON(rects, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}
