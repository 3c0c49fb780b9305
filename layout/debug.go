package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps computed rectangles as indented JSON, handy for
// inspecting a layout by eye or diffing two runs. Nothing is written for
// an empty result.
func WriteDebugJSON(rects []Rectangle, path string) error {
	if len(rects) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(rects, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
