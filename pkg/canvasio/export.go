package canvasio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/clbarnes/jsoncanvas/pkg/canvas"
)

// WriteJSON encodes c and writes it to w, indented and newline
// terminated. Both "nodes" and "edges" are always written as arrays,
// even when empty. The output can be re-read with [ReadJSON] for
// round-trip processing.
func WriteJSON(c *canvas.Canvas, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes c to a file at path, creating or truncating it.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c *canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
