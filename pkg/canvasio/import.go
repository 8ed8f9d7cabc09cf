package canvasio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/clbarnes/jsoncanvas/pkg/canvas"
)

// ReadJSON decodes a canvas document from r.
//
// The input must be a single JSON object with optional "nodes" and
// "edges" arrays; either key may also be null, which decodes as empty.
// Decoding is all-or-nothing: any schema violation in any node or edge
// fails the whole document with no partial result. The returned canvas
// is independent of r, which is not closed.
func ReadJSON(r io.Reader) (*canvas.Canvas, error) {
	var c canvas.Canvas
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &c, nil
}

// ImportJSON reads the canvas file at path and returns the decoded
// document. Errors wrap the underlying cause with the path for context
// and are otherwise the same as [ReadJSON]'s.
func ImportJSON(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
