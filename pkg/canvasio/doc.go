// Package canvasio reads and writes canvas documents as JSON text.
//
// The canvas package itself performs no I/O; this package provides the
// stream and file plumbing around it:
//
//   - [ReadJSON] / [WriteJSON] decode from an io.Reader and encode to an
//     io.Writer.
//   - [ImportJSON] / [ExportJSON] are file-path conveniences around them.
//
// Output is indented with two spaces and ends with a newline, matching
// the format produced by common canvas editors. Input acceptance is
// exactly the canvas codec contract; see the canvas package for the
// error taxonomy.
//
//	c, err := canvasio.ImportJSON("notes.canvas")
//	if err != nil {
//	    return err
//	}
//	if dangling := c.UnknownNodes(); len(dangling) > 0 {
//	    // edges reference nodes that do not exist
//	}
//	return canvasio.ExportJSON(c, "notes.canvas")
package canvasio
