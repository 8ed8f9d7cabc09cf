// Package canvas implements a typed in-memory model for the JSON Canvas
// format: a document holding a collection of visual nodes and the edges
// connecting them, as used by spatial note-taking and whiteboard tools.
//
// The package covers three concerns:
//
//  1. The data model: a [Canvas] of [Node] values (a closed set of four
//     kinds sharing identity, position, size, and optional color through
//     [GenericNode]) and [Edge] values connecting node ids.
//  2. The codec: the JSON wire contract, including the per-node "type"
//     tag, field flattening, optional-field omission, null-tolerant
//     collection defaulting, and the untagged integer-vs-string color
//     encoding.
//  3. Validation: advisory referential-integrity queries such as
//     [Canvas.UnknownNodes] that report problems without failing.
//
// # Decoding
//
// Documents decode through encoding/json:
//
//	var c canvas.Canvas
//	if err := json.Unmarshal(data, &c); err != nil {
//	    // malformed document or schema violation
//	}
//
// Decoding is all-or-nothing: a missing required field, an unknown node
// type, or a malformed color anywhere fails the whole document. Failures
// wrap the sentinel errors declared in this package (for example
// [ErrUnknownNodeType]), so callers can classify them with errors.Is.
// Unrecognized object keys are ignored for forward compatibility, and a
// top-level "nodes" or "edges" that is absent or null decodes as empty.
//
// Dangling edge endpoints are deliberately not a decode error; they are
// a queryable condition left for the caller to reject, repair, or
// ignore.
//
// # Encoding
//
// Re-encoding a just-decoded document is semantically round-trip safe:
// the same nodes and edges in the same order with the same fields. Key
// order and whitespace are not contractual. A color keeps its wire
// variant (presets stay integers, hex strings stay strings), and an
// explicitly "none" end style is the same value as an absent one.
//
// The model performs no I/O and no geometry: reading and writing bytes
// belongs to callers (see the canvasio package), and nothing here
// renders or lays out a canvas.
package canvas
