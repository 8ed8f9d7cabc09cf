package canvas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownNodeType is returned when a node object's "type" tag is
	// missing from the {text, file, link, group} set.
	ErrUnknownNodeType = errors.New("unknown node type")

	// ErrMissingField is returned when a required key is absent from a
	// node or edge object. Optional fields never trigger it.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidColor is returned when a color value is neither an
	// integer in [1,6] nor a string matching #RRGGBB.
	ErrInvalidColor = errors.New("invalid color encoding")

	// ErrInvalidSide is returned when a side value is outside
	// {top, right, bottom, left}.
	ErrInvalidSide = errors.New("invalid side")

	// ErrInvalidEndStyle is returned when an end-style value is outside
	// {none, arrow}.
	ErrInvalidEndStyle = errors.New("invalid end style")

	// ErrInvalidBackgroundStyle is returned when a group node's
	// backgroundStyle is outside {cover, ratio, repeat}.
	ErrInvalidBackgroundStyle = errors.New("invalid background style")
)

// Canvas is a whole canvas document: an unordered collection of nodes
// and an unordered collection of edges. Slice order is preserved through
// a round trip but carries no meaning.
//
// Both slices are exposed for direct mutation; a Canvas owns its nodes
// and edges exclusively and is not safe for concurrent mutation. The
// zero Canvas is an empty, usable document.
//
// ID uniqueness (for nodes and for edges) is a contract the caller is
// expected to uphold, not one this type enforces: decoding retains
// duplicates positionally and [Canvas.FindNode] returns the first match.
// [Canvas.DuplicateIDs] reports violations on request.
type Canvas struct {
	Nodes []Node
	Edges []Edge
}

// canvasWire is the top-level wire shape. Decoding reads the collections
// as raw messages so each node can be dispatched on its type tag, and so
// an explicit null collection can be normalized to empty.
type canvasWire struct {
	Nodes []json.RawMessage `json:"nodes"`
	Edges []json.RawMessage `json:"edges"`
}

// MarshalJSON always emits both "nodes" and "edges" as arrays, even when
// empty. Neither key is ever omitted or written as null.
func (c Canvas) MarshalJSON() ([]byte, error) {
	nodes := c.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	edges := c.Edges
	if edges == nil {
		edges = []Edge{}
	}
	return json.Marshal(struct {
		Nodes []Node `json:"nodes"`
		Edges []Edge `json:"edges"`
	}{nodes, edges})
}

// UnmarshalJSON decodes a whole document. Decoding is all-or-nothing: the
// first malformed node or edge fails the document and c is left
// unchanged. A "nodes" or "edges" key that is absent or null yields an
// empty collection; unrecognized top-level keys are ignored.
func (c *Canvas) UnmarshalJSON(data []byte) error {
	// Null is tolerated for the collections, not for the document itself.
	// encoding/json hands the literal to this method rather than
	// rejecting it, so it has to be refused here.
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.New("top-level value must be an object")
	}

	var wire canvasWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	nodes := make([]Node, 0, len(wire.Nodes))
	for i, raw := range wire.Nodes {
		n, err := UnmarshalNode(raw)
		if err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}

	edges := make([]Edge, 0, len(wire.Edges))
	for i, raw := range wire.Edges {
		var e Edge
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	c.Nodes = nodes
	c.Edges = edges
	return nil
}

// FindNode returns the first node with the given id. When duplicate ids
// are present (a caller error), later occurrences are shadowed.
func (c *Canvas) FindNode(id string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.Generic().ID == id {
			return n, true
		}
	}
	return nil, false
}

// UnknownNodes returns the set of node ids that appear as an edge
// endpoint but not as the id of any node, sorted for deterministic
// output. An empty result means referential integrity holds.
//
// This is a pure read: it never mutates the canvas and never fails.
// It does not check duplicate ids, dangling sides, or self-loops.
func (c *Canvas) UnknownNodes() []string {
	known := make(map[string]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		known[n.Generic().ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.Edges {
		for _, id := range []string{e.FromNode, e.ToNode} {
			if _, ok := known[id]; ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// DuplicateIDs returns the sorted set of ids used by more than one node
// or by more than one edge. A node and an edge sharing an id is not a
// duplicate; the two namespaces are independent.
//
// Like [Canvas.UnknownNodes] this is an advisory pure read, never an
// error: decoding and mutation retain duplicates positionally.
func (c *Canvas) DuplicateIDs() []string {
	nodeIDs := make([]string, len(c.Nodes))
	for i, n := range c.Nodes {
		nodeIDs[i] = n.Generic().ID
	}
	edgeIDs := make([]string, len(c.Edges))
	for i, e := range c.Edges {
		edgeIDs[i] = e.ID
	}

	seen := make(map[string]struct{})
	var out []string
	for _, ids := range [][]string{nodeIDs, edgeIDs} {
		counts := make(map[string]int, len(ids))
		for _, id := range ids {
			counts[id]++
		}
		for id, n := range counts {
			if n < 2 {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}
