package canvas

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a pixel position on the canvas. Coordinates may be
// negative; the canvas has no origin constraint.
type Coordinate int64

// Length is a pixel extent. Widths and heights cannot be negative.
type Length uint64

// NodeType discriminates the four node kinds. It appears on the wire as
// the "type" key of every node object.
type NodeType string

// The four node kinds, named as on the wire.
const (
	NodeTypeText  NodeType = "text"
	NodeTypeFile  NodeType = "file"
	NodeTypeLink  NodeType = "link"
	NodeTypeGroup NodeType = "group"
)

// GenericNode holds the fields shared by every node kind: identity,
// position, size, and an optional color. Concrete node types embed it,
// which also flattens its fields into the node's JSON object.
//
// IDs are opaque strings expected to be unique within a canvas. The
// library does not enforce uniqueness; see [Canvas.DuplicateIDs] for an
// opt-in check.
type GenericNode struct {
	ID     string     `json:"id"`
	X      Coordinate `json:"x"`
	Y      Coordinate `json:"y"`
	Width  Length     `json:"width"`
	Height Length     `json:"height"`
	Color  *Color     `json:"color,omitempty"`
}

// Node is a positioned, sized, colorable entity of one of four kinds.
// The shared fields are reachable through Generic regardless of kind;
// kind-specific payload is retrieved with a type switch:
//
//	switch n := node.(type) {
//	case *canvas.TextNode:
//	    fmt.Println(n.Text)
//	case *canvas.LinkNode:
//	    fmt.Println(n.URL)
//	}
//
// The set of implementations is closed: only the four types in this
// package satisfy Node.
type Node interface {
	// Generic returns the shared identity/geometry/color record.
	Generic() *GenericNode
	// Type returns the node's wire discriminator.
	Type() NodeType

	isNode()
}

// TextNode holds free-form text content.
type TextNode struct {
	GenericNode
	Text string `json:"text"`
}

func (n *TextNode) Generic() *GenericNode { return &n.GenericNode }
func (n *TextNode) Type() NodeType        { return NodeTypeText }
func (n *TextNode) isNode()               {}

// FileNode references a file, optionally narrowed to a location within it
// (e.g. a heading anchor). The path is carried verbatim; it is never
// resolved against a file system.
type FileNode struct {
	GenericNode
	File    string `json:"file"`
	Subpath string `json:"subpath,omitempty"`
}

func (n *FileNode) Generic() *GenericNode { return &n.GenericNode }
func (n *FileNode) Type() NodeType        { return NodeTypeFile }
func (n *FileNode) isNode()               {}

// LinkNode references a URL. The URL is carried verbatim and never
// fetched or validated beyond being a string.
type LinkNode struct {
	GenericNode
	URL string `json:"url"`
}

func (n *LinkNode) Generic() *GenericNode { return &n.GenericNode }
func (n *LinkNode) Type() NodeType        { return NodeTypeLink }
func (n *LinkNode) isNode()               {}

// GroupNode is a visual container. All payload fields are optional; an
// empty string means the field is absent.
type GroupNode struct {
	GenericNode
	Label           string          `json:"label,omitempty"`
	Background      string          `json:"background,omitempty"`
	BackgroundStyle BackgroundStyle `json:"backgroundStyle,omitempty"`
}

func (n *GroupNode) Generic() *GenericNode { return &n.GenericNode }
func (n *GroupNode) Type() NodeType        { return NodeTypeGroup }
func (n *GroupNode) isNode()               {}

// genericKeys are required on every node object.
var genericKeys = []string{"id", "x", "y", "width", "height"}

// requireKeys fails with ErrMissingField if any of keys is absent from
// the object encoded in data, or present with an explicit null. A null
// required value would otherwise decode silently to a zero value.
func requireKeys(data []byte, what string, keys ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	for _, k := range keys {
		if v, ok := obj[k]; !ok || string(v) == "null" {
			return fmt.Errorf("%s: %w: %q", what, ErrMissingField, k)
		}
	}
	return nil
}

// MarshalJSON flattens the shared and text-specific fields into a single
// object tagged with "type": "text".
func (n *TextNode) MarshalJSON() ([]byte, error) {
	type textNode TextNode
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*textNode
	}{NodeTypeText, (*textNode)(n)})
}

func (n *TextNode) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "text node", append(genericKeys, "text")...); err != nil {
		return err
	}
	type textNode TextNode
	return json.Unmarshal(data, (*textNode)(n))
}

func (n *FileNode) MarshalJSON() ([]byte, error) {
	type fileNode FileNode
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*fileNode
	}{NodeTypeFile, (*fileNode)(n)})
}

func (n *FileNode) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "file node", append(genericKeys, "file")...); err != nil {
		return err
	}
	type fileNode FileNode
	return json.Unmarshal(data, (*fileNode)(n))
}

func (n *LinkNode) MarshalJSON() ([]byte, error) {
	type linkNode LinkNode
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*linkNode
	}{NodeTypeLink, (*linkNode)(n)})
}

func (n *LinkNode) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "link node", append(genericKeys, "url")...); err != nil {
		return err
	}
	type linkNode LinkNode
	return json.Unmarshal(data, (*linkNode)(n))
}

func (n *GroupNode) MarshalJSON() ([]byte, error) {
	type groupNode GroupNode
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*groupNode
	}{NodeTypeGroup, (*groupNode)(n)})
}

func (n *GroupNode) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "group node", genericKeys...); err != nil {
		return err
	}
	type groupNode GroupNode
	return json.Unmarshal(data, (*groupNode)(n))
}

// UnmarshalNode decodes a single node object, dispatching on its "type"
// tag. Objects with a missing tag or a tag outside the four known kinds
// fail; unrecognized extra keys are ignored for forward compatibility.
func UnmarshalNode(data []byte) (Node, error) {
	if err := requireKeys(data, "node", "type"); err != nil {
		return nil, err
	}
	var tag struct {
		Type NodeType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("node: %w", err)
	}

	var n Node
	switch tag.Type {
	case NodeTypeText:
		n = new(TextNode)
	case NodeTypeFile:
		n = new(FileNode)
	case NodeTypeLink:
		n = new(LinkNode)
	case NodeTypeGroup:
		n = new(GroupNode)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, tag.Type)
	}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}
