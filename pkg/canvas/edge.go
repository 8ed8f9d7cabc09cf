package canvas

import "encoding/json"

// Edge is a directed connection between two node identifiers. The
// endpoint ids are soft references: nothing requires them to resolve to a
// node in the same canvas. Use [Canvas.UnknownNodes] to find dangling
// endpoints.
//
// Side and end-style fields, the color, and the label are all optional;
// their zero values are omitted on encode. An EndNone end style and an
// absent end field are the same value (see [EndStyle]).
type Edge struct {
	ID       string   `json:"id"`
	FromNode string   `json:"fromNode"`
	FromSide Side     `json:"fromSide,omitempty"`
	FromEnd  EndStyle `json:"fromEnd,omitempty"`
	ToNode   string   `json:"toNode"`
	ToSide   Side     `json:"toSide,omitempty"`
	ToEnd    EndStyle `json:"toEnd,omitempty"`
	Color    *Color   `json:"color,omitempty"`
	Label    string   `json:"label,omitempty"`
}

// Terminal describes one endpoint of an edge: the referenced node plus
// optional attachment side and end style. It exists so that [NewEdge]
// call sites cannot transpose the three from-fields with the three
// to-fields; it carries no behavior of its own.
type Terminal struct {
	Node string
	Side Side
	End  EndStyle
}

// NewEdge assembles an edge from its two terminals. Color and label can
// be set on the returned value.
func NewEdge(id string, from, to Terminal) Edge {
	return Edge{
		ID:       id,
		FromNode: from.Node,
		FromSide: from.Side,
		FromEnd:  from.End,
		ToNode:   to.Node,
		ToSide:   to.Side,
		ToEnd:    to.End,
	}
}

// UnmarshalJSON decodes an edge object, requiring the id and both
// endpoint node ids to be present. Unrecognized keys are ignored.
func (e *Edge) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "edge", "id", "fromNode", "toNode"); err != nil {
		return err
	}
	type edge Edge
	return json.Unmarshal(data, (*edge)(e))
}
