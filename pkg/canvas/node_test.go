package canvas

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnmarshalNode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		check   func(t *testing.T, n Node)
	}{
		{
			name:  "Link",
			input: `{"type":"link","id":"a","x":-10,"y":20,"width":100,"height":50,"color":3,"url":"https://jsoncanvas.org/"}`,
			check: func(t *testing.T, n Node) {
				link, ok := n.(*LinkNode)
				if !ok {
					t.Fatalf("got %T, want *LinkNode", n)
				}
				if link.URL != "https://jsoncanvas.org/" {
					t.Errorf("URL = %q", link.URL)
				}
				g := n.Generic()
				if g.ID != "a" || g.X != -10 || g.Y != 20 || g.Width != 100 || g.Height != 50 {
					t.Errorf("generic fields = %+v", *g)
				}
				if p, _ := g.Color.Preset(); p != Yellow {
					t.Errorf("color = %v, want Yellow", g.Color)
				}
			},
		},
		{
			name:  "TextWithoutColor",
			input: `{"type":"text","id":"t","x":0,"y":0,"width":1,"height":1,"text":"hi"}`,
			check: func(t *testing.T, n Node) {
				if n.Generic().Color != nil {
					t.Error("absent color should decode as nil")
				}
				if n.(*TextNode).Text != "hi" {
					t.Errorf("Text = %q", n.(*TextNode).Text)
				}
			},
		},
		{
			name:  "FileWithSubpath",
			input: `{"type":"file","id":"f","x":0,"y":0,"width":1,"height":1,"file":"notes.md","subpath":"#heading"}`,
			check: func(t *testing.T, n Node) {
				f := n.(*FileNode)
				if f.File != "notes.md" || f.Subpath != "#heading" {
					t.Errorf("file = %q subpath = %q", f.File, f.Subpath)
				}
			},
		},
		{
			name:  "GroupAllOptionalAbsent",
			input: `{"type":"group","id":"g","x":0,"y":0,"width":1,"height":1}`,
			check: func(t *testing.T, n Node) {
				g := n.(*GroupNode)
				if g.Label != "" || g.Background != "" || g.BackgroundStyle != "" {
					t.Errorf("optional payload should be absent, got %+v", *g)
				}
			},
		},
		{
			name:  "UnknownKeysIgnored",
			input: `{"type":"text","id":"t","x":0,"y":0,"width":1,"height":1,"text":"hi","zIndex":4,"future":{"a":1}}`,
			check: func(t *testing.T, n Node) {
				if n.Generic().ID != "t" {
					t.Errorf("ID = %q", n.Generic().ID)
				}
			},
		},
		{
			name:    "BogusType",
			input:   `{"type":"bogus","id":"b","x":0,"y":0,"width":1,"height":1}`,
			wantErr: ErrUnknownNodeType,
		},
		{
			name:    "MissingType",
			input:   `{"id":"b","x":0,"y":0,"width":1,"height":1,"text":"hi"}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "MissingText",
			input:   `{"type":"text","id":"t","x":0,"y":0,"width":1,"height":1}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "MissingURL",
			input:   `{"type":"link","id":"l","x":0,"y":0,"width":1,"height":1}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "MissingFile",
			input:   `{"type":"file","id":"f","x":0,"y":0,"width":1,"height":1}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "MissingHeight",
			input:   `{"type":"text","id":"t","x":0,"y":0,"width":1,"text":"hi"}`,
			wantErr: ErrMissingField,
		},
		{
			// A null required value must not slip through as a zero value.
			name:    "NullID",
			input:   `{"type":"text","id":null,"x":0,"y":0,"width":1,"height":1,"text":"hi"}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "NullText",
			input:   `{"type":"text","id":"t","x":0,"y":0,"width":1,"height":1,"text":null}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "NullType",
			input:   `{"type":null,"id":"t","x":0,"y":0,"width":1,"height":1,"text":"hi"}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "BadColor",
			input:   `{"type":"text","id":"t","x":0,"y":0,"width":1,"height":1,"text":"hi","color":9}`,
			wantErr: ErrInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := UnmarshalNode([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalNode: %v", err)
			}
			if tt.check != nil {
				tt.check(t, n)
			}
		})
	}
}

// Negative widths must be rejected: Length is unsigned.
func TestNodeRejectsNegativeLength(t *testing.T) {
	_, err := UnmarshalNode([]byte(`{"type":"text","id":"t","x":0,"y":0,"width":-5,"height":1,"text":"hi"}`))
	if err == nil {
		t.Fatal("negative width decoded without error")
	}
}

func TestNodeMarshalFlattens(t *testing.T) {
	color := Purple.Color()
	n := &GroupNode{
		GenericNode:     GenericNode{ID: "g", X: 1, Y: 2, Width: 3, Height: 4, Color: &color},
		Label:           "squad",
		BackgroundStyle: BackgroundCover,
	}

	data, err := json.Marshal(Node(n))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("re-decode: %v", err)
	}

	for _, key := range []string{"type", "id", "x", "y", "width", "height", "color", "label", "backgroundStyle"} {
		if _, ok := obj[key]; !ok {
			t.Errorf("encoded object missing flattened key %q", key)
		}
	}
	if string(obj["type"]) != `"group"` {
		t.Errorf("type tag = %s", obj["type"])
	}
	if _, ok := obj["background"]; ok {
		t.Error("absent background should be omitted, not emitted")
	}
}

func TestNodeMarshalOmitsAbsentColor(t *testing.T) {
	data, err := json.Marshal(Node(&TextNode{
		GenericNode: GenericNode{ID: "t", Width: 1, Height: 1},
		Text:        "hi",
	}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if _, ok := obj["color"]; ok {
		t.Error("nil color should be omitted from the encoded object")
	}
	// x and y are required fields, so zero values are still written.
	if string(obj["x"]) != "0" || string(obj["y"]) != "0" {
		t.Errorf("x/y = %s/%s, want 0/0", obj["x"], obj["y"])
	}
}
