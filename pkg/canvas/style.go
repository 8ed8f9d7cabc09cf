package canvas

import (
	"encoding/json"
	"fmt"
)

// Side identifies which edge of a node's rectangle an edge attaches to.
// The zero value means no side was specified and is omitted on encode.
type Side string

// The four attachment sides, named as on the wire.
const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Valid reports whether s is one of the four sides or the unset value.
func (s Side) Valid() bool {
	switch s {
	case "", SideTop, SideRight, SideBottom, SideLeft:
		return true
	}
	return false
}

// UnmarshalJSON accepts the four side names. Null leaves the side unset.
func (s *Side) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	side := Side(v)
	if side == "" || !side.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSide, v)
	}
	*s = side
	return nil
}

// EndStyle describes the decoration at one end of an edge. The zero value
// is EndNone, which is interchangeable with the field being absent on the
// wire: decoding "none" yields EndNone, and EndNone is omitted on encode.
type EndStyle string

const (
	// EndNone is the default, undecorated end. Its wire form is "none",
	// but it is never written: an unset end round-trips as an absent field.
	EndNone EndStyle = ""
	// EndArrow draws an arrowhead at the end.
	EndArrow EndStyle = "arrow"
)

// endNoneWire is the explicit wire spelling of EndNone.
const endNoneWire = "none"

// Valid reports whether e is a defined end style.
func (e EndStyle) Valid() bool {
	return e == EndNone || e == EndArrow
}

// String returns the wire name, spelling EndNone as "none".
func (e EndStyle) String() string {
	if e == EndNone {
		return endNoneWire
	}
	return string(e)
}

// MarshalJSON writes the wire name. EndNone marshals as "none", though
// edge fields omit it entirely instead.
func (e EndStyle) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndStyle, string(e))
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON accepts "none" and "arrow", folding "none" into the zero
// value so that an explicit "none" and an absent field decode identically.
// Null leaves the style unset.
func (e *EndStyle) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v {
	case endNoneWire:
		*e = EndNone
	case string(EndArrow):
		*e = EndArrow
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEndStyle, v)
	}
	return nil
}

// BackgroundStyle controls how a group node's background image is shown.
// The zero value means no style was specified and is omitted on encode.
type BackgroundStyle string

// The three background display styles, named as on the wire.
const (
	BackgroundCover  BackgroundStyle = "cover"
	BackgroundRatio  BackgroundStyle = "ratio"
	BackgroundRepeat BackgroundStyle = "repeat"
)

// Valid reports whether b is a defined style or the unset value.
func (b BackgroundStyle) Valid() bool {
	switch b {
	case "", BackgroundCover, BackgroundRatio, BackgroundRepeat:
		return true
	}
	return false
}

// UnmarshalJSON accepts the three style names. Null leaves the style unset.
func (b *BackgroundStyle) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	style := BackgroundStyle(v)
	if style == "" || !style.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidBackgroundStyle, v)
	}
	*b = style
	return nil
}
