package canvas

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PresetColor is one of the six named canvas colors. Presets are encoded
// on the wire as the integers 1 through 6; zero is not a valid preset.
type PresetColor int

// The six preset colors, numbered 1 through 6 as on the wire.
const (
	Red PresetColor = iota + 1
	Orange
	Yellow
	Green
	Cyan
	Purple
)

var presetNames = map[PresetColor]string{
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Cyan:   "cyan",
	Purple: "purple",
}

// Valid reports whether p is one of the six defined presets.
func (p PresetColor) Valid() bool {
	return p >= Red && p <= Purple
}

// String returns the preset's lowercase name, or "invalid" for
// out-of-range values.
func (p PresetColor) String() string {
	if s, ok := presetNames[p]; ok {
		return s
	}
	return "invalid"
}

// Color returns the preset wrapped as a Color value.
func (p PresetColor) Color() Color {
	return Color{preset: p}
}

// hexPattern matches the only hex form the format accepts: a hash
// followed by exactly six hex digits. Short (#RGB) and alpha (#RRGGBBAA)
// forms are rejected.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Color is either a PresetColor or an arbitrary hex RGB color. The wire
// encoding carries no discriminator: a bare integer is a preset, a string
// is a hex color, and the decoder dispatches on that shape alone.
//
// Encoding re-emits whichever variant the value holds. A preset never
// becomes a hex string and a hex string is re-emitted exactly as decoded,
// original letter case included.
//
// The zero Color is not a valid value; use DefaultColor for a fallback.
type Color struct {
	preset PresetColor
	hex    string
}

// DefaultColor returns the color used when one is required but none was
// supplied: hex white.
func DefaultColor() Color {
	return Color{hex: "#FFFFFF"}
}

// HexColor builds a Color from a "#RRGGBB" string.
// It returns an error if s does not match the six-digit hex form.
func HexColor(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{hex: s}, nil
}

// RGB builds a hex Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{hex: fmt.Sprintf("#%02X%02X%02X", r, g, b)}
}

// Preset returns the preset variant, if c holds one.
func (c Color) Preset() (PresetColor, bool) {
	return c.preset, c.preset.Valid()
}

// Hex returns the hex string variant, if c holds one.
func (c Color) Hex() (string, bool) {
	return c.hex, c.hex != ""
}

// RGB returns the 8-bit components of a hex color. For preset colors
// ok is false: presets are symbolic and have no contractual RGB value.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c.hex == "" {
		return 0, 0, 0, false
	}
	parsed, err := colorful.Hex(c.hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = parsed.RGB255()
	return r, g, b, true
}

// String returns the preset name or the hex string.
func (c Color) String() string {
	if c.preset.Valid() {
		return c.preset.String()
	}
	if c.hex != "" {
		return c.hex
	}
	return "invalid"
}

// MarshalJSON emits the variant the color holds: a bare integer for
// presets, a string for hex values.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.preset.Valid() {
		return []byte(strconv.Itoa(int(c.preset))), nil
	}
	if c.hex != "" {
		return json.Marshal(c.hex)
	}
	return nil, fmt.Errorf("%w: zero Color", ErrInvalidColor)
}

// UnmarshalJSON dispatches on the shape of the wire value: integers in
// [1,6] are presets, strings matching #RRGGBB are hex colors, anything
// else fails.
func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !hexPattern.MatchString(s) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		*c = Color{hex: s}
		return nil
	case 'n': // null: leave the color unset
		return nil
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidColor, data)
		}
		p := PresetColor(n)
		if !p.Valid() {
			return fmt.Errorf("%w: preset %d out of range", ErrInvalidColor, n)
		}
		*c = Color{preset: p}
		return nil
	}
}
