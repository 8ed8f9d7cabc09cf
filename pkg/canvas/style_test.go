package canvas

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSideDecode(t *testing.T) {
	tests := []struct {
		input   string
		want    Side
		wantErr bool
	}{
		{input: `"top"`, want: SideTop},
		{input: `"right"`, want: SideRight},
		{input: `"bottom"`, want: SideBottom},
		{input: `"left"`, want: SideLeft},
		{input: `null`, want: ""},
		{input: `"up"`, wantErr: true},
		{input: `"Top"`, wantErr: true},
		{input: `""`, wantErr: true},
		{input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s Side
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

func TestEndStyleDecode(t *testing.T) {
	tests := []struct {
		input   string
		want    EndStyle
		wantErr bool
	}{
		{input: `"arrow"`, want: EndArrow},
		{input: `"none"`, want: EndNone}, // folds into the zero value
		{input: `null`, want: EndNone},
		{input: `"circle"`, wantErr: true},
		{input: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var e EndStyle
			err := json.Unmarshal([]byte(tt.input), &e)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEndStyle) {
					t.Fatalf("error = %v, want ErrInvalidEndStyle", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if e != tt.want {
				t.Errorf("got %q, want %q", e, tt.want)
			}
		})
	}
}

func TestEndStyleString(t *testing.T) {
	if EndNone.String() != "none" {
		t.Errorf("EndNone.String() = %q, want none", EndNone.String())
	}
	if EndArrow.String() != "arrow" {
		t.Errorf("EndArrow.String() = %q, want arrow", EndArrow.String())
	}
}

func TestBackgroundStyleDecode(t *testing.T) {
	for _, valid := range []string{"cover", "ratio", "repeat"} {
		var b BackgroundStyle
		if err := json.Unmarshal([]byte(`"`+valid+`"`), &b); err != nil {
			t.Errorf("Unmarshal(%q): %v", valid, err)
		}
	}

	var b BackgroundStyle
	err := json.Unmarshal([]byte(`"stretch"`), &b)
	if !errors.Is(err, ErrInvalidBackgroundStyle) {
		t.Errorf("error = %v, want ErrInvalidBackgroundStyle", err)
	}
}
