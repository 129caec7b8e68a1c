package canopy

import (
	"math"
	"strings"
	"testing"
)

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

// --- Hex colors ---

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
		{"  #000000  ", Color{0, 0, 0, 1}},
		{"ffffff", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if !colorNear(got, tt.want) {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", in)
		}
	}
}

func TestColorMarshalText(t *testing.T) {
	b, err := RGB(0xff, 0x92, 0x2b).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "#ff922bff" {
		t.Errorf("MarshalText = %s", b)
	}
}

// --- Style sheets ---

const testStyleYAML = `
button:
  label:
    normal: "#ff0000"
    Focused: "#00ff00"
  background:
    disabled: "#101010"
  fade: 0.25
list:
  item:
    active: "#0000ff"
  labelRect:
    anchorMax: {x: 0.4, y: 1}
  arrows:
    useColorMod: true
`

func TestLoadStyle(t *testing.T) {
	s, err := LoadStyle([]byte(testStyleYAML))
	if err != nil {
		t.Fatal(err)
	}

	b := NewButton("b", "", nil)
	s.ApplyButton(b)
	if !colorNear(b.LabelColors[ButtonNormal], Color{1, 0, 0, 1}) {
		t.Errorf("normal label = %v", b.LabelColors[ButtonNormal])
	}
	if !colorNear(b.LabelColors[ButtonFocused], Color{0, 1, 0, 1}) {
		t.Error("state names should match case-insensitively")
	}
	if b.LabelColors[ButtonPressed] != Gray(128) {
		t.Error("states left out should keep their color")
	}
	if b.Fade != 0.25 {
		t.Errorf("Fade = %v", b.Fade)
	}

	l := NewList("l", "", []string{"a"}, nil, 0)
	s.ApplyList(l)
	if !colorNear(l.ItemColors[ListActive], Color{0, 0, 1, 1}) {
		t.Errorf("active item = %v", l.ItemColors[ListActive])
	}
	if l.LabelRect.AnchorMax != (Vec2{0.4, 1}) {
		t.Errorf("LabelRect = %+v", l.LabelRect)
	}
	if !l.PrevButton().UseColorMod || !l.NextButton().UseColorMod {
		t.Error("arrow style not applied")
	}
}

func TestLoadStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown state", "button:\n  label:\n    hovered: \"#ffffff\"\n", "unknown state"},
		{"button state on list", "list:\n  background:\n    pressed: \"#ffffff\"\n", "unknown state"},
		{"bad color", "list:\n  label:\n    normal: \"#12\"\n", "color"},
		{"malformed", "button: [", "parse style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStyle([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.HasPrefix(err.Error(), "canopy: parse style") {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestDefaultStyleValid(t *testing.T) {
	s := DefaultStyle()
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
	b := NewButton("b", "", nil)
	s.ApplyButton(b)
	if b.LabelColors[ButtonNormal] != paletteOrange5 {
		t.Errorf("normal label = %v", b.LabelColors[ButtonNormal])
	}
}
