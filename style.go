package canopy

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- Hex colors ---

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("canopy: color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("canopy: color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// UnmarshalText lets colors be written as hex strings in style sheets.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes c as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	ch := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", ch(c.R), ch(c.G), ch(c.B), ch(c.A))), nil
}

// --- Palette ---

// Menu palette used by DefaultStyle.
var (
	paletteGray6   = RGB(0x86, 0x8e, 0x96)
	paletteGray7   = RGB(0x49, 0x50, 0x57)
	paletteGray8   = RGB(0x34, 0x3a, 0x40)
	paletteGray9   = RGB(0x21, 0x25, 0x29)
	paletteOrange4 = RGB(0xff, 0xa9, 0x4d)
	paletteOrange5 = RGB(0xff, 0x92, 0x2b)
	paletteOrange6 = RGB(0xfd, 0x7e, 0x14)
)

// --- Style sheets ---

// StateColors maps state names ("normal", "focused", ...) to colors. States
// left out keep the widget's current color.
type StateColors map[string]Color

// ButtonStyle styles a button.
type ButtonStyle struct {
	Label       StateColors `yaml:"label"`
	Background  StateColors `yaml:"background"`
	LabelAnchor *Vec2       `yaml:"labelAnchor"`
	UseColorMod *bool       `yaml:"useColorMod"`
	Fade        *float64    `yaml:"fade"`
}

// ListStyle styles a list and its arrow buttons.
type ListStyle struct {
	Label      StateColors `yaml:"label"`
	Item       StateColors `yaml:"item"`
	Background StateColors `yaml:"background"`
	LabelRect  *AnchorRect `yaml:"labelRect"`
	ItemRect   *AnchorRect `yaml:"itemRect"`
	Fade       *float64    `yaml:"fade"`
	Arrows     ButtonStyle `yaml:"arrows"`
}

// Style is a style sheet for the menu widgets.
type Style struct {
	Button ButtonStyle `yaml:"button"`
	List   ListStyle   `yaml:"list"`
}

// DefaultStyle returns the orange-on-gray menu look.
func DefaultStyle() *Style {
	pressed := paletteGray8.Lerp(paletteGray9, 0.5)
	labels := StateColors{"normal": paletteOrange5, "focused": paletteOrange4, "pressed": paletteOrange6}
	useColorMod := true
	return &Style{
		Button: ButtonStyle{
			Label:      labels,
			Background: StateColors{"normal": paletteGray8, "focused": paletteGray7, "pressed": pressed},
		},
		List: ListStyle{
			Background: StateColors{"normal": paletteGray8, "focused": paletteGray7, "active": pressed},
			LabelRect: &AnchorRect{
				AnchorMax: Vec2{0.5, 1},
				OffsetMin: Vec2{10, 0},
			},
			Arrows: ButtonStyle{
				Label:       labels,
				Background:  StateColors{"normal": {}, "focused": paletteGray6, "pressed": pressed},
				UseColorMod: &useColorMod,
			},
		},
	}
}

// LoadStyle parses a YAML style sheet. Unknown state names are errors.
func LoadStyle(data []byte) (*Style, error) {
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("canopy: parse style: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("canopy: parse style: %w", err)
	}
	return &s, nil
}

func (s *Style) validate() error {
	checks := []struct {
		what   string
		colors StateColors
		names  []string
	}{
		{"button.label", s.Button.Label, buttonStateNames[:]},
		{"button.background", s.Button.Background, buttonStateNames[:]},
		{"list.label", s.List.Label, listStateNames()},
		{"list.item", s.List.Item, listStateNames()},
		{"list.background", s.List.Background, listStateNames()},
		{"list.arrows.label", s.List.Arrows.Label, buttonStateNames[:]},
		{"list.arrows.background", s.List.Arrows.Background, buttonStateNames[:]},
	}
	for _, c := range checks {
		for name := range c.colors {
			if stateIndex(c.names, name) < 0 {
				return fmt.Errorf("%s: unknown state %q", c.what, name)
			}
		}
	}
	return nil
}

func listStateNames() []string {
	names := make([]string, ListStateCount)
	for i := range names {
		names[i] = ListState(i).String()
	}
	return names
}

func stateIndex(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

func (sc StateColors) applyTo(dst []Color, names []string) {
	for name, c := range sc {
		if i := stateIndex(names, name); i >= 0 {
			dst[i] = c
		}
	}
}

// ApplyButton copies the button style onto b.
func (s *Style) ApplyButton(b *Button) {
	s.Button.apply(b)
}

func (bs *ButtonStyle) apply(b *Button) {
	bs.Label.applyTo(b.LabelColors[:], buttonStateNames[:])
	bs.Background.applyTo(b.BackColors[:], buttonStateNames[:])
	if bs.LabelAnchor != nil {
		b.LabelAnchor = *bs.LabelAnchor
	}
	if bs.UseColorMod != nil {
		b.UseColorMod = *bs.UseColorMod
	}
	if bs.Fade != nil {
		b.Fade = *bs.Fade
	}
}

// ApplyList copies the list style onto l and its arrow buttons.
func (s *Style) ApplyList(l *List) {
	ls := &s.List
	names := listStateNames()
	ls.Label.applyTo(l.LabelColors[:], names)
	ls.Item.applyTo(l.ItemColors[:], names)
	ls.Background.applyTo(l.BackColors[:], names)
	if ls.LabelRect != nil {
		l.LabelRect = *ls.LabelRect
	}
	if ls.ItemRect != nil {
		l.ItemRect = *ls.ItemRect
	}
	if ls.Fade != nil {
		l.Fade = *ls.Fade
	}
	ls.Arrows.apply(l.prevButton)
	ls.Arrows.apply(l.nextButton)
}
