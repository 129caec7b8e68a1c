package canopy

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadSpriteSheet parses TexturePacker JSON describing regions of img.
// Both the hash format ("frames" object keyed by name) and the array format
// ("frames" list with a "filename" per entry) are accepted. Hash frames are
// indexed in name order, array frames in list order.
func LoadSpriteSheet(jsonData []byte, img *ebiten.Image) (*SpriteSheet, error) {
	var probe struct {
		Frames json.RawMessage `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("canopy: parse sprite sheet: %w", err)
	}
	if len(probe.Frames) == 0 {
		return nil, fmt.Errorf("canopy: parse sprite sheet: missing \"frames\" key")
	}

	var frames []namedFrame
	var err error
	switch probe.Frames[0] {
	case '{':
		frames, err = parseHashFrames(probe.Frames)
	case '[':
		frames, err = parseArrayFrames(probe.Frames)
	default:
		err = fmt.Errorf("\"frames\" must be an object or an array")
	}
	if err != nil {
		return nil, fmt.Errorf("canopy: parse sprite sheet: %w", err)
	}

	sheet := &SpriteSheet{Image: img, names: make(map[string]int, len(frames))}
	for _, f := range frames {
		if _, dup := sheet.names[f.name]; dup {
			return nil, fmt.Errorf("canopy: parse sprite sheet: duplicate frame %q", f.name)
		}
		sheet.names[f.name] = len(sheet.Regions)
		sheet.Regions = append(sheet.Regions, f.rect)
	}
	return sheet, nil
}

// Index returns the region index of the named frame, or -1 with a warning
// when the sheet has no such frame.
func (s *SpriteSheet) Index(name string) int {
	if s != nil {
		if i, ok := s.names[name]; ok {
			return i
		}
	}
	warnf("sprite sheet: frame %q not found", name)
	return -1
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
}

type namedFrame struct {
	name string
	rect image.Rectangle
}

// parseHashFrames parses {"name": {frame...}, ...}.
func parseHashFrames(raw json.RawMessage) ([]namedFrame, error) {
	var m map[string]jsonFrame
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	frames := make([]namedFrame, 0, len(names))
	for _, name := range names {
		r, err := frameRect(name, m[name])
		if err != nil {
			return nil, err
		}
		frames = append(frames, namedFrame{name, r})
	}
	return frames, nil
}

// parseArrayFrames parses [{"filename": "...", "frame": {...}}, ...].
func parseArrayFrames(raw json.RawMessage) ([]namedFrame, error) {
	var list []jsonFrame
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	frames := make([]namedFrame, 0, len(list))
	for i, f := range list {
		if f.Filename == "" {
			return nil, fmt.Errorf("frame %d has no filename", i)
		}
		r, err := frameRect(f.Filename, f)
		if err != nil {
			return nil, err
		}
		frames = append(frames, namedFrame{f.Filename, r})
	}
	return frames, nil
}

// frameRect converts a frame to image coordinates. The packed rect is used
// as is, so rotated frames draw rotated.
func frameRect(name string, f jsonFrame) (image.Rectangle, error) {
	w, h := f.Frame.W, f.Frame.H
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("frame %q has empty size %dx%d", name, w, h)
	}
	return image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+w, f.Frame.Y+h), nil
}
