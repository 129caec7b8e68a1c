package canopy

import (
	"image"
	"strings"
	"testing"
)

// --- Test JSON fixtures ---

const hashSheetJSON = `{
  "frames": {
    "play.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 16},
      "rotated": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 16},
      "sourceSize": {"w": 64, "h": 16}
    },
    "arrow.png": {
      "frame": {"x": 64, "y": 0, "w": 8, "h": 8},
      "rotated": false
    },
    "back.png": {
      "frame": {"x": 0, "y": 16, "w": 64, "h": 16}
    }
  },
  "meta": {"image": "ui.png", "size": {"w": 128, "h": 32}}
}`

const arraySheetJSON = `{
  "frames": [
    {"filename": "normal", "frame": {"x": 0, "y": 0, "w": 32, "h": 32}},
    {"filename": "focused", "frame": {"x": 32, "y": 0, "w": 32, "h": 32}}
  ]
}`

func TestLoadSpriteSheetHash(t *testing.T) {
	sheet, err := LoadSpriteSheet([]byte(hashSheetJSON), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Len() != 3 {
		t.Fatalf("Len = %d, want 3", sheet.Len())
	}

	// Name order: arrow, back, play.
	tests := []struct {
		name  string
		index int
		rect  image.Rectangle
	}{
		{"arrow.png", 0, image.Rect(64, 0, 72, 8)},
		{"back.png", 1, image.Rect(0, 16, 64, 32)},
		{"play.png", 2, image.Rect(0, 0, 64, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := sheet.Index(tt.name)
			if i != tt.index {
				t.Fatalf("Index = %d, want %d", i, tt.index)
			}
			if sheet.Regions[i] != tt.rect {
				t.Errorf("region = %v, want %v", sheet.Regions[i], tt.rect)
			}
		})
	}
}

func TestLoadSpriteSheetArray(t *testing.T) {
	sheet, err := LoadSpriteSheet([]byte(arraySheetJSON), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Index("normal") != 0 || sheet.Index("focused") != 1 {
		t.Errorf("array frames should keep list order")
	}
	if sheet.Regions[1] != image.Rect(32, 0, 64, 32) {
		t.Errorf("region 1 = %v", sheet.Regions[1])
	}
}

func TestLoadSpriteSheetErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"invalid json", `{`, "parse sprite sheet"},
		{"no frames", `{"meta": {}}`, "missing"},
		{"frames scalar", `{"frames": 3}`, "object or an array"},
		{"empty size", `{"frames": {"a": {"frame": {"x": 0, "y": 0, "w": 0, "h": 4}}}}`, `frame "a" has empty size`},
		{"no filename", `{"frames": [{"frame": {"x": 0, "y": 0, "w": 4, "h": 4}}]}`, "frame 0 has no filename"},
		{"duplicate", `{"frames": [
			{"filename": "a", "frame": {"x": 0, "y": 0, "w": 4, "h": 4}},
			{"filename": "a", "frame": {"x": 4, "y": 0, "w": 4, "h": 4}}
		]}`, `duplicate frame "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpriteSheet([]byte(tt.data), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestSpriteSheetIndexMissing(t *testing.T) {
	buf := captureLog(t)
	sheet, err := LoadSpriteSheet([]byte(arraySheetJSON), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := sheet.Index("pressed"); got != -1 {
		t.Errorf("Index = %d, want -1", got)
	}
	if !strings.Contains(buf.String(), `frame "pressed" not found`) {
		t.Errorf("log = %q", buf.String())
	}

	var nilSheet *SpriteSheet
	if nilSheet.Index("x") != -1 {
		t.Error("nil sheet should return -1")
	}
}

func TestGridSpriteSheetHasNoNames(t *testing.T) {
	captureLog(t)
	sheet := &SpriteSheet{Regions: []image.Rectangle{image.Rect(0, 0, 1, 1)}}
	if sheet.Index("anything") != -1 {
		t.Error("grid sheets have no frame names")
	}
}
