package canopy

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestTTF(t *testing.T, size float64) *TTFFont {
	t.Helper()
	f, err := LoadTTFFont(goregular.TTF, size)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	return f
}

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a font"), 16)
	if err == nil {
		t.Fatal("expected error for invalid TTF data")
	}
	if !strings.HasPrefix(err.Error(), "canopy: parse TTF data") {
		t.Errorf("err = %v", err)
	}
}

func TestTTFFont_Metrics(t *testing.T) {
	f := loadTestTTF(t, 16)
	if f.Size() != 16 {
		t.Errorf("Size = %v", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
	if f.Face() == nil {
		t.Error("Face should not be nil")
	}
}

func TestTTFFont_MeasureString(t *testing.T) {
	f := loadTestTTF(t, 16)
	w1, h1 := f.MeasureString("A")
	w2, _ := f.MeasureString("AAAA")
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("MeasureString(A) = %v x %v", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text should be wider: %v <= %v", w2, w1)
	}
	if w, _ := f.MeasureString(""); w != 0 {
		t.Errorf("empty width = %v", w)
	}
}

func TestTTFFont_WithSize(t *testing.T) {
	f := loadTestTTF(t, 12)
	big := f.WithSize(24)
	if big.Size() != 24 || f.Size() != 12 {
		t.Errorf("sizes = %v, %v", f.Size(), big.Size())
	}
	if big.LineHeight() <= f.LineHeight() {
		t.Error("larger size should have a larger line height")
	}
}
