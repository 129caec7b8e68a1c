package canopy

import (
	"image/color"
	"math"
	"testing"
)

// --- Color ---

func TestRGBAndGray(t *testing.T) {
	if got := RGB(255, 0, 51); !colorNear(got, Color{1, 0, 0.2, 1}) {
		t.Errorf("RGB = %v", got)
	}
	if got := Gray(0); got != (Color{0, 0, 0, 1}) {
		t.Errorf("Gray(0) = %v", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 0.5, 0.25, 1}
	if got := a.Lerp(b, 0.5); !colorNear(got, Color{0.5, 0.25, 0.125, 0.5}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got := c.toRGBA(); got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
	if got := (Color{2, -1, 0, 1}).toRGBA(); got.R != 255 || got.G != 0 {
		t.Errorf("out-of-range channels should clamp, got %v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := ColorWhite.WithAlpha(0.3); got.A != 0.3 || got.R != 1 {
		t.Errorf("WithAlpha = %v", got)
	}
}

// --- Vec2 ---

func TestVec2Ops(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{1, 2}
	if a.Add(b) != (Vec2{4, 6}) || a.Sub(b) != (Vec2{2, 2}) || a.Mul(b) != (Vec2{3, 8}) {
		t.Error("Add/Sub/Mul mismatch")
	}
	if a.Scale(2) != (Vec2{6, 8}) || a.Dot(b) != 11 || a.Len() != 5 {
		t.Error("Scale/Dot/Len mismatch")
	}
}

func TestVec2Perp(t *testing.T) {
	if got := (Vec2{1, 0}).Perp(); got != (Vec2{0, -1}) {
		t.Errorf("Perp(1,0) = %v", got)
	}
	v := Vec2{0.3, -2}
	if v.Dot(v.Perp()) != 0 {
		t.Error("Perp should be orthogonal")
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{1, 1}.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 || math.Abs(n.X-n.Y) > 1e-12 {
		t.Errorf("Normalize = %v", n)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should stay zero")
	}
}

// --- Rect ---

func TestRectContainsIntersects(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	if !r.Contains(15, 15) || r.Contains(31, 15) {
		t.Error("Contains mismatch")
	}
	if !r.Intersects(Rect{X: 25, Y: 15, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(Rect{X: 40, Y: 10, Width: 5, Height: 5}) {
		t.Error("disjoint rects should not intersect")
	}
}
