package canopy

import (
	"math"
	"testing"
)

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func box(x0, y0, x1, y1 float64) AABB {
	return AABB{Lower: Vec2{x0, y0}, Upper: Vec2{x1, y1}}
}

// --- AABB ---

func TestAABBContainsEdges(t *testing.T) {
	b := box(0, 0, 10, 5)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{5, 2}, true},
		{Vec2{0, 0}, true},
		{Vec2{10, 5}, true},
		{Vec2{10.01, 2}, false},
		{Vec2{5, -0.01}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestAABBShortestVector(t *testing.T) {
	a := box(0, 0, 1, 1)
	tests := []struct {
		name string
		o    AABB
		want Vec2
	}{
		{"right", box(2, 0, 3, 1), Vec2{1, 0}},
		{"left", box(-4, 0, -2, 1), Vec2{-2, 0}},
		{"above", box(0, 3, 1, 4), Vec2{0, 2}},
		{"below right", box(3, -3, 4, -1), Vec2{2, -1}},
		{"overlapping", box(0.5, 0.5, 2, 2), Vec2{0, 0}},
		{"touching", box(1, 0, 2, 1), Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ShortestVector(tt.o); !vecNear(got, tt.want) {
				t.Errorf("ShortestVector = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBSizeCenter(t *testing.T) {
	b := box(2, 4, 6, 10)
	if got := b.Size(); got != (Vec2{4, 6}) {
		t.Errorf("Size = %v", got)
	}
	if got := b.Center(); got != (Vec2{4, 7}) {
		t.Errorf("Center = %v", got)
	}
}

// --- AnchorRect ---

func TestResolveNilParentUsesOffsets(t *testing.T) {
	r := AnchorRect{
		AnchorMin: Vec2{0.5, 0.5},
		AnchorMax: Vec2{1, 1},
		OffsetMin: Vec2{10, 20},
		OffsetMax: Vec2{30, 40},
	}
	if got := r.Resolve(nil); got != box(10, 20, 30, 40) {
		t.Errorf("Resolve(nil) = %v", got)
	}
}

func TestResolveAnchorsAndOffsets(t *testing.T) {
	parent := box(100, 50, 300, 150)
	tests := []struct {
		name string
		r    AnchorRect
		want AABB
	}{
		{"fill", FillParent, parent},
		{"right half", RectFromAnchors(Vec2{0.5, 0}, Vec2{1, 1}), box(200, 50, 300, 150)},
		{"inset", FillParent.Inset(Vec2{5, 10}), box(105, 60, 295, 140)},
		{"point anchor", AnchorRect{
			AnchorMin: Vec2{0, 1}, AnchorMax: Vec2{0, 1},
			OffsetMin: Vec2{2, -12}, OffsetMax: Vec2{80, -2},
		}, box(102, 138, 180, 148)},
		{"outside parent", RectFromAnchors(Vec2{1, 0}, Vec2{1.5, 1}), box(300, 50, 400, 150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Resolve(&parent); !vecNear(got.Lower, tt.want.Lower) || !vecNear(got.Upper, tt.want.Upper) {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Viewport ---

func TestViewportToPixelsFlipsY(t *testing.T) {
	vp := Viewport{Size: Vec2{100, 50}, PixelsPerUnit: Vec2{2, 3}}
	got := vp.ToPixels(box(10, 30, 20, 50))
	want := Rect{X: 20, Y: 0, Width: 20, Height: 60}
	if got != want {
		t.Errorf("ToPixels = %+v, want %+v", got, want)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := DefaultViewport
	for _, p := range []Vec2{{0, 0}, {320, 180}, {12.5, 300}, {640, 360}} {
		if got := vp.ToUI(vp.ToPixel(p)); !vecNear(got, p) {
			t.Errorf("ToUI(ToPixel(%v)) = %v", p, got)
		}
	}
}

func TestViewportTopLeftPixelIsTopOfUI(t *testing.T) {
	vp := DefaultViewport
	if got := vp.ToUI(Vec2{0, 0}); got != (Vec2{0, 360}) {
		t.Errorf("ToUI(0,0) = %v, want (0,360)", got)
	}
	w, h := vp.PixelSize()
	if w != 1280 || h != 720 {
		t.Errorf("PixelSize = %dx%d, want 1280x720", w, h)
	}
}

func TestViewportZeroScale(t *testing.T) {
	vp := Viewport{Size: Vec2{10, 10}}
	if got := vp.ToUI(Vec2{5, 5}); got != (Vec2{}) {
		t.Errorf("ToUI with zero scale = %v, want zero", got)
	}
}
