package canopy

import "math"

// AABB is an axis-aligned box in UI units, Y up.
type AABB struct {
	Lower, Upper Vec2
}

// Size returns the extent of the box. Degenerate boxes may yield negative sizes.
func (b AABB) Size() Vec2 {
	return b.Upper.Sub(b.Lower)
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec2 {
	return b.Lower.Add(b.Upper).Scale(0.5)
}

// Contains reports whether p lies inside the box, edges included.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X &&
		p.Y >= b.Lower.Y && p.Y <= b.Upper.Y
}

// Overlaps reports whether the two boxes share any area or edge.
func (b AABB) Overlaps(o AABB) bool {
	return b.Lower.X <= o.Upper.X && b.Upper.X >= o.Lower.X &&
		b.Lower.Y <= o.Upper.Y && b.Upper.Y >= o.Lower.Y
}

// ShortestVector returns the smallest translation from b to o on each axis:
// zero where the projections overlap, otherwise the gap between the nearest
// edges, signed toward o.
func (b AABB) ShortestVector(o AABB) Vec2 {
	var v Vec2
	switch {
	case b.Upper.X < o.Lower.X:
		v.X = o.Lower.X - b.Upper.X
	case o.Upper.X < b.Lower.X:
		v.X = o.Upper.X - b.Lower.X
	}
	switch {
	case b.Upper.Y < o.Lower.Y:
		v.Y = o.Lower.Y - b.Upper.Y
	case o.Upper.Y < b.Lower.Y:
		v.Y = o.Upper.Y - b.Lower.Y
	}
	return v
}

// AnchorRect positions a node relative to its parent. Anchors are fractions
// of the parent's size measured from its lower corner; offsets are absolute
// UI units added on top. Anchors are not clamped, so values outside [0, 1]
// place the node outside its parent.
type AnchorRect struct {
	AnchorMin Vec2 `yaml:"anchorMin"`
	AnchorMax Vec2 `yaml:"anchorMax"`
	OffsetMin Vec2 `yaml:"offsetMin"`
	OffsetMax Vec2 `yaml:"offsetMax"`
}

// FillParent is the default rect: the node covers its parent exactly.
var FillParent = AnchorRect{AnchorMax: Vec2{1, 1}}

// RectFromOffsets returns a zero-anchored rect spanning lower to upper. For a
// parentless node this is its absolute box.
func RectFromOffsets(lower, upper Vec2) AnchorRect {
	return AnchorRect{OffsetMin: lower, OffsetMax: upper}
}

// RectFromAnchors returns an offset-free rect spanning the given fractions of
// the parent.
func RectFromAnchors(lo, hi Vec2) AnchorRect {
	return AnchorRect{AnchorMin: lo, AnchorMax: hi}
}

// Inset returns r with both corners pulled toward the center by d.
func (r AnchorRect) Inset(d Vec2) AnchorRect {
	r.OffsetMin = r.OffsetMin.Add(d)
	r.OffsetMax = r.OffsetMax.Sub(d)
	return r
}

// Resolve computes the box of r inside parent. With a nil parent the offsets
// are taken as the absolute box.
func (r AnchorRect) Resolve(parent *AABB) AABB {
	if parent == nil {
		return AABB{Lower: r.OffsetMin, Upper: r.OffsetMax}
	}
	size := parent.Size()
	return AABB{
		Lower: parent.Lower.Add(size.Mul(r.AnchorMin)).Add(r.OffsetMin),
		Upper: parent.Lower.Add(size.Mul(r.AnchorMax)).Add(r.OffsetMax),
	}
}

// Viewport maps UI units to window pixels. Size is the UI extent in units;
// PixelsPerUnit is the scale on each axis.
type Viewport struct {
	Size          Vec2 `yaml:"size"`
	PixelsPerUnit Vec2 `yaml:"pixelsPerUnit"`
}

// DefaultViewport covers 640x360 UI units at two pixels per unit.
var DefaultViewport = Viewport{
	Size:          Vec2{640, 360},
	PixelsPerUnit: Vec2{2, 2},
}

// PixelSize returns the window size in pixels.
func (vp Viewport) PixelSize() (int, int) {
	return int(math.Round(vp.Size.X * vp.PixelsPerUnit.X)),
		int(math.Round(vp.Size.Y * vp.PixelsPerUnit.Y))
}

// ToPixels converts a UI box to a pixel rectangle, flipping Y.
func (vp Viewport) ToPixels(b AABB) Rect {
	size := b.Size()
	return Rect{
		X:      b.Lower.X * vp.PixelsPerUnit.X,
		Y:      (vp.Size.Y - b.Upper.Y) * vp.PixelsPerUnit.Y,
		Width:  size.X * vp.PixelsPerUnit.X,
		Height: size.Y * vp.PixelsPerUnit.Y,
	}
}

// ToUI converts a pixel position to UI units.
func (vp Viewport) ToUI(px Vec2) Vec2 {
	if vp.PixelsPerUnit.X == 0 || vp.PixelsPerUnit.Y == 0 {
		return Vec2{}
	}
	return Vec2{
		X: px.X / vp.PixelsPerUnit.X,
		Y: (vp.Size.Y*vp.PixelsPerUnit.Y - px.Y) / vp.PixelsPerUnit.Y,
	}
}

// ToPixel converts a UI position to pixels.
func (vp Viewport) ToPixel(p Vec2) Vec2 {
	return Vec2{
		X: p.X * vp.PixelsPerUnit.X,
		Y: (vp.Size.Y - p.Y) * vp.PixelsPerUnit.Y,
	}
}
