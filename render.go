package canopy

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the drawing backend used by the render pass. All rectangles are
// in window pixels.
type Renderer interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	DrawSprite(sheet *SpriteSheet, index int, r Rect, tint Color)
	DrawText(s string, font Font, r Rect, anchor Vec2, c Color)
}

// RenderContext is threaded through the render pass.
type RenderContext struct {
	Renderer
	Viewport Viewport
	// Gizmos outlines every node box and grid cell.
	Gizmos bool
}

// --- Sprite sheets ---

// SpriteSheet is an image split into indexed regions.
type SpriteSheet struct {
	Image   *ebiten.Image
	Regions []image.Rectangle

	// names maps frame names to region indices for sheets loaded from JSON.
	names map[string]int
}

// NewGridSpriteSheet splits img into cells of cellW x cellH pixels, indexed
// row by row from the top-left.
func NewGridSpriteSheet(img *ebiten.Image, cellW, cellH int) *SpriteSheet {
	sheet := &SpriteSheet{Image: img}
	if cellW <= 0 || cellH <= 0 {
		return sheet
	}
	b := img.Bounds()
	for y := b.Min.Y; y+cellH <= b.Max.Y; y += cellH {
		for x := b.Min.X; x+cellW <= b.Max.X; x += cellW {
			sheet.Regions = append(sheet.Regions, image.Rect(x, y, x+cellW, y+cellH))
		}
	}
	return sheet
}

// Len returns the number of regions.
func (s *SpriteSheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Regions)
}

// Sprite returns the sub-image for index, or nil when out of range.
func (s *SpriteSheet) Sprite(index int) *ebiten.Image {
	if s == nil || s.Image == nil || index < 0 || index >= len(s.Regions) {
		return nil
	}
	return s.Image.SubImage(s.Regions[index]).(*ebiten.Image)
}

// --- Ebitengine backend ---

// ScreenRenderer draws onto an *ebiten.Image.
type ScreenRenderer struct {
	Target *ebiten.Image
	// StrokeWidth is the outline width in pixels. Zero means 1.
	StrokeWidth float32
}

func (r *ScreenRenderer) FillRect(rect Rect, c Color) {
	if c.A <= 0 || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	vector.DrawFilledRect(r.Target, float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height), c.toRGBA(), false)
}

func (r *ScreenRenderer) StrokeRect(rect Rect, c Color) {
	w := r.StrokeWidth
	if w == 0 {
		w = 1
	}
	vector.StrokeRect(r.Target, float32(rect.X), float32(rect.Y),
		float32(rect.Width), float32(rect.Height), w, c.toRGBA(), false)
}

func (r *ScreenRenderer) DrawSprite(sheet *SpriteSheet, index int, rect Rect, tint Color) {
	img := sheet.Sprite(index)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width/float64(b.Dx()), rect.Height/float64(b.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(tint.toRGBA())
	op.Filter = ebiten.FilterLinear
	r.Target.DrawImage(img, op)
}

func (r *ScreenRenderer) DrawText(s string, font Font, rect Rect, anchor Vec2, c Color) {
	f, ok := font.(*TTFFont)
	if !ok || s == "" {
		return
	}
	w, h := f.MeasureString(s)
	x, y := alignText(rect, w, h, anchor)
	f.draw(r.Target, s, x, y, c)
}

// alignText places a w x h text block inside r. anchor (0, 1) is the
// top-left corner, (0.5, 0.5) the center. The result is snapped to whole
// pixels.
func alignText(r Rect, w, h float64, anchor Vec2) (x, y float64) {
	x = r.X + anchor.X*(r.Width-w)
	y = r.Y + (1-anchor.Y)*(r.Height-h)
	return math.Round(x), math.Round(y)
}
