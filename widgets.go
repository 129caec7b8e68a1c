package canopy

// Label draws a line of text inside its box.
type Label struct {
	Node

	Text   string
	Font   Font
	Color  Color
	Anchor Vec2
}

// NewLabel creates a centered white label.
func NewLabel(name, text string, font Font) *Label {
	l := &Label{Text: text, Font: font, Color: ColorWhite, Anchor: AnchorCenter}
	nodeDefaults(&l.Node, name, KindLabel)
	l.Node.hooks = l
	return l
}

func (l *Label) update(dt float64) { l.updateRect() }

func (l *Label) render(rc *RenderContext) {
	if l.Text == "" || l.Font == nil {
		return
	}
	rc.DrawText(l.Text, l.Font, l.ViewportRect(rc.Viewport), l.Anchor, l.Color)
}

func (l *Label) destroy() {}

// Image draws one sprite stretched over its box.
type Image struct {
	Node

	Sprites *SpriteSheet
	Index   int
	// Tint multiplies the sprite when UseColorMod is set.
	Tint        Color
	UseColorMod bool
	Opacity     float64
}

// NewImage creates an opaque, untinted image.
func NewImage(name string, sprites *SpriteSheet, index int) *Image {
	img := &Image{Sprites: sprites, Index: index, Tint: ColorWhite, Opacity: 1}
	nodeDefaults(&img.Node, name, KindImage)
	img.Node.hooks = img
	return img
}

func (img *Image) update(dt float64) { img.updateRect() }

func (img *Image) render(rc *RenderContext) {
	if img.Sprites == nil || img.Index < 0 || img.Opacity <= 0 {
		return
	}
	tint := ColorWhite
	if img.UseColorMod {
		tint = img.Tint
	}
	tint.A *= img.Opacity
	rc.DrawSprite(img.Sprites, img.Index, img.ViewportRect(rc.Viewport), tint)
}

func (img *Image) destroy() { img.Sprites = nil }

// FillRect fills its box with a solid color.
type FillRect struct {
	Node

	Color   Color
	Opacity float64
}

// NewFillRect creates a filled rectangle of color c.
func NewFillRect(name string, c Color) *FillRect {
	f := &FillRect{Color: c, Opacity: 1}
	nodeDefaults(&f.Node, name, KindFillRect)
	f.Node.hooks = f
	return f
}

func (f *FillRect) update(dt float64) { f.updateRect() }

func (f *FillRect) render(rc *RenderContext) {
	c := f.Color
	c.A *= f.Opacity
	rc.FillRect(f.ViewportRect(rc.Viewport), c)
}

func (f *FillRect) destroy() {}
