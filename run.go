package canopy

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit can be returned from RunConfig.OnUpdate to end Run cleanly.
var ErrQuit = errors.New("canopy: quit")

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size in pixels. Zero uses the
	// viewport's pixel size.
	Width, Height int
	// Background fills the screen before the tree is drawn.
	Background Color
	// OnUpdate runs after Scene.Update every tick. Returning ErrQuit stops
	// the loop without an error.
	OnUpdate func() error
}

// Run opens a window and drives scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = scene.Layout()
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.toRGBA())
	}
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.scene.Layout()
}
