package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the canvas, the focus manager, the
// input source and the render backend.
type Scene struct {
	canvas   *Canvas
	focus    *FocusManager
	input    *InputSource
	viewport Viewport
	style    *Style
	debug    bool
	gizmos   bool

	renderer ScreenRenderer

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	injectQueue     []syntheticFrame
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a scene from cfg.
func NewScene(cfg Config) *Scene {
	if cfg.Viewport.Size.X <= 0 || cfg.Viewport.Size.Y <= 0 {
		cfg.Viewport = DefaultViewport
	}
	s := &Scene{
		canvas:        NewCanvasSized("canvas", cfg.Viewport.Size, cfg.CanvasMaxElements),
		focus:         NewFocusManager(cfg.FocusCapacity),
		input:         NewInputSource(cfg.Input),
		viewport:      cfg.Viewport,
		style:         cfg.Style,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	s.focus.SetCanvas(s.canvas)
	s.SetDebugMode(cfg.Debug)
	return s
}

// Canvas returns the root of the scene's UI tree.
func (s *Scene) Canvas() *Canvas { return s.canvas }

// Focus returns the scene's focus manager.
func (s *Scene) Focus() *FocusManager { return s.focus }

// Input returns the input snapshot of the current frame.
func (s *Scene) Input() *Input { return s.input.Input() }

// InputSource returns the device poller, e.g. to change bindings.
func (s *Scene) InputSource() *InputSource { return s.input }

// Viewport returns the UI to pixel mapping.
func (s *Scene) Viewport() Viewport { return s.viewport }

// Add registers e with the focus manager when it is focusable and attaches
// it under the canvas. A failed registration leaves e unattached.
func (s *Scene) Add(e Element) error {
	if f, ok := e.(Focusable); ok {
		if err := s.focus.Add(f); err != nil {
			return err
		}
	}
	s.canvas.AddChild(e)
	return nil
}

// NewButton creates a button styled with the scene's style sheet.
func (s *Scene) NewButton(name, label string, font Font) *Button {
	b := NewButton(name, label, font)
	if s.style != nil {
		s.style.ApplyButton(b)
	}
	return b
}

// NewList creates a list styled with the scene's style sheet.
func (s *Scene) NewList(name, label string, items []string, font Font, flags ListFlags) *List {
	l := NewList(name, label, items, font, flags)
	if s.style != nil {
		s.style.ApplyList(l)
	}
	return l
}

// Update runs one frame: input, focus, then the tree.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	raw, ok := s.nextInjected()
	if !ok {
		raw = s.input.poll()
	}
	in := s.input.advance(raw, s.viewport)

	// Membership must reflect nodes attached since the last frame.
	s.canvas.RecordObjects()
	s.focus.Update(in)
	s.canvas.Update(dt)
}

// Draw renders the tree onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.renderer.Target = screen
	s.Render(&s.renderer)
	s.flushScreenshots(screen)
}

// Render draws the tree with any backend.
func (s *Scene) Render(r Renderer) {
	rc := RenderContext{Renderer: r, Viewport: s.viewport, Gizmos: s.gizmos}
	s.canvas.Render(&rc)
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.focus.SetEventStore(store)
}

// SetDebugMode enables or disables debug mode. When enabled, precondition
// violations and disposed-node access panic, tree depth and child count
// warnings are printed, and debug diagnostics are written.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetGizmos toggles outlines around every node box and grid cell.
func (s *Scene) SetGizmos(enabled bool) {
	s.gizmos = enabled
}

// Layout returns the logical screen size for ebiten.Game.
func (s *Scene) Layout() (int, int) {
	return s.viewport.PixelSize()
}
