package canopy

import (
	"errors"
	"testing"
)

// newTestScene returns a headless scene using the default 640x360 viewport
// at two pixels per unit.
func newTestScene(t *testing.T) *Scene {
	t.Helper()
	prev := globalDebug
	t.Cleanup(func() { globalDebug = prev })
	s := NewScene(DefaultConfig())
	s.InputSource().SetHeadless(true)
	return s
}

// addButton places a button at the given UI box and registers it.
func addButton(t *testing.T, s *Scene, name string, b AABB) *Button {
	t.Helper()
	btn := s.NewButton(name, name, nil)
	btn.Rect = RectFromOffsets(b.Lower, b.Upper)
	if err := s.Add(btn); err != nil {
		t.Fatal(err)
	}
	return btn
}

func TestNewScene(t *testing.T) {
	s := newTestScene(t)
	if s.Canvas() == nil || s.Focus() == nil || s.InputSource() == nil {
		t.Fatal("scene parts should be created")
	}
	if s.Viewport() != DefaultViewport {
		t.Errorf("Viewport = %+v", s.Viewport())
	}
	if got := s.Canvas().AABB(); got != box(0, 0, 640, 360) {
		t.Errorf("canvas box = %v", got)
	}
	w, h := s.Layout()
	if w != 1280 || h != 720 {
		t.Errorf("Layout = %dx%d", w, h)
	}
}

func TestNewSceneInvalidViewportFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport = Viewport{}
	s := NewScene(cfg)
	if s.Viewport() != DefaultViewport {
		t.Errorf("Viewport = %+v, want default", s.Viewport())
	}
}

func TestSceneAddRegistersFocusables(t *testing.T) {
	captureLog(t)
	s := newTestScene(t)
	b := addButton(t, s, "b", box(0, 0, 10, 10))
	if err := s.Add(NewLabel("l", "text", nil)); err != nil {
		t.Fatal(err)
	}
	if s.Focus().Len() != 1 {
		t.Errorf("focus Len = %d, want 1", s.Focus().Len())
	}
	if b.Parent != &s.Canvas().Node {
		t.Error("button should be attached to the canvas")
	}
	if err := s.Add(b); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Add err = %v, want ErrDuplicate", err)
	}
}

func TestSceneAddRejectedStaysDetached(t *testing.T) {
	withDebug(t, false)
	captureLog(t)
	cfg := DefaultConfig()
	cfg.FocusCapacity = 1
	s := NewScene(cfg)
	s.InputSource().SetHeadless(true)
	addButton(t, s, "kept", box(0, 0, 10, 10))

	extra := s.NewButton("extra", "extra", nil)
	if err := s.Add(extra); !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
	if extra.Parent != nil {
		t.Error("rejected element should not be attached to the canvas")
	}
	if s.Canvas().NumChildren() != 1 {
		t.Errorf("canvas children = %d, want 1", s.Canvas().NumChildren())
	}
}

func TestSceneStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = DefaultStyle()
	s := NewScene(cfg)
	b := s.NewButton("b", "B", nil)
	if b.LabelColors[ButtonNormal] != paletteOrange5 {
		t.Errorf("label = %v", b.LabelColors[ButtonNormal])
	}
	l := s.NewList("l", "L", []string{"x"}, nil, 0)
	if l.LabelRect.OffsetMin != (Vec2{10, 0}) {
		t.Errorf("LabelRect = %+v", l.LabelRect)
	}

	plain := newTestScene(t).NewButton("p", "P", nil)
	if plain.LabelColors[ButtonNormal] != Gray(200) {
		t.Error("scene without style should keep widget defaults")
	}
}

func TestSceneUpdateFocusesAndLaysOut(t *testing.T) {
	s := newTestScene(t)
	b := addButton(t, s, "b", box(10, 10, 60, 30))
	s.Update()
	if s.Focus().Focused() != &b.Selectable {
		t.Error("first update should focus the only button")
	}
	if got := b.AABB(); got != box(10, 10, 60, 30) {
		t.Errorf("button box = %v", got)
	}
	if b.State() != ButtonFocused {
		t.Errorf("State = %v", b.State())
	}
}

func TestSceneUpdateDropsDetached(t *testing.T) {
	captureLog(t)
	s := newTestScene(t)
	a := addButton(t, s, "a", box(0, 0, 10, 10))
	b := addButton(t, s, "b", box(20, 0, 30, 10))
	s.Update()
	b.RemoveFromParent()
	s.Update()
	if s.Focus().Len() != 1 || s.Focus().Focused() != &a.Selectable {
		t.Errorf("len=%d focused=%v", s.Focus().Len(), s.Focus().Focused())
	}
}

func TestSceneRender(t *testing.T) {
	s := newTestScene(t)
	addButton(t, s, "b", box(10, 10, 60, 30))
	s.Update()
	rec := &recordingRenderer{}
	s.Render(rec)
	if len(rec.calls) != 1 || rec.calls[0] != "fill {20 660 100 40}" {
		t.Errorf("calls = %v", rec.calls)
	}

	s.SetGizmos(true)
	rec = &recordingRenderer{}
	s.Render(rec)
	if len(rec.calls) != 3 {
		t.Errorf("gizmo calls = %v", rec.calls)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene(t)
	s.SetDebugMode(true)
	if !globalDebug {
		t.Error("globalDebug should be true")
	}
	s.SetDebugMode(false)
	if globalDebug {
		t.Error("globalDebug should be false")
	}
}

func TestSceneSetEventStore(t *testing.T) {
	s := newTestScene(t)
	store := &recordingStore{}
	s.SetEventStore(store)
	addButton(t, s, "b", box(10, 10, 60, 30))
	s.Update()
	if store.count(EventFocusChanged) != 1 {
		t.Errorf("events = %+v", store.events)
	}
}
