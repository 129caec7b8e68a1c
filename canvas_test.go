package canopy

import (
	"strings"
	"testing"
)

// --- idSet ---

func TestIDSetInsertHas(t *testing.T) {
	s := newIDSet(8)
	if len(s.slots) < 16 {
		t.Errorf("slots = %d, want at least twice the limit", len(s.slots))
	}
	for id := uint32(1); id <= 8; id++ {
		if r := s.insert(id); r != inserted {
			t.Fatalf("insert(%d) = %v", id, r)
		}
	}
	if r := s.insert(9); r != setFull {
		t.Errorf("insert on full set = %v, want setFull", r)
	}
	if r := s.insert(3); r != alreadyPresent {
		t.Errorf("repeat insert on full set = %v, want alreadyPresent", r)
	}
	for id := uint32(1); id <= 8; id++ {
		if !s.has(id) {
			t.Errorf("has(%d) = false", id)
		}
	}
	if s.has(9) || s.has(0) {
		t.Error("has reported an absent ID")
	}
}

func TestIDSetDuplicate(t *testing.T) {
	s := newIDSet(4)
	s.insert(42)
	if r := s.insert(42); r != alreadyPresent {
		t.Errorf("second insert = %v, want alreadyPresent", r)
	}
	if s.size != 1 {
		t.Errorf("size = %d, want 1", s.size)
	}
}

func TestIDSetClear(t *testing.T) {
	s := newIDSet(4)
	s.insert(1)
	s.insert(2)
	s.clear()
	if s.size != 0 || s.has(1) || s.has(2) {
		t.Error("clear left entries behind")
	}
}

func TestIDSetManyCollisions(t *testing.T) {
	s := newIDSet(100)
	for id := uint32(1000); id < 1100; id++ {
		s.insert(id)
	}
	for id := uint32(1000); id < 1100; id++ {
		if !s.has(id) {
			t.Fatalf("has(%d) = false", id)
		}
	}
	if s.has(999) || s.has(1100) {
		t.Error("false positive")
	}
}

// --- Canvas ---

func TestCanvasRecordsWholeTree(t *testing.T) {
	c := NewCanvas("c", Vec2{100, 100})
	a := NewNode("a")
	b := NewNode("b")
	off := NewNode("off")
	under := NewNode("under")
	c.AddChild(a)
	a.AddChild(b)
	c.AddChild(off)
	off.AddChild(under)
	off.Enabled = false

	if c.Rebuilt() {
		t.Error("Rebuilt before any rebuild")
	}
	c.RecordObjects()
	if !c.Rebuilt() {
		t.Error("Rebuilt after rebuild")
	}
	for _, n := range []*Node{&c.Node, a, b, off, under} {
		if !c.HasObject(n.ID) {
			t.Errorf("HasObject(%q) = false", n.Name)
		}
	}
	if c.Len() != 5 {
		t.Errorf("Len = %d, want 5", c.Len())
	}

	stray := NewNode("stray")
	if c.HasObject(stray.ID) {
		t.Error("node outside the tree reported present")
	}
}

func TestCanvasRebuildDropsDetached(t *testing.T) {
	c := NewCanvas("c", Vec2{100, 100})
	a := NewNode("a")
	c.AddChild(a)
	c.Update(0)
	if !c.HasObject(a.ID) {
		t.Fatal("a missing after update")
	}
	a.RemoveFromParent()
	c.Update(0)
	if c.HasObject(a.ID) {
		t.Error("detached node still recorded")
	}
}

func TestCanvasOverflowReportedOnce(t *testing.T) {
	withDebug(t, false)
	buf := captureLog(t)

	c := NewCanvasSized("small", Vec2{10, 10}, 3)
	var nodes []*Node
	for i := 0; i < 5; i++ {
		n := NewNode("n")
		nodes = append(nodes, n)
		c.AddChild(n)
	}
	c.RecordObjects()

	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if !c.HasObject(c.ID) || !c.HasObject(nodes[0].ID) || !c.HasObject(nodes[1].ID) {
		t.Error("entries inserted before the overflow were lost")
	}
	if c.HasObject(nodes[2].ID) {
		t.Error("overflowing node was recorded")
	}
	if got := strings.Count(buf.String(), "[canopy] error:"); got != 1 {
		t.Errorf("overflow reported %d times, want 1:\n%s", got, buf.String())
	}
}

func TestCanvasUpdateSetsBox(t *testing.T) {
	c := NewCanvas("c", Vec2{320, 180})
	if got := c.AABB(); got != box(0, 0, 320, 180) {
		t.Errorf("AABB = %v", got)
	}
	if _, ok := AsCanvas(c); !ok {
		t.Error("AsCanvas failed")
	}
	if _, ok := AsCanvas(NewNode("n")); ok {
		t.Error("AsCanvas on a plain node should fail")
	}
}
