package canopy

// DefaultCanvasElements is the number of nodes a canvas records by default.
const DefaultCanvasElements = 128

// Canvas is the root of a UI tree. Every update it snapshots the IDs of all
// nodes below it, enabled or not, so focus candidates that left the tree can
// be dropped.
type Canvas struct {
	Node

	set      *idSet
	rebuilds int
	overflow bool
}

// NewCanvas creates a canvas covering size UI units from the origin.
func NewCanvas(name string, size Vec2) *Canvas {
	return NewCanvasSized(name, size, DefaultCanvasElements)
}

// NewCanvasSized creates a canvas able to record maxElements nodes.
func NewCanvasSized(name string, size Vec2, maxElements int) *Canvas {
	if maxElements <= 0 {
		maxElements = DefaultCanvasElements
	}
	c := &Canvas{set: newIDSet(maxElements)}
	nodeDefaults(&c.Node, name, KindCanvas)
	c.Node.hooks = c
	c.Rect = RectFromOffsets(Vec2{}, size)
	c.updateRect()
	return c
}

// AsCanvas returns the canvas behind e, if any.
func AsCanvas(e Element) (*Canvas, bool) {
	n := e.node()
	if n == nil || !n.Is(KindCanvas) {
		return nil, false
	}
	c, ok := n.hooks.(*Canvas)
	return c, ok
}

// HasObject reports whether id was below the canvas at the last rebuild.
func (c *Canvas) HasObject(id uint32) bool {
	return c.set.has(id)
}

// Len returns the number of IDs recorded at the last rebuild.
func (c *Canvas) Len() int {
	return c.set.size
}

// Rebuilt reports whether the membership set has been built at least once.
func (c *Canvas) Rebuilt() bool {
	return c.rebuilds > 0
}

// RecordObjects rebuilds the membership set from the current tree.
func (c *Canvas) RecordObjects() {
	c.set.clear()
	c.overflow = false
	c.Node.walk(c.record)
	c.rebuilds++
}

func (c *Canvas) record(n *Node) {
	switch c.set.insert(n.ID) {
	case alreadyPresent:
		debugf("canvas %q: node %q recorded twice", c.Name, n.Name)
	case setFull:
		if !c.overflow {
			errorf("canvas %q: more than %d elements, %q and later nodes not recorded", c.Name, c.set.limit, n.Name)
			c.overflow = true
		}
	}
}

// --- Hooks ---

func (c *Canvas) update(dt float64) {
	c.updateRect()
	c.RecordObjects()
}

func (c *Canvas) render(rc *RenderContext) {}

func (c *Canvas) destroy() {
	c.set.clear()
}
