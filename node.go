package canopy

import "strings"

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, canopy is single-threaded).
// Zero is never handed out; the canvas membership set uses it as the empty
// slot marker.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Kind ---

// Kind is a bitmask of the capabilities a node carries. A button is
// KindNode|KindSelectable|KindButton.
type Kind uint16

const (
	KindNode Kind = 1 << iota
	KindCanvas
	KindSelectable
	KindButton
	KindList
	KindGrid
	KindLabel
	KindImage
	KindFillRect
)

var kindNames = [...]string{"Node", "Canvas", "Selectable", "Button", "List", "Grid", "Label", "Image", "FillRect"}

func (k Kind) String() string {
	var parts []string
	for i, name := range kindNames {
		if k&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// --- Hooks ---

// nodeHooks is the per-kind behavior table. Widgets implement it and install
// themselves into their embedded Node.
type nodeHooks interface {
	update(dt float64)
	render(rc *RenderContext)
	destroy()
}

// Element is anything that wraps a Node: the Node itself and every widget
// embedding one.
type Element interface {
	node() *Node
}

// --- Node ---

// Node is the fundamental element of the UI tree. Its box is recomputed from
// Rect and the parent's box on every update pass.
type Node struct {
	// Identity
	ID   uint32
	Name string
	kind Kind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local)
	Rect AnchorRect

	// Computed during the update pass
	aabb AABB

	// Enabled nodes take part in update and render passes. Disabled nodes
	// are skipped together with their subtree but still belong to the tree.
	Enabled bool

	// Metadata
	UserData any

	// Per-node callbacks (nil by default). OnUpdate runs after the node's own
	// update and before its children; OnRender likewise for rendering.
	OnUpdate func(n *Node, dt float64)
	OnRender func(n *Node, rc *RenderContext)

	hooks    nodeHooks
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node, name string, kind Kind) {
	n.ID = nextNodeID()
	n.Name = name
	n.kind = KindNode | kind
	n.Rect = FillParent
	n.Enabled = true
}

// NewNode creates a plain node that fills its parent.
func NewNode(name string) *Node {
	n := &Node{}
	nodeDefaults(n, name, 0)
	return n
}

func (n *Node) node() *Node { return n }

// Kind returns the node's capability mask.
func (n *Node) Kind() Kind { return n.kind }

// Is reports whether the node carries every capability in k.
func (n *Node) Is(k Kind) bool { return n.kind&k == k }

// Widget returns the widget that owns this node, or the node itself for a
// plain node.
func (n *Node) Widget() any {
	if n.hooks != nil {
		return n.hooks
	}
	return n
}

// AABB returns the box computed by the last update pass.
func (n *Node) AABB() AABB { return n.aabb }

// SetRect replaces the local anchor rect. The box follows on the next update.
func (n *Node) SetRect(r AnchorRect) { n.Rect = r }

// ViewportRect returns the node's box in window pixels.
func (n *Node) ViewportRect(vp Viewport) Rect {
	return vp.ToPixels(n.aabb)
}

// --- Tree manipulation ---

// SetParent moves the node under parent, appending it after existing
// children. A nil parent detaches the node. Panics if parent is a descendant
// of the node (cycle).
func (n *Node) SetParent(parent Element) {
	var p *Node
	if parent != nil {
		p = parent.node()
	}
	if globalDebug {
		debugCheckDisposed(n, "SetParent")
		if p != nil {
			debugCheckDisposed(p, "SetParent (parent)")
		}
	}
	if p == n.Parent {
		return
	}
	if p != nil && isAncestor(n, p) {
		panic("canopy: reparenting would create a cycle")
	}
	if n.Parent != nil {
		n.Parent.removeChildByPtr(n)
	}
	n.Parent = p
	if p == nil {
		return
	}
	p.children = append(p.children, n)
	if globalDebug {
		debugCheckTreeDepth(n)
		debugCheckChildCount(p)
	}
}

// AddChild attaches child under n. Panics if child is nil.
func (n *Node) AddChild(child Element) {
	if child == nil || child.node() == nil {
		panic("canopy: cannot add nil child")
	}
	child.node().SetParent(n)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	n.SetParent(nil)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Passes ---

// Update recomputes the node's box, runs its update hook and then updates the
// children in order. Disabled nodes are skipped with their subtree.
func (n *Node) Update(dt float64) {
	if !n.Enabled || n.disposed {
		return
	}
	if n.hooks != nil {
		n.hooks.update(dt)
	} else {
		n.updateRect()
	}
	if n.OnUpdate != nil {
		n.OnUpdate(n, dt)
	}
	for _, child := range n.children {
		child.Update(dt)
	}
}

// updateRect resolves Rect against the parent's current box.
func (n *Node) updateRect() {
	if n.Parent == nil {
		n.aabb = n.Rect.Resolve(nil)
		return
	}
	parent := n.Parent.aabb
	n.aabb = n.Rect.Resolve(&parent)
}

// Render draws the node and then its children. It never changes the tree.
func (n *Node) Render(rc *RenderContext) {
	if !n.Enabled || n.disposed {
		return
	}
	if n.hooks != nil {
		n.hooks.render(rc)
	}
	if rc.Gizmos {
		rc.StrokeRect(n.ViewportRect(rc.Viewport), gizmoColor)
	}
	if n.OnRender != nil {
		n.OnRender(n, rc)
	}
	for _, child := range n.children {
		child.Render(rc)
	}
}

// --- Disposal ---

// Destroy detaches the node, destroys every descendant (children first) and
// then releases the node itself.
func (n *Node) Destroy() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.destroy()
}

func (n *Node) destroy() {
	for _, child := range n.children {
		child.Parent = nil
		child.destroy()
	}
	n.children = nil
	if n.hooks != nil {
		n.hooks.destroy()
	}
	n.disposed = true
	n.ID = 0
	n.Parent = nil
	n.UserData = nil
	n.OnUpdate = nil
	n.OnRender = nil
}

// IsDisposed returns true if this node has been destroyed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// walk visits n and every descendant depth-first, enabled or not.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}
