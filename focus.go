package canopy

// DefaultFocusCapacity is the number of elements a focus manager accepts.
const DefaultFocusCapacity = 256

// navigationPenalty weighs sideways distance against forward distance when
// scoring directional candidates.
const navigationPenalty = 2.0

const scoreEpsilon = 1e-5

// FocusManager owns the set of focusable elements and decides, every frame,
// which one holds focus: first by dropping stale entries, then by following
// the pointer, then by directional navigation.
type FocusManager struct {
	canvas   *Canvas
	elements []*Selectable
	capacity int
	focused  *Selectable
	enabled  bool
	sink     eventSink
}

// NewFocusManager creates a manager holding up to capacity elements. A
// non-positive capacity selects DefaultFocusCapacity.
func NewFocusManager(capacity int) *FocusManager {
	if capacity <= 0 {
		capacity = DefaultFocusCapacity
	}
	return &FocusManager{
		elements: make([]*Selectable, 0, capacity),
		capacity: capacity,
		enabled:  true,
	}
}

// SetCanvas sets the canvas whose membership validates registered elements.
func (m *FocusManager) SetCanvas(c *Canvas) { m.canvas = c }

// SetEnabled turns the whole manager on or off.
func (m *FocusManager) SetEnabled(enabled bool) { m.enabled = enabled }

// Enabled reports whether the manager runs.
func (m *FocusManager) Enabled() bool { return m.enabled }

// SetEventStore forwards focus, click and item events of registered
// elements to store. Nil disables forwarding.
func (m *FocusManager) SetEventStore(store EventStore) { m.sink.store = store }

// Len returns the number of registered elements.
func (m *FocusManager) Len() int { return len(m.elements) }

// Focused returns the focused element, or nil.
func (m *FocusManager) Focused() *Selectable { return m.focused }

// Add registers f. Full managers return ErrCapacity and duplicates
// ErrDuplicate; neither changes anything.
func (m *FocusManager) Add(f Focusable) error {
	s := f.selectable()
	if len(m.elements) >= m.capacity {
		warnf("focus manager is full (%d elements), %q not added", m.capacity, s.Name)
		return ErrCapacity
	}
	if m.indexOf(s) >= 0 {
		warnf("focus manager: %q (id %d) is already registered", s.Name, s.ID)
		return ErrDuplicate
	}
	m.elements = append(m.elements, s)
	s.events = &m.sink
	return nil
}

// Remove unregisters f, clearing focus if f held it. Unknown elements are
// ignored.
func (m *FocusManager) Remove(f Focusable) {
	m.removeAt(m.indexOf(f.selectable()))
}

// Clear unregisters every element and clears focus.
func (m *FocusManager) Clear() {
	for _, s := range m.elements {
		s.events = nil
	}
	clear(m.elements)
	m.elements = m.elements[:0]
	m.focused = nil
}

// SetFocused moves focus to f, which must be registered.
func (m *FocusManager) SetFocused(f Focusable) {
	s := f.selectable()
	if !precondition(m.indexOf(s) >= 0, "focus manager: %q is not registered", s.Name) {
		return
	}
	if !precondition(s.FocusState() != FocusDisabled, "focus manager: %q is disabled", s.Name) {
		return
	}
	m.setFocus(s)
}

func (m *FocusManager) indexOf(s *Selectable) int {
	for i, e := range m.elements {
		if e == s {
			return i
		}
	}
	return -1
}

// removeAt swap-removes the element at i.
func (m *FocusManager) removeAt(i int) {
	if i < 0 {
		return
	}
	s := m.elements[i]
	if s == m.focused {
		m.focused = nil
	}
	s.events = nil
	last := len(m.elements) - 1
	m.elements[i] = m.elements[last]
	m.elements[last] = nil
	m.elements = m.elements[:last]
}

// setFocus is the only place focus moves.
func (m *FocusManager) setFocus(s *Selectable) {
	if s == m.focused {
		return
	}
	prev := m.focused
	m.focused = s
	if prev != nil {
		prev.SetFocusState(FocusNormal)
	}
	if s != nil {
		s.SetFocusState(FocusFocused)
	}
}

// Update runs one frame of focus handling.
func (m *FocusManager) Update(in *Input) {
	if !m.enabled || len(m.elements) == 0 {
		return
	}
	m.validate()
	if m.focused == nil {
		return
	}
	m.updatePointer(in)
	m.updateNavigation(in)
}

// validate drops elements that left the canvas, resets stray focus states
// and makes sure some valid element holds focus.
func (m *FocusManager) validate() {
	if m.canvas != nil && m.canvas.Rebuilt() {
		for i := 0; i < len(m.elements); {
			s := m.elements[i]
			if m.canvas.HasObject(s.ID) {
				i++
				continue
			}
			warnf("focus manager: %q is no longer in canvas %q, removed", s.Name, m.canvas.Name)
			m.removeAt(i)
		}
	}

	var first *Selectable
	focusedValid := false
	for _, s := range m.elements {
		if s.FocusState() == FocusDisabled {
			continue
		}
		if first == nil {
			first = s
		}
		if s == m.focused {
			focusedValid = true
			continue
		}
		s.SetFocusState(FocusNormal)
	}
	if !focusedValid {
		m.focused = nil
	}
	if m.focused == nil && first != nil {
		m.setFocus(first)
	}
}

func (m *FocusManager) updatePointer(in *Input) {
	if in.PointerMoved {
		for _, s := range m.elements {
			if s.FocusState() == FocusDisabled {
				continue
			}
			if s.aabb.Contains(in.PointerUI) {
				m.setFocus(s)
				break
			}
		}
	}
	if in.LastDevice == DevicePointer {
		m.focused.Focus(in)
	}
}

func (m *FocusManager) updateNavigation(in *Input) {
	if in.LastDevice == DevicePointer || m.focused == nil {
		return
	}
	nav := in.NavFlags()
	handled := m.focused.ShouldHandleAction(nav)
	m.focused.Focus(in)
	if handled || nav == 0 {
		return
	}
	if next := m.searchNext(in); next != nil {
		m.setFocus(next)
	}
}

// searchNext picks the element closest to the focused one in the requested
// direction. Candidates behind or level with the focused box are ignored;
// sideways distance costs navigationPenalty times forward distance. Ties go to
// the candidate further left.
func (m *FocusManager) searchNext(in *Input) *Selectable {
	var dir Vec2
	if in.Right {
		dir.X++
	}
	if in.Left {
		dir.X--
	}
	if in.Up {
		dir.Y++
	}
	if in.Down {
		dir.Y--
	}
	dir = dir.Normalize()
	if dir == (Vec2{}) {
		return nil
	}
	perp := dir.Perp()

	from := m.focused.aabb
	var best *Selectable
	bestScore := 0.0
	for _, s := range m.elements {
		if s == m.focused || s.FocusState() == FocusDisabled {
			continue
		}
		v := from.ShortestVector(s.aabb)
		forward := v.Dot(dir)
		if forward <= 0 {
			continue
		}
		side := v.Dot(perp)
		if side < 0 {
			side = -side
		}
		score := forward + navigationPenalty*side
		switch {
		case best == nil, score < bestScore-scoreEpsilon:
			best, bestScore = s, score
		case score-bestScore < scoreEpsilon && s.aabb.Lower.X < best.aabb.Lower.X:
			best, bestScore = s, score
		}
	}
	return best
}
