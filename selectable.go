package canopy

// FocusState is the navigation state of a selectable element.
type FocusState uint8

const (
	FocusNormal FocusState = iota
	FocusFocused
	FocusDisabled
)

func (s FocusState) String() string {
	switch s {
	case FocusNormal:
		return "normal"
	case FocusFocused:
		return "focused"
	case FocusDisabled:
		return "disabled"
	}
	return "unknown"
}

// selectableHooks extends nodeHooks with the focus callbacks a widget
// overrides.
type selectableHooks interface {
	nodeHooks
	focusChanged(curr, prev FocusState)
	focus(in *Input)
}

// Focusable is any widget that can be registered with a FocusManager.
type Focusable interface {
	Element
	selectable() *Selectable
}

// Selectable is a node that can receive focus. Buttons and lists embed it.
type Selectable struct {
	Node

	focusState FocusState
	handled    ActionFlags

	// UserID is free for application use, typically to tell apart the
	// elements sharing one callback.
	UserID int

	// OnFocusChanged runs after the widget has reacted to a focus change.
	OnFocusChanged func(s *Selectable, curr, prev FocusState)
	// OnFocus runs every frame the element holds focus, after the widget
	// has processed the input.
	OnFocus func(s *Selectable, in *Input)

	sh     selectableHooks
	events *eventSink
}

// NewSelectable creates a bare selectable with no visual of its own.
func NewSelectable(name string) *Selectable {
	s := &Selectable{}
	initSelectable(s, name, 0, nil)
	return s
}

func initSelectable(s *Selectable, name string, kind Kind, sh selectableHooks) {
	nodeDefaults(&s.Node, name, KindSelectable|kind)
	if sh == nil {
		sh = s
	}
	s.sh = sh
	s.Node.hooks = sh
}

func (s *Selectable) selectable() *Selectable { return s }

// AsSelectable returns the selectable behind e, if any.
func AsSelectable(e Element) (*Selectable, bool) {
	n := e.node()
	if n == nil || !n.Is(KindSelectable) {
		return nil, false
	}
	f, ok := n.hooks.(Focusable)
	if !ok {
		return nil, false
	}
	return f.selectable(), true
}

// FocusState returns the current focus state.
func (s *Selectable) FocusState() FocusState { return s.focusState }

// SetFocusState changes the focus state. No-op when unchanged; otherwise the
// widget reacts first and OnFocusChanged runs second.
func (s *Selectable) SetFocusState(state FocusState) {
	prev := s.focusState
	if prev == state {
		return
	}
	s.focusState = state
	s.sh.focusChanged(state, prev)
	if s.OnFocusChanged != nil {
		s.OnFocusChanged(s, state, prev)
	}
	s.events.emit(UIEvent{
		Type:      EventFocusChanged,
		NodeID:    s.ID,
		Name:      s.Name,
		UserID:    s.UserID,
		Focus:     state,
		PrevFocus: prev,
	})
}

// Focus delivers this frame's input to the focused element.
func (s *Selectable) Focus(in *Input) {
	s.sh.focus(in)
	if s.OnFocus != nil {
		s.OnFocus(s, in)
	}
}

// HandledActions returns the actions the element consumes this frame.
func (s *Selectable) HandledActions() ActionFlags { return s.handled }

// SetHandledActions replaces the consumed action set. Widgets recompute it
// during their own update.
func (s *Selectable) SetHandledActions(flags ActionFlags) { s.handled = flags }

// ShouldHandleAction reports whether any action in flags is consumed.
func (s *Selectable) ShouldHandleAction(flags ActionFlags) bool {
	return s.handled&flags != 0
}

// Default hooks for a bare selectable.

func (s *Selectable) update(dt float64) { s.updateRect() }
func (s *Selectable) render(rc *RenderContext) {}
func (s *Selectable) destroy() {}
func (s *Selectable) focusChanged(curr, prev FocusState) {}
func (s *Selectable) focus(in *Input) {}
