package canopy

// EventType identifies a kind of UI event.
type EventType uint8

const (
	EventClick        EventType = iota // a button was activated
	EventFocusChanged                  // a registered element changed focus state
	EventItemChanged                   // a list moved to another item
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventFocusChanged:
		return "focus-changed"
	case EventItemChanged:
		return "item-changed"
	}
	return "unknown"
}

// EventStore is the interface for optional ECS integration.
// When set on a Scene, UI events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event UIEvent)
}

// UIEvent carries UI event data for the ECS bridge.
type UIEvent struct {
	Type   EventType
	NodeID uint32
	Name   string
	UserID int

	// Focus fields (valid for EventFocusChanged)
	Focus     FocusState
	PrevFocus FocusState

	// List fields (valid for EventItemChanged)
	Item     int
	PrevItem int
	Increase bool
}

// eventSink is shared by every element registered with one focus manager.
// A nil sink or a nil store drops events.
type eventSink struct {
	store EventStore
}

func (s *eventSink) emit(e UIEvent) {
	if s == nil || s.store == nil {
		return
	}
	s.store.EmitEvent(e)
}
