// Package ecs provides ECS adapters for canopy.
package ecs

import (
	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UIEventType is the Donburi event type for canopy widget events.
var UIEventType = events.NewEventType[canopy.UIEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// published to UIEventType and delivered on the next ProcessEvents call.
func NewDonburiStore(world donburi.World) canopy.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canopy.UIEvent) {
	UIEventType.Publish(s.world, event)
}
