// Package ecs provides ECS adapters for reed.
package ecs

import (
	"github.com/phloemgames/reed"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for reed collision events.
// Subscribe to this in your ECS systems to receive point and quad contacts.
var CollisionEventType = events.NewEventType[reed.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collision events are published to CollisionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) reed.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event reed.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
