// Package ecs provides ECS adapters for deck.
package ecs

import (
	"github.com/phanxgames/deck"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for deck transition events.
var TransitionEventType = events.NewEventType[deck.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transition events are published to TransitionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) deck.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTransition(event deck.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
