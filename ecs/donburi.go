package ecs

import (
	"github.com/phanxgames/rotladder"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LadderEventType is the Donburi event type for rotladder animation events.
var LadderEventType = events.NewEventType[rotladder.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to LadderEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) rotladder.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event rotladder.Event) {
	LadderEventType.Publish(s.world, event)
}
