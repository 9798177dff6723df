// Package ecs provides ECS adapters for rotladder's animation events.
//
// The primary adapter is [NewDonburiSink], which bridges ladder events
// (started, node completed, reversed, stopped) into a [Donburi] world as typed
// events. Subscribe to [LadderEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	renderer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
