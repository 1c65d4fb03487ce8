// Package ecs provides ECS adapters for deck's transition events.
//
// The primary adapter is [NewDonburiSink], which bridges deck transition
// events (started, completed, forced, reflowed) into a [Donburi] world as
// typed events. Subscribe to [TransitionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	d, err := deck.NewDeck(cfg, deck.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
