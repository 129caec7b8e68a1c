// Package ecs provides ECS adapters for canopy's widget event system.
//
// The primary adapter is [NewDonburiStore], which bridges widget events
// (click, focus change, list item change) into a [Donburi] world as typed
// events. Subscribe to [UIEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
