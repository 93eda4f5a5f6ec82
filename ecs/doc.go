// Package ecs provides ECS adapters for reed's collision event system.
//
// The primary adapter is [NewDonburiSink], which bridges reed collision
// events (point-point and quad-quad contacts) into a [Donburi] world as
// typed events. Subscribe to [CollisionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sim.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
