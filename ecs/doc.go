// Package ecs provides ECS adapters for motion stages.
//
// [NewDonburiSink] bridges trigger transitions (a block entering or leaving
// the viewport) into a [Donburi] world as typed events. Subscribe to
// [TriggerEventType] in your ECS systems to receive them.
//
// [Sync] copies sampled properties onto entities that carry a [Target]
// component, so systems can read [Appearance] instead of querying the stage.
//
// Usage:
//
//	stage.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.Attach(world, "features", "upload")
//	// every frame, after stage.Tick:
//	ecs.Sync(world, stage)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
