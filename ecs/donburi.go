package ecs

import (
	"github.com/shreyas4546/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TriggerEventType is the Donburi event type for motion trigger transitions.
// Subscribe to this in your ECS systems to react to blocks entering or
// leaving the viewport.
var TriggerEventType = events.NewEventType[motion.TriggerEvent]()

// TargetData names the animated node an entity mirrors. An empty Node means
// the block's root.
type TargetData struct {
	Block string
	Node  string
}

// Target marks an entity as following one node of a stage block.
var Target = donburi.NewComponentType[TargetData]()

// Appearance holds the node's properties as of the last Sync.
var Appearance = donburi.NewComponentType[motion.Props]()

// Lifecycle holds the node's state as of the last Sync.
var Lifecycle = donburi.NewComponentType[motion.State]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTrigger(event motion.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}

// Attach creates an entity that mirrors node of block.
func Attach(world donburi.World, block, node string) donburi.Entity {
	e := world.Create(Target, Appearance, Lifecycle)
	entry := world.Entry(e)
	Target.SetValue(entry, TargetData{Block: block, Node: node})
	Appearance.SetValue(entry, motion.Rest)
	return e
}

var targetQuery = donburi.NewQuery(filter.Contains(Target, Appearance, Lifecycle))

// Sync samples every attached node at the stage's current clock time and
// stores the result on its entity. motion.SceneBlock mirrors the scene's
// badges. Entities naming an unknown block are set to Rest and Pending.
func Sync(world donburi.World, stage *motion.Stage) {
	now := stage.Now()
	targetQuery.Each(world, func(entry *donburi.Entry) {
		tgt := Target.Get(entry)
		r := stage.Reveal(tgt.Block)
		if r == nil {
			Appearance.SetValue(entry, motion.Rest)
			Lifecycle.SetValue(entry, motion.StatePending)
			return
		}
		id := tgt.Node
		if id == "" {
			if root := r.Schedule().Root(); root != nil {
				id = root.ID
			}
		}
		Appearance.SetValue(entry, r.Sample(id, now))
		Lifecycle.SetValue(entry, r.State(id, now))
	})
}
