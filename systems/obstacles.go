package systems

import (
	"github.com/mossfell/catdash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles scrolls obstacles left at the world speed and removes
// the ones that have fully left the screen.
func UpdateObstacles(ecs *ecs.ECS) {
	gs := GetOrCreateGameState(ecs)
	var toRemove []*donburi.Entry

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X -= gs.Speed + physics.SpeedX
		updateBalloonBob(e, obj)
		obj.Update()

		if obj.X+obj.W < 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

// updateBalloonBob drives the balloon's vertical oscillation around its
// resting height.
func updateBalloonBob(e *donburi.Entry, obj *components.ObjectData) {
	if !e.HasComponent(components.Tween) {
		return
	}

	obstacle := components.Obstacle.Get(e)
	tw := components.Tween.Get(e)
	offset, _, seqDone := tw.Update(1.0 / 60.0)
	obj.Y = obstacle.BaseY + float64(offset)
	if seqDone {
		tw.Reset()
	}
}

// removeEntity drops an entity and its collision object from the world.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
