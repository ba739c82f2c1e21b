package systems

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies shots to the right and drops them once they
// leave the screen. Obstacle hits are resolved by the collision pass,
// after everything has moved.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		obj.Update()

		if obj.X > float64(cfg.C.Width)+50 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}
