package systems

import (
	"github.com/mossfell/catdash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates particle motion and expires dead particles.
// Particles keep moving during game over so the impact burst finishes.
func UpdateParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		p.Vel.Y += p.Gravity
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y

		p.TTL--
		if p.TTL <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}
