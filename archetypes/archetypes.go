package archetypes

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.Flash,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Sprite,
		components.Physics,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Object,
		components.Sprite,
		components.Physics,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
