package factory

import (
	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a shot at the muzzle position, flying right.
func CreateProjectile(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Projectile.Width, cfg.Projectile.Height, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX: cfg.Projectile.Speed,
	})
	components.Sprite.SetValue(p, components.SpriteData{
		Image: assets.GetProjectileImage(),
		Scale: 1,
	})

	return p
}
