package factory

import (
	"math/rand"

	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an obstacle of the given kind just past the right
// screen edge. speedOffset is a small per-obstacle variation added to the
// world scroll speed each frame.
func CreateObstacle(ecs *ecs.ECS, kind cfg.ObstacleKind, speedOffset float64) *donburi.Entry {
	kc := cfg.Obstacles.Kinds[kind]
	scale := cfg.Obstacles.ScaleMin + rand.Float64()*(cfg.Obstacles.ScaleMax-cfg.Obstacles.ScaleMin)

	w := (kc.Width - 2*kc.HitboxInsetX) * scale
	h := (kc.Height - 2*kc.HitboxInsetY) * scale

	// Ground obstacles rest on the ground line; balloons hang above it so
	// only an airborne cat can reach them.
	x := float64(cfg.C.Width)
	y := cfg.C.GroundLevel - h
	isBalloon := kind == cfg.Balloon
	if isBalloon {
		lift := cfg.Obstacles.BalloonFloatMin + rand.Float64()*(cfg.Obstacles.BalloonFloatMax-cfg.Obstacles.BalloonFloatMin)
		y = cfg.C.GroundLevel - lift - h
	}

	var obstacle *donburi.Entry
	if isBalloon {
		obstacle = archetypes.Obstacle.Spawn(ecs, components.Tween)
	} else {
		obstacle = archetypes.Obstacle.Spawn(ecs)
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Kind:  kind,
		Scale: scale,
		BaseY: y,
	})
	components.Physics.SetValue(obstacle, components.PhysicsData{
		SpeedX: speedOffset,
	})
	components.Sprite.SetValue(obstacle, components.SpriteData{
		Image: assets.GetObstacleImage(kind),
		Scale: scale,
	})

	if isBalloon {
		amp := float32(cfg.Obstacles.BalloonBobAmplitude)
		half := cfg.Obstacles.BalloonBobFrames / 60
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, -amp, half, ease.InOutSine),
			gween.New(-amp, amp, half*2, ease.InOutSine),
			gween.New(amp, 0, half, ease.InOutSine),
		)
		components.Tween.Set(obstacle, tw)
	}

	return obstacle
}
