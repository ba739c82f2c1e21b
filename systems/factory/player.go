package factory

import (
	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the cat on the ground in its lane.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := cfg.Player.LaneX
	y := cfg.C.GroundLevel - cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		ShotCount: 0,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Running,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		OnGround: true,
	})

	animData := GenerateAnimations("cat", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.CurrentAnimation = animData.Animations[cfg.Running]
	components.Animation.Set(player, animData)

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return player
}
