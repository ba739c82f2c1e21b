package systems

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies vertical kinematics to the cat. The cat never moves
// horizontally; the world scrolls past it instead.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		// A dead cat freezes where it was hit
		state := components.State.Get(e)
		if state.CurrentState == cfg.Dead {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.SpeedY += physics.Gravity
		obj.Y += physics.SpeedY

		groundY := cfg.C.GroundLevel - obj.H
		if obj.Y >= groundY {
			obj.Y = groundY
			physics.SpeedY = 0
			physics.OnGround = true
		} else {
			physics.OnGround = false
		}

		obj.Update()
	})
}
