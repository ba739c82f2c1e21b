package systems

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates keeps the cat's state tag components in sync with its
// StateData so queries can filter by state without reading it.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		updateCatStateTags(e, state)
	})
}

func updateCatStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	// Remove all state tags
	removeAllStateTags(e)

	// Add the current state tag
	switch state.CurrentState {
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Sliding:
		donburi.Add(e, components.Sliding, &components.SlidingState{})
	case cfg.Dead:
		donburi.Add(e, components.Dead, &components.DeadState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.SlidingState](e, components.Sliding)
	donburi.Remove[components.DeadState](e, components.Dead)
}
