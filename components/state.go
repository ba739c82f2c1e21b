package components

import (
	"github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

type RunningState struct{}
type JumpingState struct{}
type SlidingState struct{}
type DeadState struct{}

var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Sliding = donburi.NewComponentType[SlidingState]()
var Dead = donburi.NewComponentType[DeadState]()
