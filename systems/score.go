package systems

import (
	"fmt"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameState returns the run-state singleton.
func GetOrCreateGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.GameState))
		components.GameState.SetValue(entry, components.GameStateData{
			Phase: components.PhaseRunning,
			Speed: ScrollSpeed(0),
		})
	}
	return components.GameState.Get(entry)
}

// WhileRunning wraps a system to skip execution once the run has ended.
// Effects, particles and the background keep their own systems unwrapped
// so the crash aftermath still plays out under the overlay.
func WhileRunning(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if gs := GetOrCreateGameState(e); gs.Phase != components.PhaseRunning {
			return
		}
		system(e)
	}
}

// UpdateScore counts obstacles the cat has cleared and feeds the combo,
// shot and difficulty bookkeeping. Runs after collisions, so a crash this
// frame scores nothing further.
func UpdateScore(ecs *ecs.ECS) {
	gs := GetOrCreateGameState(ecs)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		if obstacle.Passed {
			return
		}
		obj := components.Object.Get(e).Object

		// An obstacle counts the moment its right edge clears the cat's
		// left edge.
		if obj.X+obj.W >= playerObj.X {
			return
		}
		obstacle.Passed = true
		scorePass(ecs, gs, obstacle, obj)
	})
}

func scorePass(ecs *ecs.ECS, gs *components.GameStateData, obstacle *components.ObstacleData, obj *resolv.Object) {
	prevScore := gs.Score

	if obstacle.Kind == cfg.Balloon {
		gs.Score += cfg.Scoring.BalloonBonus
		gs.Combo++
		factory.CreatePopup(ecs, fmt.Sprintf("+%d BONUS!", cfg.Scoring.BalloonBonus), cfg.DarkRed, obj.X+obj.W/2, obj.Y-20)
		PlaySFX(ecs, cfg.SoundBonus)
	} else {
		gs.Score++
		gs.Combo = 0
		PlaySFX(ecs, cfg.SoundPoint)
	}

	// A running balloon chain pays out extra on each link
	if gs.Combo > 1 {
		gs.Score += gs.Combo / 2
	}
	if gs.Combo >= cfg.Scoring.ComboPopupMin {
		factory.CreatePopup(ecs, fmt.Sprintf("COMBO x%d!", gs.Combo), cfg.OliveGold, obj.X+obj.W/2, obj.Y-40)
	}

	grantShots(ecs, gs, prevScore)
	gs.Speed = ScrollSpeed(gs.Score)
}

// grantShots banks one shot for every multiple of ShotThreshold the score
// crossed in this scoring event, however large the jump was.
func grantShots(ecs *ecs.ECS, gs *components.GameStateData, prevScore int) {
	t := cfg.Scoring.ShotThreshold
	crossings := gs.Score/t - prevScore/t
	if crossings <= 0 {
		return
	}
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		components.Player.Get(playerEntry).ShotCount += crossings
	}
}
