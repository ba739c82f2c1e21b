package components

import "github.com/yohamta/donburi"

// Phase is the run's top-level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// GameStateData owns the run's bookkeeping (singleton component). The
// obstacle, projectile, particle and popup entities belong to the run and
// are cleared together with this record on restart.
type GameStateData struct {
	Phase Phase

	Score int
	Combo int // consecutive balloons passed

	// Current obstacle scroll speed, recomputed from the score.
	Speed float64

	HighScore    int
	NewHighScore bool // this run beat the stored high score
}

var GameState = donburi.NewComponentType[GameStateData]()
