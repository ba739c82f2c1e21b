package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData stores the overlay presentation state (singleton component).
// The restart input is live the moment the phase flips; the delay and fade
// only gate the overlay drawing.
type GameOverData struct {
	DelayFrames int // frames until the overlay starts fading in
	Fade        *gween.Tween
	Alpha       float32
	Visible     bool
}

// GameOver is the component type for game over overlay state
var GameOver = donburi.NewComponentType[GameOverData]()
