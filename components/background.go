package components

import (
	"github.com/mossfell/catdash/assets"
	"github.com/yohamta/donburi"
)

// CloudData is one drifting background cloud.
type CloudData struct {
	Pos   Vector
	Speed float64
	Scale float64
}

// BackgroundData holds the active theme and the drifting decor state
// (singleton component). Clouds and layer offsets keep moving even while
// the run itself is frozen.
type BackgroundData struct {
	ThemeIndex int
	Theme      *assets.Theme

	// Horizontal scroll offset per parallax layer, far to near.
	LayerOffsets []float64

	Clouds        []CloudData
	CloudCooldown int
}

var Background = donburi.NewComponentType[BackgroundData]()
