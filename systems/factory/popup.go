package factory

import (
	"image/color"

	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePopup spawns a rising score callout centered above (x, y).
func CreatePopup(ecs *ecs.ECS, text string, col color.RGBA, x, y float64) *donburi.Entry {
	p := archetypes.Popup.Spawn(ecs)

	components.Popup.SetValue(p, components.PopupData{
		Text:        text,
		Color:       col,
		Pos:         components.Vector{X: x, Y: y},
		RiseSpeed:   cfg.Scoring.PopupRiseSpeed,
		TotalFrames: cfg.Scoring.PopupLifeFrames,
	})
	components.AutoDestroy.SetValue(p, components.AutoDestroyData{
		FramesRemaining: cfg.Scoring.PopupLifeFrames,
	})

	return p
}
