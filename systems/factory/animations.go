package factory

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/assets/animations"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "cat") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		SpriteSheets: make(map[cfg.StateID]*ebiten.Image),
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CachedFrames: make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.Running, // Default state
	}

	for state, def := range defs {
		sprite := assets.GetSheet(key, state)
		animData.SpriteSheets[state] = sprite

		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = cfg.FreezeStates[state]
		animData.Animations[state] = anim

		// Pre-calculate frames
		frames := make(map[int]*ebiten.Image)
		step := def.Step
		if step <= 0 {
			step = 1
		}

		for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex += step {
			sx := sheetIndex * frameWidth
			sy := 0
			srcRect := image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)
			// Use the global frame cache to avoid creating duplicate images
			frames[sheetIndex] = assets.GetFrame(key, state, sheetIndex, srcRect)
		}
		animData.CachedFrames[state] = frames
	}

	return animData
}
