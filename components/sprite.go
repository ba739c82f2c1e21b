package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image
	// Uniform draw scale. Obstacles get a per-spawn scale jitter.
	Scale float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
