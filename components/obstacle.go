package components

import (
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
)

// ObstacleData holds one scrolling obstacle's kind and scoring state.
type ObstacleData struct {
	Kind  cfg.ObstacleKind
	Scale float64

	// Set once the score tracker has counted this obstacle.
	Passed bool

	// Resting top edge of the hitbox. Balloons bob around it.
	BaseY float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
