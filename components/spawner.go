package components

import "github.com/yohamta/donburi"

// SpawnerData counts down to the next obstacle (singleton component).
type SpawnerData struct {
	FramesUntilSpawn int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
