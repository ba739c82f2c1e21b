package systems

import (
	"math/rand"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// ScrollSpeed returns the world scroll speed for a score. The curve is a
// step function: +SpeedStep per SpeedStepScore points, capped at MaxSpeed.
func ScrollSpeed(score int) float64 {
	d := cfg.Difficulty
	speed := d.BaseSpeed + float64(score/d.SpeedStepScore)*d.SpeedStep
	if speed > d.MaxSpeed {
		speed = d.MaxSpeed
	}
	return speed
}

// SpawnInterval returns the frames between obstacle spawns for a score.
// The gap narrows by IntervalStepFrames per IntervalStepScore points and
// never drops below MinIntervalFrames.
func SpawnInterval(score int) int {
	d := cfg.Difficulty
	interval := d.BaseIntervalFrames - (score/d.IntervalStepScore)*d.IntervalStepFrames
	if interval < d.MinIntervalFrames {
		interval = d.MinIntervalFrames
	}
	return interval
}

// UpdateSpawner counts down to the next obstacle and spawns it when due.
func UpdateSpawner(ecs *ecs.ECS) {
	spawner := getOrCreateSpawner(ecs)
	gs := GetOrCreateGameState(ecs)

	if !stepSpawner(spawner, jitteredInterval(gs.Score)) {
		return
	}

	kind := pickObstacleKind(rand.Float64())
	speedOffset := (rand.Float64()*2 - 1) * cfg.Difficulty.SpeedJitter
	factory.CreateObstacle(ecs, kind, speedOffset)
}

// stepSpawner advances the countdown by one frame. When it expires, the
// timer rearms to nextInterval and the spawn is reported due.
func stepSpawner(spawner *components.SpawnerData, nextInterval int) bool {
	spawner.FramesUntilSpawn--
	if spawner.FramesUntilSpawn > 0 {
		return false
	}
	spawner.FramesUntilSpawn = nextInterval
	return true
}

// jitteredInterval spreads spawns around the difficulty curve while
// honoring the floor.
func jitteredInterval(score int) int {
	interval := SpawnInterval(score)
	if j := cfg.Difficulty.IntervalJitterFrames; j > 0 {
		interval += rand.Intn(2*j+1) - j
	}
	if interval < cfg.Difficulty.MinIntervalFrames {
		interval = cfg.Difficulty.MinIntervalFrames
	}
	return interval
}

// pickObstacleKind maps a uniform roll in [0,1) onto the kind weights.
func pickObstacleKind(roll float64) cfg.ObstacleKind {
	var acc float64
	for _, kind := range cfg.AllKinds {
		acc += cfg.Obstacles.Kinds[kind].Weight
		if roll < acc {
			return kind
		}
	}
	// Weights sum to 1, so only float drift lands here
	return cfg.AllKinds[len(cfg.AllKinds)-1]
}

// getOrCreateSpawner returns the spawner singleton, arming it on first use
func getOrCreateSpawner(ecs *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Spawner))
		components.Spawner.Get(entry).FramesUntilSpawn = cfg.Difficulty.BaseIntervalFrames
	}
	return components.Spawner.Get(entry)
}
