package systems

import (
	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with a collision space sized like the real run.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width+256, cfg.C.Height, 16, 16)
	return e
}

// spawnTestCat creates the player through the real factory and registers
// its collision box, the way the world scene does on entry.
func spawnTestCat(e *ecs.ECS) *donburi.Entry {
	player := factory.CreatePlayer(e)
	obj := components.Object.Get(player).Object
	components.Space.Get(components.Space.MustFirst(e.World)).Add(obj)
	return player
}

// spawnTestObstacle places an obstacle at an exact position. The factory
// jitters scale and height, which exact-overlap tests cannot rely on.
func spawnTestObstacle(e *ecs.ECS, kind cfg.ObstacleKind, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Kind:  kind,
		Scale: 1,
		BaseY: y,
	})

	components.Space.Get(components.Space.MustFirst(e.World)).Add(obj)
	return obstacle
}

// countEntities tallies entities via a tag's Each method, e.g.
// countEntities(e, tags.Obstacle.Each).
func countEntities(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// tapAction fakes a key that went down this frame.
func tapAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[id] = true
	input.Previous[id] = false
}

// holdAction fakes a key that has been held for at least two frames.
func holdAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[id] = true
	input.Previous[id] = true
}

// liftAction fakes a key release.
func liftAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous[id] = input.Current[id]
	input.Current[id] = false
}
