package systems

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions runs after all movement for the frame, so every check
// sees final positions. Projectile hits resolve first: an obstacle shot
// down this frame can no longer kill the cat.
func UpdateCollisions(ecs *ecs.ECS) {
	resolveProjectileHits(ecs)
	resolvePlayerHits(ecs)
}

func resolveProjectileHits(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	destroyed := map[*donburi.Entry]bool{}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object

		check := obj.Check(0, 0, tags.ResolvObstacle)
		if check == nil {
			return
		}

		// The grid check is coarse; confirm the overlap and take the
		// obstacle closest to the muzzle.
		var hit *donburi.Entry
		var hitObj *resolv.Object
		for _, candidate := range check.ObjectsByTags(tags.ResolvObstacle) {
			if !aabbOverlap(obj, candidate) {
				continue
			}
			entry, ok := candidate.Data.(*donburi.Entry)
			if !ok || entry == nil || !entry.Valid() || destroyed[entry] {
				continue
			}
			if hit == nil || candidate.X < hitObj.X {
				hit = entry
				hitObj = candidate
			}
		}
		if hit == nil {
			return
		}

		destroyed[hit] = true
		toRemove = append(toRemove, hit, e)
		factory.SpawnShotBurst(ecs, hitObj.X+hitObj.W/2, hitObj.Y+hitObj.H/2)
		PlaySFX(ecs, cfg.SoundPop)
	})

	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

func resolvePlayerHits(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == cfg.Dead {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		check := obj.Check(0, 0, tags.ResolvObstacle)
		if check == nil {
			return
		}

		for _, candidate := range check.ObjectsByTags(tags.ResolvObstacle) {
			if !aabbOverlap(obj, candidate) {
				continue
			}
			entry, ok := candidate.Data.(*donburi.Entry)
			if !ok || entry == nil || !entry.Valid() {
				continue
			}

			// Balloons hang in the air and only catch a jumping cat
			kind := components.Obstacle.Get(entry).Kind
			if kind == cfg.Balloon && physics.OnGround {
				continue
			}

			triggerDeath(ecs, e)
			return
		}
	})
}

// aabbOverlap reports a strict overlap between two boxes. Touching edges
// do not count.
func aabbOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// triggerDeath ends the run in the same frame the overlap was found.
func triggerDeath(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	gs := GetOrCreateGameState(ecs)
	if gs.Phase == components.PhaseGameOver {
		return
	}
	gs.Phase = components.PhaseGameOver

	state := components.State.Get(playerEntry)
	state.CurrentState = cfg.Dead
	state.StateTimer = 0

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	if animData := components.Animation.Get(playerEntry); animData != nil {
		animData.SetAnimation(cfg.Dead)
	}

	obj := components.Object.Get(playerEntry).Object
	factory.SpawnImpactBurst(ecs, obj.X+obj.W/2, obj.Y+obj.H/2)
	TriggerDeathFlash(playerEntry)
	TriggerScreenShake(ecs, cfg.Effects.ShakeIntensity, cfg.Effects.ShakeDurationFrames)
	PlaySFX(ecs, cfg.SoundHit)

	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		gs.NewHighScore = true
		SaveHighScore(gs.Score)
	}

	gameOver := getOrCreateGameOver(ecs)
	gameOver.DelayFrames = cfg.Effects.GameOverDelayFrames
	gameOver.Fade = nil
	gameOver.Alpha = 0
	gameOver.Visible = false
}
