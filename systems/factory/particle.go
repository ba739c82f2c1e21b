package factory

import (
	"math"
	"math/rand"

	"github.com/mossfell/catdash/archetypes"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnJumpDust kicks dust up from the cat's feet on takeoff.
func SpawnJumpDust(ecs *ecs.ECS, x, y float64) {
	spawnBurst(ecs, x, y, cfg.JumpDust, -math.Pi/2, math.Pi*0.8)
}

// SpawnLandDust puffs dust out from under the cat on landing.
func SpawnLandDust(ecs *ecs.ECS, x, y float64) {
	spawnBurst(ecs, x, y, cfg.JumpDust, -math.Pi/2, math.Pi)
}

// SpawnSlideDust trails dust behind a sliding cat.
func SpawnSlideDust(ecs *ecs.ECS, x, y float64) {
	spawnBurst(ecs, x, y, cfg.JumpDust, math.Pi, math.Pi/3)
}

// SpawnImpactBurst is the crash explosion at the cat's center.
func SpawnImpactBurst(ecs *ecs.ECS, x, y float64) {
	spawnBurst(ecs, x, y, cfg.ImpactBurst, 0, 2*math.Pi)
}

// SpawnShotBurst marks a destroyed obstacle.
func SpawnShotBurst(ecs *ecs.ECS, x, y float64) {
	spawnBurst(ecs, x, y, cfg.ShotBurst, 0, 2*math.Pi)
}

// spawnBurst emits pc.Count particles from (x, y) in a fan around
// baseAngle. Angle 0 points right, negative angles point up.
func spawnBurst(ecs *ecs.ECS, x, y float64, pc cfg.ParticleConfig, baseAngle, spread float64) {
	for i := 0; i < pc.Count; i++ {
		angle := baseAngle + (rand.Float64()-0.5)*spread
		speed := pc.MinSpeed + rand.Float64()*(pc.MaxSpeed-pc.MinSpeed)
		ttl := pc.MinTTL + rand.Intn(pc.MaxTTL-pc.MinTTL+1)

		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Pos:     components.Vector{X: x, Y: y},
			Vel:     components.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			TTL:     ttl,
			MaxTTL:  ttl,
			Size:    pc.Size,
			Gravity: pc.Gravity,
			Color:   pc.Colors[rand.Intn(len(pc.Colors))],
		})
	}
}
