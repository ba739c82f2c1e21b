package systems

import (
	"math"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, squash/stretch,
// screen shake, auto-destroy). Runs in every phase so death presentation
// keeps animating after the run freezes.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateSquashStretchEffects(ecs)
	updateScreenShake(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// updateScreenShake advances the shake oscillator and drops it when spent
func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		ecs.World.Remove(entry.Entity())
	}
}

// updateAutoDestroy removes entities whose lifetime has run out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		removeEntity(ecs, e)
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX = scaleX
		ss.ScaleY = scaleY
		ss.TargetX = 1.0
		ss.TargetY = 1.0
		ss.LerpSpeed = cfg.SquashStretch.LerpSpeed
	} else {
		entry.AddComponent(components.SquashStretch)
		components.SquashStretch.Set(entry, &components.SquashStretchData{
			ScaleX:    scaleX,
			ScaleY:    scaleY,
			TargetX:   1.0,
			TargetY:   1.0,
			LerpSpeed: cfg.SquashStretch.LerpSpeed,
		})
	}
}

// TriggerDeathFlash lights the white death flash on the entity's sprite.
// The Flash component is initialized in the factory, so this only updates.
func TriggerDeathFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		flash.Duration = cfg.Effects.DeathFlashFrames
		flash.R, flash.G, flash.B = 3, 3, 3 // Bright white (multiplier)
	}
}

// TriggerScreenShake starts a screen shake, or strengthens the active one.
// A weaker shake never interrupts a stronger shake in progress.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if entry, ok := components.ScreenShake.First(ecs.World); ok {
		shake := components.ScreenShake.Get(entry)
		if intensity >= shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	entry := ecs.World.Entry(ecs.World.Create(components.ScreenShake))
	components.ScreenShake.SetValue(entry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
		Elapsed:   0,
	})
}

// ShakeOffset reports the world-space render offset of the active shake.
// The offset decays linearly while oscillating at two incommensurate
// frequencies so it never settles into a visible loop.
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 || shake.Elapsed >= shake.Duration {
		return 0, 0
	}

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	currentIntensity := shake.Intensity * progress

	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity
	return offsetX, offsetY
}
