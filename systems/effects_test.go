package systems

import (
	"math"
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/mossfell/catdash/tags"
)

func TestScreenShakePriority(t *testing.T) {
	e := newTestECS()
	TriggerScreenShake(e, 8, 12)

	entry, ok := components.ScreenShake.First(e.World)
	if !ok {
		t.Fatal("Expected a shake entity")
	}
	shake := components.ScreenShake.Get(entry)
	shake.Elapsed = 5

	TriggerScreenShake(e, 3, 30)
	if shake.Intensity != 8 || shake.Elapsed != 5 {
		t.Errorf("Weaker shake interrupted a stronger one: intensity %v elapsed %d", shake.Intensity, shake.Elapsed)
	}

	TriggerScreenShake(e, 10, 6)
	if shake.Intensity != 10 || shake.Duration != 6 || shake.Elapsed != 0 {
		t.Errorf("Stronger shake did not take over: %+v", *shake)
	}
}

func TestScreenShakeExpires(t *testing.T) {
	e := newTestECS()
	TriggerScreenShake(e, 8, 3)

	for i := 0; i < 3; i++ {
		if _, ok := components.ScreenShake.First(e.World); !ok {
			t.Fatalf("Shake expired %d frames early", 3-i)
		}
		UpdateEffects(e)
	}
	if _, ok := components.ScreenShake.First(e.World); ok {
		t.Error("Shake survived its duration")
	}
	if x, y := ShakeOffset(e); x != 0 || y != 0 {
		t.Errorf("Expected zero offset without a shake, got %v/%v", x, y)
	}
}

func TestShakeOffsetDecays(t *testing.T) {
	e := newTestECS()
	TriggerScreenShake(e, 8, 12)
	entry, _ := components.ScreenShake.First(e.World)
	shake := components.ScreenShake.Get(entry)

	// Halfway through, the envelope is half the starting intensity
	shake.Elapsed = 6
	x, y := ShakeOffset(e)
	if limit := 4.0; math.Abs(x) > limit+1e-9 || math.Abs(y) > limit+1e-9 {
		t.Errorf("Offset %v/%v exceeds the decayed envelope %v", x, y, limit)
	}

	shake.Elapsed = 12
	if x, y := ShakeOffset(e); x != 0 || y != 0 {
		t.Errorf("Expected zero offset at the end of the shake, got %v/%v", x, y)
	}
}

func TestDeathFlashDecays(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)

	TriggerDeathFlash(cat)
	flash := components.Flash.Get(cat)
	if flash.Duration != cfg.Effects.DeathFlashFrames {
		t.Fatalf("Expected flash duration %d, got %d", cfg.Effects.DeathFlashFrames, flash.Duration)
	}
	if flash.R != 3 || flash.G != 3 || flash.B != 3 {
		t.Errorf("Expected a white flash, got %v/%v/%v", flash.R, flash.G, flash.B)
	}

	for i := 0; i < cfg.Effects.DeathFlashFrames; i++ {
		UpdateEffects(e)
	}
	if flash.Duration != 0 {
		t.Errorf("Expected the flash spent, got %d", flash.Duration)
	}
	UpdateEffects(e)
	if flash.Duration != 0 {
		t.Errorf("Flash timer underflowed: %d", flash.Duration)
	}
}

func TestSquashSettlesAndDetaches(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)

	TriggerSquashStretch(cat, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	if !cat.HasComponent(components.SquashStretch) {
		t.Fatal("Expected the squash component attached")
	}

	for i := 0; i < 600 && cat.HasComponent(components.SquashStretch); i++ {
		UpdateEffects(e)
	}
	if cat.HasComponent(components.SquashStretch) {
		t.Error("Squash never settled back to normal")
	}
}

func TestPopupRisesAndExpires(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePopup(e, "COMBO x3!", cfg.OliveGold, 200, 300)

	popup := components.Popup.Get(p)
	y := popup.Pos.Y
	UpdatePopups(e)
	if popup.Pos.Y >= y {
		t.Errorf("Popup did not rise: %v -> %v", y, popup.Pos.Y)
	}

	for i := 0; i < cfg.Scoring.PopupLifeFrames; i++ {
		UpdateEffects(e)
	}
	if n := countEntities(e, tags.Popup.Each); n != 0 {
		t.Errorf("Popup outlived its lifetime: %d left", n)
	}
}

func TestParticlesAgeOut(t *testing.T) {
	e := newTestECS()
	factory.SpawnJumpDust(e, 100, 500)
	if countEntities(e, tags.Particle.Each) == 0 {
		t.Fatal("No dust spawned")
	}

	for i := 0; i < 200; i++ {
		UpdateParticles(e)
	}
	if n := countEntities(e, tags.Particle.Each); n != 0 {
		t.Errorf("Particles never expired: %d left", n)
	}
}
