package systems

import (
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/mossfell/catdash/tags"
)

type nullSceneChanger struct {
	scene interface{}
}

func (n *nullSceneChanger) ChangeScene(scene interface{}) {
	n.scene = scene
}

// TestOverlayDelaysThenFades walks the overlay through its whole timeline:
// a frame delay, then a linear fade up to the configured alpha.
func TestOverlayDelaysThenFades(t *testing.T) {
	gameOver := &components.GameOverData{DelayFrames: 3}

	advanceOverlay(gameOver)
	advanceOverlay(gameOver)
	if gameOver.Visible {
		t.Fatal("Overlay visible during the delay")
	}

	advanceOverlay(gameOver)
	if !gameOver.Visible {
		t.Fatal("Overlay not visible once the delay elapsed")
	}
	if gameOver.Fade == nil {
		t.Fatal("Expected a fade tween armed after the delay")
	}
	if gameOver.Alpha != 0 {
		t.Fatalf("Expected alpha 0 before the fade ran, got %v", gameOver.Alpha)
	}

	half := int(cfg.Effects.GameOverFadeFrames) / 2
	for i := 0; i < half; i++ {
		advanceOverlay(gameOver)
	}
	if want := cfg.Effects.GameOverOverlayAlpha / 2; gameOver.Alpha != want {
		t.Errorf("Expected alpha %v halfway through the fade, got %v", want, gameOver.Alpha)
	}

	for i := 0; i < half; i++ {
		advanceOverlay(gameOver)
	}
	if gameOver.Alpha != cfg.Effects.GameOverOverlayAlpha {
		t.Errorf("Expected alpha %v after the fade, got %v", cfg.Effects.GameOverOverlayAlpha, gameOver.Alpha)
	}
	if gameOver.Fade != nil {
		t.Error("Expected the finished fade tween dropped")
	}

	// Steady state afterwards
	advanceOverlay(gameOver)
	if gameOver.Alpha != cfg.Effects.GameOverOverlayAlpha {
		t.Errorf("Alpha drifted after the fade finished: %v", gameOver.Alpha)
	}
}

func TestResetRunRestoresWorld(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)
	gs.Score = 12

	// Run furniture that must not survive the reset
	factory.CreateProjectile(e, 300, 400)
	factory.CreatePopup(e, "+2 BONUS!", cfg.DarkRed, 200, 200)
	factory.SpawnImpactBurst(e, 150, 450)
	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)

	UpdateCollisions(e)
	if gs.Phase != components.PhaseGameOver {
		t.Fatal("Expected the crash to end the run")
	}
	if _, ok := components.ScreenShake.First(e.World); !ok {
		t.Fatal("Expected a screen shake after the crash")
	}

	// Knock the cat around so the reset has something to undo
	obj := components.Object.Get(cat).Object
	obj.Y = 300
	obj.H = cfg.Player.SlideHitboxHeight

	ResetRun(e)

	if gs.Phase != components.PhaseRunning {
		t.Errorf("Expected phase %v, got %v", components.PhaseRunning, gs.Phase)
	}
	if gs.Score != 0 || gs.Combo != 0 {
		t.Errorf("Expected counters zeroed, got score %d combo %d", gs.Score, gs.Combo)
	}
	if gs.Speed != ScrollSpeed(0) {
		t.Errorf("Expected speed %v, got %v", ScrollSpeed(0), gs.Speed)
	}
	if gs.HighScore != 12 {
		t.Errorf("High score did not survive the reset: %d", gs.HighScore)
	}
	if gs.NewHighScore {
		t.Error("New-best flag survived the reset")
	}

	for _, c := range []struct {
		name string
		got  int
	}{
		{"obstacles", countEntities(e, tags.Obstacle.Each)},
		{"projectiles", countEntities(e, tags.Projectile.Each)},
		{"particles", countEntities(e, tags.Particle.Each)},
		{"popups", countEntities(e, tags.Popup.Each)},
	} {
		if c.got != 0 {
			t.Errorf("Expected no %s after reset, got %d", c.name, c.got)
		}
	}
	if _, ok := components.ScreenShake.First(e.World); ok {
		t.Error("Screen shake survived the reset")
	}

	// Removed entities must leave the collision space too
	space := components.Space.Get(components.Space.MustFirst(e.World))
	if n := len(space.Objects()); n != 1 {
		t.Errorf("Expected only the cat's box left in the space, got %d objects", n)
	}

	if obj.X != cfg.Player.LaneX || obj.H != cfg.Player.CollisionHeight {
		t.Errorf("Cat box not restored: x=%v h=%v", obj.X, obj.H)
	}
	if obj.Y != cfg.C.GroundLevel-cfg.Player.CollisionHeight {
		t.Errorf("Cat not back on the ground: y=%v", obj.Y)
	}
	physics := components.Physics.Get(cat)
	if !physics.OnGround || physics.SpeedY != 0 {
		t.Errorf("Cat physics not reset: onGround=%v speedY=%v", physics.OnGround, physics.SpeedY)
	}
	if got := components.State.Get(cat).CurrentState; got != cfg.Running {
		t.Errorf("Expected state %v, got %v", cfg.Running, got)
	}
	if got := components.Player.Get(cat).ShotCount; got != 0 {
		t.Errorf("Banked shots survived the reset: %d", got)
	}

	gameOver := getOrCreateGameOver(e)
	if gameOver.Visible || gameOver.Alpha != 0 || gameOver.Fade != nil {
		t.Error("Overlay state not cleared by the reset")
	}
}

func TestRestartKeyResetsRun(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)
	UpdateCollisions(e)
	if gs.Phase != components.PhaseGameOver {
		t.Fatal("Expected the crash to end the run")
	}

	changer := &nullSceneChanger{}
	system := NewUpdateGameOver(changer, func() interface{} { return "menu" })

	tapAction(e, cfg.ActionRestart)
	system(e)

	if gs.Phase != components.PhaseRunning {
		t.Errorf("Expected restart to resume the run, phase %v", gs.Phase)
	}
	if changer.scene != nil {
		t.Error("Restart changed scenes")
	}
}

func TestQuitToMenuFromGameOver(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)
	UpdateCollisions(e)

	changer := &nullSceneChanger{}
	system := NewUpdateGameOver(changer, func() interface{} { return "menu" })

	tapAction(e, cfg.ActionQuitToMenu)
	system(e)

	if changer.scene != "menu" {
		t.Errorf("Expected a scene change to the menu, got %v", changer.scene)
	}
	if gs.Phase != components.PhaseGameOver {
		t.Errorf("Quitting should leave the dead run as is, phase %v", gs.Phase)
	}
}

func TestGameOverSystemIdlesWhileRunning(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)

	changer := &nullSceneChanger{}
	system := NewUpdateGameOver(changer, func() interface{} { return "menu" })

	tapAction(e, cfg.ActionRestart)
	system(e)

	gameOver := getOrCreateGameOver(e)
	if gameOver.Visible {
		t.Error("Overlay advanced while the run was still live")
	}
	if changer.scene != nil {
		t.Error("Scene changed while the run was still live")
	}
}
