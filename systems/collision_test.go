package systems

import (
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/mossfell/catdash/tags"
	"github.com/solarlune/resolv"
)

func TestCrashEndsRunSameFrame(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)
	gs.Score = 5

	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)
	UpdateCollisions(e)

	if gs.Phase != components.PhaseGameOver {
		t.Fatalf("Expected phase %v after a crash, got %v", components.PhaseGameOver, gs.Phase)
	}
	state := components.State.Get(cat)
	if state.CurrentState != cfg.Dead {
		t.Errorf("Expected state %v, got %v", cfg.Dead, state.CurrentState)
	}
	physics := components.Physics.Get(cat)
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Errorf("Expected velocities zeroed, got %v/%v", physics.SpeedX, physics.SpeedY)
	}
	if gs.HighScore != 5 || !gs.NewHighScore {
		t.Errorf("Expected high score 5 with the new-best flag, got %d/%v", gs.HighScore, gs.NewHighScore)
	}

	gameOver := getOrCreateGameOver(e)
	if gameOver.DelayFrames != cfg.Effects.GameOverDelayFrames {
		t.Errorf("Expected overlay delay %d, got %d", cfg.Effects.GameOverDelayFrames, gameOver.DelayFrames)
	}
	if gameOver.Visible {
		t.Error("Overlay visible before its delay elapsed")
	}
}

func TestDeathIsIdempotent(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)
	UpdateCollisions(e)
	if gs.Phase != components.PhaseGameOver {
		t.Fatal("Expected the first overlap to end the run")
	}

	// A dead cat is skipped entirely, so its timers keep whatever the
	// game-over systems put there.
	state := components.State.Get(cat)
	state.StateTimer = 7
	UpdateCollisions(e)
	if state.StateTimer != 7 {
		t.Errorf("Expected the dead cat untouched, state timer became %d", state.StateTimer)
	}
}

func TestBalloonSparesGroundedCat(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Balloon, 110, 460, 36, 72)

	UpdateCollisions(e)
	if gs.Phase != components.PhaseRunning {
		t.Fatal("Grounded cat died to a balloon")
	}

	components.Physics.Get(cat).OnGround = false
	UpdateCollisions(e)
	if gs.Phase != components.PhaseGameOver {
		t.Error("Airborne cat survived a balloon overlap")
	}
}

func TestNearMissDoesNotKill(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	// Same grid cells as the cat, 4px clear of its box
	x := cfg.Player.LaneX + cfg.Player.CollisionWidth + 4
	spawnTestObstacle(e, cfg.Rock, x, cfg.C.GroundLevel-48, 40, 48)

	UpdateCollisions(e)
	if gs.Phase != components.PhaseRunning {
		t.Error("Near miss killed the cat")
	}
}

// TestShotObstacleCannotCrashSameFrame pins the resolution order: an
// obstacle destroyed by a projectile never reaches the player check.
func TestShotObstacleCannotCrashSameFrame(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Rock, 110, 460, 40, 40)
	factory.CreateProjectile(e, 112, 462)

	UpdateCollisions(e)

	if gs.Phase != components.PhaseRunning {
		t.Error("Cat died to an obstacle that was shot down the same frame")
	}
	if n := countEntities(e, tags.Obstacle.Each); n != 0 {
		t.Errorf("Expected the obstacle destroyed, got %d left", n)
	}
	if n := countEntities(e, tags.Projectile.Each); n != 0 {
		t.Errorf("Expected the projectile spent, got %d left", n)
	}
}

func TestShotPicksNearestObstacle(t *testing.T) {
	e := newTestECS()

	near := spawnTestObstacle(e, cfg.Rock, 200, 452, 40, 48)
	far := spawnTestObstacle(e, cfg.Log, 210, 452, 60, 28)
	factory.CreateProjectile(e, 215, 460)

	UpdateCollisions(e)

	if near.Valid() {
		t.Error("Nearest obstacle survived the shot")
	}
	if !far.Valid() {
		t.Error("Farther obstacle was destroyed instead")
	}
}

func TestTwoShotsOneObstacle(t *testing.T) {
	e := newTestECS()

	spawnTestObstacle(e, cfg.Rock, 200, 452, 40, 48)
	factory.CreateProjectile(e, 205, 460)
	factory.CreateProjectile(e, 206, 461)

	UpdateCollisions(e)

	if n := countEntities(e, tags.Obstacle.Each); n != 0 {
		t.Errorf("Expected the obstacle destroyed, got %d left", n)
	}
	if n := countEntities(e, tags.Projectile.Each); n != 1 {
		t.Errorf("Expected one projectile left after sharing a kill, got %d", n)
	}
}

func TestTouchingEdgesDoNotOverlap(t *testing.T) {
	a := resolv.NewObject(0, 0, 10, 10)
	cases := []struct {
		name string
		b    *resolv.Object
		want bool
	}{
		{"separate", resolv.NewObject(30, 0, 10, 10), false},
		{"edge touch right", resolv.NewObject(10, 0, 10, 10), false},
		{"edge touch below", resolv.NewObject(0, 10, 10, 10), false},
		{"corner touch", resolv.NewObject(10, 10, 10, 10), false},
		{"one pixel in", resolv.NewObject(9, 9, 10, 10), true},
		{"contained", resolv.NewObject(2, 2, 4, 4), true},
	}
	for _, c := range cases {
		if got := aabbOverlap(a, c.b); got != c.want {
			t.Errorf("aabbOverlap %s = %v, want %v", c.name, got, c.want)
		}
	}
}
