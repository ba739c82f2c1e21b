package systems

import (
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/tags"
	"github.com/yohamta/donburi/ecs"
)

// TestObstacleScoresOncePassed walks an obstacle across the cat's left edge
// and checks the point lands exactly once, exactly when the edge clears.
func TestObstacleScoresOncePassed(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	rock := spawnTestObstacle(e, cfg.Rock, 120, cfg.C.GroundLevel-44, 44, 44)

	UpdateScore(e)
	if gs.Score != 0 {
		t.Errorf("Obstacle still ahead of the cat scored: got %d", gs.Score)
	}

	// Right edge exactly on the cat's left edge does not count yet
	obj := components.Object.Get(rock).Object
	obj.X = cfg.Player.LaneX - obj.W
	UpdateScore(e)
	if gs.Score != 0 {
		t.Errorf("Obstacle touching the cat's left edge scored: got %d", gs.Score)
	}

	obj.X = cfg.Player.LaneX - obj.W - 1
	UpdateScore(e)
	if gs.Score != 1 {
		t.Errorf("Expected score 1 after clearing the obstacle, got %d", gs.Score)
	}
	if !components.Obstacle.Get(rock).Passed {
		t.Error("Expected the obstacle marked as passed")
	}

	UpdateScore(e)
	if gs.Score != 1 {
		t.Errorf("Obstacle scored twice: got %d", gs.Score)
	}
}

func TestBalloonChainPaysCombo(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	passBalloon := func() {
		spawnTestObstacle(e, cfg.Balloon, 10, 300, 36, 72)
		UpdateScore(e)
	}

	passBalloon()
	if gs.Score != 2 || gs.Combo != 1 {
		t.Fatalf("After first balloon: score %d combo %d, want 2 and 1", gs.Score, gs.Combo)
	}

	// Second link pays the balloon bonus plus combo/2
	passBalloon()
	if gs.Score != 5 || gs.Combo != 2 {
		t.Fatalf("After second balloon: score %d combo %d, want 5 and 2", gs.Score, gs.Combo)
	}

	passBalloon()
	if gs.Score != 8 || gs.Combo != 3 {
		t.Fatalf("After third balloon: score %d combo %d, want 8 and 3", gs.Score, gs.Combo)
	}

	// Three bonus popups plus the combo popup that appears at x3
	if n := countEntities(e, tags.Popup.Each); n != 4 {
		t.Errorf("Expected 4 popups, got %d", n)
	}
}

func TestGroundObstacleBreaksCombo(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)

	spawnTestObstacle(e, cfg.Balloon, 10, 300, 36, 72)
	UpdateScore(e)
	if gs.Combo != 1 {
		t.Fatalf("Expected combo 1 after a balloon, got %d", gs.Combo)
	}

	spawnTestObstacle(e, cfg.Rock, 10, cfg.C.GroundLevel-44, 44, 44)
	UpdateScore(e)
	if gs.Combo != 0 {
		t.Errorf("Expected a ground obstacle to reset the combo, got %d", gs.Combo)
	}
	if gs.Score != 3 {
		t.Errorf("Expected score 3 (2 balloon + 1 rock), got %d", gs.Score)
	}
}

func TestShotGrantAtThreshold(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)
	gs.Score = cfg.Scoring.ShotThreshold - 1

	spawnTestObstacle(e, cfg.Rock, 10, cfg.C.GroundLevel-44, 44, 44)
	UpdateScore(e)

	if got := components.Player.Get(cat).ShotCount; got != 1 {
		t.Errorf("Expected 1 banked shot at score %d, got %d", gs.Score, got)
	}
}

// TestShotGrantOnComboJump covers a single scoring event crossing several
// thresholds at once.
func TestShotGrantOnComboJump(t *testing.T) {
	e := newTestECS()
	cat := spawnTestCat(e)
	gs := GetOrCreateGameState(e)
	player := components.Player.Get(cat)

	gs.Score = 39
	grantShots(e, gs, 19)
	if player.ShotCount != 1 {
		t.Errorf("Expected 1 shot for crossing one threshold, got %d", player.ShotCount)
	}

	gs.Score = 61
	grantShots(e, gs, 19)
	if player.ShotCount != 4 {
		t.Errorf("Expected 3 more shots for crossing three thresholds, got %d", player.ShotCount)
	}
}

func TestSpeedFollowsScore(t *testing.T) {
	e := newTestECS()
	spawnTestCat(e)
	gs := GetOrCreateGameState(e)
	gs.Score = cfg.Difficulty.SpeedStepScore - 1

	spawnTestObstacle(e, cfg.Rock, 10, cfg.C.GroundLevel-44, 44, 44)
	UpdateScore(e)

	if gs.Speed != ScrollSpeed(gs.Score) {
		t.Errorf("Expected speed %v for score %d, got %v", ScrollSpeed(gs.Score), gs.Score, gs.Speed)
	}
	if gs.Speed <= ScrollSpeed(0) {
		t.Errorf("Expected the run to speed up past %v, got %v", ScrollSpeed(0), gs.Speed)
	}
}

func TestWhileRunningSkipsAfterGameOver(t *testing.T) {
	e := newTestECS()
	gs := GetOrCreateGameState(e)

	ran := 0
	sys := WhileRunning(func(*ecs.ECS) { ran++ })

	sys(e)
	if ran != 1 {
		t.Fatalf("Expected the wrapped system to run while running, ran %d times", ran)
	}

	gs.Phase = components.PhaseGameOver
	sys(e)
	if ran != 1 {
		t.Errorf("Wrapped system ran during game over")
	}
}
