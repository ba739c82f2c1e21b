package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/fonts"
	"github.com/mossfell/catdash/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over system. Restart resets the run in
// place; quitting swaps back to the menu scene. Restart input is live from
// the moment of death, the delay and fade only gate the overlay drawing.
func NewUpdateGameOver(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gs := GetOrCreateGameState(e)
		if gs.Phase != components.PhaseGameOver {
			return
		}

		gameOver := getOrCreateGameOver(e)
		advanceOverlay(gameOver)

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionRestart).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			ResetRun(e)
			return
		}
		if GetAction(input, cfg.ActionQuitToMenu).JustPressed {
			FadeOutMusic(e)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// advanceOverlay runs the post-death delay, then fades the overlay in
func advanceOverlay(gameOver *components.GameOverData) {
	if gameOver.DelayFrames > 0 {
		gameOver.DelayFrames--
		if gameOver.DelayFrames == 0 {
			gameOver.Fade = gween.New(0, cfg.Effects.GameOverOverlayAlpha, cfg.Effects.GameOverFadeFrames, ease.Linear)
			gameOver.Visible = true
		}
		return
	}

	if gameOver.Fade != nil {
		alpha, done := gameOver.Fade.Update(1)
		gameOver.Alpha = alpha
		if done {
			gameOver.Fade = nil
		}
	}
}

// ResetRun restores the world to its initial running state: the cat back on
// the ground in its lane, counters zeroed, every run-owned entity gone. The
// stored high score survives.
func ResetRun(e *ecs.ECS) {
	removeRunEntities(e)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		resetCat(playerEntry)
	}

	if spawnerEntry, ok := components.Spawner.First(e.World); ok {
		components.Spawner.Get(spawnerEntry).FramesUntilSpawn = cfg.Difficulty.BaseIntervalFrames
	}

	if shakeEntry, ok := components.ScreenShake.First(e.World); ok {
		e.World.Remove(shakeEntry.Entity())
	}

	gameOver := getOrCreateGameOver(e)
	gameOver.DelayFrames = 0
	gameOver.Fade = nil
	gameOver.Alpha = 0
	gameOver.Visible = false

	gs := GetOrCreateGameState(e)
	gs.Score = 0
	gs.Combo = 0
	gs.Speed = ScrollSpeed(0)
	gs.NewHighScore = false
	gs.Phase = components.PhaseRunning
}

// removeRunEntities clears obstacles, projectiles, particles and popups
func removeRunEntities(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	}

	tags.Obstacle.Each(e.World, collect)
	tags.Projectile.Each(e.World, collect)
	tags.Particle.Each(e.World, collect)
	tags.Popup.Each(e.World, collect)

	for _, entry := range toRemove {
		removeEntity(e, entry)
	}
}

func resetCat(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	obj.W = cfg.Player.CollisionWidth
	obj.H = cfg.Player.CollisionHeight
	obj.X = cfg.Player.LaneX
	obj.Y = cfg.C.GroundLevel - obj.H
	obj.Update()

	player.ShotCount = 0
	player.Sliding = false

	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = true

	state.CurrentState = cfg.Running
	state.StateTimer = 0

	if animData := components.Animation.Get(playerEntry); animData != nil {
		animData.SetAnimation(cfg.Running)
		if animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Restart()
		}
	}

	if playerEntry.HasComponent(components.Flash) {
		components.Flash.Get(playerEntry).Duration = 0
	}
}

// DrawGameOver renders the fading overlay with the run's final numbers
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gs := GetOrCreateGameState(e)
	if gs.Phase != components.PhaseGameOver {
		return
	}
	gameOver := getOrCreateGameOver(e)
	if !gameOver.Visible {
		return
	}

	width := float64(screen.Bounds().Dx())

	// Fade progress drives both the dimmer and the text alpha
	progress := float64(1)
	if cfg.Effects.GameOverOverlayAlpha > 0 {
		progress = float64(gameOver.Alpha / cfg.Effects.GameOverOverlayAlpha)
	}

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float64(overlay.A) * progress)
	vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), overlay, false)

	titleFont := fonts.Title.Get()
	title := "GAME OVER!"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, cfg.GameOver.TitleY, fadeColor(cfg.GameOver.TitleColor, progress))

	boldFont := fonts.HUDBold.Get()
	scoreStr := fmt.Sprintf("Score: %d", gs.Score)
	scoreX := int((width - float64(len(scoreStr)*12)) / 2)
	text.Draw(screen, scoreStr, boldFont, scoreX, cfg.GameOver.TitleY+cfg.GameOver.ScoreOffsetY, fadeColor(cfg.GameOver.ScoreColor, progress))

	highStr := fmt.Sprintf("Best: %d", gs.HighScore)
	highColor := cfg.GameOver.ScoreColor
	if gs.NewHighScore {
		highStr = "NEW HIGH SCORE!"
		highColor = cfg.GameOver.NewHighScoreColor
	}
	highX := int((width - float64(len(highStr)*12)) / 2)
	text.Draw(screen, highStr, boldFont, highX, cfg.GameOver.TitleY+cfg.GameOver.HighScoreOffsetY, fadeColor(highColor, progress))

	hintFont := fonts.Small.Get()
	hint := "R: restart    Esc: menu"
	hintX := int((width - float64(len(hint)*8)) / 2)
	text.Draw(screen, hint, hintFont, hintX, cfg.GameOver.TitleY+cfg.GameOver.HintOffsetY, fadeColor(cfg.GameOver.HintColor, progress))
}

func fadeColor(c color.RGBA, progress float64) color.RGBA {
	c.A = uint8(float64(c.A) * progress)
	return c
}

// getOrCreateGameOver returns the singleton overlay state, creating if needed
func getOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if entry, ok := components.GameOver.First(e.World); ok {
		return components.GameOver.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{})
	return components.GameOver.Get(entry)
}
