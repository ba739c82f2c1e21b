package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the run counters. HUD text is screen-space and ignores
// the shake offset.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	gs := GetOrCreateGameState(ecs)

	width := cfg.C.Width
	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.LineHeight

	hudFont := fonts.HUD.Get()
	boldFont := fonts.HUDBold.Get()

	// Top-left: score, then speed and shots on the lines below
	scoreStr := fmt.Sprintf("Score: %d", gs.Score)
	text.Draw(screen, scoreStr, boldFont, margin, margin+lineHeight, cfg.HUD.ScoreColor)

	speedStr := fmt.Sprintf("Speed: %.1f", gs.Speed)
	text.Draw(screen, speedStr, hudFont, margin, margin+lineHeight*2, cfg.HUD.SpeedColor)

	shots := 0
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		shots = components.Player.Get(playerEntry).ShotCount
	}
	shotsStr := fmt.Sprintf("Shots: %d", shots)
	text.Draw(screen, shotsStr, hudFont, margin, margin+lineHeight*3, cfg.HUD.ShotsColor)

	// Top-right: the score to beat
	highStr := fmt.Sprintf("Best: %d", gs.HighScore)
	highX := width - margin - len(highStr)*10
	text.Draw(screen, highStr, boldFont, highX, margin+lineHeight, cfg.HUD.HighScoreColor)

	// Top-center: combo counter, only while a chain is running
	if gs.Combo > 1 {
		comboStr := fmt.Sprintf("Combo: %dx", gs.Combo)
		comboX := (width - len(comboStr)*12) / 2
		text.Draw(screen, comboStr, boldFont, comboX, margin+lineHeight, cfg.HUD.ComboColor)
	}
}
