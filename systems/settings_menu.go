package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/fonts"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	// Handle controls screen separately
	if settings.ShowingControls {
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionMenuSelect).JustPressed {
			settings.ShowingControls = false
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Adjust value left
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}

	// Adjust value right
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	// Escape or Backspace to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(e, settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		SetMusicVolume(e, s.MusicVolume)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		SetSFXVolume(e, s.SFXVolume)
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptTheme:
		numThemes := len(cfg.Background.Themes)
		s.ThemeIndex = (s.ThemeIndex + direction + numThemes) % numThemes
		SetTheme(e, s.ThemeIndex)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	currentIdx := findClosestStepIndex(current, steps)
	newIdx := currentIdx + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state without losing the dialed volumes
func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	SetMuted(e, s.Muted)
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptControls:
		s.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Dim the scene behind the overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.SettingsMenu.BackgroundColor,
		false,
	)

	// Show controls screen if active
	if settings.ShowingControls {
		drawControlsScreen(screen, width, height)
		return
	}

	fontFace := fonts.HUDBold.Get()
	titleFont := fonts.Title.Get()

	// Draw title centered near top
	title := "SETTINGS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 60, cfg.Menu.TitleColor)

	// Center the option list vertically
	menuItemHeight := 24.0
	menuItemGap := 12.0
	totalMenuHeight := float64(numSettingsOptions) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		y := startY + float64(int(opt))*(menuItemHeight+menuItemGap)

		textColor := cfg.SettingsMenu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.SettingsMenu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)

		labelX := int(width/2) - 160
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)

		if value != "" {
			valueX := int(width/2) + 10
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}
	}

	// Navigation hint at the bottom
	hint := "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-16, cfg.SettingsMenu.TextColorNormal)
}

// drawControlsScreen renders the key reference page
func drawControlsScreen(screen *ebiten.Image, width, height float64) {
	fontFace := fonts.HUDBold.Get()
	titleFont := fonts.Title.Get()
	smallFont := fonts.Small.Get()

	title := "CONTROLS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 60, cfg.Menu.TitleColor)

	mappings := []controlMapping{
		{"Jump", "Space / Up / W"},
		{"Slide", "Down / S (hold)"},
		{"Shoot", "X"},
		{"Restart", "R"},
		{"Mute", "M"},
		{"Scenery", "B"},
		{"Menu", "Esc"},
	}

	startY := 140.0
	lineHeight := 30.0
	labelX := int(width/2) - 120
	valueX := int(width/2) + 10

	for i, mapping := range mappings {
		y := startY + float64(i)*lineHeight
		text.Draw(screen, mapping.Action, fontFace, labelX, int(y), cfg.SettingsMenu.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, valueX, int(y), cfg.SettingsMenu.TextColorSelected)
	}

	hint := "Press Enter or Esc to go back"
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, smallFont, hintX, int(height)-16, cfg.SettingsMenu.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music Volume", formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptTheme:
		if s.ThemeIndex < len(cfg.SettingsMenu.ThemeLabels) {
			return "Scenery", "< " + cfg.SettingsMenu.ThemeLabels[s.ThemeIndex] + " >"
		}
		return "Scenery", "Unknown"
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	percentage := int(volume * 100)
	filled := int(volume * 10)
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "|"
		} else {
			bar += "."
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:         false,
			SelectedOption: components.SettingsOptMusicVolume,
			MusicVolume:    GetMusicVolume(),
			SFXVolume:      GetSFXVolume(),
			Muted:          IsMuted(),
			Fullscreen:     ebiten.IsFullscreen(),
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings overlay with current values synced in
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptMusicVolume

	settings.MusicVolume = GetMusicVolume()
	settings.SFXVolume = GetSFXVolume()
	settings.Muted = IsMuted()
	settings.Fullscreen = ebiten.IsFullscreen()
	settings.ThemeIndex = CurrentThemeIndex(e)
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
