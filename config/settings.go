package config

import "image/color"

// SettingsMenuConfig contains settings overlay configuration
type SettingsMenuConfig struct {
	VolumeSteps []float64
	ThemeLabels []string

	BackgroundColor   color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		ThemeLabels: []string{"Meadow", "Dusk", "Night"},

		BackgroundColor:   color.RGBA{R: 24, G: 28, B: 38, A: 235},
		TextColorNormal:   color.RGBA{R: 200, G: 200, B: 210, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 220, B: 0, A: 255},
	}
}
