package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings overlay
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptTheme
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	ShowingControls bool // True when displaying the controls screen

	// Current settings values
	MusicVolume float64 // stepped through cfg.SettingsMenu.VolumeSteps
	SFXVolume   float64
	Muted       bool
	Fullscreen  bool
	ThemeIndex  int
}

// SettingsMenu is the component type for settings overlay state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
