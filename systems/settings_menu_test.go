package systems

import (
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
)

func TestVolumeStepping(t *testing.T) {
	cases := []struct {
		in   float64
		dir  int
		want float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1.0, 1, 1.0},
		{0.0, -1, 0.0},
		{0.6, 1, 0.75}, // snaps to the nearest step first
		{0.6, -1, 0.25},
		{0.9, -1, 0.75},
	}
	for _, c := range cases {
		if got := adjustVolumeStep(c.in, c.dir); got != c.want {
			t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", c.in, c.dir, got, c.want)
		}
	}
}

func TestFindClosestStepIndex(t *testing.T) {
	steps := cfg.SettingsMenu.VolumeSteps
	cases := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{0.1, 0},
		{0.2, 1},
		{0.4, 2},
		{0.9, 4},
		{1.0, 4},
	}
	for _, c := range cases {
		if got := findClosestStepIndex(c.value, steps); got != c.want {
			t.Errorf("findClosestStepIndex(%v) = %d, want %d", c.value, got, c.want)
		}
	}
}

func TestVolumeBarFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "[..........] 0%"},
		{0.25, "[||........] 25%"},
		{0.5, "[|||||.....] 50%"},
		{0.75, "[|||||||...] 75%"},
		{1, "[||||||||||] 100%"},
	}
	for _, c := range cases {
		if got := formatVolumeBar(c.in); got != c.want {
			t.Errorf("formatVolumeBar(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToggleFormat(t *testing.T) {
	if got := formatToggle(true); got != "[X] On" {
		t.Errorf("formatToggle(true) = %q", got)
	}
	if got := formatToggle(false); got != "[ ] Off" {
		t.Errorf("formatToggle(false) = %q", got)
	}
}

func TestOptionDisplayThemeLabel(t *testing.T) {
	s := &components.SettingsMenuData{ThemeIndex: 1}
	if _, value := getOptionDisplay(s, components.SettingsOptTheme); value != "< Dusk >" {
		t.Errorf("Expected theme label %q, got %q", "< Dusk >", value)
	}
	s.ThemeIndex = 99
	if _, value := getOptionDisplay(s, components.SettingsOptTheme); value != "Unknown" {
		t.Errorf("Expected out-of-range label %q, got %q", "Unknown", value)
	}
}

func TestSettingsNavigationWraps(t *testing.T) {
	e := newTestECS()
	OpenSettings(e)
	s := GetOrCreateSettingsMenu(e)
	if !s.IsOpen {
		t.Fatal("Expected settings open")
	}
	if s.SelectedOption != components.SettingsOptMusicVolume {
		t.Fatalf("Expected selection on the first option, got %v", s.SelectedOption)
	}

	tapAction(e, cfg.ActionMenuUp)
	UpdateSettingsMenu(e)
	if s.SelectedOption != components.SettingsOptBack {
		t.Errorf("Expected wrap to the last option, got %v", s.SelectedOption)
	}

	liftAction(e, cfg.ActionMenuUp)
	tapAction(e, cfg.ActionMenuDown)
	UpdateSettingsMenu(e)
	if s.SelectedOption != components.SettingsOptMusicVolume {
		t.Errorf("Expected wrap back to the first option, got %v", s.SelectedOption)
	}
}

func TestThemeAdjustWraps(t *testing.T) {
	e := newTestECS()
	old := cfg.Background.ActiveTheme
	defer func() { cfg.Background.ActiveTheme = old }()

	OpenSettings(e)
	s := GetOrCreateSettingsMenu(e)
	s.SelectedOption = components.SettingsOptTheme

	last := len(cfg.Background.Themes) - 1
	adjustValue(e, s, -1)
	if s.ThemeIndex != last {
		t.Errorf("Expected theme wrap to %d, got %d", last, s.ThemeIndex)
	}
	if cfg.Background.ActiveTheme != last {
		t.Errorf("Session theme not updated: %d", cfg.Background.ActiveTheme)
	}

	adjustValue(e, s, 1)
	if s.ThemeIndex != 0 {
		t.Errorf("Expected theme wrap back to 0, got %d", s.ThemeIndex)
	}
}

func TestMutePreservesVolumes(t *testing.T) {
	e := newTestECS()
	SetMusicVolume(e, 0.75)
	SetSFXVolume(e, 0.5)
	SetMuted(e, false)
	s := GetOrCreateSettingsMenu(e)
	s.Muted = false

	toggleMute(e, s)
	if !IsMuted() {
		t.Fatal("Expected muted after toggle")
	}
	if GetMusicVolume() != 0.75 || GetSFXVolume() != 0.5 {
		t.Errorf("Mute clobbered the dialed volumes: music %v sfx %v", GetMusicVolume(), GetSFXVolume())
	}

	toggleMute(e, s)
	if IsMuted() {
		t.Error("Expected unmuted after the second toggle")
	}
}

func TestControlsScreenSwallowsInput(t *testing.T) {
	e := newTestECS()
	OpenSettings(e)
	s := GetOrCreateSettingsMenu(e)
	s.ShowingControls = true
	sel := s.SelectedOption

	tapAction(e, cfg.ActionMenuDown)
	UpdateSettingsMenu(e)
	if s.SelectedOption != sel {
		t.Error("Navigation leaked through the controls screen")
	}
	if !s.ShowingControls {
		t.Error("Controls screen closed by navigation")
	}

	liftAction(e, cfg.ActionMenuDown)
	tapAction(e, cfg.ActionMenuBack)
	UpdateSettingsMenu(e)
	if s.ShowingControls {
		t.Error("Expected Back to close the controls screen")
	}
	if !s.IsOpen {
		t.Error("Back from controls closed the whole settings menu")
	}
}

func TestCloseAndReopenSyncsState(t *testing.T) {
	e := newTestECS()
	old := cfg.Background.ActiveTheme
	defer func() { cfg.Background.ActiveTheme = old }()

	OpenSettings(e)
	s := GetOrCreateSettingsMenu(e)

	tapAction(e, cfg.ActionMenuBack)
	UpdateSettingsMenu(e)
	if s.IsOpen {
		t.Fatal("Expected Esc to close settings")
	}

	SetTheme(e, 1)
	s.SelectedOption = components.SettingsOptBack
	OpenSettings(e)
	if s.ThemeIndex != 1 {
		t.Errorf("Expected reopened settings synced to theme 1, got %d", s.ThemeIndex)
	}
	if s.SelectedOption != components.SettingsOptMusicVolume {
		t.Errorf("Expected the selection reset on reopen, got %v", s.SelectedOption)
	}
}
