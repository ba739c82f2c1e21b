package systems

import (
	"path/filepath"
	"testing"

	cfg "github.com/mossfell/catdash/config"
)

// initTestPersistence points the data manager at a throwaway directory and
// undoes the global wiring when the test finishes.
func initTestPersistence(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	if err := InitPersistence(); err != nil {
		t.Fatalf("InitPersistence: %v", err)
	}
	t.Cleanup(func() {
		gdataManager = nil
		gdataInitialized = false
	})
}

func TestHighScoreRoundTrip(t *testing.T) {
	initTestPersistence(t)

	if got := LoadHighScore(); got != 0 {
		t.Fatalf("Expected 0 before any save, got %d", got)
	}
	SaveHighScore(42)
	if got := LoadHighScore(); got != 42 {
		t.Errorf("Expected 42 after save, got %d", got)
	}
}

func TestHighScoreIgnoresBadEntries(t *testing.T) {
	initTestPersistence(t)

	cases := []struct {
		name    string
		payload string
	}{
		{"garbage", "not a number"},
		{"negative", "-5"},
	}
	for _, c := range cases {
		if err := gdataManager.SaveItem("highscore", []byte(c.payload)); err != nil {
			t.Fatalf("seed %s entry: %v", c.name, err)
		}
		if got := LoadHighScore(); got != 0 {
			t.Errorf("Expected the %s entry ignored, got %d", c.name, got)
		}
	}

	// Whitespace around a valid number is tolerated
	if err := gdataManager.SaveItem("highscore", []byte(" 13\n")); err != nil {
		t.Fatal(err)
	}
	if got := LoadHighScore(); got != 13 {
		t.Errorf("Expected 13 from a padded entry, got %d", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	initTestPersistence(t)

	saved, err := LoadSettings()
	if err != nil || saved != nil {
		t.Fatalf("Expected no settings before any save, got %+v err %v", saved, err)
	}

	in := &SavedSettings{
		MusicVolume: 0.5,
		SFXVolume:   0.25,
		Muted:       true,
		Fullscreen:  false,
		ThemeIndex:  2,
	}
	if err := SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	out, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if out == nil || *out != *in {
		t.Errorf("Round trip mismatch: saved %+v, loaded %+v", in, out)
	}
}

func TestSettingsRejectCorruptPayload(t *testing.T) {
	initTestPersistence(t)

	if err := gdataManager.SaveItem("settings", []byte("{")); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(); err == nil {
		t.Error("Expected an error for a truncated settings payload")
	}
}

// TestPersistenceUninitialized covers the degraded mode the game runs in
// when the data dir could not be opened at startup.
func TestPersistenceUninitialized(t *testing.T) {
	gdataManager = nil
	gdataInitialized = false

	if got := LoadHighScore(); got != 0 {
		t.Errorf("Expected 0 without a data dir, got %d", got)
	}
	if saved, err := LoadSettings(); saved != nil || err != nil {
		t.Errorf("Expected nil settings without a data dir, got %+v err %v", saved, err)
	}
	SaveHighScore(9)
	if err := ProbeDataDir(); err == nil {
		t.Error("Expected the probe to fail without a data dir")
	}
}

func TestApplySavedSettingsGlobal(t *testing.T) {
	oldTheme := cfg.Background.ActiveTheme
	t.Cleanup(func() {
		cfg.Background.ActiveTheme = oldTheme
		globalMusicVolume = cfg.Audio.MusicVolume
		globalSFXVolume = cfg.Audio.SFXVolume
		SetMutedGlobal(false)
	})

	ApplySavedSettingsGlobal(nil)

	ApplySavedSettingsGlobal(&SavedSettings{MusicVolume: 0.25, SFXVolume: 0.5, Muted: true, ThemeIndex: 2})
	if GetMusicVolume() != 0.25 || GetSFXVolume() != 0.5 {
		t.Errorf("Volumes not applied: music %v sfx %v", GetMusicVolume(), GetSFXVolume())
	}
	if !IsMuted() {
		t.Error("Mute not applied")
	}
	if cfg.Background.ActiveTheme != 2 {
		t.Errorf("Theme not applied: %d", cfg.Background.ActiveTheme)
	}

	// Out-of-range theme indexes are ignored, the rest still applies
	ApplySavedSettingsGlobal(&SavedSettings{ThemeIndex: 99})
	if cfg.Background.ActiveTheme != 2 {
		t.Errorf("Out-of-range theme applied: %d", cfg.Background.ActiveTheme)
	}
	ApplySavedSettingsGlobal(&SavedSettings{ThemeIndex: -1})
	if cfg.Background.ActiveTheme != 2 {
		t.Errorf("Negative theme applied: %d", cfg.Background.ActiveTheme)
	}
}

func TestProbeDataDir(t *testing.T) {
	initTestPersistence(t)

	if err := ProbeDataDir(); err != nil {
		t.Errorf("Expected the probe to pass on a writable dir: %v", err)
	}
}
