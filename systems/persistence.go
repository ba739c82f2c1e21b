package systems

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
	ThemeIndex  int     `json:"themeIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "catdash",
	})
	if err != nil {
		log.Warn("Could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn("Could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("Could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("Could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn("Could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume: s.MusicVolume,
		SFXVolume:   s.SFXVolume,
		Muted:       s.Muted,
		Fullscreen:  s.Fullscreen,
		ThemeIndex:  s.ThemeIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// or world exists. Scenes pick the values up from the audio globals and the
// active theme index.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.ThemeIndex >= 0 && saved.ThemeIndex < len(cfg.Background.Themes) {
		cfg.Background.ActiveTheme = saved.ThemeIndex
	}
}

// LoadHighScore reads the stored best score, returning 0 when absent or unreadable
func LoadHighScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("highscore")
	if err != nil {
		log.Warn("Could not load high score", "err", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Warn("Ignoring corrupt high score entry", "err", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// SaveHighScore writes the best score to disk
func SaveHighScore(score int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	if err := gdataManager.SaveItem("highscore", []byte(strconv.Itoa(score))); err != nil {
		log.Warn("Could not save high score", "err", err)
	}
}

// ProbeDataDir round-trips a throwaway item to verify the data directory
// accepts writes. Used by the check command.
func ProbeDataDir() error {
	if !gdataInitialized || gdataManager == nil {
		return fmt.Errorf("persistence not initialized")
	}

	payload := []byte("ok")
	if err := gdataManager.SaveItem("probe", payload); err != nil {
		return err
	}
	data, err := gdataManager.LoadItem("probe")
	if err != nil {
		return err
	}
	if string(data) != string(payload) {
		return fmt.Errorf("probe mismatch: wrote %q, read %q", payload, data)
	}
	return gdataManager.SaveItem("probe", nil)
}
