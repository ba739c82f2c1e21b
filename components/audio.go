package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi"
)

// AudioData mirrors the audio state for the current run and carries the
// per-tick SFX queue (singleton component). Playback itself lives on the
// shared context so music survives scene changes.
type AudioData struct {
	Context     *audio.Context
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	Muted       bool
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
