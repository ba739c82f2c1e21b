package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every sound effect at startup so the first
// play never stalls a frame.
func PreloadAllSFX() {
	initGlobalAudio()
	_ = globalAudioLoader.PreloadSFX()
}

// UpdateAudio processes pending SFX, the mute hotkey, and music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	// Quick mute toggle, valid in every scene
	if inputEntry, ok := components.Input.First(e.World); ok {
		input := components.Input.Get(inputEntry)
		if GetAction(input, cfg.ActionToggleSound).JustPressed {
			SetMuted(e, !globalMuted)
		}
	}

	// Process pending SFX queued by the gameplay systems
	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	name, ok := cfg.Sound.SFXNames[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(name)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts the named music loop, replacing whatever is playing
func PlayMusic(e *ecs.ECS, name string) {
	initGlobalAudio()

	// Already playing this track
	if globalMusicKey == name {
		return
	}

	// Stop current music
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(name)
	if err != nil {
		return
	}

	player.SetVolume(musicPlayerVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = name
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = musicPlayerVolume()
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PlaySFX queues a sound effect to be played this tick
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).MusicVolume = volume
	}
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicPlayerVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).SFXVolume = volume
	}
}

// SetMuted silences (or restores) both music and SFX
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).Muted = muted
	}
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicPlayerVolume())
	}
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// IsMuted reports whether the mute toggle is on
func IsMuted() bool {
	return globalMuted
}

// SetMutedGlobal sets the mute flag before any scene exists, for the
// --mute launch flag
func SetMutedGlobal(muted bool) {
	globalMuted = muted
}

func musicPlayerVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			Muted:       globalMuted,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
