package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundSlide
	// Run sounds
	SoundShoot
	SoundPop
	SoundPoint
	SoundBonus
	SoundHit
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to the names of their synthesized buffers
type SoundConfig struct {
	MenuMusic         string
	GameMusic         string
	SFXNames          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.7,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic: "menu",
		GameMusic: "game",
		SFXNames: map[SoundID]string{
			SoundJump:         "jump",
			SoundLand:         "land",
			SoundSlide:        "slide",
			SoundShoot:        "shoot",
			SoundPop:          "pop",
			SoundPoint:        "point",
			SoundBonus:        "bonus",
			SoundHit:          "hit",
			SoundMenuNavigate: "menu_navigate",
			SoundMenuSelect:   "menu_select",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:   1.4,
			SoundPoint: 0.6,
		},
	}
}
