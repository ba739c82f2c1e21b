package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every renderer draws on.
const Default = ecs.LayerID(0)

// Config contains game window configuration
type Config struct {
	Title       string
	Width       int
	Height      int
	GroundLevel float64
}

// PlayerConfig contains the cat's physics and collision tuning
type PlayerConfig struct {
	// Fixed lane: the cat's left edge never moves from this x.
	LaneX float64

	Gravity   float64
	JumpForce float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64

	// Crouched hitbox while sliding. The box bottom stays on the ground.
	SlideHitboxHeight float64

	// Where projectiles leave the sprite, relative to the hitbox top-left.
	MuzzleOffsetX float64
	MuzzleOffsetY float64
}

// ObstacleKindConfig contains per-kind sprite and hitbox tuning
type ObstacleKindConfig struct {
	Width  float64
	Height float64

	// Hitbox shrink per side, for fairness against sprite overdraw.
	HitboxInsetX float64
	HitboxInsetY float64

	// Spawn weight. Weights across all kinds sum to 1.
	Weight float64
}

// ObstacleConfig contains obstacle spawn and placement tuning
type ObstacleConfig struct {
	Kinds map[ObstacleKind]ObstacleKindConfig

	// Uniform scale jitter applied per spawned obstacle.
	ScaleMin float64
	ScaleMax float64

	// Balloons hang above the ground line by a value in this range.
	BalloonFloatMin float64
	BalloonFloatMax float64

	// Balloon bob tween: pixels of vertical travel and frames per half cycle.
	BalloonBobAmplitude float64
	BalloonBobFrames    float32
}

// ProjectileConfig contains shot tuning
type ProjectileConfig struct {
	Speed  float64
	Width  float64
	Height float64
}

// DifficultyConfig contains the speed and spawn-interval curves.
// Both are step functions of score; ScrollSpeed and SpawnInterval in the
// systems package hold the exact mapping.
type DifficultyConfig struct {
	BaseSpeed      float64
	SpeedStep      float64
	SpeedStepScore int
	MaxSpeed       float64

	// Per-obstacle speed jitter, uniform in [-SpeedJitter, +SpeedJitter].
	SpeedJitter float64

	BaseIntervalFrames   int
	IntervalStepFrames   int
	IntervalStepScore    int
	MinIntervalFrames    int
	IntervalJitterFrames int
}

// ScoringConfig contains score, shot and combo tuning
type ScoringConfig struct {
	// A shot is granted each time the score crosses a multiple of this.
	ShotThreshold int

	BalloonBonus int

	// Combo popups only show once the chain reaches this length.
	ComboPopupMin int

	PopupLifeFrames int
	PopupRiseSpeed  float64
}

// ParticleConfig contains tuning for one particle burst
type ParticleConfig struct {
	Count    int
	MinSpeed float64
	MaxSpeed float64
	MinTTL   int
	MaxTTL   int
	Size     float64
	Gravity  float64
	Colors   []color.RGBA
}

// EffectsConfig contains death presentation tuning
type EffectsConfig struct {
	DeathFlashFrames     int
	ShakeIntensity       float64
	ShakeDurationFrames  int
	GameOverDelayFrames  int
	GameOverFadeFrames   float32
	GameOverOverlayAlpha float32
}

// SquashStretchConfig contains jump and landing squash tuning
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	LerpSpeed  float64
}

// HUDConfig contains in-run HUD layout and colors
type HUDConfig struct {
	Margin         int
	LineHeight     int
	ScoreColor     color.RGBA
	HighScoreColor color.RGBA
	SpeedColor     color.RGBA
	ShotsColor     color.RGBA
	ComboColor     color.RGBA
}

// MenuConfig contains title screen layout and colors
type MenuConfig struct {
	TitleText        string
	TitleColor       color.RGBA
	HighScoreColor   color.RGBA
	InstructionColor color.RGBA
	Instructions     []string
}

// GameOverConfig contains the game over overlay layout and colors
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	ScoreColor        color.RGBA
	NewHighScoreColor color.RGBA
	HintColor         color.RGBA
	TitleY            int
	ScoreOffsetY      int
	HighScoreOffsetY  int
	HintOffsetY       int
}

// BackgroundConfig lists the selectable theme files and cloud limits.
// ActiveTheme is the index new worlds start on; the CLI, saved settings
// and the theme systems all write it so the choice survives scene changes.
type BackgroundConfig struct {
	Themes      []string
	ActiveTheme int
	MaxClouds   int
}

// DebugConfig contains debug toggles, overridable from CLI flags
type DebugConfig struct {
	DrawHitboxes bool
	SkipMenu     bool
}

// Colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	DarkRed   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	Gold      = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	OliveGold = color.RGBA{R: 200, G: 200, B: 50, A: 255}
	Purple    = color.RGBA{R: 100, G: 50, B: 150, A: 255}
	Brown     = color.RGBA{R: 70, G: 30, B: 20, A: 255}
	Slate     = color.RGBA{R: 40, G: 40, B: 60, A: 255}
	Orange    = color.RGBA{R: 235, G: 140, B: 50, A: 255}
)

// Global configuration instances
var (
	C             *Config
	Player        PlayerConfig
	Obstacles     ObstacleConfig
	Projectile    ProjectileConfig
	Difficulty    DifficultyConfig
	Scoring       ScoringConfig
	JumpDust      ParticleConfig
	ImpactBurst   ParticleConfig
	ShotBurst     ParticleConfig
	Effects       EffectsConfig
	SquashStretch SquashStretchConfig
	HUD           HUDConfig
	Menu          MenuConfig
	GameOver      GameOverConfig
	Background    BackgroundConfig
	Debug         DebugConfig
)

func init() {
	C = &Config{
		Title:       "CatDash",
		Width:       800,
		Height:      600,
		GroundLevel: 500,
	}

	Player = PlayerConfig{
		LaneX:             100,
		Gravity:           1.0,
		JumpForce:         20.0,
		FrameWidth:        64,
		FrameHeight:       64,
		CollisionWidth:    36,
		CollisionHeight:   48,
		SlideHitboxHeight: 24,
		MuzzleOffsetX:     30,
		MuzzleOffsetY:     14,
	}

	Obstacles = ObstacleConfig{
		Kinds: map[ObstacleKind]ObstacleKindConfig{
			Rock:       {Width: 52, Height: 52, HitboxInsetX: 4, HitboxInsetY: 4, Weight: 0.25},
			Log:        {Width: 72, Height: 30, HitboxInsetX: 4, HitboxInsetY: 2, Weight: 0.20},
			Bush:       {Width: 66, Height: 42, HitboxInsetX: 6, HitboxInsetY: 4, Weight: 0.25},
			FallenTree: {Width: 88, Height: 40, HitboxInsetX: 6, HitboxInsetY: 4, Weight: 0.15},
			Balloon:    {Width: 48, Height: 84, HitboxInsetX: 6, HitboxInsetY: 6, Weight: 0.15},
		},
		ScaleMin:            0.9,
		ScaleMax:            1.3,
		BalloonFloatMin:     80,
		BalloonFloatMax:     140,
		BalloonBobAmplitude: 8,
		BalloonBobFrames:    45,
	}

	Projectile = ProjectileConfig{
		Speed:  12.0,
		Width:  16,
		Height: 6,
	}

	Difficulty = DifficultyConfig{
		BaseSpeed:      7.0,
		SpeedStep:      0.2,
		SpeedStepScore: 10,
		MaxSpeed:       15.0,
		SpeedJitter:    0.5,

		// 1500ms base, -50ms per 5 score, 800ms floor, at 60 ticks/second.
		BaseIntervalFrames:   90,
		IntervalStepFrames:   3,
		IntervalStepScore:    5,
		MinIntervalFrames:    48,
		IntervalJitterFrames: 12,
	}

	Scoring = ScoringConfig{
		ShotThreshold:   20,
		BalloonBonus:    2,
		ComboPopupMin:   3,
		PopupLifeFrames: 60,
		PopupRiseSpeed:  1.0,
	}

	JumpDust = ParticleConfig{
		Count:    6,
		MinSpeed: 0.5,
		MaxSpeed: 2.0,
		MinTTL:   15,
		MaxTTL:   30,
		Size:     3,
		Gravity:  0.05,
		Colors: []color.RGBA{
			{R: 200, G: 180, B: 140, A: 255},
			{R: 170, G: 150, B: 110, A: 255},
			{R: 220, G: 210, B: 190, A: 255},
		},
	}

	ImpactBurst = ParticleConfig{
		Count:    18,
		MinSpeed: 1.0,
		MaxSpeed: 4.5,
		MinTTL:   25,
		MaxTTL:   50,
		Size:     4,
		Gravity:  0.12,
		Colors: []color.RGBA{
			{R: 255, G: 90, B: 60, A: 255},
			{R: 255, G: 170, B: 60, A: 255},
			{R: 255, G: 230, B: 120, A: 255},
		},
	}

	ShotBurst = ParticleConfig{
		Count:    10,
		MinSpeed: 0.8,
		MaxSpeed: 3.0,
		MinTTL:   15,
		MaxTTL:   35,
		Size:     3,
		Gravity:  0.10,
		Colors: []color.RGBA{
			{R: 255, G: 240, B: 150, A: 255},
			{R: 200, G: 200, B: 200, A: 255},
		},
	}

	Effects = EffectsConfig{
		DeathFlashFrames:     5,
		ShakeIntensity:       8.0,
		ShakeDurationFrames:  12,
		GameOverDelayFrames:  30,
		GameOverFadeFrames:   20,
		GameOverOverlayAlpha: 128,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		LerpSpeed:  0.10,
	}

	HUD = HUDConfig{
		Margin:         10,
		LineHeight:     30,
		ScoreColor:     Black,
		HighScoreColor: Purple,
		SpeedColor:     Slate,
		ShotsColor:     Slate,
		ComboColor:     DarkRed,
	}

	Menu = MenuConfig{
		TitleText:        "CAT DASH",
		TitleColor:       Brown,
		HighScoreColor:   Purple,
		InstructionColor: Slate,
		Instructions: []string{
			"SPACE to jump, DOWN to slide",
			"X to shoot (one shot per 20 points)",
			"Balloons only hit a jumping cat",
			"M toggles sound, B cycles the scenery",
			"R restarts after a crash",
		},
	}

	GameOver = GameOverConfig{
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 128},
		TitleColor:        LightRed,
		ScoreColor:        White,
		NewHighScoreColor: Gold,
		HintColor:         White,
		TitleY:            200,
		ScoreOffsetY:      100,
		HighScoreOffsetY:  140,
		HintOffsetY:       180,
	}

	Background = BackgroundConfig{
		Themes:      []string{"meadow", "dusk", "night"},
		ActiveTheme: 0,
		MaxClouds:   8,
	}

	Debug = DebugConfig{
		DrawHitboxes: false,
		SkipMenu:     false,
	}
}
