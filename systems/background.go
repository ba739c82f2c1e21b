package systems

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/yohamta/donburi/ecs"
)

var bgDrawOp = &ebiten.DrawImageOptions{}

// UpdateBackground scrolls the parallax layers and drifts the clouds. It
// runs in every phase so the backdrop stays alive through game over and on
// the menu.
func UpdateBackground(e *ecs.ECS) {
	bg := getOrCreateBackground(e)
	gs := GetOrCreateGameState(e)

	if inputEntry, ok := components.Input.First(e.World); ok {
		input := components.Input.Get(inputEntry)
		if GetAction(input, cfg.ActionCycleTheme).JustPressed {
			CycleTheme(e)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
	}

	for i, layer := range bg.Theme.Layers {
		bg.LayerOffsets[i] -= gs.Speed * layer.Speed
		for bg.LayerOffsets[i] <= -float64(assets.GetLayerImage(bg.Theme, i).Bounds().Dx()) {
			bg.LayerOffsets[i] += float64(assets.GetLayerImage(bg.Theme, i).Bounds().Dx())
		}
	}

	updateClouds(bg)
}

func updateClouds(bg *components.BackgroundData) {
	cloudW := float64(assets.GetCloudImage().Bounds().Dx())

	kept := bg.Clouds[:0]
	for _, cloud := range bg.Clouds {
		cloud.Pos.X -= cloud.Speed
		if cloud.Pos.X+cloudW*cloud.Scale > 0 {
			kept = append(kept, cloud)
		}
	}
	bg.Clouds = kept

	if bg.CloudCooldown > 0 {
		bg.CloudCooldown--
		return
	}

	limit := bg.Theme.CloudMax
	if limit > cfg.Background.MaxClouds {
		limit = cfg.Background.MaxClouds
	}
	if len(bg.Clouds) >= limit {
		return
	}

	bg.Clouds = append(bg.Clouds, newCloud(bg.Theme, float64(cfg.C.Width)))
	bg.CloudCooldown = 90 + rand.Intn(150)
}

func newCloud(theme *assets.Theme, x float64) components.CloudData {
	return components.CloudData{
		Pos: components.Vector{
			X: x,
			Y: 20 + rand.Float64()*(cfg.C.GroundLevel*0.4),
		},
		Speed: theme.CloudSpeedMin + rand.Float64()*(theme.CloudSpeedMax-theme.CloudSpeedMin),
		Scale: 0.7 + rand.Float64()*0.8,
	}
}

// CycleTheme advances to the next theme in the rotation
func CycleTheme(e *ecs.ECS) {
	bg := getOrCreateBackground(e)
	SetTheme(e, (bg.ThemeIndex+1)%len(cfg.Background.Themes))
}

// SetTheme switches the active theme, keeping clouds and scroll positions
func SetTheme(e *ecs.ECS, index int) {
	if len(cfg.Background.Themes) == 0 {
		return
	}
	index = ((index % len(cfg.Background.Themes)) + len(cfg.Background.Themes)) % len(cfg.Background.Themes)

	cfg.Background.ActiveTheme = index

	bg := getOrCreateBackground(e)
	bg.ThemeIndex = index
	bg.Theme = assets.LoadTheme(cfg.Background.Themes[index])

	offsets := make([]float64, len(bg.Theme.Layers))
	copy(offsets, bg.LayerOffsets)
	bg.LayerOffsets = offsets
}

// CurrentThemeIndex reports the active theme for settings and persistence
func CurrentThemeIndex(e *ecs.ECS) int {
	return getOrCreateBackground(e).ThemeIndex
}

func getOrCreateBackground(e *ecs.ECS) *components.BackgroundData {
	if entry, ok := components.Background.First(e.World); ok {
		return components.Background.Get(entry)
	}

	idx := cfg.Background.ActiveTheme
	if idx < 0 || idx >= len(cfg.Background.Themes) {
		idx = 0
	}
	theme := assets.LoadTheme(cfg.Background.Themes[idx])
	entry := e.World.Entry(e.World.Create(components.Background))

	bg := components.BackgroundData{
		ThemeIndex:   idx,
		Theme:        theme,
		LayerOffsets: make([]float64, len(theme.Layers)),
	}

	// Seed the sky so the first frame isn't empty
	for i := 0; i < theme.CloudMin; i++ {
		cloud := newCloud(theme, rand.Float64()*float64(cfg.C.Width))
		bg.Clouds = append(bg.Clouds, cloud)
	}
	bg.CloudCooldown = 60 + rand.Intn(120)

	components.Background.SetValue(entry, bg)
	return components.Background.Get(entry)
}

// DrawBackground paints sky, parallax bands, clouds and the ground strip
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	bg := getOrCreateBackground(e)
	shakeX, shakeY := ShakeOffset(e)

	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	// Sky gradient, stretched over the full window
	sky := assets.GetSkyImage(bg.Theme)
	bgDrawOp.GeoM.Reset()
	bgDrawOp.ColorScale.Reset()
	bgDrawOp.GeoM.Scale(width, height/float64(sky.Bounds().Dy()))
	screen.DrawImage(sky, bgDrawOp)

	// Parallax bands, far to near, bottoms pinned to the ground line
	for i, layer := range bg.Theme.Layers {
		band := assets.GetLayerImage(bg.Theme, i)
		if band == nil {
			continue
		}
		bandW := float64(band.Bounds().Dx())
		top := cfg.C.GroundLevel - layer.Height

		for x := bg.LayerOffsets[i]; x < width; x += bandW {
			bgDrawOp.GeoM.Reset()
			bgDrawOp.ColorScale.Reset()
			bgDrawOp.GeoM.Translate(x+shakeX, top+shakeY)
			screen.DrawImage(band, bgDrawOp)
		}
	}

	// Clouds, tinted per theme
	cloudImg := assets.GetCloudImage()
	for _, cloud := range bg.Clouds {
		bgDrawOp.GeoM.Reset()
		bgDrawOp.ColorScale.Reset()
		bgDrawOp.GeoM.Scale(cloud.Scale, cloud.Scale)
		bgDrawOp.GeoM.Translate(cloud.Pos.X+shakeX, cloud.Pos.Y+shakeY)
		bgDrawOp.ColorScale.ScaleWithColor(bg.Theme.CloudTint)
		screen.DrawImage(cloudImg, bgDrawOp)
	}

	// Ground: grass lip over packed earth
	groundY := float32(cfg.C.GroundLevel + shakeY)
	vector.FillRect(screen, float32(shakeX)-16, groundY, float32(width)+32, float32(height)-groundY+16, bg.Theme.GroundDark, false)
	vector.FillRect(screen, float32(shakeX)-16, groundY, float32(width)+32, 14, bg.Theme.Ground, false)
}
