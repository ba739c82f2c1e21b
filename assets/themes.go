package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

//go:embed themes/*.tmx
var themeFS embed.FS

// ParallaxLayer is one scrolling silhouette band behind the ground.
type ParallaxLayer struct {
	Color  color.RGBA
	Height float64
	Speed  float64 // scroll factor relative to world speed
	Style  string  // hills, ridge or treeline
}

// Theme holds the palette and parallax layout for one backdrop. It carries
// plain colors only, so theme data can be loaded and tested without a
// graphics context.
type Theme struct {
	Name       string
	SkyTop     color.RGBA
	SkyBottom  color.RGBA
	Ground     color.RGBA
	GroundDark color.RGBA
	Layers     []ParallaxLayer

	CloudTint     color.RGBA
	CloudMin      int
	CloudMax      int
	CloudSpeedMin float64
	CloudSpeedMax float64
}

// LoadTheme reads a theme TMX by name. A broken or missing file logs a
// warning and falls back to a built-in palette so the game keeps running.
func LoadTheme(name string) *Theme {
	t, err := loadTheme(name)
	if err != nil {
		log.Warn("Failed to load theme, using fallback", "theme", name, "error", err)
		return defaultTheme(name)
	}
	return t
}

func loadTheme(name string) (*Theme, error) {
	path := fmt.Sprintf("themes/%s.tmx", name)
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(themeFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	t := defaultTheme(name)
	setColor(&t.SkyTop, m.Properties.GetString("skyTop"))
	setColor(&t.SkyBottom, m.Properties.GetString("skyBottom"))
	setColor(&t.Ground, m.Properties.GetString("ground"))
	setColor(&t.GroundDark, m.Properties.GetString("groundDark"))
	setColor(&t.CloudTint, m.Properties.GetString("cloudTint"))
	if v := m.Properties.GetInt("cloudMin"); v > 0 {
		t.CloudMin = v
	}
	if v := m.Properties.GetInt("cloudMax"); v > 0 {
		t.CloudMax = v
	}
	setFloat(&t.CloudSpeedMin, m.Properties.GetString("cloudSpeedMin"))
	setFloat(&t.CloudSpeedMax, m.Properties.GetString("cloudSpeedMax"))

	for _, og := range m.ObjectGroups {
		if og.Name != "parallax" {
			continue
		}
		layers := make([]ParallaxLayer, 0, len(og.Objects))
		for _, o := range og.Objects {
			layer := ParallaxLayer{
				Height: o.Height,
				Speed:  0.5,
				Style:  "hills",
			}
			setColor(&layer.Color, o.Properties.GetString("color"))
			setFloat(&layer.Speed, o.Properties.GetString("speed"))
			if s := o.Properties.GetString("style"); s != "" {
				layer.Style = s
			}
			layers = append(layers, layer)
		}
		// slowest layers sit farthest back
		sort.Slice(layers, func(i, j int) bool {
			return layers[i].Speed < layers[j].Speed
		})
		t.Layers = layers
	}

	return t, nil
}

func defaultTheme(name string) *Theme {
	return &Theme{
		Name:       name,
		SkyTop:     color.RGBA{R: 142, G: 216, B: 248, A: 255},
		SkyBottom:  color.RGBA{R: 216, G: 240, B: 250, A: 255},
		Ground:     color.RGBA{R: 126, G: 200, B: 80, A: 255},
		GroundDark: color.RGBA{R: 90, G: 150, B: 56, A: 255},
		Layers: []ParallaxLayer{
			{Color: color.RGBA{R: 168, G: 216, B: 160, A: 255}, Height: 120, Speed: 0.2, Style: "hills"},
			{Color: color.RGBA{R: 120, G: 184, B: 110, A: 255}, Height: 70, Speed: 0.45, Style: "hills"},
		},
		CloudTint:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		CloudMin:      3,
		CloudMax:      6,
		CloudSpeedMin: 0.3,
		CloudSpeedMax: 0.8,
	}
}

// GetSkyImage returns a one pixel wide vertical gradient for the theme's
// sky. The renderer stretches it across the window.
func GetSkyImage(t *Theme) *ebiten.Image {
	return spriteLoader.named("sky/"+t.Name, func() *image.RGBA {
		const h = 256
		img := image.NewRGBA(image.Rect(0, 0, 1, h))
		for y := 0; y < h; y++ {
			img.SetRGBA(0, y, lerpColor(t.SkyTop, t.SkyBottom, float64(y)/float64(h-1)))
		}
		return img
	})
}

// GetLayerImage returns the tileable silhouette band for one parallax layer.
func GetLayerImage(t *Theme, index int) *ebiten.Image {
	if index < 0 || index >= len(t.Layers) {
		return nil
	}
	layer := t.Layers[index]
	key := fmt.Sprintf("band/%s/%d", t.Name, index)
	return spriteLoader.named(key, func() *image.RGBA {
		return buildBand(layer)
	})
}

const bandTileWidth = 512

// buildBand paints a horizontally tileable band whose top edge is shaped by
// the layer style. The wave phases are chosen so x=0 and x=width meet.
func buildBand(layer ParallaxLayer) *image.RGBA {
	w := bandTileWidth
	h := int(layer.Height)
	if h < 8 {
		h = 8
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	crest := float64(h) * 0.4
	for x := 0; x < w; x++ {
		f := float64(x) / float64(w)
		var top float64
		switch layer.Style {
		case "ridge":
			// jagged peaks from two triangle waves
			top = crest * (0.6*triangleWave(f*6) + 0.4*triangleWave(f*14+0.3))
		case "treeline":
			// tight bumps over a slow roll
			top = crest * (0.35 + 0.25*math.Sin(f*2*math.Pi*3) + 0.4*math.Abs(math.Sin(f*2*math.Pi*24)))
		default: // hills
			top = crest * (0.5 + 0.35*math.Sin(f*2*math.Pi*2) + 0.15*math.Sin(f*2*math.Pi*5))
		}
		for y := int(top); y < h; y++ {
			img.SetRGBA(x, y, layer.Color)
		}
	}
	return img
}

// triangleWave maps f to a 0..1 triangle with period 1.
func triangleWave(f float64) float64 {
	f = f - math.Floor(f)
	return 1 - math.Abs(2*f-1)
}

func lerpColor(a, b color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*f),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*f),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*f),
		A: 255,
	}
}

func setColor(dst *color.RGBA, s string) {
	if c, ok := parseHexColor(s); ok {
		*dst = c
	}
}

func setFloat(dst *float64, s string) {
	if s == "" {
		return
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*dst = v
	}
}

// parseHexColor accepts #rrggbb or #rrggbbaa, with or without the hash.
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, false
	}
	c := color.RGBA{A: 255}
	if len(s) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.B = uint8(v & 0xff)
	c.G = uint8(v >> 8 & 0xff)
	c.R = uint8(v >> 16 & 0xff)
	return c, true
}
