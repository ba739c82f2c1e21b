package assets

import (
	"image/color"
	"math"
	"testing"

	cfg "github.com/mossfell/catdash/config"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#7ec850", color.RGBA{R: 0x7e, G: 0xc8, B: 0x50, A: 255}, true},
		{"#11223344", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, true},
		{"aabbcc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}, true},
		{" #ffffff ", color.RGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"", color.RGBA{}, false},
		{"fff", color.RGBA{}, false},
		{"#1122334", color.RGBA{}, false},
		{"xyzxyz", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := parseHexColor(tt.in)
		if ok != tt.ok {
			t.Errorf("parseHexColor(%q): ok=%v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTriangleWave(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
		{1.25, 0.5},
		{-0.25, 0.5},
	}
	for _, tt := range tests {
		if got := triangleWave(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("triangleWave(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 10, G: 20, B: 30, A: 0}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 0}

	if got := lerpColor(a, b, 0); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("f=0: got %v", got)
	}
	if got := lerpColor(a, b, 1); got != (color.RGBA{R: 200, G: 100, B: 0, A: 255}) {
		t.Errorf("f=1: got %v", got)
	}
	if got := lerpColor(a, b, 0.5); got != (color.RGBA{R: 105, G: 60, B: 15, A: 255}) {
		t.Errorf("f=0.5: got %v", got)
	}
}

func TestLoadEmbeddedThemes(t *testing.T) {
	for _, name := range cfg.Background.Themes {
		theme, err := loadTheme(name)
		if err != nil {
			t.Fatalf("loadTheme(%q): %v", name, err)
		}
		if theme.Name != name {
			t.Errorf("%s: name %q", name, theme.Name)
		}
		if len(theme.Layers) == 0 {
			t.Errorf("%s: no parallax layers", name)
		}
		if theme.CloudMin <= 0 || theme.CloudMax < theme.CloudMin {
			t.Errorf("%s: bad cloud counts %d..%d", name, theme.CloudMin, theme.CloudMax)
		}
		if theme.CloudSpeedMin <= 0 || theme.CloudSpeedMax < theme.CloudSpeedMin {
			t.Errorf("%s: bad cloud speeds %v..%v", name, theme.CloudSpeedMin, theme.CloudSpeedMax)
		}
		for i := 1; i < len(theme.Layers); i++ {
			if theme.Layers[i-1].Speed > theme.Layers[i].Speed {
				t.Errorf("%s: layers not sorted back to front", name)
			}
		}
	}
}

func TestLoadThemeOverridesDefaults(t *testing.T) {
	theme, err := loadTheme("dusk")
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{R: 0x2e, G: 0x3a, B: 0x67, A: 255}); theme.SkyTop != want {
		t.Errorf("SkyTop = %v, want %v", theme.SkyTop, want)
	}
	if theme.CloudMin != 2 || theme.CloudMax != 5 {
		t.Errorf("Cloud counts %d..%d, want 2..5", theme.CloudMin, theme.CloudMax)
	}
}

func TestLoadThemeFallsBack(t *testing.T) {
	theme := LoadTheme("missing")
	if theme.Name != "missing" {
		t.Errorf("Fallback kept name %q", theme.Name)
	}
	if len(theme.Layers) != 2 {
		t.Errorf("Expected the built-in palette's 2 layers, got %d", len(theme.Layers))
	}
	if theme.CloudMin != 3 || theme.CloudMax != 6 {
		t.Errorf("Cloud counts %d..%d, want 3..6", theme.CloudMin, theme.CloudMax)
	}
}

func TestBuildBandBounds(t *testing.T) {
	layer := ParallaxLayer{Color: color.RGBA{R: 1, G: 2, B: 3, A: 255}, Height: 120, Style: "hills"}
	img := buildBand(layer)

	if b := img.Bounds(); b.Dx() != bandTileWidth || b.Dy() != 120 {
		t.Errorf("Band bounds %dx%d, want %dx120", b.Dx(), b.Dy(), bandTileWidth)
	}
	if got := img.RGBAAt(0, 119); got != layer.Color {
		t.Errorf("Bottom row not filled: %v", got)
	}

	// Degenerate heights clamp up so the band stays drawable.
	short := buildBand(ParallaxLayer{Height: 3, Style: "ridge"})
	if b := short.Bounds(); b.Dy() != 8 {
		t.Errorf("Expected height clamp to 8, got %d", b.Dy())
	}
}
