package main

import (
	"fmt"
	"image"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/fonts"
	"github.com/mossfell/catdash/scenes"
	"github.com/mossfell/catdash/systems"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// The oldest toolchain the game is tested against. Older runtimes miss
// ebiten fixes the game relies on.
const (
	minGoMajor = 1
	minGoMinor = 24
)

var (
	flagFullscreen bool
	flagMute       bool
	flagTheme      string
	flagSkipMenu   bool
	flagDebug      bool
	flagConfig     string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.HUDBold, gobold.TTF, 18)
	fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 42)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "catdash",
	Short: "CatDash - an endless runner about a cat with a scooter and a slingshot",
	Long: `CatDash is an endless runner: jump crates, slide under balloons,
and spend banked shots to clear what you cannot dodge.

Examples:
  catdash
  catdash --theme night --fullscreen
  catdash --config my-tuning.yaml
  catdash check`,
	SilenceUsage: true,
	RunE:         runGame,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the runtime and the data directory",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning override (default: catdash.yaml if present)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Scenery theme (meadow, dusk, night)")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Jump straight into a run")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision boxes")

	rootCmd.AddCommand(checkCmd)
}

func main() {
	log.SetPrefix("catdash")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := verifyRuntime(); err != nil {
		return err
	}
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("Starting without persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if err := applyFlags(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return err
	}
	return nil
}

// loadConfigFile applies the YAML tuning override. An explicit --config path
// must exist; the default file may be absent.
func loadConfigFile() error {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return config.LoadDefaultFile()
}

func applyFlags() error {
	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}
	if flagMute {
		systems.SetMutedGlobal(true)
	}
	if flagSkipMenu {
		config.Debug.SkipMenu = true
	}
	if flagDebug {
		config.Debug.DrawHitboxes = true
	}

	if flagTheme != "" {
		idx := -1
		for i, name := range config.Background.Themes {
			if strings.EqualFold(name, flagTheme) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown theme %q (have: %s)", flagTheme, strings.Join(config.Background.Themes, ", "))
		}
		config.Background.ActiveTheme = idx
	}
	return nil
}

// runCheck reports whether this build can run and store scores on this
// machine, without opening a window.
func runCheck(cmd *cobra.Command, args []string) error {
	goVersion := runtime.Version()
	if err := verifyRuntime(); err != nil {
		fmt.Printf("runtime:    %s FAIL (%v)\n", goVersion, err)
		return fmt.Errorf("runtime check failed")
	}
	fmt.Printf("runtime:    %s ok (minimum go%d.%d)\n", goVersion, minGoMajor, minGoMinor)

	if err := systems.InitPersistence(); err != nil {
		fmt.Printf("data dir:   FAIL (%v)\n", err)
		return fmt.Errorf("data directory check failed")
	}
	if err := systems.ProbeDataDir(); err != nil {
		fmt.Printf("data dir:   FAIL (%v)\n", err)
		return fmt.Errorf("data directory check failed")
	}
	fmt.Printf("data dir:   ok (write/read roundtrip)\n")

	fmt.Printf("high score: %d\n", systems.LoadHighScore())

	if saved, err := systems.LoadSettings(); err != nil {
		fmt.Printf("settings:   unreadable (%v)\n", err)
	} else if saved == nil {
		fmt.Printf("settings:   none saved yet\n")
	} else {
		fmt.Printf("settings:   music %.0f%%, sfx %.0f%%, theme %d\n",
			saved.MusicVolume*100, saved.SFXVolume*100, saved.ThemeIndex)
	}
	return nil
}

// verifyRuntime rejects binaries built with a toolchain older than the
// minimum the game is tested against.
func verifyRuntime() error {
	return checkGoVersion(runtime.Version())
}

func checkGoVersion(version string) error {
	major, minor, ok := parseGoVersion(version)
	if !ok {
		// devel and gccgo builds report nonstandard strings; let them through
		return nil
	}
	if major > minGoMajor || (major == minGoMajor && minor >= minGoMinor) {
		return nil
	}
	return fmt.Errorf("built with %s, need go%d.%d or newer", version, minGoMajor, minGoMinor)
}

func parseGoVersion(version string) (int, int, bool) {
	if !strings.HasPrefix(version, "go") {
		return 0, 0, false
	}
	parts := strings.SplitN(strings.TrimPrefix(version, "go"), ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
