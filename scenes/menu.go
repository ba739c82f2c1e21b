package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems"
	"github.com/mossfell/catdash/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldPlay   bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	// Mouse input goes to the widgets unless the settings overlay owns it
	if !systems.IsSettingsOpen(ms.ecs) {
		ms.menuUI.Update()
	}
	ms.menuUI.UpdateUI()

	if ms.shouldPlay {
		ms.shouldPlay = false
		systems.FadeOutMusic(ms.ecs)
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		return
	}
	if ms.shouldQuit {
		os.Exit(0)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Create world scene factory that captures the scene changer
	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene))
	ms.ecs.AddSystem(systems.UpdateBackground)
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Renderers (widgets over the scenery, settings overlay on top)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ms.ecs.AddRenderer(cfg.Default, func(e *ecs.ECS, screen *ebiten.Image) {
		ms.menuUI.UI.Draw(screen)
	})
	ms.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	menu := systems.GetOrCreateMenu(ms.ecs)
	ms.menuUI = ui.NewMenuUI(
		menu,
		systems.LoadHighScore(),
		func() { ms.shouldPlay = true },
		func() { systems.OpenSettings(ms.ecs) },
		func() { ms.shouldQuit = true },
	)

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}
