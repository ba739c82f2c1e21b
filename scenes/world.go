package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the endless dash. Game over is a phase inside this scene,
// not a separate one, so restarting never rebuilds the world.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a new run scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Escape leaves for the menu mid-run; after a crash the game over
	// system owns the key instead
	gs := systems.GetOrCreateGameState(ws.ecs)
	if gs.Phase == components.PhaseRunning && systems.QuitToMenuRequested(ws.ecs) {
		systems.FadeOutMusic(ws.ecs)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAll()

	// Load shaders for the death flash
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}

	// Audio system (runs first so UI sounds work in every phase)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)

	// The cat systems check the death state themselves so the death
	// animation can finish under the overlay
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)

	// Run-state mutators freeze once the cat crashes. Collision must see
	// this tick's post-movement positions, so movement comes first.
	ecs.AddSystem(systems.WhileRunning(systems.UpdateObstacles))
	ecs.AddSystem(systems.WhileRunning(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WhileRunning(systems.UpdateSpawner))
	ecs.AddSystem(systems.WhileRunning(systems.UpdateCollisions))
	ecs.AddSystem(systems.WhileRunning(systems.UpdateScore))

	// Presentation systems keep going under the game over overlay
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdatePopups)
	ecs.AddSystem(systems.UpdateBackground)
	ecs.AddSystem(systems.NewUpdateGameOver(ws.sceneChanger, createMenuScene))

	// Renderers back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawPopups)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	ws.ecs = ecs

	// The space covers the screen plus the offscreen spawn strip
	spaceEntry := factory.CreateSpace(ws.ecs, cfg.C.Width+256, cfg.C.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	player := factory.CreatePlayer(ws.ecs)
	playerObj := components.Object.Get(player)
	space.Add(playerObj.Object)

	gs := systems.GetOrCreateGameState(ws.ecs)
	gs.HighScore = systems.LoadHighScore()

	systems.PlayMusic(ws.ecs, cfg.Sound.GameMusic)
}
