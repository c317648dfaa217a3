// Package app wires the game together: configuration, saved settings,
// asset loading and the fixed-timestep loop behind ebiten's Game
// interface.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Ebiten calls Update at a fixed 60 Hz, so every frame advances the
// simulation by the same step.
const deltaTime = 1.0 / 60.0

// Config selects the runtime options of a launch.
type Config struct {
	// Verbose enables log output; without it the game runs silently.
	Verbose bool
	// ConfigPath points at an optional gameplay yaml; empty means the
	// built-in defaults.
	ConfigPath string
}

// App is the ebiten.Game implementation. It owns the session and the
// scene manager and forwards the loop to the active scene.
type App struct {
	session         *game.GameSession
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
}

// New loads everything a run needs and starts the session on the
// playfield.
func New(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}

	gameplay, err := config.LoadGameplayConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load gameplay config: %w", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "catcher"})
	if err != nil {
		log.Printf("[App] Warning: save directory unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to init settings: %w", err)
	}

	resources := loadResources(game.NewResourceManager())

	session := game.NewGameSession()
	sceneManager := game.NewSceneManager()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sceneManager.SwitchTo(scenes.NewPlayingScene(sceneManager, session, gameplay, resources, rng))

	return &App{
		session:         session,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// loadResources reads the assets from disk. Every sprite degrades to a
// colored placeholder and the animations to a single placeholder frame,
// so the game is playable from a bare checkout.
func loadResources(rm *game.ResourceManager) *scenes.Resources {
	res := &scenes.Resources{
		PlayerImage: rm.LoadSprite("assets/sprites/default.png", 80, 80,
			color.RGBA{G: 180, A: 255}),
		PlayerReactingImage: rm.LoadSprite("assets/sprites/noms.png", 80, 80,
			color.RGBA{R: 230, G: 180, A: 255}),
		ItemImage: rm.LoadSprite("assets/sprites/heart.png", 50, 50,
			color.RGBA{R: 220, A: 255}),
	}

	res.EndFrames = loadAnimationOrPlaceholder(rm, "assets/sprites/dog.gif",
		color.RGBA{B: 200, A: 255})
	res.FinalFrames = loadAnimationOrPlaceholder(rm, "assets/sprites/dog2.gif",
		color.RGBA{R: 160, B: 200, A: 255})

	font, err := rm.LoadFont("assets/fonts/game.ttf", 28)
	if err != nil {
		log.Printf("[App] %v, using debug font", err)
		font = nil
	}
	res.Font = font

	return res
}

func loadAnimationOrPlaceholder(rm *game.ResourceManager, path string, fallback color.RGBA) []components.AnimationFrame {
	frames, err := rm.LoadAnimation(path, 200, 200)
	if err != nil {
		log.Printf("[App] %v, using placeholder frame", err)
		return []components.AnimationFrame{{
			Image:    game.PlaceholderImage(200, 200, fallback),
			Duration: 0.1,
		}}
	}
	return frames
}

// Settings returns the live user preferences.
func (a *App) Settings() *game.Settings {
	return a.settingsManager.GetSettings()
}

// Update advances the game by one fixed step.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	a.sceneManager.Update(deltaTime)

	if a.session.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout fixes the logical resolution regardless of window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
