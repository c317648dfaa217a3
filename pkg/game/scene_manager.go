package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active. Only the active scene's
// Update and Draw methods are called on any given frame.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager returns a manager with no active scene; use SwitchTo to
// set the initial one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene. The new scene takes over on the next
// game loop iteration.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// CurrentScene returns the active scene, or nil if none is set.
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
