package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one phase of the game (playing, ended, final).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene logic.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
