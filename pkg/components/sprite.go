package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent stores the image currently drawn for an entity.
// A nil image is legal and means "nothing to draw".
type SpriteComponent struct {
	Image *ebiten.Image
}
