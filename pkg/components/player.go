package components

import "github.com/hajimehoshi/ebiten/v2"

// PlayerComponent marks the catcher entity and carries its movement speed
// and the two poses it can present. While the Reacting overlay is active
// the reacting image is shown instead of the normal one.
type PlayerComponent struct {
	Speed         float64 // horizontal speed in pixels per 60 Hz tick
	NormalImage   *ebiten.Image
	ReactingImage *ebiten.Image
	Reacting      TimedOverlay
}

// CurrentImage resolves the pose for the given game time.
func (p *PlayerComponent) CurrentImage(now float64) *ebiten.Image {
	if !p.Reacting.Expired(now) && p.ReactingImage != nil {
		return p.ReactingImage
	}
	return p.NormalImage
}
