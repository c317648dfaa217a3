// Package scenes contains the three phases of a run: the playfield, the
// win screen and the farewell screen. Each scene owns its entities and
// systems; the shared session travels between them.
package scenes

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Resources bundles the loaded assets every scene draws from. All images
// are pre-scaled to their on-screen sizes; Font may be nil, in which case
// text falls back to the debug font.
type Resources struct {
	PlayerImage         *ebiten.Image
	PlayerReactingImage *ebiten.Image
	ItemImage           *ebiten.Image
	Font                *text.GoTextFace

	EndFrames   []components.AnimationFrame
	FinalFrames []components.AnimationFrame
}
