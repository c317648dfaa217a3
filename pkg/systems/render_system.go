package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RenderSystem draws the playfield: background, sprites, floating text
// effects and the score readout, in that order.
type RenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewRenderSystem creates a new render system. A nil font falls back to
// the debug font in the text helpers.
func NewRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		font:          font,
	}
}

// Draw renders one frame.
func (s *RenderSystem) Draw(screen *ebiten.Image, session *game.GameSession) {
	screen.Fill(color.White)

	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(sprite.Image, op)
	}

	now := session.Now()
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.entityManager) {
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		utils.DrawTextCenteredAlpha(screen, s.font, ft.Text,
			ft.AnchorX, ft.CenterY(now),
			color.RGBA{R: 200, A: 255}, ft.Alpha(now))
	}

	utils.DrawText(screen, s.font, fmt.Sprintf("Score: %d", session.Score()), 10, 10, color.Black)
}
