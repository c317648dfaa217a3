// Package entities provides factory functions that assemble the component
// sets for each kind of entity.
package entities

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerBottomMargin is the gap between the catcher and the field bottom.
const PlayerBottomMargin = 20

// NewPlayerEntity creates the catcher, horizontally centered just above
// the bottom edge. The reacting pose starts disarmed.
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, normal, reacting *ebiten.Image) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: (cfg.FieldWidth - cfg.PlayerWidth) / 2,
		Y: cfg.FieldHeight - PlayerBottomMargin - cfg.PlayerHeight,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: normal})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.PlayerWidth,
		Height: cfg.PlayerHeight,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:         cfg.PlayerSpeed,
		NormalImage:   normal,
		ReactingImage: reacting,
		Reacting:      components.NewTimedOverlay(cfg.ReactingDuration),
	})

	return id
}
