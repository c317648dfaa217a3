package entities

import (
	"math/rand"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewFallingItemEntity creates one falling item just above the top edge.
// The horizontal position is uniform over [0, fieldWidth-itemWidth] and
// the fall speed is sampled once from [fallSpeedMin, fallSpeedMax].
func NewFallingItemEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, img *ebiten.Image, rng *rand.Rand) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: rng.Float64() * (cfg.FieldWidth - cfg.ItemWidth),
		Y: -cfg.ItemHeight,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.ItemWidth,
		Height: cfg.ItemHeight,
	})
	ecs.AddComponent(em, id, &components.FallingComponent{
		Speed: cfg.FallSpeedMin + rng.Float64()*(cfg.FallSpeedMax-cfg.FallSpeedMin),
	})

	return id
}
