package systems

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/utils"
)

// CollisionSystem runs the two contact tests between the catcher and the
// falling items. Soft contact (the item's box inflated by the configured
// margin) triggers the reacting pose; hard contact (exact boxes) captures
// the item.
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update runs both passes and returns the number of items captured this
// frame. Captured items are destroyed. The soft pass restarts the
// reacting overlay on the first near item and stops; restarting it once
// per frame is enough since the overlay only tracks the latest trigger.
func (s *CollisionSystem) Update(session *game.GameSession) int {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	if len(players) == 0 {
		return 0
	}
	playerID := players[0]

	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	playerBox, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)

	playerRect := utils.Rect{
		X: playerPos.X,
		Y: playerPos.Y,
		W: playerBox.Width,
		H: playerBox.Height,
	}

	items := ecs.GetEntitiesWith3[*components.FallingComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)

	// Soft pass: near-miss detection against inflated item boxes.
	for _, id := range items {
		if playerRect.Overlaps(s.itemRect(id).Inflate(s.config.SoftContactMargin, s.config.SoftContactMargin)) {
			player.Reacting.Restart(session.Now())
			break
		}
	}

	// Hard pass: exact overlap captures the item.
	captured := 0
	for _, id := range items {
		if playerRect.Overlaps(s.itemRect(id)) {
			s.entityManager.DestroyEntity(id)
			captured++
		}
	}

	return captured
}

func (s *CollisionSystem) itemRect(id ecs.EntityID) utils.Rect {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	box, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	return utils.Rect{X: pos.X, Y: pos.Y, W: box.Width, H: box.Height}
}
