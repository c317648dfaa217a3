package systems

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
)

// MissedEvent reports one item that left the field uncaught. X and Y are
// the item's center at the moment it crossed the bottom edge.
type MissedEvent struct {
	X float64
	Y float64
}

// FallSystem advances every falling item and reports the ones that fell
// past the bottom of the field. Each item is reported at most once and is
// destroyed in the same frame.
type FallSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
}

// NewFallSystem creates a new fall system.
func NewFallSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *FallSystem {
	return &FallSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update moves items down by speed*deltaTime*60 and returns this frame's
// missed items in ascending entity order.
func (s *FallSystem) Update(deltaTime float64) []MissedEvent {
	var missed []MissedEvent

	entities := ecs.GetEntitiesWith2[*components.FallingComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		falling, _ := ecs.GetComponent[*components.FallingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.Y += falling.Speed * deltaTime * 60

		// An item is missed once its top edge passes the bottom of the
		// field, i.e. it is fully out of view.
		if pos.Y > s.config.FieldHeight && !falling.Missed {
			falling.Missed = true
			missed = append(missed, MissedEvent{
				X: pos.X + s.config.ItemWidth/2,
				Y: pos.Y + s.config.ItemHeight/2,
			})
			s.entityManager.DestroyEntity(id)
		}
	}

	return missed
}
