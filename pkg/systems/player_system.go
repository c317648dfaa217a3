// Package systems holds the per-frame logic that operates on component
// data. Each system is constructed once per scene and driven by Update
// with the frame's deltaTime.
package systems

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/gonewx/catcher/pkg/utils"
)

// PlayerSystem moves the catcher from keyboard input and keeps its pose
// sprite in sync with the reacting overlay.
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
}

// NewPlayerSystem creates a new player system.
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update samples the held keys and applies one frame of movement.
func (s *PlayerSystem) Update(session *game.GameSession, deltaTime float64) {
	s.Move(session, utils.SampleMoveInput(), deltaTime)
}

// Move applies the given input sample for one frame. Split out from
// Update so movement is testable without a real keyboard.
func (s *PlayerSystem) Move(session *game.GameSession, input utils.MoveInput, deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// Speeds are in pixels per 60 Hz tick; scale by the frame time.
		step := player.Speed * deltaTime * 60
		if input.Left {
			pos.X -= step
		}
		if input.Right {
			pos.X += step
		}

		maxX := s.config.FieldWidth - s.config.PlayerWidth
		if pos.X < 0 {
			pos.X = 0
		}
		if pos.X > maxX {
			pos.X = maxX
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Image = player.CurrentImage(session.Now())
		}
	}
}
