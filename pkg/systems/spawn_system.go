package systems

import (
	"math/rand"

	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/entities"
	"github.com/gonewx/catcher/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpawnSystem creates a new falling item every SpawnInterval seconds of
// unpaused Playing time. The interval accumulator carries the remainder
// across frames so the average rate is exact regardless of frame timing.
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	itemImage     *ebiten.Image
	rng           *rand.Rand
	accumulator   float64
}

// NewSpawnSystem creates a new spawn system.
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, itemImage *ebiten.Image, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		itemImage:     itemImage,
		rng:           rng,
	}
}

// Update advances the spawn timer. No items spawn outside the Playing
// phase, and time spent outside it does not accrue.
func (s *SpawnSystem) Update(session *game.GameSession, deltaTime float64) {
	if session.Phase() != game.PhasePlaying {
		return
	}

	s.accumulator += deltaTime
	for s.accumulator >= s.config.SpawnInterval {
		s.accumulator -= s.config.SpawnInterval
		entities.NewFallingItemEntity(s.entityManager, s.config, s.itemImage, s.rng)
	}
}
