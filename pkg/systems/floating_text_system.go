package systems

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/ecs"
	"github.com/gonewx/catcher/pkg/game"
)

// FloatingTextSystem destroys text effects that have fully faded.
type FloatingTextSystem struct {
	entityManager *ecs.EntityManager
}

// NewFloatingTextSystem creates a new floating text system.
func NewFloatingTextSystem(em *ecs.EntityManager) *FloatingTextSystem {
	return &FloatingTextSystem{entityManager: em}
}

// Update marks dead text effects for destruction.
func (s *FloatingTextSystem) Update(session *game.GameSession) {
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.entityManager) {
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		if ft.Dead(session.Now()) {
			s.entityManager.DestroyEntity(id)
		}
	}
}
