package entities

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/ecs"
)

// NewButtonEntity creates a clickable labeled control with its top-left
// corner at (x, y).
func NewButtonEntity(em *ecs.EntityManager, label string, x, y, width, height float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})
	ecs.AddComponent(em, id, &components.ButtonComponent{Label: label})

	return id
}
