package entities

import (
	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
)

// NewFloatingTextEntity creates a fading, upward-drifting text effect
// centered on (centerX, centerY), armed at the given game time.
func NewFloatingTextEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, textStr string, centerX, centerY, now float64) ecs.EntityID {
	id := em.CreateEntity()

	overlay := components.NewTimedOverlay(cfg.MissedTextDuration)
	overlay.Restart(now)

	ecs.AddComponent(em, id, &components.FloatingTextComponent{
		Text:    textStr,
		AnchorX: centerX,
		AnchorY: centerY,
		Overlay: overlay,
		Rise:    cfg.MissedTextRise,
	})

	return id
}
