package systems

import (
	"testing"

	"github.com/gonewx/catcher/pkg/components"
	"github.com/gonewx/catcher/pkg/config"
	"github.com/gonewx/catcher/pkg/ecs"
)

func newFallingItemAt(em *ecs.EntityManager, x, y, speed float64, cfg *config.GameplayConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.ItemWidth, Height: cfg.ItemHeight})
	ecs.AddComponent(em, id, &components.FallingComponent{Speed: speed})
	return id
}

func TestFallSystemMovesItems(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	id := newFallingItemAt(em, 100, 200, 5, cfg)

	system := NewFallSystem(em, cfg)
	if missed := system.Update(testDelta); len(missed) != 0 {
		t.Fatalf("Expected no missed items, got %d", len(missed))
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if !approx(pos.Y, 205) {
		t.Errorf("Expected y=205 after one tick at speed 5, got %v", pos.Y)
	}
}

func TestFallSystemReportsMissedExactlyOnce(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	newFallingItemAt(em, 100, cfg.FieldHeight-1, 5, cfg)

	system := NewFallSystem(em, cfg)
	missed := system.Update(testDelta)
	if len(missed) != 1 {
		t.Fatalf("Expected 1 missed item, got %d", len(missed))
	}
	if missed[0].X != 125 {
		t.Errorf("Expected missed center x=125, got %v", missed[0].X)
	}

	// Even before the destroy sweep runs, the latch prevents a repeat.
	if again := system.Update(testDelta); len(again) != 0 {
		t.Errorf("Expected no repeat report, got %d", len(again))
	}

	em.RemoveMarkedEntities()
	if len(ecs.GetEntitiesWith1[*components.FallingComponent](em)) != 0 {
		t.Error("Expected missed item to be destroyed")
	}
}

func TestFallSystemMultipleMissedInOrder(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	first := newFallingItemAt(em, 50, cfg.FieldHeight-1, 5, cfg)
	second := newFallingItemAt(em, 300, cfg.FieldHeight-1, 5, cfg)
	if first >= second {
		t.Fatal("Expected ascending entity IDs")
	}

	system := NewFallSystem(em, cfg)
	missed := system.Update(testDelta)
	if len(missed) != 2 {
		t.Fatalf("Expected 2 missed items, got %d", len(missed))
	}
	if missed[0].X != 75 || missed[1].X != 325 {
		t.Errorf("Expected reports in entity order (75, 325), got (%v, %v)", missed[0].X, missed[1].X)
	}
}
