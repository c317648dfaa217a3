package ecs

import (
	"reflect"
	"testing"
)

type testPos struct{ X, Y float64 }
type testVel struct{ Speed float64 }

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == 0 || id2 == 0 {
		t.Error("Expected non-zero entity IDs")
	}
	if id1 == id2 {
		t.Errorf("Expected unique IDs, got %d twice", id1)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPos{X: 1, Y: 2})

	comp, ok := GetComponent[*testPos](em, id)
	if !ok {
		t.Fatal("Expected component to be found")
	}
	if comp.X != 1 || comp.Y != 2 {
		t.Errorf("Expected (1, 2), got (%v, %v)", comp.X, comp.Y)
	}

	if _, ok := GetComponent[*testVel](em, id); ok {
		t.Error("Expected missing component type to report not found")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPos{})

	RemoveComponent[*testPos](em, id)

	if HasComponent[*testPos](em, id) {
		t.Error("Expected component to be removed")
	}
}

func TestDestroyIsDeferredUntilSweep(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPos{})

	em.DestroyEntity(id)
	if !em.Alive(id) {
		t.Error("Expected entity to stay alive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Alive(id) {
		t.Error("Expected entity to be gone after sweep")
	}
	if em.HasComponent(id, reflect.TypeOf(&testPos{})) {
		t.Error("Expected components to be gone after sweep")
	}
}

func TestGetEntitiesWithIsSortedByCreation(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPos{})
		if i%2 == 0 {
			em.AddComponent(id, &testVel{})
		}
		want = append(want, id)
	}

	got := GetEntitiesWith1[*testPos](em)
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Expected creation order %v, got %v", want, got)
			break
		}
	}

	both := GetEntitiesWith2[*testPos, *testVel](em)
	if len(both) != 3 {
		t.Errorf("Expected 3 entities with both components, got %d", len(both))
	}
}
