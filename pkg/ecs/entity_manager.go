package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity.
type EntityID uint64

// EntityManager owns all entities and their components.
// Destruction is two-phase: DestroyEntity only marks the entity, and
// RemoveMarkedEntities sweeps at the end of the frame, so systems can keep
// iterating safely within a frame.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal, swept by RemoveMarkedEntities
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is reserved as the invalid ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal. The entity stays queryable
// until RemoveMarkedEntities runs.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent attaches a component to an entity. Adding a second component
// of the same type replaces the first.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent detaches the component of the given type, if present.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the entity's component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity has a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// Alive reports whether the entity exists and has not been swept yet.
func (em *EntityManager) Alive(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// RemoveMarkedEntities sweeps every entity marked by DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith returns every entity that has all of the given component
// types. The result is sorted by EntityID so update and render order is
// stable across frames (creation order).
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
