package ecs

import "reflect"

// Generic wrappers over the reflect-based EntityManager API. T is always the
// pointer component type, e.g. GetComponent[*components.PositionComponent].

// AddComponent attaches a component to an entity.
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	em.AddComponent(id, component)
}

// GetComponent returns the entity's component of type T.
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, reflect.TypeFor[T]())
}

// RemoveComponent detaches the entity's component of type T, if present.
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 returns every entity that has a component of type T1.
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 returns every entity that has components of both types.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 returns every entity that has components of all three types.
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}
