package ecs

import "github.com/milk9111/combatloop/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops every component it owns.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.storages {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.handle(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Add stores v for e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], v *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.storage(kind.ID(), true).Set(e.id(), v)
	return nil
}

// Get returns the stored pointer for e. Mutating it mutates the component.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.storage(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.storage(kind.ID(), false).Has(e.id())
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.storage(kind.ID(), false).Remove(e.id())
}

// First returns the first live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.storage(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.denseIDs {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}
