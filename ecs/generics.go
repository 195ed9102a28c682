package ecs

import "github.com/milk9111/shapedrop/ecs/component"

// Add stores value as e's component, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	v := value
	w.store(kind.ID(), true).Set(int(e.id()), &v)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(int(e.id()))
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(int(e.id()))
}

// Get returns a copy of e's component.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if !w.IsAlive(e) {
		return zero, false
	}
	ptr, ok := w.store(handle.Kind().ID(), false).Get(int(e.id())).(*T)
	if !ok || ptr == nil {
		return zero, false
	}
	return *ptr, true
}

// ForEach calls fn with a pointer to every stored component of the handle's kind.
// Mutations through the pointer are kept. fn must not add or remove components
// of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID(), false)
	if s == nil {
		return
	}
	for i, id := range s.denseEntities {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		ptr, ok := s.denseValues[i].(*T)
		if !ok || ptr == nil {
			continue
		}
		fn(e, ptr)
	}
}
