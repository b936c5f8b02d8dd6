package ecs

import (
	"fmt"

	"github.com/milk9111/bouncers/ecs/component"
)

// Add stores value as e's component of the given kind, replacing any
// previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove deletes e's component of the given kind.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(e.id())
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(e.id())
}

// Get returns e's component of the given kind. The pointer is the stored
// value, so writes through it are visible to later readers.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.store(handle.Kind().ID(), false).Get(e.id()).(*T)
	return value, ok
}

// MustGet is Get for components a system has already queried for.
func MustGet[T any](w *World, e Entity, handle component.ComponentHandle[T]) *T {
	value, ok := Get(w, e, handle)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %s has no component %d", e, handle.Kind().ID()))
	}
	return value
}

// ForEach calls fn for every live entity holding a component of the given kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(kind.ID(), false)
	for i := 0; i < s.Len(); i++ {
		id, v := s.At(i)
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		fn(e, v.(*T))
	}
}

// ForEach2 calls fn for every live entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	sb := w.store(kb.ID(), false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := sb.Get(e.id()).(*B); ok {
			fn(e, a, b)
		}
	})
}
