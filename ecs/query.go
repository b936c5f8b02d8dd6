package ecs

import "github.com/milk9111/bouncers/ecs/component"

// Kind is satisfied by every component.ComponentKind.
type Kind interface {
	ID() component.ComponentID
}

// Query returns the live entities that hold every given component kind, in
// the dense order of the smallest store.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	// iterate smallest set
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for i := 0; i < smallest.Len(); i++ {
		id, _ := smallest.At(i)
		if !hasAll(stores, id) {
			continue
		}
		if e, ok := w.entities.entityFor(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity matching every kind.
func (w *World) First(kinds ...Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func hasAll(stores []*SparseSet, id entityID) bool {
	for _, s := range stores {
		if !s.Has(id) {
			return false
		}
	}
	return true
}
