package ecs

import "github.com/milk9111/bouncers/ecs/component"

// Bounds is the size of the area bodies bounce inside. It is owned by the
// host window and may change between frames.
type Bounds struct {
	Width  float64
	Height float64
}

// Frame is the host-loop state handed to systems once per frame.
type Frame struct {
	// DT is the number of seconds since the previous frame. It is not clamped.
	DT     float64
	Bounds Bounds
}

// World owns entities, their components and the system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once for the given frame. Systems run in the order
// they were added; each returns only when its work for the frame is done.
func (w *World) Update(frame Frame) {
	if w == nil {
		return
	}
	w.scheduler.Update(w, frame)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
