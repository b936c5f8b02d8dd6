package system

import (
	"sync/atomic"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncers/ecs"
	"github.com/milk9111/bouncers/ecs/component"
	"github.com/milk9111/bouncers/physics"
)

// Stats summarizes the last frame run by a BounceSystem.
type Stats struct {
	Frames    int
	Bodies    int
	Contacts  int
	Redirects int
}

// BounceSystem advances every Bouncer by one frame.
//
// For each body, in parallel: the movement for the frame is taken from the
// velocity it entered the frame with; contacts against the other bodies'
// pre-frame boxes snap the velocity axis-wise to +/-Speed following the sign
// of the resolution; a center outside the bounds snaps that axis back
// inwards; finally the body moves by the saved movement. New velocities take
// effect on the next frame.
type BounceSystem struct {
	detector physics.CollisionQuery
	workers  int

	boxes []cp.BB
	// slot maps an entity index to its box in the snapshot, -1 if absent.
	slot []int32

	contacts  atomic.Int64
	redirects atomic.Int64
	stats     Stats
}

// NewBounceSystem creates a bounce system that detects contacts with broad
// and fans bodies out to at most workers goroutines (GOMAXPROCS if <= 0).
func NewBounceSystem(broad physics.Broadphase, workers int) *BounceSystem {
	return NewBounceSystemWithQuery(physics.NewDetector(broad), workers)
}

// NewBounceSystemWithQuery is NewBounceSystem for a caller-supplied collision
// query. A nil query falls back to a grid detector.
func NewBounceSystemWithQuery(query physics.CollisionQuery, workers int) *BounceSystem {
	if query == nil {
		query = physics.NewDetector(nil)
	}
	return &BounceSystem{
		detector: query,
		workers:  workers,
	}
}

// Stats returns counters for the most recent frame.
func (s *BounceSystem) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return s.stats
}

func (s *BounceSystem) Update(w *ecs.World, frame ecs.Frame) {
	if s == nil || w == nil {
		return
	}

	s.snapshot(w)
	s.contacts.Store(0)
	s.redirects.Store(0)

	bodies := 0
	ecs.ForEach(w, component.BouncerComponent.Kind(), func(ecs.Entity, *component.Bouncer) { bodies++ })

	ecs.ForEachParallel(w, component.BouncerComponent.Kind(), s.workers, func(e ecs.Entity, b *component.Bouncer) {
		s.step(w, e, b, frame)
	})

	s.stats = Stats{
		Frames:    s.stats.Frames + 1,
		Bodies:    bodies,
		Contacts:  int(s.contacts.Load()),
		Redirects: int(s.redirects.Load()),
	}
}

// snapshot copies every hitbox at its pre-frame position into the detector.
func (s *BounceSystem) snapshot(w *ecs.World) {
	s.boxes = s.boxes[:0]
	for i := range s.slot {
		s.slot[i] = -1
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, t *component.Transform, h *component.Hitbox) {
		idx := e.Index()
		for idx >= len(s.slot) {
			s.slot = append(s.slot, -1)
		}
		s.slot[idx] = int32(len(s.boxes))
		s.boxes = append(s.boxes, h.BB(t.Center()))
	})
	s.detector.Rebuild(s.boxes)
}

func (s *BounceSystem) step(w *ecs.World, e ecs.Entity, b *component.Bouncer, frame ecs.Frame) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	v, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		return
	}

	movement := v.Vector().Mult(frame.DT)

	if idx := e.Index(); idx < len(s.slot) && s.slot[idx] >= 0 {
		var buf [8]physics.Contact
		contacts := s.detector.Query(int(s.slot[idx]), buf[:0])
		for _, c := range contacts {
			ReflectOnContact(v, c.Resolution, b.Speed)
		}
		if len(contacts) > 0 {
			s.contacts.Add(int64(len(contacts)))
		}
	}

	if ReflectAtBounds(v, t.Center(), frame.Bounds, b.Speed) {
		s.redirects.Add(1)
	}

	t.MoveBy(movement)
}

// ReflectOnContact points each velocity axis along the sign of the contact
// resolution. A zero resolution component leaves that axis alone.
func ReflectOnContact(v *component.Velocity, res cp.Vector, speed float64) {
	if res.X > 0 {
		v.X = speed
	} else if res.X < 0 {
		v.X = -speed
	}
	if res.Y > 0 {
		v.Y = speed
	} else if res.Y < 0 {
		v.Y = -speed
	}
}

// ReflectAtBounds points each velocity axis back inside the bounds when the
// center lies strictly outside them. It reports whether any axis was set.
func ReflectAtBounds(v *component.Velocity, c cp.Vector, bounds ecs.Bounds, speed float64) bool {
	hit := false
	if c.X < 0 {
		v.X, hit = speed, true
	} else if c.X > bounds.Width {
		v.X, hit = -speed, true
	}
	if c.Y < 0 {
		v.Y, hit = speed, true
	} else if c.Y > bounds.Height {
		v.Y, hit = -speed, true
	}
	return hit
}
