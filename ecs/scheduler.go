package ecs

// System updates a world once per frame.
type System interface {
	Update(w *World, frame Frame)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, frame Frame) {
	for _, system := range s.systems {
		system.Update(w, frame)
	}
}
