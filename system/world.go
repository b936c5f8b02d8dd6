package system

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/milk9111/bouncers/config"
	"github.com/milk9111/bouncers/ecs"
	ecssys "github.com/milk9111/bouncers/ecs/system"
	"github.com/milk9111/bouncers/physics"
)

// Stats is the per-frame summary of the bounce step.
type Stats = ecssys.Stats

// World owns the ECS world of bouncers and the systems that drive it.
type World struct {
	ecs    *ecs.World
	bounce *ecssys.BounceSystem
	seed   uint64
}

// NewWorld spawns the configured population inside bounds. Bodies get a
// sprite when spriteKey is set.
func NewWorld(spec config.SimulationSpec, bounds ecs.Bounds, spriteKey string) (*World, error) {
	broad, err := physics.NewBroadphase(spec.Broadphase)
	if err != nil {
		return nil, err
	}

	seed := spec.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		ecs:    ecs.NewWorld(),
		bounce: ecssys.NewBounceSystem(broad, spec.Workers),
		seed:   seed,
	}
	w.ecs.AddSystem(w.bounce)

	_, err = ecssys.SpawnBodies(w.ecs, ecssys.SpawnOptions{
		Count:     spec.Count,
		Bounds:    bounds,
		Speed:     spec.Speed,
		Size:      spec.BodySize,
		SpriteKey: spriteKey,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return w, nil
}

// Update advances every body by one frame.
func (w *World) Update(frame ecs.Frame) {
	if w == nil {
		return
	}
	w.ecs.Update(frame)
}

// ECS returns the underlying entity world.
func (w *World) ECS() *ecs.World {
	if w == nil {
		return nil
	}
	return w.ecs
}

// Stats returns counters for the most recent frame.
func (w *World) Stats() Stats {
	if w == nil {
		return Stats{}
	}
	return w.bounce.Stats()
}

// Seed returns the placement seed actually used.
func (w *World) Seed() uint64 {
	if w == nil {
		return 0
	}
	return w.seed
}
