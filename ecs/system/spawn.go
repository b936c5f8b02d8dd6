package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/bouncers/ecs"
	"github.com/milk9111/bouncers/ecs/component"
)

// SpawnOptions describes the initial population of bouncers.
type SpawnOptions struct {
	Count  int
	Bounds ecs.Bounds
	Speed  float64
	// Size is the side length of every body's square hitbox.
	Size float64
	// SpriteKey, when set, attaches a sprite of the body's size.
	SpriteKey string
	// Rand picks the initial centers. A nil Rand uses the global source.
	Rand *rand.Rand
}

// SpawnBodies creates Count bouncers with centers uniformly distributed in
// [0,Width) x [0,Height), all starting with velocity (+Speed, +Speed).
func SpawnBodies(w *ecs.World, opts SpawnOptions) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("spawn bodies: nil world")
	}
	float := rand.Float64
	if opts.Rand != nil {
		float = opts.Rand.Float64
	}

	out := make([]ecs.Entity, 0, max(opts.Count, 0))
	for i := 0; i < opts.Count; i++ {
		e := w.CreateEntity()
		if err := addBouncer(w, e, opts, float()*opts.Bounds.Width, float()*opts.Bounds.Height); err != nil {
			return out, fmt.Errorf("spawn body %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func addBouncer(w *ecs.World, e ecs.Entity, opts SpawnOptions, x, y float64) error {
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{X: opts.Speed, Y: opts.Speed}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.HitboxComponent, &component.Hitbox{Width: opts.Size, Height: opts.Size}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.BouncerComponent, &component.Bouncer{Speed: opts.Speed}); err != nil {
		return err
	}
	if opts.SpriteKey == "" {
		return nil
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Key: opts.SpriteKey, Width: opts.Size, Height: opts.Size})
}
