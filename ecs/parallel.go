package ecs

import (
	"runtime"

	"github.com/milk9111/bouncers/ecs/component"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest run of entities handed to one goroutine.
const minChunk = 64

// ForEachParallel calls fn for every live entity holding a component of the
// given kind, spreading the dense store over at most workers goroutines
// (GOMAXPROCS when workers <= 0). Calls are unordered. fn may read any
// component but must only write the components of the entity it was handed.
// ForEachParallel returns once every call has finished.
//
// Entities must not be created, destroyed or given new components while the
// pass runs.
func ForEachParallel[T any](w *World, kind component.ComponentKind[T], workers int, fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(kind.ID(), false)
	n := s.Len()
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				id, v := s.At(i)
				e, ok := w.entities.entityFor(id)
				if !ok {
					continue
				}
				fn(e, v.(*T))
			}
			return nil
		})
	}
	_ = g.Wait()
}
