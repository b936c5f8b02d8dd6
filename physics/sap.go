package physics

import (
	"slices"

	"github.com/jakecoffman/cp"
)

// SweepAndPrune is a broad-phase that sorts boxes by their left edge and
// sweeps along X, pairing every box with the boxes whose X intervals it
// overlaps. The pairs of a frame are stored as per-box adjacency lists so
// that Candidates is a plain read.
type SweepAndPrune struct {
	order []int32

	// pairs of box i are adj[start[i]:start[i+1]].
	start  []int32
	adj    []int32
	degree []int32
	pairs  [][2]int32
}

// NewSweepAndPrune creates an empty sweep-and-prune broad-phase.
func NewSweepAndPrune() *SweepAndPrune {
	return &SweepAndPrune{}
}

// Rebuild sorts boxes along X and records every pair whose X intervals and
// Y intervals both overlap.
func (s *SweepAndPrune) Rebuild(boxes []cp.BB) {
	n := len(boxes)
	s.order = resize(s.order, n)
	for i := range s.order {
		s.order[i] = int32(i)
	}
	slices.SortFunc(s.order, func(a, b int32) int {
		switch la, lb := boxes[a].L, boxes[b].L; {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return int(a - b)
	})

	s.pairs = s.pairs[:0]
	for k, a := range s.order {
		ba := boxes[a]
		for _, b := range s.order[k+1:] {
			bb := boxes[b]
			if bb.L >= ba.R {
				break
			}
			if ba.B < bb.T && bb.B < ba.T {
				s.pairs = append(s.pairs, [2]int32{a, b})
			}
		}
	}

	s.degree = resize(s.degree, n)
	clear(s.degree)
	for _, p := range s.pairs {
		s.degree[p[0]]++
		s.degree[p[1]]++
	}
	s.start = resize(s.start, n+1)
	s.start[0] = 0
	for i := 0; i < n; i++ {
		s.start[i+1] = s.start[i] + s.degree[i]
	}
	s.adj = resize(s.adj, int(s.start[n]))
	// degree becomes the fill cursor
	copy(s.degree, s.start[:n])
	for _, p := range s.pairs {
		a, b := p[0], p[1]
		s.adj[s.degree[a]] = b
		s.degree[a]++
		s.adj[s.degree[b]] = a
		s.degree[b]++
	}
}

// Candidates calls fn for every box paired with box i in the last sweep.
func (s *SweepAndPrune) Candidates(i int, fn func(j int)) {
	if i < 0 || i+1 >= len(s.start) {
		return
	}
	for _, j := range s.adj[s.start[i]:s.start[i+1]] {
		fn(int(j))
	}
}
