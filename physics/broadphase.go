package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// ErrUnknownBroadphase is returned by NewBroadphase for an unsupported name.
var ErrUnknownBroadphase = errors.New("physics: unknown broadphase")

const (
	BroadphaseGrid          = "grid"
	BroadphaseSweepAndPrune = "sap"
)

// Broadphase narrows the set of boxes that may overlap a given box.
//
// Rebuild indexes a frame's boxes; the slice must not be modified until the
// next Rebuild. Candidates calls fn at most once for every j != i whose box
// may overlap box i, and never misses a pair that does overlap. Candidates
// only reads the index, so it may be called from many goroutines at once.
type Broadphase interface {
	Rebuild(boxes []cp.BB)
	Candidates(i int, fn func(j int))
}

// NewBroadphase returns the broad-phase registered under name.
func NewBroadphase(name string) (Broadphase, error) {
	switch name {
	case "", BroadphaseGrid:
		return NewGrid(), nil
	case BroadphaseSweepAndPrune:
		return NewSweepAndPrune(), nil
	case BroadphaseChipmunk:
		return NewSpaceIndex(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBroadphase, name)
}
