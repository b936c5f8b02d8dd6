package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// Resolve returns the minimum translation that moves a out of b. Only the
// axis of least penetration is set; when both penetrations are equal both
// axes are. Resolve(b, a) is the negation of Resolve(a, b) unless the two
// centers coincide, in which case both point toward negative.
func Resolve(a, b cp.BB) (cp.Vector, bool) {
	return resolve(a, b, -1)
}

// resolve is Resolve with the push direction used when the centers coincide
// on the resolved axis.
func resolve(a, b cp.BB, tie float64) (cp.Vector, bool) {
	if !Overlaps(a, b) {
		return cp.Vector{}, false
	}
	ox := math.Min(a.R, b.R) - math.Max(a.L, b.L)
	oy := math.Min(a.T, b.T) - math.Max(a.B, b.B)

	ac, bc := center(a), center(b)
	var res cp.Vector
	if ox <= oy {
		res.X = ox * direction(ac.X-bc.X, tie)
	}
	if oy <= ox {
		res.Y = oy * direction(ac.Y-bc.Y, tie)
	}
	return res, true
}

func direction(d, tie float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return tie
}

func center(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}

func extent(bb cp.BB) (w, h float64) {
	return bb.R - bb.L, bb.T - bb.B
}
