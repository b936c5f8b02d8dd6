package component

import "github.com/jakecoffman/cp"

// Transform is the position of a body's center in window coordinates.
type Transform struct {
	X float64
	Y float64
}

// Center returns the body center. This is the only value the renderer reads.
func (t *Transform) Center() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

// MoveBy translates the center by d.
func (t *Transform) MoveBy(d cp.Vector) {
	t.X += d.X
	t.Y += d.Y
}

var TransformComponent = NewComponent[Transform]()
