package component

import "github.com/jakecoffman/cp"

// Velocity is a body's velocity in distance units per second. For bouncers
// each axis is always +Speed or -Speed.
type Velocity struct {
	X float64
	Y float64
}

func (v *Velocity) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

var VelocityComponent = NewComponent[Velocity]()

// Bouncer marks a body driven by the bounce rules and carries the speed its
// velocity components snap to.
type Bouncer struct {
	Speed float64
}

var BouncerComponent = NewComponent[Bouncer]()
