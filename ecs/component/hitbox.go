package component

import "github.com/jakecoffman/cp"

// Hitbox is an axis-aligned box centered on the entity transform.
type Hitbox struct {
	Width  float64
	Height float64
}

// BB returns the box placed at center.
func (h *Hitbox) BB(center cp.Vector) cp.BB {
	return cp.NewBBForExtents(center, h.Width/2, h.Height/2)
}

var HitboxComponent = NewComponent[Hitbox]()
