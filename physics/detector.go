package physics

import "github.com/jakecoffman/cp"

// Contact is one active collision seen from the queried box.
type Contact struct {
	// Index is the snapshot index of the other box.
	Index int
	// Resolution moves the queried box out of the other one.
	Resolution cp.Vector
}

// CollisionQuery indexes a frame's boxes and reports the contacts of one of
// them. Query must be safe for concurrent use once Rebuild has returned.
type CollisionQuery interface {
	Rebuild(boxes []cp.BB)
	Query(i int, dst []Contact) []Contact
}

var _ CollisionQuery = (*Detector)(nil)

// Detector pairs a broad-phase with the AABB narrow-phase over an immutable
// snapshot of a frame's boxes. After Rebuild returns, Query is read-only and
// safe for concurrent use.
type Detector struct {
	broad Broadphase
	boxes []cp.BB
}

// NewDetector creates a detector on top of broad. A nil broad-phase falls
// back to the uniform grid.
func NewDetector(broad Broadphase) *Detector {
	if broad == nil {
		broad = NewGrid()
	}
	return &Detector{broad: broad}
}

// Rebuild snapshots boxes and indexes them for the frame.
func (d *Detector) Rebuild(boxes []cp.BB) {
	d.boxes = append(d.boxes[:0], boxes...)
	d.broad.Rebuild(d.boxes)
}

// Len returns the number of boxes in the snapshot.
func (d *Detector) Len() int {
	return len(d.boxes)
}

// Query appends every contact of box i to dst. For any overlapping pair the
// two queries report each other with opposite resolutions.
func (d *Detector) Query(i int, dst []Contact) []Contact {
	if i < 0 || i >= len(d.boxes) {
		return dst
	}
	a := d.boxes[i]
	d.broad.Candidates(i, func(j int) {
		// coincident boxes: the lower index is pushed toward negative
		tie := 1.0
		if i < j {
			tie = -1
		}
		if res, ok := resolve(a, d.boxes[j], tie); ok {
			dst = append(dst, Contact{Index: j, Resolution: res})
		}
	})
	return dst
}
