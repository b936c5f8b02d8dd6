package physics

import "github.com/jakecoffman/cp"

const BroadphaseChipmunk = "chipmunk"

// SpaceIndex answers broad-phase queries with a Chipmunk space. Every box
// becomes a static shape in a fresh space so the space's bounding-box tree
// does the culling. Space queries are not safe for concurrent use, so all
// pairs are gathered during Rebuild.
type SpaceIndex struct {
	space *cp.Space
	pairs [][]int32
}

func NewSpaceIndex() *SpaceIndex {
	return &SpaceIndex{}
}

// Rebuild loads boxes into a new space and records each box's neighbours.
func (s *SpaceIndex) Rebuild(boxes []cp.BB) {
	s.space = cp.NewSpace()
	for i, bb := range boxes {
		shape := cp.NewBox2(s.space.StaticBody, bb, 0)
		shape.UserData = i
		s.space.AddShape(shape)
	}

	if cap(s.pairs) < len(boxes) {
		s.pairs = make([][]int32, len(boxes))
	}
	s.pairs = s.pairs[:len(boxes)]
	for i, bb := range boxes {
		s.pairs[i] = s.pairs[i][:0]
		s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
			if j, ok := shape.UserData.(int); ok && j != i {
				s.pairs[i] = append(s.pairs[i], int32(j))
			}
		}, nil)
	}
}

// Candidates calls fn for every box whose bounds touched box i.
func (s *SpaceIndex) Candidates(i int, fn func(j int)) {
	if i < 0 || i >= len(s.pairs) {
		return
	}
	for _, j := range s.pairs[i] {
		fn(int(j))
	}
}
