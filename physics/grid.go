package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// maxGridCells caps each grid axis so a body flung far away by a long frame
// cannot blow up the cell table; the cell size grows instead.
const maxGridCells = 512

// Grid is a uniform-grid broad-phase. Each box is binned by its center into
// a square cell at least as large as the largest box, so any overlapping
// pair sits in the same or an adjacent cell and a 3x3 neighbourhood lookup
// finds it.
//
// The grid is sized to the boxes of each Rebuild rather than to the window,
// so bodies that have left the window are still indexed.
type Grid struct {
	cellSize    float64
	invCellSize float64
	originX     float64
	originY     float64
	cols        int
	rows        int

	// head[c] is the first box in cell c, next[i] the box after i; -1 ends
	// a chain.
	head   []int32
	next   []int32
	cellOf []int32
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Rebuild bins boxes into a fresh grid.
func (g *Grid) Rebuild(boxes []cp.BB) {
	n := len(boxes)
	g.next = resize(g.next, n)
	g.cellOf = resize(g.cellOf, n)
	if n == 0 {
		g.cols, g.rows = 0, 0
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	size := 0.0
	for _, bb := range boxes {
		c := center(bb)
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		w, h := extent(bb)
		size = math.Max(size, math.Max(w, h))
	}
	spanX, spanY := maxX-minX, maxY-minY
	size = math.Max(size, math.Max(spanX, spanY)/maxGridCells)
	if size <= 0 {
		size = 1
	}

	g.cellSize = size
	g.invCellSize = 1 / size
	g.originX, g.originY = minX, minY
	g.cols = int(spanX*g.invCellSize) + 1
	g.rows = int(spanY*g.invCellSize) + 1

	g.head = resize(g.head, g.cols*g.rows)
	for i := range g.head {
		g.head[i] = -1
	}
	for i, bb := range boxes {
		col, row := g.posToCell(center(bb))
		cell := int32(row*g.cols + col)
		g.cellOf[i] = cell
		g.next[i] = g.head[cell]
		g.head[cell] = int32(i)
	}
}

// Candidates calls fn for every other box in the 3x3 neighbourhood of box i.
func (g *Grid) Candidates(i int, fn func(j int)) {
	if i < 0 || i >= len(g.cellOf) || g.cols == 0 {
		return
	}
	cell := int(g.cellOf[i])
	col, row := cell%g.cols, cell/g.cols

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for j := g.head[r*g.cols+c]; j >= 0; j = g.next[j] {
				if int(j) != i {
					fn(int(j))
				}
			}
		}
	}
}

// posToCell converts a position to grid coordinates, clamping against
// floating point drift at the far edges.
func (g *Grid) posToCell(p cp.Vector) (col, row int) {
	col = min(max(int((p.X-g.originX)*g.invCellSize), 0), g.cols-1)
	row = min(max(int((p.Y-g.originY)*g.invCellSize), 0), g.rows-1)
	return col, row
}

func resize(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	return s[:n]
}
