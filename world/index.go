package world

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/slopeplan/terrain"
)

// pointTolerance is the half-size of the box stored for each endpoint.
const pointTolerance = 0.01

// liftEntry wraps one lift endpoint for R-tree storage.
type liftEntry struct {
	idx  int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *liftEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// LiftIndex answers nearest-endpoint queries over one endpoint of every lift.
type LiftIndex struct {
	tree *rtreego.Rtree
	size int
}

// newLiftIndex indexes pick(l) for every lift l.
func newLiftIndex(lifts []Lift, pick func(Lift) terrain.Coord) *LiftIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, l := range lifts {
		c := pick(l)
		tree.Insert(&liftEntry{
			idx:  i,
			bbox: rtreego.Point{float64(c.X), float64(c.Y)}.ToRect(pointTolerance),
		})
	}

	return &LiftIndex{tree: tree, size: len(lifts)}
}

// Len returns the number of indexed lifts.
func (li *LiftIndex) Len() int { return li.size }

// Nearest returns the lift indexes of the k endpoints closest to pos, sorted
// ascending so callers keep enumeration order. k ≤ 0 or k ≥ Len returns all.
// Among equidistant endpoints at the cut-off the R-tree decides which survive.
// Complexity: O(log L + k log k).
func (li *LiftIndex) Nearest(pos terrain.Coord, k int) []int {
	if k <= 0 || k >= li.size {
		out := make([]int, li.size)
		for i := range out {
			out[i] = i
		}

		return out
	}

	found := li.tree.NearestNeighbors(k, rtreego.Point{float64(pos.X), float64(pos.Y)})
	out := make([]int, 0, len(found))
	for _, s := range found {
		if e, ok := s.(*liftEntry); ok {
			out = append(out, e.idx)
		}
	}
	sort.Ints(out)

	return out
}
