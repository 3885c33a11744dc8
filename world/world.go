package world

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slopeplan/terrain"
)

// ErrNilTerrain indicates New was called without a terrain.
var ErrNilTerrain = errors.New("world: terrain is nil")

// Lift is a fixed transport from Start to End. It does not carry the grid path
// between its endpoints; that is computed on demand.
type Lift struct {
	Name  string        // Optional label used in reports
	Start terrain.Coord // Boarding point
	End   terrain.Coord // Arrival point
}

// String returns Name if set, otherwise "start→end".
func (l Lift) String() string {
	if l.Name != "" {
		return l.Name
	}

	return l.Start.String() + "→" + l.End.String()
}

// World is one terrain plus its lifts, in enumeration order.
type World struct {
	terrain *terrain.Terrain
	lifts   []Lift
	starts  *LiftIndex
	ends    *LiftIndex
}

// New validates lifts against t and returns the World.
// The lift slice is copied. An empty lift list is accepted here; cost
// evaluation reports it.
//
// Returns ErrNilTerrain, or an error wrapping terrain.ErrOutOfBounds naming
// the first offending lift.
// Complexity: O(L log L) for the endpoint indexes.
func New(t *terrain.Terrain, lifts ...Lift) (*World, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}
	for i, l := range lifts {
		if !t.InBounds(l.Start) {
			return nil, fmt.Errorf("world: lift %d (%s) start %s: %w", i, l, l.Start, terrain.ErrOutOfBounds)
		}
		if !t.InBounds(l.End) {
			return nil, fmt.Errorf("world: lift %d (%s) end %s: %w", i, l, l.End, terrain.ErrOutOfBounds)
		}
	}
	cp := make([]Lift, len(lifts))
	copy(cp, lifts)

	return &World{
		terrain: t,
		lifts:   cp,
		starts:  newLiftIndex(cp, func(l Lift) terrain.Coord { return l.Start }),
		ends:    newLiftIndex(cp, func(l Lift) terrain.Coord { return l.End }),
	}, nil
}

// Terrain returns the world's terrain.
func (w *World) Terrain() *terrain.Terrain { return w.terrain }

// Lifts returns a copy of the lift list.
func (w *World) Lifts() []Lift {
	out := make([]Lift, len(w.lifts))
	copy(out, w.lifts)

	return out
}

// Lift returns lift i. Panics if i is out of range, like a slice index.
func (w *World) Lift(i int) Lift { return w.lifts[i] }

// LiftCount returns the number of lifts.
func (w *World) LiftCount() int { return len(w.lifts) }

// NearestEnds returns the indexes of the k lifts whose End is closest to pos,
// in ascending index order. k ≤ 0 or k ≥ LiftCount returns every index.
func (w *World) NearestEnds(pos terrain.Coord, k int) []int {
	return w.ends.Nearest(pos, k)
}

// NearestStarts is NearestEnds for lift Start points.
func (w *World) NearestStarts(pos terrain.Coord, k int) []int {
	return w.starts.Nearest(pos, k)
}
