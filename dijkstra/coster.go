package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/slopeplan/core"
	"github.com/katalvlaran/slopeplan/terrain"
)

// Best is the outcome of a multi-target query: the winning candidate's
// position in the input slice, its coordinate and its cost.
type Best struct {
	Index  int
	Target terrain.Coord
	Cost   float64
}

// Reachable reports whether the best candidate has a finite cost.
func (b Best) Reachable() bool { return !IsUnreachable(b.Cost) }

// PathCost returns the minimum cost of travelling from → to over g.
//
// Both coordinates are validated against the graph's cells first; a coordinate
// with no node yields an error wrapping terrain.ErrOutOfBounds. No path yields
// Unreachable with a nil error. A graph with no edges connects nothing, so
// every query on it, including from == to, is Unreachable.
//
// Complexity: O((V + E) log V), usually less thanks to early exit at `to`.
func PathCost(g *core.Graph, from, to terrain.Coord) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	src, err := nodeOf(g, from)
	if err != nil {
		return 0, err
	}
	dst, err := nodeOf(g, to)
	if err != nil {
		return 0, err
	}
	if g.EdgeCount() == 0 {
		return Unreachable, nil
	}

	dist, _, err := Dijkstra(g, Source(src), WithTarget(dst))
	if err != nil {
		return 0, err
	}

	return dist[dst], nil
}

// BestOf runs one Dijkstra from `from` and returns the cheapest of targets.
// Ties resolve to the candidate enumerated first. If no candidate is reachable
// the result is targets[0] with cost Unreachable.
//
// Returns ErrNoTargets for an empty slice and a terrain.ErrOutOfBounds wrap
// for any coordinate outside the graph (all candidates are validated before
// the search).
// Complexity: O((V + E) log V + T).
func BestOf(g *core.Graph, from terrain.Coord, targets []terrain.Coord) (Best, error) {
	if g == nil {
		return Best{}, ErrNilGraph
	}
	if len(targets) == 0 {
		return Best{}, ErrNoTargets
	}
	src, err := nodeOf(g, from)
	if err != nil {
		return Best{}, err
	}
	ids := make([]int, len(targets))
	for i, t := range targets {
		if ids[i], err = nodeOf(g, t); err != nil {
			return Best{}, err
		}
	}

	best := Best{Index: 0, Target: targets[0], Cost: Unreachable}
	if g.EdgeCount() == 0 {
		return best, nil
	}
	dist, _, err := Dijkstra(g, Source(src))
	if err != nil {
		return Best{}, err
	}
	for i, id := range ids {
		if dist[id] < best.Cost {
			best = Best{Index: i, Target: targets[i], Cost: dist[id]}
		}
	}

	return best, nil
}

// Path returns the coordinates of a cheapest route from → to (inclusive) and
// its cost. When to is unreachable the path is nil and the cost Unreachable.
// Validation and the edgeless-graph rule match PathCost.
func Path(g *core.Graph, from, to terrain.Coord) ([]terrain.Coord, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	src, err := nodeOf(g, from)
	if err != nil {
		return nil, 0, err
	}
	dst, err := nodeOf(g, to)
	if err != nil {
		return nil, 0, err
	}
	if g.EdgeCount() == 0 {
		return nil, Unreachable, nil
	}

	dist, prev, err := Dijkstra(g, Source(src), WithTarget(dst), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if IsUnreachable(dist[dst]) {
		return nil, Unreachable, nil
	}

	// Walk predecessors back to the source, then reverse.
	var ids []int
	for v := dst; v != -1; v = prev[v] {
		ids = append(ids, v)
	}
	path := make([]terrain.Coord, len(ids))
	for i, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, 0, err
		}
		path[len(ids)-1-i] = n.Coord
	}

	return path, dist[dst], nil
}

// nodeOf maps c to its node ID or reports it out of bounds.
func nodeOf(g *core.Graph, c terrain.Coord) (int, error) {
	id, ok := g.ID(c)
	if !ok {
		return 0, fmt.Errorf("dijkstra: %s: %w", c, terrain.ErrOutOfBounds)
	}

	return id, nil
}
