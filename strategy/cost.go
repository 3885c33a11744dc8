package strategy

import (
	"fmt"

	"github.com/katalvlaran/slopeplan/core"
	"github.com/katalvlaran/slopeplan/dijkstra"
	"github.com/katalvlaran/slopeplan/gridgraph"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

// Result is the outcome of one cost evaluation.
type Result struct {
	Cost float64       // Path cost to the chosen lift; dijkstra.Unreachable if none
	Next terrain.Coord // End of the chosen lift: the position after this step
	Lift int           // Index of the chosen lift in the world
}

// Reachable reports whether Cost is finite.
func (r Result) Reachable() bool { return !dijkstra.IsUnreachable(r.Cost) }

// Cost evaluates s at pos and returns the cheapest lift's cost and its End.
// See Evaluate.
func (s Strategy) Cost(w *world.World, pos terrain.Coord, opts ...Option) (float64, terrain.Coord, error) {
	r, err := s.Evaluate(w, pos, opts...)
	if err != nil {
		return 0, terrain.Coord{}, err
	}

	return r.Cost, r.Next, nil
}

// Evaluate prices every candidate lift under s and keeps the cheapest.
//
// Steps:
//  1. Validate s, w, pos, and that w has lifts.
//  2. Build (or fetch from the cache) the cost graph for s over w's terrain.
//  3. Measure each candidate per Options.Direction:
//     FromPosition  – one Dijkstra from pos, cost to each lift End;
//     FromLiftStart – one query per lift, Start → End.
//  4. Keep the first strict minimum; ties go to the lift enumerated first.
//
// An unreachable minimum is reported as dijkstra.Unreachable, not an error.
//
// Errors: ErrUnknownStrategy, ErrNilWorld, ErrEmptyLiftSet, terrain.ErrOutOfBounds (wrapped).
// Complexity: O((V + E) log V) for FromPosition, O(L·(V + E) log V) for FromLiftStart,
// plus O(V + E) for the graph build when not cached.
func (s Strategy) Evaluate(w *world.World, pos terrain.Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validation
	if !s.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	if w == nil {
		return Result{}, ErrNilWorld
	}
	if w.LiftCount() == 0 {
		return Result{}, ErrEmptyLiftSet
	}
	t := w.Terrain()
	if _, err := t.At(pos); err != nil {
		return Result{}, fmt.Errorf("strategy: %s position: %w", s, err)
	}

	// 2) Graph
	g, err := s.graph(t, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("strategy: %s graph: %w", s, err)
	}

	// 3–4) Candidates
	if cfg.Direction == FromLiftStart {
		return fromLiftStarts(g, w, w.NearestStarts(pos, cfg.CandidateLimit))
	}

	return fromPosition(g, w, pos, w.NearestEnds(pos, cfg.CandidateLimit))
}

// graph builds the cost graph for s, through the cache when one is configured.
func (s Strategy) graph(t *terrain.Terrain, cfg Options) (*core.Graph, error) {
	if cfg.Cache != nil {
		return cfg.Cache.Graph(s.Name(), t, s.EdgeCost, gridgraph.WithConnectivity(cfg.Conn))
	}

	return gridgraph.Build(t, s.EdgeCost, gridgraph.WithConnectivity(cfg.Conn))
}

// fromPosition runs a single search from pos over every candidate End.
func fromPosition(g *core.Graph, w *world.World, pos terrain.Coord, idx []int) (Result, error) {
	ends := make([]terrain.Coord, len(idx))
	for i, li := range idx {
		ends[i] = w.Lift(li).End
	}
	best, err := dijkstra.BestOf(g, pos, ends)
	if err != nil {
		return Result{}, fmt.Errorf("strategy: lift endpoints: %w", err)
	}

	return Result{Cost: best.Cost, Next: best.Target, Lift: idx[best.Index]}, nil
}

// fromLiftStarts prices each candidate lift from its own Start.
func fromLiftStarts(g *core.Graph, w *world.World, idx []int) (Result, error) {
	var best Result
	for i, li := range idx {
		l := w.Lift(li)
		c, err := dijkstra.PathCost(g, l.Start, l.End)
		if err != nil {
			return Result{}, fmt.Errorf("strategy: lift %d (%s): %w", li, l, err)
		}
		if i == 0 || c < best.Cost {
			best = Result{Cost: c, Next: l.End, Lift: li}
		}
	}

	return best, nil
}
