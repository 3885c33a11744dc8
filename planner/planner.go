// Package planner searches a bounded horizon of strategy decisions for the
// sequence with the lowest cumulative lift cost.
//
// The search is exhaustive: at every level each child strategy is expanded to
// the remaining depth, the cheapest sub-plan wins and is expanded once more
// from the transitioned position. With two strategies a search performs
// (3^(depth+1) − 1)/2 cost evaluations, each a graph build plus a Dijkstra run
// unless a gridgraph.Cache is shared through WithGraphCache.
//
// Algorithm for node s at depth d from position p:
//
//	d == 0: [(cost_s(p), s)]
//	d  > 0: c* = first child c minimising Total(BestPath(c, d-1, p))
//	        (own, p') = cost_s(p)
//	        [(own, s)] ++ BestPath(c*, d-1, p')
//
// Children are compared from the parent's position; only the winner is
// re-expanded from the transitioned position. Ties keep the first child in
// enumeration order.
package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/slopeplan/gridgraph"
	"github.com/katalvlaran/slopeplan/strategy"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

// ErrNegativeDepth indicates a planning horizon below zero.
var ErrNegativeDepth = errors.New("planner: depth must be non-negative")

// Planner runs lookahead searches. It is not safe for concurrent use; the
// graph cache it holds may be shared with other planners.
type Planner struct {
	log      *slog.Logger
	cache    *gridgraph.Cache
	costOpts []strategy.Option
	evals    int
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger routes debug records for every evaluation to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithGraphCache shares built cost graphs across evaluations.
func WithGraphCache(c *gridgraph.Cache) Option {
	return func(p *Planner) {
		p.cache = c
	}
}

// WithDirection sets the lift cost source convention for every evaluation.
func WithDirection(d strategy.Direction) Option {
	return func(p *Planner) {
		p.costOpts = append(p.costOpts, strategy.WithDirection(d))
	}
}

// WithCandidateLimit evaluates only the k nearest lifts at each step.
// Panics if k is negative.
func WithCandidateLimit(k int) Option {
	return func(p *Planner) {
		if k < 0 {
			panic("planner: candidate limit must be non-negative")
		}
		p.costOpts = append(p.costOpts, strategy.WithCandidateLimit(k))
	}
}

// WithConnectivity selects the neighbourhood of every cost graph.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(p *Planner) {
		p.costOpts = append(p.costOpts, strategy.WithConnectivity(c))
	}
}

// New returns a Planner. Without options it logs nothing, rebuilds every
// graph, measures from the current position and considers every lift.
func New(opts ...Option) *Planner {
	p := &Planner{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache != nil {
		p.costOpts = append(p.costOpts, strategy.WithCache(p.cache))
	}

	return p
}

// Evaluations returns how many strategy cost evaluations the most recent
// BestPath call performed.
func (p *Planner) Evaluations() int { return p.evals }

// BestPath returns the cheapest plan of depth+1 steps starting with start
// at pos.
//
// Errors: ErrNegativeDepth, strategy.ErrEmptyLiftSet, strategy.ErrNilWorld,
// terrain.ErrOutOfBounds (all wrapped). Unreachable lifts are not errors;
// their steps carry dijkstra.Unreachable.
// Complexity: O(3^depth) evaluations.
func (p *Planner) BestPath(start strategy.Strategy, depth int, w *world.World, pos terrain.Coord) (Plan, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	p.evals = 0

	plan, err := p.expand(start, depth, w, pos)
	if err != nil {
		return nil, err
	}
	p.log.Debug("plan ready",
		"start", start, "depth", depth, "total", plan.Total(), "evaluations", p.evals)

	return plan, nil
}

// expand is BestPath without the argument checks.
func (p *Planner) expand(s strategy.Strategy, depth int, w *world.World, pos terrain.Coord) (Plan, error) {
	own, next, err := p.cost(s, depth, w, pos)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return Plan{{Cost: own, Strategy: s.Name()}}, nil
	}

	var (
		winner strategy.Strategy
		best   float64
	)
	for i, child := range s.Children() {
		sub, err := p.expand(child, depth-1, w, pos)
		if err != nil {
			return nil, err
		}
		if total := sub.Total(); i == 0 || total < best {
			winner, best = child, total
		}
	}

	tail, err := p.expand(winner, depth-1, w, next)
	if err != nil {
		return nil, err
	}
	plan := make(Plan, 0, len(tail)+1)
	plan = append(plan, Step{Cost: own, Strategy: s.Name()})

	return append(plan, tail...), nil
}

// cost evaluates one strategy and records it.
func (p *Planner) cost(s strategy.Strategy, depth int, w *world.World, pos terrain.Coord) (float64, terrain.Coord, error) {
	p.evals++
	c, next, err := s.Cost(w, pos, p.costOpts...)
	if err != nil {
		return 0, terrain.Coord{}, fmt.Errorf("planner: %s at %s: %w", s, pos, err)
	}
	p.log.Debug("evaluate", "strategy", s, "depth", depth, "pos", pos, "cost", c, "next", next)

	return c, next, nil
}

// BestPath runs a default Planner once.
func BestPath(start strategy.Strategy, depth int, w *world.World, pos terrain.Coord) (Plan, error) {
	return New().BestPath(start, depth, w, pos)
}
