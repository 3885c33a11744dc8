package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/slopeplan/core"
	"github.com/katalvlaran/slopeplan/terrain"
)

// Build constructs a sealed directed graph over every cell of t.
//
// Nodes are added in terrain index order (x ascending, then y), so node ID ==
// t.Index(coord). For every cell (i,j) and each preceding neighbour n (by
// default (i−1,j) and (i,j−1)) two edges are emitted:
//
//	(i,j) → n  weight fn(slope((i,j), n))
//	n → (i,j)  weight fn(slope(n, (i,j)))
//
// Returns ErrNilTerrain, ErrNilCostFn, or ErrNegativeCost (with the offending
// edge and slope attached).
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func Build(t *terrain.Terrain, fn EdgeCostFn, opts ...Option) (*core.Graph, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}
	if fn == nil {
		return nil, ErrNilCostFn
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := t.Dimensions()
	g := core.NewGraph(core.WithCapacity(w*h, ExpectedEdgeCount(w, h, cfg.Conn)))

	// 1) Add all nodes in index order.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if _, err := g.AddNode(terrain.C(x, y)); err != nil {
				return nil, fmt.Errorf("gridgraph: AddNode(%d,%d): %w", x, y, err)
			}
		}
	}

	// 2) Emit both directions for every preceding neighbour.
	offsets := backOffsets(cfg.Conn)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			src := terrain.C(x, y)
			for _, d := range offsets {
				dst := terrain.C(x+d[0], y+d[1])
				if !t.InBounds(dst) {
					continue
				}
				if err := link(g, t, fn, src, dst); err != nil {
					return nil, err
				}
				if err := link(g, t, fn, dst, src); err != nil {
					return nil, err
				}
			}
		}
	}
	g.Seal()

	return g, nil
}

// link adds the single edge a → b weighted by fn(slope(a, b)).
func link(g *core.Graph, t *terrain.Terrain, fn EdgeCostFn, a, b terrain.Coord) error {
	s, err := t.Slope(a, b)
	if err != nil {
		return fmt.Errorf("gridgraph: slope %s→%s: %w", a, b, err)
	}
	w := fn(s)
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %s→%s slope=%g weight=%g", ErrNegativeCost, a, b, s, w)
	}
	if _, err = g.AddEdge(t.Index(a), t.Index(b), w); err != nil {
		return fmt.Errorf("gridgraph: AddEdge(%s→%s, w=%g): %w", a, b, w, err)
	}

	return nil
}

// ExpectedEdgeCount returns the number of directed edges Build emits for a w×h
// grid: twice the number of adjacent cell pairs.
//
//	Conn4: 2·((w−1)·h + w·(h−1))
//	Conn8: Conn4 + 2·2·(w−1)·(h−1)
func ExpectedEdgeCount(w, h int, c Connectivity) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	pairs := (w-1)*h + w*(h-1)
	if c == Conn8 {
		pairs += 2 * (w - 1) * (h - 1)
	}

	return 2 * pairs
}
