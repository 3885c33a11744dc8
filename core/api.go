package core

import "math"

// GraphStats is a read-only snapshot of a graph's size and weight range.
type GraphStats struct {
	NodeCount int
	EdgeCount int
	Sealed    bool

	// MinWeight and MaxWeight are 0 when the graph has no edges.
	MinWeight float64
	MaxWeight float64

	// AtOrAbove counts edges whose weight is ≥ the threshold passed to Stats.
	AtOrAbove int
}

// Stats produces a snapshot of counts and the weight range. Edges with
// weight ≥ threshold are counted in AtOrAbove, which callers use to report how
// many moves a cost transform discourages.
//
// Complexity: O(E) under a single read lock.
func (g *Graph) Stats(threshold float64) GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Sealed:    g.sealed,
	}
	if len(g.edges) == 0 {
		return s
	}
	s.MinWeight, s.MaxWeight = math.Inf(1), math.Inf(-1)
	for _, e := range g.edges {
		if e.Weight < s.MinWeight {
			s.MinWeight = e.Weight
		}
		if e.Weight > s.MaxWeight {
			s.MaxWeight = e.Weight
		}
		if e.Weight >= threshold {
			s.AtOrAbove++
		}
	}

	return s
}
