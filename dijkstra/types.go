// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph cost graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of nodes to explore and
// relaxes edges in increasing order of distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor slices.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           ID of the starting node (must exist in the graph).
//	– WithTarget:       stop as soon as this node's distance is final.
//	– WithReturnPath:   also return the predecessor slice.
//	– WithMaxDistance:  cap on distances to explore; nodes beyond stay Unreachable.
//	– WithInfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//
// Unreachable nodes report the sentinel distance Unreachable (math.MaxFloat64),
// never zero. Use IsUnreachable to test for it.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadSource       if the source node does not exist.
//	– ErrBadTarget       if the WithTarget node does not exist.
//	– ErrNegativeWeight  if a negative edge weight is detected.
//	– ErrNoTargets       if BestOf is given no candidates.
//	– terrain.ErrOutOfBounds (wrapped) for coordinates outside the graph.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for nodes with no path from the source.
// It is distinguishable from any finite sum of finite edge weights below it,
// and compares greater than every such sum.
const Unreachable = math.MaxFloat64

// IsUnreachable reports whether d is the Unreachable sentinel (or beyond it,
// e.g. +Inf produced by adding two sentinels).
func IsUnreachable(d float64) bool {
	return d >= Unreachable
}

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadSource indicates that the source node does not exist in the graph.
	ErrBadSource = errors.New("dijkstra: source node not found in graph")

	// ErrBadTarget indicates that the target node does not exist in the graph.
	ErrBadTarget = errors.New("dijkstra: target node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoTargets indicates BestOf was called with an empty candidate list.
	ErrNoTargets = errors.New("dijkstra: no target candidates")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noTarget marks Options.Target as unset.
const noTarget = -1

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int     // The ID of the source node
	Target           int     // Stop once this node is settled; -1 = explore everything
	ReturnPath       bool    // Whether to return the predecessor slice
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget lets Dijkstra stop as soon as the target's distance is final.
// Distances of nodes not yet settled at that point may be over-estimates.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programmer error.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold if ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source node ID.
//
// Defaults:
//   - Target:           none (explore all reachable nodes).
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (no cap).
//   - InfEdgeThreshold: +Inf (no edge is a wall).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		Target:           noTarget,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
