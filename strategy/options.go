package strategy

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/slopeplan/gridgraph"
)

// Direction selects which endpoint a lift cost is measured from.
type Direction int

const (
	// FromPosition measures from the current position to each lift's End.
	FromPosition Direction = iota
	// FromLiftStart measures each lift from its own Start to its End,
	// regardless of the current position.
	FromLiftStart
)

// String returns "position" or "lift-start".
func (d Direction) String() string {
	if d == FromLiftStart {
		return "lift-start"
	}

	return "position"
}

// ParseDirection resolves "position" or "lift-start".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "position":
		return FromPosition, nil
	case "lift-start", "lift":
		return FromLiftStart, nil
	default:
		return 0, fmt.Errorf("strategy: unknown direction %q", s)
	}
}

// Options configures a cost evaluation.
type Options struct {
	Direction      Direction              // Source convention for lift costs
	Cache          *gridgraph.Cache       // Shared graph memo; nil rebuilds every call
	CandidateLimit int                    // Evaluate only the k nearest lifts; 0 = all
	Conn           gridgraph.Connectivity // Neighbourhood used to build cost graphs
}

// Option represents a functional option for Cost.
type Option func(*Options)

// WithDirection sets the lift cost source convention.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithCache shares built graphs between evaluations. Results are unchanged.
func WithCache(c *gridgraph.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithCandidateLimit restricts evaluation to the k lifts nearest the current
// position (by End for FromPosition, by Start for FromLiftStart).
// Panics if k is negative.
func WithCandidateLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic("strategy: candidate limit must be non-negative")
		}
		o.CandidateLimit = k
	}
}

// WithConnectivity selects the cost graph neighbourhood (default Conn4).
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns FromPosition, no cache, every lift, Conn4.
func DefaultOptions() Options {
	return Options{
		Direction: FromPosition,
		Conn:      gridgraph.Conn4,
	}
}
