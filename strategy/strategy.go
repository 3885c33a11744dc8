// Package strategy defines the closed set of movement strategies and how each
// one prices travel over a terrain.
//
// A Strategy is a small enum (Ascend, Descend). Each variant owns a transform
// from directional slope to edge weight; with slope = height(src) − height(dst)
// (positive = downhill):
//
//	Ascend:  slope > 0 → DisallowedCost, else FlatCost + Gain·|slope|
//	Descend: slope < 0 → DisallowedCost, else FlatCost + Gain·slope
//
// Moves against a strategy's grain are priced at a large finite sentinel, so
// they are discouraged but never forbidden. On flat ground both strategies
// charge FlatCost per step.
//
// Every strategy may be followed by either strategy: Children is the same
// fixed list for all variants.
package strategy

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Transform constants shared by every variant.
const (
	// FlatCost is the weight of a move across level ground.
	FlatCost = 1.0
	// Gain scales the height difference of an allowed move.
	Gain = 1.0
	// DisallowedCost prices a move against the strategy's direction.
	// Ascend and Descend share this one value.
	DisallowedCost = 1e6
)

// Sentinel errors for strategy evaluation.
var (
	// ErrEmptyLiftSet indicates the world has no lift to evaluate against.
	ErrEmptyLiftSet = errors.New("strategy: world has no lifts")

	// ErrUnknownStrategy indicates a value outside the Strategy enum or an unparsable name.
	ErrUnknownStrategy = errors.New("strategy: unknown strategy")

	// ErrNilWorld indicates Cost was called without a world.
	ErrNilWorld = errors.New("strategy: world is nil")
)

// Strategy is a movement mode with its own slope-to-cost transform.
type Strategy uint8

const (
	// Ascend favours climbing and penalizes descending.
	Ascend Strategy = iota
	// Descend favours descending and penalizes climbing.
	Descend
)

// all lists the variants in enumeration order.
var all = [...]Strategy{Ascend, Descend}

// All returns every strategy in enumeration order.
func All() []Strategy {
	out := make([]Strategy, len(all))
	copy(out, all[:])

	return out
}

// Valid reports whether s is one of the declared variants.
func (s Strategy) Valid() bool {
	return s == Ascend || s == Descend
}

// Name returns the stable report label: "Ascend" or "Descend".
func (s Strategy) Name() string {
	switch s {
	case Ascend:
		return "Ascend"
	case Descend:
		return "Descend"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return s.Name() }

// Children returns the strategies that may follow s: always every variant,
// in enumeration order. The transition model is static.
func (s Strategy) Children() []Strategy {
	return All()
}

// EdgeCost maps a directional slope to a weight under s.
// Unknown variants price everything as disallowed.
func (s Strategy) EdgeCost(slope float64) float64 {
	switch s {
	case Ascend:
		if slope > 0 {
			return DisallowedCost
		}
		return FlatCost + Gain*math.Abs(slope)
	case Descend:
		if slope < 0 {
			return DisallowedCost
		}
		return FlatCost + Gain*slope
	default:
		return DisallowedCost
	}
}

// Parse resolves a strategy name, case-insensitively. "up" and "down" are
// accepted as aliases for Ascend and Descend.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascend", "up":
		return Ascend, nil
	case "descend", "down":
		return Descend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
