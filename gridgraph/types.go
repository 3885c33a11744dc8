package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNilTerrain indicates a nil *terrain.Terrain was passed to Build.
	ErrNilTerrain = errors.New("gridgraph: terrain is nil")
	// ErrNilCostFn indicates a nil EdgeCostFn was passed to Build.
	ErrNilCostFn = errors.New("gridgraph: edge cost function is nil")
	// ErrNegativeCost indicates the transform returned a weight < 0 or NaN.
	ErrNegativeCost = errors.New("gridgraph: edge cost must be non-negative")
)

// EdgeCostFn maps a directional slope (height(source) − height(dest)) to an
// edge weight. It must be pure and return a non-negative number.
type EdgeCostFn func(slope float64) float64

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Options contains tunable parameters for graph construction.
type Options struct {
	Conn Connectivity
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithConnectivity selects the neighbourhood used to place edges.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns Options with Conn4, matching the 4-connected cost model.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// backOffsets lists, per connectivity, the neighbours that precede a cell in
// the x-then-y walk. Visiting only these covers every unordered pair once.
func backOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {-1, 1}}
	}

	return [][2]int{{-1, 0}, {0, -1}}
}
