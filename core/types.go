package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/slopeplan/terrain"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node ID.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateCoord indicates a second node was requested for the same coordinate.
	ErrDuplicateCoord = errors.New("core: coordinate already has a node")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSealed indicates a mutation on a graph that has been sealed.
	ErrSealed = errors.New("core: graph is sealed")
)

// Node is a graph vertex: a dense ID and the grid cell it stands for.
type Node struct {
	// ID is the node index, assigned in insertion order starting at 0.
	ID int

	// Coord is the grid cell represented by this node.
	Coord terrain.Coord
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// ID uniquely identifies this edge; assigned in insertion order from 0.
	ID int

	// From is the source node ID.
	From int

	// To is the destination node ID.
	To int

	// Weight is the traversal cost From → To (≥ 0).
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n nodes and e edges.
func WithCapacity(n, e int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]Node, 0, n)
			g.out = make([][]int, 0, n)
			g.lookup = make(map[terrain.Coord]int, n)
		}
		if e > 0 {
			g.edges = make([]*Edge, 0, e)
		}
	}
}

// Graph is a directed, weighted graph over grid coordinates.
//
// mu guards every field. nodes[i].ID == i and edges[i].ID == i always hold;
// out[i] lists the IDs of edges leaving node i in insertion order.
type Graph struct {
	mu sync.RWMutex

	nodes  []Node
	lookup map[terrain.Coord]int // coordinate → node ID
	edges  []*Edge
	out    [][]int // node ID → outgoing edge IDs
	sealed bool
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n+e) with WithCapacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{lookup: make(map[terrain.Coord]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
