package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/slopeplan/terrain"
)

// AddNode appends a node for coordinate c and returns its ID.
// Returns ErrDuplicateCoord if c already has a node, ErrSealed after Seal.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(c terrain.Coord) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return 0, ErrSealed
	}
	if id, exists := g.lookup[c]; exists {
		return 0, fmt.Errorf("%w: %s is node %d", ErrDuplicateCoord, c, id)
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Coord: c})
	g.out = append(g.out, nil)
	g.lookup[c] = id

	return id, nil
}

// AddEdge creates a directed edge from → to with weight w and returns its ID.
// Parallel edges are permitted; Dijkstra simply takes the cheaper one.
//
// Returns ErrSealed, ErrNodeNotFound, ErrLoopNotAllowed or ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w float64) (int, error) {
	// 1) Weight constraint (no lock needed)
	if w < 0 || math.IsNaN(w) {
		return 0, fmt.Errorf("%w: %d→%d weight=%g", ErrBadWeight, from, to, w)
	}
	// 2) Loop constraint
	if from == to {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return 0, ErrSealed
	}
	// 3) Both endpoints must already exist
	if !g.validID(from) || !g.validID(to) {
		return 0, fmt.Errorf("%w: %d→%d (have %d nodes)", ErrNodeNotFound, from, to, len(g.nodes))
	}

	// 4) Store and link adjacency
	eid := len(g.edges)
	g.edges = append(g.edges, &Edge{ID: eid, From: from, To: to, Weight: w})
	g.out[from] = append(g.out[from], eid)

	return eid, nil
}

// Seal marks the graph read-only. Idempotent.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sealed
}

// ID returns the node ID of coordinate c and whether it exists.
// Complexity: O(1).
func (g *Graph) ID(c terrain.Coord) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.lookup[c]

	return id, ok
}

// Node returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validID(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// HasNode reports whether id is a valid node ID.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validID(id)
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validID(from) {
		return false
	}
	for _, eid := range g.out[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the outgoing edges of node id, sorted by Edge.ID.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(d).
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validID(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	// out[id] is appended in ID order, so the result is already sorted.
	out := make([]*Edge, len(g.out[id]))
	for i, eid := range g.out[id] {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// Nodes returns every node ordered by ID.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns every edge ordered by ID.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the in- and out-degree of node id.
// Complexity: O(E) for in, O(1) for out.
func (g *Graph) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validID(id) {
		return 0, 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	for _, e := range g.edges {
		if e.To == id {
			in++
		}
	}

	return in, len(g.out[id]), nil
}

// validID must be called with mu held.
func (g *Graph) validID(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
