// Package core provides the directed, weighted graph that backs every cost
// query in slopeplan.
//
// Unlike a general-purpose graph, a core.Graph is built for grid cells:
//
//   - Nodes carry a terrain.Coord payload and dense integer IDs (0..N-1)
//     assigned in insertion order.
//   - A coordinate → ID lookup table is maintained alongside the nodes, so
//     mapping a grid position to its node is O(1).
//   - Edges are always directed. Two cells joined in both directions carry two
//     independent edges with possibly different weights.
//   - Weights are non-negative float64; NaN and negative values are rejected at
//     insertion so shortest-path code never sees them.
//
// Life cycle:
//
//	g := core.NewGraph(core.WithCapacity(n, e))
//	id, _ := g.AddNode(terrain.C(0, 0))
//	...
//	g.Seal() // further AddNode/AddEdge return ErrSealed
//
// A sealed graph is read-only and may be shared freely. All methods are guarded
// by a sync.RWMutex: mutations take the write lock, queries the read lock.
//
// Core Methods:
//
//	AddNode(c terrain.Coord) (int, error)              // O(1) amortized
//	AddEdge(from, to int, w float64) (int, error)      // O(1) amortized
//	ID(c terrain.Coord) (int, bool)                    // O(1)
//	Node(id int) (Node, error)                         // O(1)
//	Neighbors(id int) ([]*Edge, error)                 // O(d), sorted by Edge.ID
//	HasEdge(from, to int) bool                         // O(d)
//	NodeCount() int / EdgeCount() int                  // O(1)
//	Nodes() []Node / Edges() []*Edge                   // O(V) / O(E)
//	Seal() / Sealed() bool                             // O(1)
//
// Errors:
//
//	ErrNodeNotFound    – node ID outside 0..NodeCount()-1
//	ErrDuplicateCoord  – AddNode for a coordinate that already has a node
//	ErrBadWeight       – negative or NaN edge weight
//	ErrLoopNotAllowed  – from == to
//	ErrSealed          – mutation after Seal
package core
