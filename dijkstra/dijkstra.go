// Package dijkstra implements Dijkstra's shortest-path algorithm on cost graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance,
//     or once the Target node is settled.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/slopeplan/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in g.
//
// Returns:
//
//   - dist: dist[id] is the minimum distance to node id (Unreachable if none).
//   - prev: predecessor slice if WithReturnPath (nil otherwise); prev[v] == u
//     means the shortest path to v goes through u, -1 for the source and for
//     unreachable nodes.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrBadSource).
//  3. Target, if set, must exist (ErrBadTarget).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(-1) // Source must be set via Source(...)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadSource, cfg.Source)
	}
	if cfg.Target != noTarget && !g.HasNode(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadTarget, cfg.Target)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}

	// 5) Run.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []float64   // Node ID → current best distance from Source.
	prev    []int       // Node ID → predecessor on the shortest path (nil unless ReturnPath).
	visited []bool      // Tracks if a node's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = -1 // no predecessor yet
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: repeatedly extract the closest unsettled node and
// relax its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The Target node has been settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing further can be settled.
		if d > cfg.MaxDistance {
			break
		}

		// 4) u's distance is now final.
		r.visited[u] = true
		if u == cfg.Target {
			break
		}

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbour distances.
// Edges with weight ≥ InfEdgeThreshold are skipped.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Safety check: pre-scan already rejected negatives.
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only: equal distances keep the first-found predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int     // node ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, ties by id
// so that runs are reproducible.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
