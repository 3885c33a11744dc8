// Package gridgraph turns a terrain height field into a directed, weighted
// core.Graph whose edge weights come from a caller-supplied slope transform.
//
// What:
//
//   - Build walks every cell once, adds a node per cell (node ID = terrain
//     index, payload = coordinate) and, for each neighbour pair, two directed
//     edges weighted independently:
//     w(a→b) = fn(slope(a, b)),  w(b→a) = fn(slope(b, a)).
//     Ascending and descending the same physical edge therefore get different
//     weights whenever fn is not even.
//   - Cache memoises built graphs by (transform key, terrain identity,
//     connectivity) so repeated evaluations share one graph.
//
// Why:
//
//   - Build itself performs no caching: every call rebuilds. Graphs are pure
//     functions of (terrain, transform), so a Cache changes performance only,
//     never results.
//
// Complexity:
//
//   - Build: O(W×H×d) time and memory (d = 2 for Conn4, 4 for Conn8 half-offsets).
//   - Cache.Graph: O(1) on hit, Build cost on miss.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): neighbourhood; default Conn4.
//
// Errors:
//
//   - ErrNilTerrain: terrain pointer is nil.
//   - ErrNilCostFn: transform is nil.
//   - ErrNegativeCost: transform produced a negative or NaN weight.
package gridgraph
