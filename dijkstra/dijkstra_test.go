// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checking, basic distances, directed edges,
// MaxDistance, InfEdgeThreshold, early target exit and the coordinate-level
// helpers used for lift cost evaluation.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slopeplan/core"
	"github.com/katalvlaran/slopeplan/dijkstra"
	"github.com/katalvlaran/slopeplan/terrain"
)

// edge is a tiny fixture description: from → to with weight w.
type edge struct {
	from, to int
	w        float64
}

// chain builds a graph with n nodes at (i,0) and the given directed edges.
func chain(t *testing.T, n int, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(terrain.C(i, 0))
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// both returns the edge in each direction with the same weight.
func both(a, b int, w float64) []edge {
	return []edge{{a, b, w}, {b, a, w}}
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_MissingSource(t *testing.T) {
	g := chain(t, 2)
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrBadSource, "no Source option")

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(5))
	require.ErrorIs(t, err, dijkstra.ErrBadSource)
}

func TestDijkstra_MissingTarget(t *testing.T) {
	g := chain(t, 2)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithTarget(7))
	require.ErrorIs(t, err, dijkstra.ErrBadTarget)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5) in both directions.
	var es []edge
	es = append(es, both(0, 1, 1)...)
	es = append(es, both(1, 2, 2)...)
	es = append(es, both(0, 2, 5)...)
	g := chain(t, 3, es...)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, prev)
}

func TestDijkstra_DirectedAsymmetric(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5); nothing leads back to A.
	g := chain(t, 4,
		edge{0, 1, 2}, edge{0, 2, 1}, edge{2, 1, 1}, edge{1, 3, 3}, edge{2, 3, 5})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 1, 5}, dist)

	back, _, err := dijkstra.Dijkstra(g, dijkstra.Source(3))
	require.NoError(t, err)
	assert.True(t, dijkstra.IsUnreachable(back[0]), "D has no outgoing edges")
}

func TestDijkstra_UnreachableIsSentinelNotZero(t *testing.T) {
	g := chain(t, 3, both(0, 1, 4)...)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist[2])
	assert.False(t, dijkstra.IsUnreachable(1e300), "large but finite costs stay reachable")
}

// ------------------------------------------------------------------------
// 3. Thresholds and early exit
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// 0→1 costs 10 directly, or 1+1 around through 2.
	g := chain(t, 3, edge{0, 1, 10}, edge{0, 2, 1}, edge{2, 1, 1})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[1])

	// Wall off the detour too.
	g = chain(t, 3, edge{0, 1, 10}, edge{0, 2, 6}, edge{2, 1, 1})
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.True(t, dijkstra.IsUnreachable(dist[1]))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := chain(t, 4, edge{0, 1, 1}, edge{1, 2, 1}, edge{2, 3, 1})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[2])
	assert.True(t, dijkstra.IsUnreachable(dist[3]))
}

func TestDijkstra_TargetEarlyExit(t *testing.T) {
	g := chain(t, 4, edge{0, 1, 1}, edge{1, 2, 1}, edge{2, 3, 1})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, dijkstra.IsUnreachable(dist[3]), "search stops once the target is settled")
}
