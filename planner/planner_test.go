package planner_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slopeplan/dijkstra"
	"github.com/katalvlaran/slopeplan/gridgraph"
	"github.com/katalvlaran/slopeplan/planner"
	"github.com/katalvlaran/slopeplan/strategy"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

func coneWorld(t testing.TB) *world.World {
	t.Helper()
	tr, err := terrain.Cone(100, 100, orb.Point{50, 50}, -1)
	require.NoError(t, err)
	w, err := world.New(tr, world.Lift{Name: "base", Start: terrain.C(0, 0), End: terrain.C(10, 10)})
	require.NoError(t, err)

	return w
}

func noiseWorld(t testing.TB) *world.World {
	t.Helper()
	tr, err := terrain.Noise(24, 18, terrain.DefaultNoiseConfig())
	require.NoError(t, err)
	w, err := world.New(tr,
		world.Lift{Name: "a", Start: terrain.C(0, 0), End: terrain.C(20, 15)},
		world.Lift{Name: "b", Start: terrain.C(23, 0), End: terrain.C(3, 12)},
		world.Lift{Name: "c", Start: terrain.C(12, 9), End: terrain.C(12, 1)},
	)
	require.NoError(t, err)

	return w
}

// sequenceTotal evaluates a fixed strategy sequence the way a plan is
// executed: each step is priced from the current position and moves to the
// chosen lift's End.
func sequenceTotal(t *testing.T, seq []strategy.Strategy, w *world.World, pos terrain.Coord, opts ...strategy.Option) float64 {
	t.Helper()
	var sum float64
	for _, s := range seq {
		c, next, err := s.Cost(w, pos, opts...)
		require.NoError(t, err)
		sum += c
		pos = next
	}

	return sum
}

// sequences enumerates every strategy sequence of length n beginning with first.
func sequences(first strategy.Strategy, n int) [][]strategy.Strategy {
	out := [][]strategy.Strategy{{first}}
	for len(out[0]) < n {
		var grown [][]strategy.Strategy
		for _, seq := range out {
			for _, s := range strategy.All() {
				next := append(append([]strategy.Strategy(nil), seq...), s)
				grown = append(grown, next)
			}
		}
		out = grown
	}

	return out
}

func TestBestPath_DepthZeroMatchesCost(t *testing.T) {
	w := noiseWorld(t)
	pos := terrain.C(5, 5)
	for _, s := range strategy.All() {
		want, _, err := s.Cost(w, pos)
		require.NoError(t, err)

		plan, err := planner.BestPath(s, 0, w, pos)
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, planner.Step{Cost: want, Strategy: s.Name()}, plan[0])
	}
}

func TestBestPath_LengthAndEvaluations(t *testing.T) {
	w := noiseWorld(t)
	p := planner.New()
	wantEvals := []int{1, 4, 13, 40}
	for depth := 0; depth <= 3; depth++ {
		plan, err := p.BestPath(strategy.Descend, depth, w, terrain.C(1, 1))
		require.NoError(t, err)
		assert.Len(t, plan, depth+1)
		assert.Equal(t, "Descend", plan[0].Strategy)
		assert.Equal(t, wantEvals[depth], p.Evaluations(), "depth %d", depth)
	}
}

func TestBestPath_Cone(t *testing.T) {
	w := coneWorld(t)
	tr := w.Terrain()
	lo, err := tr.At(terrain.C(0, 0))
	require.NoError(t, err)
	hi, err := tr.At(terrain.C(10, 10))
	require.NoError(t, err)

	plan, err := planner.BestPath(strategy.Ascend, 2, w, terrain.C(0, 0))
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, "Ascend", plan[0].Strategy)
	assert.InDelta(t, 20+(hi-lo), plan[0].Cost, 1e-9)
	assert.Less(t, plan[0].Cost, dijkstra.Unreachable)

	// Once at the lift's End both strategies cost nothing; ties keep Ascend.
	assert.Equal(t, []string{"Ascend", "Ascend", "Ascend"}, plan.Names())
	assert.Zero(t, plan[1].Cost)
	assert.Zero(t, plan[2].Cost)

	descend, _, err := strategy.Descend.Cost(w, terrain.C(0, 0))
	require.NoError(t, err)
	assert.Less(t, plan[0].Cost, descend)
}

func TestBestPath_NoFixedSequenceIsCheaper(t *testing.T) {
	cases := []struct {
		name  string
		world func(testing.TB) *world.World
		pos   terrain.Coord
		depth int
		dir   strategy.Direction
	}{
		{"cone from position", coneWorld, terrain.C(0, 0), 2, strategy.FromPosition},
		{"noise from lift start", noiseWorld, terrain.C(7, 3), 3, strategy.FromLiftStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := tc.world(t)
			for _, start := range strategy.All() {
				p := planner.New(planner.WithDirection(tc.dir))
				plan, err := p.BestPath(start, tc.depth, w, tc.pos)
				require.NoError(t, err)
				require.Len(t, plan, tc.depth+1)

				for _, seq := range sequences(start, tc.depth+1) {
					total := sequenceTotal(t, seq, w, tc.pos, strategy.WithDirection(tc.dir))
					assert.LessOrEqual(t, plan.Total(), total+1e-9, "%v", seq)
				}
			}
		})
	}
}

func TestBestPath_FlatTerrainHasNoStrategyAdvantage(t *testing.T) {
	tr, err := terrain.Flat(8, 8)
	require.NoError(t, err)
	w, err := world.New(tr, world.Lift{Start: terrain.C(0, 0), End: terrain.C(7, 7)})
	require.NoError(t, err)

	up, err := planner.BestPath(strategy.Ascend, 2, w, terrain.C(0, 0))
	require.NoError(t, err)
	down, err := planner.BestPath(strategy.Descend, 2, w, terrain.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, up.Total(), down.Total())
	assert.Equal(t, 14*strategy.FlatCost, up.Total())
}

func TestBestPath_AllUnreachableStillFillsHorizon(t *testing.T) {
	tr, err := terrain.Flat(1, 1)
	require.NoError(t, err)
	w, err := world.New(tr, world.Lift{Start: terrain.C(0, 0), End: terrain.C(0, 0)})
	require.NoError(t, err)

	plan, err := planner.BestPath(strategy.Descend, 2, w, terrain.C(0, 0))
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, []string{"Descend", "Ascend", "Ascend"}, plan.Names())
	for _, s := range plan {
		assert.True(t, dijkstra.IsUnreachable(s.Cost))
	}
}

func TestBestPath_Errors(t *testing.T) {
	w := coneWorld(t)
	_, err := planner.BestPath(strategy.Ascend, -1, w, terrain.C(0, 0))
	assert.ErrorIs(t, err, planner.ErrNegativeDepth)

	_, err = planner.BestPath(strategy.Ascend, 1, w, terrain.C(100, 0))
	assert.ErrorIs(t, err, terrain.ErrOutOfBounds)

	tr, err := terrain.Flat(3, 3)
	require.NoError(t, err)
	empty, err := world.New(tr)
	require.NoError(t, err)
	_, err = planner.BestPath(strategy.Ascend, 1, empty, terrain.C(0, 0))
	assert.ErrorIs(t, err, strategy.ErrEmptyLiftSet)
}

func TestNew_RejectsNegativeCandidateLimit(t *testing.T) {
	assert.Panics(t, func() { planner.New(planner.WithCandidateLimit(-1)) })
	assert.NotPanics(t, func() { planner.New(planner.WithCandidateLimit(0)) })
}

func TestBestPath_CacheDoesNotChangePlan(t *testing.T) {
	w := noiseWorld(t)
	pos := terrain.C(4, 9)

	plain, err := planner.BestPath(strategy.Ascend, 2, w, pos)
	require.NoError(t, err)

	cache := gridgraph.NewCache()
	cached, err := planner.New(planner.WithGraphCache(cache)).BestPath(strategy.Ascend, 2, w, pos)
	require.NoError(t, err)

	assert.Equal(t, plain, cached)
	assert.Equal(t, 2, cache.Misses(), "one graph per strategy")
	assert.Equal(t, 13-2, cache.Hits())
}

func TestBestPath_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := planner.New(planner.WithLogger(log))

	_, err := p.BestPath(strategy.Ascend, 1, coneWorld(t), terrain.C(0, 0))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, p.Evaluations(), strings.Count(out, "msg=evaluate"))
	assert.Contains(t, out, "msg=\"plan ready\"")
	assert.Contains(t, out, "strategy=Descend")
}

func TestPlan_Rendering(t *testing.T) {
	plan := planner.Plan{
		{Cost: 34.5, Strategy: "Ascend"},
		{Cost: 1e6, Strategy: "Descend"},
		{Cost: 0, Strategy: "Ascend"},
	}
	assert.Equal(t, "34.5, Ascend\n1000000, Descend\n0, Ascend", plan.String())
	assert.Equal(t, 1000034.5, plan.Total())
	assert.Equal(t, []string{"Ascend", "Descend", "Ascend"}, plan.Names())
	assert.Empty(t, planner.Plan(nil).String())
}

func BenchmarkBestPath(b *testing.B) {
	w := coneWorld(b)
	for _, tc := range []struct {
		name  string
		cache bool
	}{{"rebuild", false}, {"cached", true}} {
		b.Run(tc.name, func(b *testing.B) {
			var opts []planner.Option
			if tc.cache {
				opts = append(opts, planner.WithGraphCache(gridgraph.NewCache()))
			}
			p := planner.New(opts...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := p.BestPath(strategy.Ascend, 2, w, terrain.C(0, 0)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
