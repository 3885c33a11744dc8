// Command slopeplan searches for the cheapest sequence of Ascend/Descend
// decisions between lifts on a generated terrain and prints the plan, one
// "<cost>, <name>" line per step.
//
// Usage:
//
//	slopeplan [-scenario file.yaml] [-depth n] [-start x,y] [-strategy name]
//	          [-direction position|lift-start] [-candidates k] [-conn 4|8]
//	          [-cache] [-trace] [-v]
//
// Without -scenario the reference cone setup is planned. Flags given
// explicitly override the scenario's values. Diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/slopeplan/dijkstra"
	"github.com/katalvlaran/slopeplan/gridgraph"
	"github.com/katalvlaran/slopeplan/planner"
	"github.com/katalvlaran/slopeplan/scenario"
	"github.com/katalvlaran/slopeplan/strategy"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("slopeplan failed", "error", err)
		}
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	scenario   string
	depth      int
	start      string
	strategy   string
	direction  string
	candidates int
	conn       int
	cache      bool
	trace      bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("slopeplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.scenario, "scenario", "", "YAML scenario file (default: reference cone)")
	fs.IntVar(&o.depth, "depth", 2, "planning horizon")
	fs.StringVar(&o.start, "start", "", "starting cell as x,y")
	fs.StringVar(&o.strategy, "strategy", "", "first strategy: Ascend or Descend")
	fs.StringVar(&o.direction, "direction", "", "lift cost source: position or lift-start")
	fs.IntVar(&o.candidates, "candidates", 0, "evaluate only the k nearest lifts (0 = all)")
	fs.IntVar(&o.conn, "conn", 4, "grid connectivity: 4 or 8")
	fs.BoolVar(&o.cache, "cache", false, "share built cost graphs between evaluations")
	fs.BoolVar(&o.trace, "trace", false, "log the cell path walked for every step")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if fs.NArg() > 0 {
		return o, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return o, set, nil
}

// load returns the scenario with explicitly set flags applied.
func load(o options, set map[string]bool) (*scenario.Scenario, error) {
	sc := scenario.Default()
	if o.scenario != "" {
		var err error
		if sc, err = scenario.Load(o.scenario); err != nil {
			return nil, err
		}
	}

	if set["depth"] {
		sc.Depth = o.depth
	}
	if set["start"] {
		c, err := parseCoord(o.start)
		if err != nil {
			return nil, fmt.Errorf("-start: %w", err)
		}
		sc.Start = []int{c.X, c.Y}
	}
	if set["strategy"] {
		sc.Strategy = o.strategy
	}
	if set["direction"] {
		sc.Direction = o.direction
	}
	if set["candidates"] {
		sc.Candidates = o.candidates
	}
	if set["conn"] {
		sc.Connectivity = o.conn
	}

	return sc, sc.Validate()
}

func run(args []string, stdout, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())
	slog.SetDefault(logger)

	sc, err := load(o, set)
	if err != nil {
		return err
	}
	w, err := sc.World()
	if err != nil {
		return err
	}
	first, _ := sc.StartStrategy()
	dir, _ := sc.DirectionMode()
	conn, _ := sc.Conn()
	pos, err := sc.StartCoord()
	if err != nil {
		return err
	}

	tr := w.Terrain()
	lo, hi := tr.MinMax()
	slog.Info("world ready",
		"terrain", sc.Terrain.Kind,
		"cells", humanize.Comma(int64(tr.Len())),
		"edges", humanize.Comma(int64(gridgraph.ExpectedEdgeCount(tr.Width(), tr.Height(), conn))),
		"lifts", w.LiftCount(),
		"elevation", fmt.Sprintf("%s..%s", humanize.Ftoa(lo), humanize.Ftoa(hi)))

	popts := []planner.Option{
		planner.WithLogger(logger),
		planner.WithDirection(dir),
		planner.WithCandidateLimit(sc.Candidates),
		planner.WithConnectivity(conn),
	}
	var cache *gridgraph.Cache
	if o.cache {
		cache = gridgraph.NewCache()
		popts = append(popts, planner.WithGraphCache(cache))
	}
	p := planner.New(popts...)

	began := time.Now()
	plan, err := p.BestPath(first, sc.Depth, w, pos)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	if _, err := fmt.Fprintln(stdout, plan); err != nil {
		return err
	}

	attrs := []any{
		"start", first,
		"from", pos,
		"depth", sc.Depth,
		"total", humanize.Commaf(plan.Total()),
		"evaluations", humanize.Comma(int64(p.Evaluations())),
		"elapsed", elapsed.Round(time.Microsecond),
	}
	if cache != nil {
		attrs = append(attrs, "cache_hits", cache.Hits(), "cache_misses", cache.Misses())
	}
	slog.Info("plan complete", attrs...)

	if o.trace {
		return trace(logger, plan, w, pos, dir, conn, sc.Candidates)
	}

	return nil
}

// trace replays plan from pos and logs the cell path behind every step.
func trace(log *slog.Logger, plan planner.Plan, w *world.World, pos terrain.Coord,
	dir strategy.Direction, conn gridgraph.Connectivity, candidates int) error {
	for i, step := range plan {
		s, err := strategy.Parse(step.Strategy)
		if err != nil {
			return err
		}
		r, err := s.Evaluate(w, pos,
			strategy.WithDirection(dir),
			strategy.WithCandidateLimit(candidates),
			strategy.WithConnectivity(conn))
		if err != nil {
			return err
		}
		lift := w.Lift(r.Lift)
		from := pos
		if dir == strategy.FromLiftStart {
			from = lift.Start
		}

		g, err := gridgraph.Build(w.Terrain(), s.EdgeCost, gridgraph.WithConnectivity(conn))
		if err != nil {
			return err
		}
		path, cost, err := dijkstra.Path(g, from, r.Next)
		if err != nil {
			return err
		}
		stats := g.Stats(strategy.DisallowedCost)
		log.Info("step",
			"n", i, "strategy", s, "lift", lift, "cost", humanize.Ftoa(cost),
			"discouraged", humanize.Comma(int64(stats.AtOrAbove)),
			"edges", humanize.Comma(int64(stats.EdgeCount)),
			"cells", len(path), "path", formatPath(path))
		pos = r.Next
	}

	return nil
}

// formatPath renders at most 12 cells of path, eliding the middle.
func formatPath(path []terrain.Coord) string {
	const keep = 6
	if len(path) == 0 {
		return "unreachable"
	}
	parts := make([]string, 0, 2*keep+1)
	for i, c := range path {
		switch {
		case len(path) <= 2*keep || i < keep || i >= len(path)-keep:
			parts = append(parts, c.String())
		case i == keep:
			parts = append(parts, "…")
		}
	}

	return strings.Join(parts, " ")
}

// parseCoord parses "x,y".
func parseCoord(s string) (terrain.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return terrain.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return terrain.Coord{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return terrain.Coord{}, fmt.Errorf("y: %w", err)
	}

	return terrain.C(x, y), nil
}
