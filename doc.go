// Package slopeplan plans movement over a height-field terrain: for a bounded
// horizon it finds the sequence of Ascend/Descend strategies that minimises
// the cumulative cost of reaching lifts.
//
// 🚀 How a plan is computed
//
//	terrain ──▶ gridgraph.Build(strategy.EdgeCost) ──▶ dijkstra.BestOf ──▶ planner.BestPath
//	   heights        one directed graph per strategy      cheapest lift       exhaustive lookahead
//
// Every grid cell becomes a node; each pair of 4-neighbours is joined in both
// directions, weighted by the strategy's transform of the directional slope.
// A strategy's cost at a position is the cheapest shortest-path cost to a lift
// endpoint; the planner tries every strategy sequence up to the horizon.
//
// Under the hood, everything is organized in small packages:
//
//	terrain/   : Coord, immutable height grid, Flat/Cone/Noise presets
//	core/      : directed weighted graph keyed by grid coordinate
//	gridgraph/ : terrain → cost graph builder, graph cache
//	dijkstra/  : shortest paths, single/multi target cost queries
//	world/     : terrain + lifts, nearest-lift R-tree
//	strategy/  : Ascend/Descend transforms and per-position cost
//	planner/   : lookahead search, Plan
//	scenario/  : YAML setups
//
// Quick ASCII example (cone, peak at the centre, one lift):
//
//	      · · · · ·
//	      · ▲ ▲ ▲ ·        Ascend from S climbs toward E cheaply;
//	      · ▲ █ ▲ ·        Descend pays DisallowedCost for every
//	      · E ▲ ▲ ·        uphill step on the way.
//	      S · · · ·
//
// The slopeplan command runs a scenario and prints one "<cost>, <name>" line
// per planned step.
//
//	go run ./cmd/slopeplan -scenario scenario/testdata/cone.yaml
package slopeplan
