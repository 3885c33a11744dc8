package strategy_test

import (
	"fmt"

	"github.com/katalvlaran/slopeplan/strategy"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

// ExampleStrategy_Cost prices a lift on level ground, where both strategies
// pay FlatCost per step.
func ExampleStrategy_Cost() {
	tr, _ := terrain.Flat(4, 4)
	w, _ := world.New(tr, world.Lift{Name: "chair", Start: terrain.C(0, 0), End: terrain.C(3, 2)})

	for _, s := range strategy.All() {
		cost, next, _ := s.Cost(w, terrain.C(0, 0))
		fmt.Printf("%s: %g to %s\n", s, cost, next)
	}
	// Output:
	// Ascend: 5 to 3,2
	// Descend: 5 to 3,2
}
