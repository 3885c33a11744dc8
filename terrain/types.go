package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrOutOfBounds indicates a coordinate outside the terrain dimensions.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")

	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("terrain: width and height must be positive")

	// ErrHeightCount indicates len(heights) != width*height.
	ErrHeightCount = errors.New("terrain: height count does not match dimensions")
)

// Coord is a grid coordinate.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// String renders the coordinate as "x,y", the same scheme used for grid vertex IDs.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Terrain is an immutable height field. Width and Height define the grid;
// heights[x*Height+y] holds the elevation of cell (x, y).
type Terrain struct {
	width, height int
	heights       []float64
}
