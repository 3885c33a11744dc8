package terrain

import "fmt"

// New builds a Terrain of the given dimensions from heights, laid out so that
// heights[x*h+y] is the elevation of (x, y). The slice is deep-copied.
//
// Returns ErrBadDimensions if w or h is not positive, ErrHeightCount if
// len(heights) != w*h.
// Complexity: O(W×H).
func New(w, h int, heights []float64) (*Terrain, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, w, h)
	}
	if len(heights) != w*h {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrHeightCount, w*h, len(heights))
	}
	cp := make([]float64, len(heights))
	copy(cp, heights)

	return &Terrain{width: w, height: h, heights: cp}, nil
}

// generate fills a w×h terrain from fn evaluated at every cell.
func generate(w, h int, fn func(x, y int) float64) (*Terrain, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, w, h)
	}
	hs := make([]float64, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			hs[x*h+y] = fn(x, y)
		}
	}

	return &Terrain{width: w, height: h, heights: hs}, nil
}

// Width returns the number of columns (valid X values).
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows (valid Y values).
// Not to be confused with At, which returns a cell elevation.
func (t *Terrain) Height() int { return t.height }

// Dimensions returns (Width, Height).
func (t *Terrain) Dimensions() (w, h int) { return t.width, t.height }

// Len returns the number of cells, Width*Height.
func (t *Terrain) Len() int { return len(t.heights) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (t *Terrain) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < t.width && c.Y >= 0 && c.Y < t.height
}

// Index maps c to its position in the height sequence.
// The caller must check InBounds first.
func (t *Terrain) Index(c Coord) int {
	return c.X*t.height + c.Y
}

// Coordinate converts an index back to its coordinate.
func (t *Terrain) Coordinate(idx int) Coord {
	return Coord{X: idx / t.height, Y: idx % t.height}
}

// At returns the elevation of c.
// Returns ErrOutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (t *Terrain) At(c Coord) (float64, error) {
	if !t.InBounds(c) {
		return 0, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c, t.width, t.height)
	}

	return t.heights[t.Index(c)], nil
}

// Slope returns At(a) − At(b). Positive means a is higher than b.
// No bounds checks beyond those of At.
// Complexity: O(1).
func (t *Terrain) Slope(a, b Coord) (float64, error) {
	ha, err := t.At(a)
	if err != nil {
		return 0, err
	}
	hb, err := t.At(b)
	if err != nil {
		return 0, err
	}

	return ha - hb, nil
}

// Heights returns a copy of the height sequence.
func (t *Terrain) Heights() []float64 {
	out := make([]float64, len(t.heights))
	copy(out, t.heights)

	return out
}

// MinMax returns the lowest and highest elevation on the terrain.
func (t *Terrain) MinMax() (lo, hi float64) {
	lo, hi = t.heights[0], t.heights[0]
	for _, v := range t.heights[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
