// Package terrain models a height field over a rectangular grid.
//
// A Terrain is an immutable sequence of elevations indexed by a 2D coordinate.
// It answers two questions only: how high is a cell, and what is the signed
// height difference between two cells.
//
//	slope(a, b) = height(a) − height(b)
//
// A positive slope means a lies above b, so travelling a→b is downhill.
//
// Layout:
//
//	index(x, y) = x·Height + y
//
// Every coordinate with 0 ≤ x < Width and 0 ≤ y < Height maps to exactly one
// index; anything else is rejected with ErrOutOfBounds (never clamped).
//
// Presets:
//
//   - Flat(w, h)            – every cell at elevation 0.
//   - Cone(w, h, c, slope)  – elevation = planar distance to c × slope.
//   - Noise(w, h, cfg)      – layered OpenSimplex noise.
//
// Any Terrain built through New that satisfies the length invariant is valid
// input for graph construction; the presets are conveniences.
//
// Complexity:
//
//   - Height, Slope, InBounds: O(1).
//   - New and every preset:    O(W×H) time and memory.
package terrain
