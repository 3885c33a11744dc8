package terrain

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Flat returns a w×h terrain with every cell at elevation 0.
func Flat(w, h int) (*Terrain, error) {
	return generate(w, h, func(int, int) float64 { return 0 })
}

// Cone returns a w×h terrain whose elevation is the planar distance from each
// cell to center multiplied by slope. A negative slope puts the peak at center
// and falls away in every direction; a positive slope makes a bowl.
// Complexity: O(W×H).
func Cone(w, h int, center orb.Point, slope float64) (*Terrain, error) {
	return generate(w, h, func(x, y int) float64 {
		return planar.Distance(orb.Point{float64(x), float64(y)}, center) * slope
	})
}

// NoiseConfig holds layered-noise generation parameters.
type NoiseConfig struct {
	Seed        int64   // Noise seed; the same seed always yields the same terrain
	Octaves     int     // Number of noise layers summed (≥ 1)
	Frequency   float64 // Base sampling frequency per cell (> 0)
	Persistence float64 // Amplitude multiplier between octaves (0..1]
	Amplitude   float64 // Final elevation scale
}

// DefaultNoiseConfig returns gentle rolling hills roughly 0..100 high.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Seed:        42,
		Octaves:     4,
		Frequency:   0.05,
		Persistence: 0.5,
		Amplitude:   100,
	}
}

// Noise returns a w×h terrain sampled from normalized OpenSimplex noise,
// summing cfg.Octaves layers of doubling frequency and decaying amplitude.
// Elevations lie in [0, cfg.Amplitude].
//
// Returns ErrBadDimensions for non-positive sizes and a wrapped error for an
// unusable NoiseConfig.
// Complexity: O(W×H×Octaves).
func Noise(w, h int, cfg NoiseConfig) (*Terrain, error) {
	if cfg.Octaves < 1 || cfg.Frequency <= 0 || cfg.Persistence <= 0 || cfg.Persistence > 1 {
		return nil, fmt.Errorf("terrain: invalid noise config %+v", cfg)
	}
	n := opensimplex.NewNormalized(cfg.Seed)

	return generate(w, h, func(x, y int) float64 {
		return octave(n, float64(x), float64(y), cfg) * cfg.Amplitude
	})
}

// octave sums cfg.Octaves layers of n and renormalizes the result to [0, 1].
func octave(n opensimplex.Noise, x, y float64, cfg NoiseConfig) float64 {
	total, amp, maxVal := 0.0, 1.0, 0.0
	freq := cfg.Frequency
	for i := 0; i < cfg.Octaves; i++ {
		total += n.Eval2(x*freq, y*freq) * amp
		maxVal += amp
		amp *= cfg.Persistence
		freq *= 2
	}

	return total / maxVal
}
