// Package scenario loads planning setups from YAML: the terrain to generate,
// the lifts placed on it, and the parameters of the search.
//
//	terrain:
//	  kind: cone            # flat | cone | noise | grid
//	  width: 100
//	  height: 100
//	  center: [50, 50]      # cone only
//	  slope: -1             # cone only
//	lifts:
//	  - {name: base, start: [0, 0], end: [10, 10]}
//	start: [0, 0]
//	strategy: Ascend
//	depth: 2
//	direction: position     # position | lift-start
//	candidates: 0           # 0 = every lift
//	connectivity: 4         # 4 | 8
//
// Unknown keys are rejected. Every validation failure wraps ErrInvalidScenario.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slopeplan/gridgraph"
	"github.com/katalvlaran/slopeplan/strategy"
	"github.com/katalvlaran/slopeplan/terrain"
	"github.com/katalvlaran/slopeplan/world"
)

// ErrInvalidScenario indicates a scenario that cannot be turned into a world.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Terrain kinds.
const (
	KindFlat  = "flat"
	KindCone  = "cone"
	KindNoise = "noise"
	KindGrid  = "grid"
)

// Scenario is one planning setup.
type Scenario struct {
	Terrain      TerrainSpec `yaml:"terrain"`
	Lifts        []LiftSpec  `yaml:"lifts"`
	Start        []int       `yaml:"start"`                  // [X, Y] starting cell
	Strategy     string      `yaml:"strategy"`               // First strategy name
	Depth        int         `yaml:"depth"`                  // Planning horizon
	Direction    string      `yaml:"direction,omitempty"`    // "position" or "lift-start"
	Candidates   int         `yaml:"candidates,omitempty"`   // Nearest-lift limit; 0 = all
	Connectivity int         `yaml:"connectivity,omitempty"` // 4 or 8; 0 = 4
}

// TerrainSpec selects and parameterises a terrain preset.
type TerrainSpec struct {
	Kind    string     `yaml:"kind"`
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Center  []float64  `yaml:"center,omitempty"`  // cone: [X, Y] of the apex
	Slope   float64    `yaml:"slope,omitempty"`   // cone: height per unit distance
	Noise   *NoiseSpec `yaml:"noise,omitempty"`   // noise: overrides of terrain.DefaultNoiseConfig
	Heights []float64  `yaml:"heights,omitempty"` // grid: W·H values, index x*H + y
}

// NoiseSpec mirrors terrain.NoiseConfig; zero fields keep the defaults.
type NoiseSpec struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Amplitude   float64 `yaml:"amplitude"`
}

// LiftSpec is a lift in scenario form.
type LiftSpec struct {
	Name  string `yaml:"name,omitempty"`
	Start []int  `yaml:"start"`
	End   []int  `yaml:"end"`
}

// Default returns the reference setup: a 100×100 cone peaking at (50,50),
// one lift from (0,0) to (10,10), an Ascend start at (0,0) and depth 2.
func Default() *Scenario {
	return &Scenario{
		Terrain: TerrainSpec{
			Kind:   KindCone,
			Width:  100,
			Height: 100,
			Center: []float64{50, 50},
			Slope:  -1,
		},
		Lifts:     []LiftSpec{{Name: "base", Start: []int{0, 0}, End: []int{10, 10}}},
		Start:     []int{0, 0},
		Strategy:  strategy.Ascend.Name(),
		Depth:     2,
		Direction: strategy.FromPosition.String(),
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Marshal renders s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks every field that does not depend on the generated terrain.
// Lift and start bounds are checked by World.
func (s *Scenario) Validate() error {
	if _, err := s.StartStrategy(); err != nil {
		return invalid("strategy: %v", err)
	}
	if s.Depth < 0 {
		return invalid("depth %d is negative", s.Depth)
	}
	if _, err := s.DirectionMode(); err != nil {
		return invalid("direction: %v", err)
	}
	if s.Candidates < 0 {
		return invalid("candidates %d is negative", s.Candidates)
	}
	if _, err := s.Conn(); err != nil {
		return err
	}
	if _, err := point(s.Start); err != nil {
		return invalid("start: %v", err)
	}
	if len(s.Lifts) == 0 {
		return invalid("no lifts")
	}
	for i, l := range s.Lifts {
		if _, err := l.Lift(); err != nil {
			return invalid("lift %d: %v", i, err)
		}
	}

	return s.Terrain.validate()
}

// StartStrategy parses the Strategy field.
func (s *Scenario) StartStrategy() (strategy.Strategy, error) {
	return strategy.Parse(s.Strategy)
}

// DirectionMode parses the Direction field; empty means FromPosition.
func (s *Scenario) DirectionMode() (strategy.Direction, error) {
	return strategy.ParseDirection(s.Direction)
}

// Conn maps the Connectivity field to a gridgraph neighbourhood.
func (s *Scenario) Conn() (gridgraph.Connectivity, error) {
	switch s.Connectivity {
	case 0, 4:
		return gridgraph.Conn4, nil
	case 8:
		return gridgraph.Conn8, nil
	default:
		return 0, invalid("connectivity %d (want 4 or 8)", s.Connectivity)
	}
}

// StartCoord returns the starting cell.
func (s *Scenario) StartCoord() (terrain.Coord, error) {
	c, err := point(s.Start)
	if err != nil {
		return terrain.Coord{}, invalid("start: %v", err)
	}

	return c, nil
}

// World generates the terrain and places the lifts on it. The start cell is
// checked against the generated bounds too.
func (s *Scenario) World() (*world.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	t, err := s.Terrain.Build()
	if err != nil {
		return nil, invalid("terrain: %v", err)
	}
	start, _ := point(s.Start)
	if !t.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s: %w", ErrInvalidScenario, start, terrain.ErrOutOfBounds)
	}

	lifts := make([]world.Lift, len(s.Lifts))
	for i, l := range s.Lifts {
		lifts[i], _ = l.Lift()
	}
	w, err := world.New(t, lifts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return w, nil
}

// Lift converts l into a world.Lift.
func (l LiftSpec) Lift() (world.Lift, error) {
	start, err := point(l.Start)
	if err != nil {
		return world.Lift{}, fmt.Errorf("start: %w", err)
	}
	end, err := point(l.End)
	if err != nil {
		return world.Lift{}, fmt.Errorf("end: %w", err)
	}

	return world.Lift{Name: l.Name, Start: start, End: end}, nil
}

func (ts TerrainSpec) validate() error {
	if ts.Width <= 0 || ts.Height <= 0 {
		return invalid("terrain: dimensions %dx%d", ts.Width, ts.Height)
	}
	switch ts.Kind {
	case KindFlat, KindNoise:
	case KindCone:
		if len(ts.Center) != 2 {
			return invalid("terrain: cone center needs [x, y], got %v", ts.Center)
		}
	case KindGrid:
		if len(ts.Heights) != ts.Width*ts.Height {
			return invalid("terrain: grid has %d heights, want %d", len(ts.Heights), ts.Width*ts.Height)
		}
	default:
		return invalid("terrain: unknown kind %q", ts.Kind)
	}

	return nil
}

// Build generates the terrain described by ts.
func (ts TerrainSpec) Build() (*terrain.Terrain, error) {
	if err := ts.validate(); err != nil {
		return nil, err
	}
	switch ts.Kind {
	case KindCone:
		return terrain.Cone(ts.Width, ts.Height, orb.Point{ts.Center[0], ts.Center[1]}, ts.Slope)
	case KindNoise:
		return terrain.Noise(ts.Width, ts.Height, ts.Noise.config())
	case KindGrid:
		return terrain.New(ts.Width, ts.Height, ts.Heights)
	default:
		return terrain.Flat(ts.Width, ts.Height)
	}
}

// config overlays the non-zero fields of n on the default noise parameters.
func (n *NoiseSpec) config() terrain.NoiseConfig {
	cfg := terrain.DefaultNoiseConfig()
	if n == nil {
		return cfg
	}
	if n.Seed != 0 {
		cfg.Seed = n.Seed
	}
	if n.Octaves > 0 {
		cfg.Octaves = n.Octaves
	}
	if n.Frequency > 0 {
		cfg.Frequency = n.Frequency
	}
	if n.Persistence > 0 {
		cfg.Persistence = n.Persistence
	}
	if n.Amplitude != 0 {
		cfg.Amplitude = n.Amplitude
	}

	return cfg
}

func point(p []int) (terrain.Coord, error) {
	if len(p) != 2 {
		return terrain.Coord{}, fmt.Errorf("want [x, y], got %v", p)
	}

	return terrain.C(p[0], p[1]), nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}
