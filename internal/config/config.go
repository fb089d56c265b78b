// Package config loads sketch parameters from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"genuary/internal/boids"
	"genuary/internal/mesh"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "~/.config/genuary/config.toml"

type Config struct {
	// Seed drives every random source; 0 picks one from the clock.
	Seed    uint64 `toml:"seed"`
	FPS     int    `toml:"fps"`
	LogFile string `toml:"log_file"`

	Boids Boids `toml:"boids"`
	Mesh  Mesh  `toml:"mesh"`
	Cube  Cube  `toml:"cube"`
}

type Boids struct {
	Width            int     `toml:"width"`
	Height           int     `toml:"height"`
	Count            int     `toml:"count"`
	MaxSpeed         float64 `toml:"max_speed"`
	MaxForce         float64 `toml:"max_force"`
	Perception       float64 `toml:"perception"`
	AlignWeight      float64 `toml:"align_weight"`
	CohesionWeight   float64 `toml:"cohesion_weight"`
	SeparationWeight float64 `toml:"separation_weight"`
	CenterWeight     float64 `toml:"center_weight"`
	Headings         bool    `toml:"headings"`
}

type Mesh struct {
	Points     int     `toml:"points"`
	SpreadX    float32 `toml:"spread_x"`
	SpreadY    float32 `toml:"spread_y"`
	Topology   string  `toml:"topology"`
	Selection  string  `toml:"selection"`
	DedupEdges bool    `toml:"dedup_edges"`
	// PointsFile replaces the random points when set.
	PointsFile    string  `toml:"points_file"`
	WaveAmplitude float32 `toml:"wave_amplitude"`
	WaveFrequency float32 `toml:"wave_frequency"`
	WaveSpeed     float32 `toml:"wave_speed"`
	Tilt          float32 `toml:"tilt"`
}

type Cube struct {
	// Scale is the cube half-size as a fraction of the smaller view side.
	Scale   float32 `toml:"scale"`
	Braille bool    `toml:"braille"`
}

func Default() Config {
	bp := boids.DefaultParams()
	return Config{
		FPS: 30,
		Boids: Boids{
			Width:            bp.Width,
			Height:           bp.Height,
			Count:            bp.Count,
			MaxSpeed:         bp.MaxSpeed,
			MaxForce:         bp.MaxForce,
			Perception:       bp.AlignPerception,
			AlignWeight:      bp.AlignWeight,
			CohesionWeight:   bp.CohesionWeight,
			SeparationWeight: bp.SeparationWeight,
			CenterWeight:     bp.CenterWeight,
			Headings:         true,
		},
		Mesh: Mesh{
			Points:        50,
			SpreadX:       300,
			SpreadY:       100,
			Topology:      "lines",
			Selection:     "all",
			WaveAmplitude: 60,
			WaveFrequency: 3.5,
			WaveSpeed:     2,
			Tilt:          0.35,
		},
		Cube: Cube{Scale: 0.3, Braille: true},
	}
}

// BoidParams converts the [boids] section for the simulation.
func (c Config) BoidParams() boids.Params {
	b := c.Boids
	return boids.Params{
		Width:                b.Width,
		Height:               b.Height,
		Count:                b.Count,
		MaxSpeed:             b.MaxSpeed,
		MaxForce:             b.MaxForce,
		AlignPerception:      b.Perception,
		CohesionPerception:   b.Perception,
		SeparationPerception: b.Perception,
		AlignWeight:          b.AlignWeight,
		CohesionWeight:       b.CohesionWeight,
		SeparationWeight:     b.SeparationWeight,
		CenterWeight:         b.CenterWeight,
	}
}

// MeshMode parses the mesh topology and selection names.
func (c Config) MeshMode() (mesh.Topology, mesh.Selection, error) {
	topo, err := mesh.ParseTopology(c.Mesh.Topology)
	if err != nil {
		return 0, 0, err
	}
	sel, err := mesh.ParseSelection(c.Mesh.Selection)
	if err != nil {
		return 0, 0, err
	}
	return topo, sel, nil
}

var ErrInvalid = errors.New("config: invalid")

func (c Config) Validate() error {
	var errs []error
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be in [1, 240], got %d", c.FPS))
	}
	if err := c.BoidParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Mesh.PointsFile == "" && c.Mesh.Points < 3 {
		errs = append(errs, fmt.Errorf("mesh.points must be at least 3, got %d", c.Mesh.Points))
	}
	if c.Mesh.SpreadX <= 0 || c.Mesh.SpreadY <= 0 {
		errs = append(errs, errors.New("mesh.spread_x and mesh.spread_y must be positive"))
	}
	if _, _, err := c.MeshMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Cube.Scale <= 0 || c.Cube.Scale > 1 {
		errs = append(errs, fmt.Errorf("cube.scale must be in (0, 1], got %v", c.Cube.Scale))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalid}, errs...)...)
	}
	return nil
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error. A malformed file returns the defaults together with the error.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	def := Default()
	p, err := homedir.Expand(path)
	if err != nil {
		return def, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return def, nil
		}
		return def, fmt.Errorf("config: %w", err)
	}
	cfg := def
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return def, fmt.Errorf("config %s: %w", filepath.Base(p), err)
	}
	if err := cfg.Validate(); err != nil {
		return def, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	p, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(p, data, 0o644)
}
