// Package config holds the immutable run configuration of a simulation and its validation
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ArenaConfig describes the containment square by center and side length
type ArenaConfig struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Side    float64 `toml:"side"`
}

// Arena converts to the geometry type used by systems
func (a ArenaConfig) Arena() vmath.Arena {
	return vmath.Arena{Center: vmath.Vec2{X: a.CenterX, Y: a.CenterY}, Side: a.Side}
}

// Config is set once at startup and never mutated during a run
type Config struct {
	Population                 int           `toml:"population"`
	Speed                      float64       `toml:"speed"`
	WanderStep                 float64       `toml:"wander_step"`
	Arena                      ArenaConfig   `toml:"arena"`
	ContactRadius              float64       `toml:"contact_radius"`
	TransmissionProbability    float64       `toml:"transmission_probability"`
	InitialInfectedProbability float64       `toml:"initial_infected_probability"`
	TickInterval               time.Duration `toml:"tick_interval"`

	// Seed of the random stream, 0 lets the caller derive one
	Seed uint64 `toml:"seed"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Population: parameter.DefaultPopulation,
		Speed:      parameter.DefaultSpeed,
		WanderStep: parameter.DefaultWanderStep,
		Arena: ArenaConfig{
			CenterX: parameter.DefaultArenaCenterX,
			CenterY: parameter.DefaultArenaCenterY,
			Side:    parameter.DefaultArenaSide,
		},
		ContactRadius:              parameter.DefaultContactRadius,
		TransmissionProbability:    parameter.DefaultTransmissionProbability,
		InitialInfectedProbability: parameter.DefaultInitialInfectedProbability,
		TickInterval:               parameter.TickInterval,
	}
}

// Load reads a TOML file over the defaults and validates the result
// Keys absent from the file keep their default; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every violated constraint at once
func (c Config) Validate() error {
	var errs []error

	if c.Population <= 0 {
		errs = append(errs, invalid("population must be positive, got %d", c.Population))
	}
	if !positive(c.Speed) {
		errs = append(errs, invalid("speed must be positive, got %v", c.Speed))
	}
	if !positive(c.WanderStep) {
		errs = append(errs, invalid("wander_step must be positive, got %v", c.WanderStep))
	}
	if !positive(c.Arena.Side) {
		errs = append(errs, invalid("arena.side must be positive, got %v", c.Arena.Side))
	}
	if !finite(c.Arena.CenterX) || !finite(c.Arena.CenterY) {
		errs = append(errs, invalid("arena center must be finite, got (%v, %v)", c.Arena.CenterX, c.Arena.CenterY))
	}
	if math.IsNaN(c.ContactRadius) || c.ContactRadius < 0 || math.IsInf(c.ContactRadius, 1) {
		errs = append(errs, invalid("contact_radius must be finite and non-negative, got %v", c.ContactRadius))
	}
	if !probability(c.TransmissionProbability) {
		errs = append(errs, invalid("transmission_probability must be in [0,1], got %v", c.TransmissionProbability))
	}
	if !probability(c.InitialInfectedProbability) {
		errs = append(errs, invalid("initial_infected_probability must be in [0,1], got %v", c.InitialInfectedProbability))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, invalid("tick_interval must be positive, got %v", c.TickInterval))
	}

	return errors.Join(errs...)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
