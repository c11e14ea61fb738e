package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_RejectsEachField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero population", func(c *Config) { c.Population = 0 }},
		{"negative population", func(c *Config) { c.Population = -5 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"nan speed", func(c *Config) { c.Speed = math.NaN() }},
		{"negative step", func(c *Config) { c.WanderStep = -1 }},
		{"zero arena side", func(c *Config) { c.Arena.Side = 0 }},
		{"infinite arena center", func(c *Config) { c.Arena.CenterX = math.Inf(1) }},
		{"negative contact radius", func(c *Config) { c.ContactRadius = -0.1 }},
		{"transmission above one", func(c *Config) { c.TransmissionProbability = 1.01 }},
		{"transmission below zero", func(c *Config) { c.TransmissionProbability = -0.01 }},
		{"nan initial infected", func(c *Config) { c.InitialInfectedProbability = math.NaN() }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidate_AcceptsProbabilityBounds(t *testing.T) {
	cfg := Default()
	cfg.TransmissionProbability = 0
	cfg.InitialInfectedProbability = 1
	cfg.ContactRadius = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidate_JoinsAllViolations(t *testing.T) {
	cfg := Default()
	cfg.Population = 0
	cfg.Speed = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population")
	assert.Contains(t, err.Error(), "speed")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
population = 12
speed = 2.5
tick_interval = "20ms"
seed = 42

[arena]
side = 50.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Population)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 50.0, cfg.Arena.Side)

	// Untouched keys keep defaults
	def := Default()
	assert.Equal(t, def.WanderStep, cfg.WanderStep)
	assert.Equal(t, def.ContactRadius, cfg.ContactRadius)
	assert.Equal(t, def.Arena.CenterX, cfg.Arena.CenterX)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "populaton = 10\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "populaton")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "transmission_probability = 2.0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestArenaConversion(t *testing.T) {
	a := ArenaConfig{CenterX: 10, CenterY: -4, Side: 8}.Arena()
	assert.Equal(t, 6.0, a.Min().X)
	assert.Equal(t, -8.0, a.Min().Y)
	assert.Equal(t, 14.0, a.Max().X)
	assert.Equal(t, 0.0, a.Max().Y)
}
