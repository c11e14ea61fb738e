package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// Simulation owns a populated world and the identity of one run
type Simulation struct {
	World  *World
	Config config.Config

	// RunID tags log lines and the status bar
	RunID string
}

// NewSimulation validates cfg, builds resources, and spawns the population
// Systems are registered separately by the caller
func NewSimulation(cfg config.Config, logger *slog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation init: %w", err)
	}

	runID := uuid.NewString()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run", runID)

	sim := &Simulation{
		World:  NewWorld(newResource(cfg, logger)),
		Config: cfg,
		RunID:  runID,
	}

	infected := sim.spawnPopulation()

	logger.Info("simulation initialized",
		"population", cfg.Population,
		"initial_infected", infected,
		"seed", cfg.Seed,
		"arena_side", cfg.Arena.Side,
		"contact_radius", cfg.ContactRadius,
		"transmission_probability", cfg.TransmissionProbability,
	)
	return sim, nil
}

// newResource builds the resource set for cfg without spawning anything
func newResource(cfg config.Config, logger *slog.Logger) Resource {
	return Resource{
		Time:   &TimeResource{},
		Config: NewConfigResource(cfg),
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Rand:   vmath.NewFastRand(cfg.Seed),
		Status: status.NewRegistry(),
		Log:    logger,
	}
}

// spawnPopulation creates every agent once, in id order
// Per agent the stream yields x, y, then the initial-infection draw
func (s *Simulation) spawnPopulation() int {
	w := s.World
	rng := w.Resource.Rand
	cfgRes := w.Resource.Config
	infected := 0

	for i := 0; i < cfgRes.Population; i++ {
		e := w.CreateEntity()
		pos := vmath.ArenaRandomPoint(cfgRes.Arena, rng)

		st := component.StatusSusceptible
		if rng.Float64() < cfgRes.InitialInfectedProbability {
			st = component.StatusInfected
			infected++
		}

		w.Components.Position.SetComponent(e, component.PositionComponent{Vec2: pos})
		w.Components.Mover.SetComponent(e, component.MoverComponent{Speed: cfgRes.Speed, Target: pos})
		w.Components.Infection.SetComponent(e, component.NewInfection(st))
	}
	return infected
}
