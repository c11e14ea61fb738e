package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// Resource holds singleton simulation resources, built once by NewSimulation
// Systems cache the pointers at construction
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Event  *EventQueueResource

	// Rand is the single random stream; every draw site runs on the update goroutine
	Rand *vmath.FastRand

	// Telemetry
	Status *status.Registry
	Log    *slog.Logger
}

// TimeResource carries the current tick's timing
// Updated by World at the start of every tick, before any system runs
type TimeResource struct {
	// DeltaTime is the elapsed simulation time handed to this tick
	DeltaTime time.Duration

	// Elapsed is the total simulation time including this tick
	Elapsed time.Duration

	// Tick is the 1-based index of the tick in progress, 0 before the first
	Tick int64
}

// Advance opens the next tick
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.Tick++
}

// ConfigResource exposes the run configuration with derived geometry
type ConfigResource struct {
	config.Config

	Arena           vmath.Arena
	ContactRadiusSq float64
}

// NewConfigResource derives geometry fields from cfg
func NewConfigResource(cfg config.Config) *ConfigResource {
	return &ConfigResource{
		Config:          cfg,
		Arena:           cfg.Arena.Arena(),
		ContactRadiusSq: cfg.ContactRadius * cfg.ContactRadius,
	}
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}
