package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Driver is the tick source: it hands a fixed dt to the world once per step
type Driver struct {
	world  *World
	dt     time.Duration
	paused atomic.Bool
}

// NewDriver creates a driver stepping world by dt
func NewDriver(world *World, dt time.Duration) *Driver {
	return &Driver{world: world, dt: dt}
}

// Step runs exactly one tick regardless of pause state
func (d *Driver) Step() {
	d.world.Update(d.dt)
}

// Advance runs one tick unless paused, reporting whether it ran
func (d *Driver) Advance() bool {
	if d.paused.Load() {
		return false
	}
	d.Step()
	return true
}

func (d *Driver) Pause()  { d.paused.Store(true) }
func (d *Driver) Resume() { d.paused.Store(false) }

// TogglePause flips pause state and returns the new state
func (d *Driver) TogglePause() bool {
	for {
		old := d.paused.Load()
		if d.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (d *Driver) Paused() bool {
	return d.paused.Load()
}

// DeltaTime returns the fixed step handed to systems
func (d *Driver) DeltaTime() time.Duration {
	return d.dt
}

// Tick returns the index of the last completed tick
func (d *Driver) Tick() int64 {
	var tick int64
	d.world.RunSafe(func() {
		tick = d.world.Resource.Time.Tick
	})
	return tick
}

// Run steps ticks back to back without pacing
// ticks <= 0 runs until ctx is done; cancellation is checked between ticks only
// onTick, when set, is called after each tick outside the update lock
func (d *Driver) Run(ctx context.Context, ticks int, onTick func(tick int64)) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Step()
		if onTick != nil {
			onTick(d.Tick())
		}
	}
	return nil
}
