package render

import (
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// Frame is everything the renderer draws for one tick
type Frame struct {
	Agents []engine.AgentView
	Arena  vmath.Arena
	Tick   int64
	RunID  string
	Paused bool

	Susceptible int64
	Infected    int64
	Recovered   int64
}

// FrameFromWorld captures a consistent frame between ticks
func FrameFromWorld(w *engine.World, runID string, paused bool) Frame {
	f := Frame{RunID: runID, Paused: paused}
	w.RunSafe(func() {
		f.Agents = w.SnapshotLocked()
		f.Arena = w.Resource.Config.Arena
		f.Tick = w.Resource.Time.Tick

		reg := w.Resource.Status
		f.Susceptible = reg.Ints.Get(status.KeySusceptible).Load()
		f.Infected = reg.Ints.Get(status.KeyInfected).Load()
		f.Recovered = reg.Ints.Get(status.KeyRecovered).Load()
	})
	return f
}
