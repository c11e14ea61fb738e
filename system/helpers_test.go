package system

import (
	"time"

	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/engine"
)

const testDt = 50 * time.Millisecond

// testConfig returns defaults with a fixed seed
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 2024
	return cfg
}

// runSystem opens a tick of testDt and runs a single system inside it
func runSystem(w *engine.World, s engine.System) {
	w.RunSafe(func() {
		w.Resource.Time.Advance(testDt)
		s.Update()
	})
}
