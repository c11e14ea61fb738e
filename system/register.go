package system

import (
	"github.com/lixenwraith/contagion/engine"
)

// Factory builds a system bound to a world
type Factory func(*engine.World) engine.System

// Pipeline lists the simulation systems; World sorts them by priority on registration
var Pipeline = []Factory{
	NewMotionSystem,
	NewBoundarySystem,
	NewTransmissionSystem,
	NewCensusSystem,
}

// RegisterAll installs the full pipeline on world
func RegisterAll(world *engine.World) {
	for _, factory := range Pipeline {
		world.AddSystem(factory(world))
	}
}
