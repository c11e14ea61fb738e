package engine

import (
	"log/slog"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/vmath"
)

// NewTestWorld creates a world with full resources but no agents
// cfg.Population is ignored; place agents with PlaceAgent
func NewTestWorld(cfg config.Config) *World {
	return NewWorld(newResource(cfg, slog.New(slog.DiscardHandler)))
}

// PlaceAgent adds one agent at pos with the given target and status
// Speed comes from the world's config
func PlaceAgent(w *World, pos, target vmath.Vec2, st component.InfectionStatus) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{Vec2: pos})
	w.Components.Mover.SetComponent(e, component.MoverComponent{Speed: w.Resource.Config.Speed, Target: target})
	w.Components.Infection.SetComponent(e, component.NewInfection(st))
	return e
}
