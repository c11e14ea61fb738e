package engine

import (
	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/vmath"
)

// AgentView is the read-only per-agent record handed to collaborators
type AgentView struct {
	Entity   core.Entity
	Position vmath.Vec2
	Status   component.InfectionStatus
}

// Snapshot copies (position, status) of every agent in id order
// Taken under the update lock so it always reflects whole ticks
func (w *World) Snapshot() []AgentView {
	var views []AgentView
	w.RunSafe(func() {
		views = w.SnapshotLocked()
	})
	return views
}

// SnapshotLocked is Snapshot for callers already holding the update lock
func (w *World) SnapshotLocked() []AgentView {
	entities := w.Components.Position.GetAllEntities()
	views := make([]AgentView, 0, len(entities))

	for _, e := range entities {
		pos, ok := w.Components.Position.GetComponent(e)
		if !ok {
			continue
		}
		inf, ok := w.Components.Infection.GetComponent(e)
		if !ok {
			continue
		}
		views = append(views, AgentView{Entity: e, Position: pos.Vec2, Status: inf.Status})
	}
	return views
}
