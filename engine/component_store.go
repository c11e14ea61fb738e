package engine

import (
	"github.com/lixenwraith/contagion/component"
)

// ComponentStore groups the typed stores making up the agent table
type ComponentStore struct {
	Position  *Store[component.PositionComponent]
	Mover     *Store[component.MoverComponent]
	Infection *Store[component.InfectionComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position:  NewStore[component.PositionComponent](),
		Mover:     NewStore[component.MoverComponent](),
		Infection: NewStore[component.InfectionComponent](),
	}
}

func (cs ComponentStore) clear() {
	cs.Position.ClearAllComponents()
	cs.Mover.ClearAllComponents()
	cs.Infection.ClearAllComponents()
}
