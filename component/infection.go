package component

import (
	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/parameter"
)

// InfectionStatus is the closed SIR tag
type InfectionStatus uint8

const (
	StatusSusceptible InfectionStatus = iota
	StatusInfected
	StatusRecovered
	StatusCount
)

func (s InfectionStatus) String() string {
	switch s {
	case StatusSusceptible:
		return "susceptible"
	case StatusInfected:
		return "infected"
	case StatusRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// markerLUT indexed by InfectionStatus
var markerLUT = [StatusCount]core.RGB{
	core.RGBFromUnit(parameter.MarkerSusceptibleUnit[0], parameter.MarkerSusceptibleUnit[1], parameter.MarkerSusceptibleUnit[2]),
	core.RGBFromUnit(parameter.MarkerInfectedUnit[0], parameter.MarkerInfectedUnit[1], parameter.MarkerInfectedUnit[2]),
	core.RGBFromUnit(parameter.MarkerRecoveredUnit[0], parameter.MarkerRecoveredUnit[1], parameter.MarkerRecoveredUnit[2]),
}

// MarkerFor returns the display color bound to a status
func MarkerFor(s InfectionStatus) core.RGB {
	if s >= StatusCount {
		return core.RGBBlack
	}
	return markerLUT[s]
}

// InfectionComponent holds status and its collaborator-visible marker
// Fields are mutated only through NewInfection and Transition so the pair never diverges
type InfectionComponent struct {
	Status InfectionStatus
	Marker core.RGB
}

// NewInfection builds a component with the marker matching status
func NewInfection(s InfectionStatus) InfectionComponent {
	return InfectionComponent{Status: s, Marker: MarkerFor(s)}
}

// CanTransition reports whether from -> to is a legal forward move
// Susceptible -> Infected -> Recovered; nothing leaves Recovered
func CanTransition(from, to InfectionStatus) bool {
	if to >= StatusCount {
		return false
	}
	return to > from
}

// Transition moves to a later status and updates the marker with it
// Returns false and leaves the component untouched for backward or same-state moves
func (c *InfectionComponent) Transition(to InfectionStatus) bool {
	if !CanTransition(c.Status, to) {
		return false
	}
	c.Status = to
	c.Marker = MarkerFor(to)
	return true
}
