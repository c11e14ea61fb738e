package event

import "github.com/lixenwraith/contagion/core"

// EventType identifies a simulation event
type EventType int

const (
	// EventInfection reports a Susceptible -> Infected transition
	// Trigger: TransmissionSystem | Consumer: audio, logging | Payload: InfectionPayload
	EventInfection EventType = iota + 1
)

func (t EventType) String() string {
	switch t {
	case EventInfection:
		return "infection"
	default:
		return "unknown"
	}
}

// SimEvent is a queued event stamped with the tick that produced it
type SimEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// InfectionPayload names the newly infected agent and the infected agent whose draw succeeded
type InfectionPayload struct {
	Target core.Entity
	Source core.Entity
}
