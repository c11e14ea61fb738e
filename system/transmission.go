package system

import (
	"sync/atomic"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// contactEntry holds cached agent data for one transmission pass
type contactEntry struct {
	entity core.Entity
	pos    vmath.Vec2
}

// TransmissionSystem rolls infection for every (infected, susceptible) pair in contact range
// Exhaustive O(infected * susceptible) per tick; no spatial index
type TransmissionSystem struct {
	engine.SystemBase

	radiusSq    float64
	probability float64

	// Partitions rebuilt each tick, in id order
	infected    []contactEntry
	susceptible []contactEntry

	statRolls *atomic.Int64
}

// NewTransmissionSystem creates the pairwise transmission engine
func NewTransmissionSystem(world *engine.World) engine.System {
	s := &TransmissionSystem{
		SystemBase:  engine.NewSystemBase(world),
		infected:    make([]contactEntry, 0, 64),
		susceptible: make([]contactEntry, 0, 256),
	}
	s.radiusSq = s.Resource.Config.ContactRadiusSq
	s.probability = s.Resource.Config.TransmissionProbability
	s.statRolls = s.Resource.Status.Ints.Get(status.KeyTransmissionRolls)
	return s
}

func (s *TransmissionSystem) Name() string {
	return "transmission"
}

func (s *TransmissionSystem) Priority() int {
	return parameter.PriorityTransmission
}

func (s *TransmissionSystem) Update() {
	s.partition()
	if len(s.infected) == 0 || len(s.susceptible) == 0 {
		return
	}

	rng := s.Resource.Rand
	var rolls int64

	for _, src := range s.infected {
		for _, dst := range s.susceptible {
			if vmath.V2DistSq(src.pos, dst.pos) > s.radiusSq {
				continue
			}

			// One draw per in-range pair, even if dst already flipped this pass
			rolls++
			if rng.Float64() >= s.probability {
				continue
			}
			s.infect(dst.entity, src.entity)
		}
	}

	s.statRolls.Add(rolls)
}

// partition snapshots status at the start of the pass
// Agents infected during the pass start spreading next tick
func (s *TransmissionSystem) partition() {
	s.infected = s.infected[:0]
	s.susceptible = s.susceptible[:0]

	for _, e := range s.Component.Infection.GetAllEntities() {
		inf, ok := s.Component.Infection.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}

		switch inf.Status {
		case component.StatusInfected:
			s.infected = append(s.infected, contactEntry{entity: e, pos: pos.Vec2})
		case component.StatusSusceptible:
			s.susceptible = append(s.susceptible, contactEntry{entity: e, pos: pos.Vec2})
		}
	}
}

// infect flips target to Infected with its marker and emits the event on first success
func (s *TransmissionSystem) infect(target, source core.Entity) {
	inf, ok := s.Component.Infection.GetComponent(target)
	if !ok {
		return
	}
	if !inf.Transition(component.StatusInfected) {
		return
	}
	s.Component.Infection.SetComponent(target, inf)
	s.World.PushEvent(event.EventInfection, event.InfectionPayload{Target: target, Source: source})
}
