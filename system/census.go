package system

import (
	"sync/atomic"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

// CensusSystem publishes per-tick SIR counts to the status registry
// Read-only over the agent table
type CensusSystem struct {
	engine.SystemBase

	arena        vmath.Arena
	lastInfected int64

	statTick          *atomic.Int64
	statSusceptible   *atomic.Int64
	statInfected      *atomic.Int64
	statRecovered     *atomic.Int64
	statNewInfections *atomic.Int64
	statOutside       *atomic.Int64
	statInfectedShare *status.AtomicFloat
	statOutsideShare  *status.AtomicFloat
}

// NewCensusSystem creates the census and seeds counts from the spawned population
func NewCensusSystem(world *engine.World) engine.System {
	s := &CensusSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.arena = s.Resource.Config.Arena

	reg := s.Resource.Status
	s.statTick = reg.Ints.Get(status.KeyTick)
	s.statSusceptible = reg.Ints.Get(status.KeySusceptible)
	s.statInfected = reg.Ints.Get(status.KeyInfected)
	s.statRecovered = reg.Ints.Get(status.KeyRecovered)
	s.statNewInfections = reg.Ints.Get(status.KeyNewInfections)
	s.statOutside = reg.Ints.Get(status.KeyOutsideArena)
	s.statInfectedShare = reg.Floats.Get(status.KeyInfectedShare)
	s.statOutsideShare = reg.Floats.Get(status.KeyOutsideShare)

	s.count()
	s.statNewInfections.Store(0)
	return s
}

func (s *CensusSystem) Name() string {
	return "census"
}

func (s *CensusSystem) Priority() int {
	return parameter.PriorityCensus
}

func (s *CensusSystem) Update() {
	s.count()

	tick := s.Resource.Time.Tick
	if tick%parameter.CensusLogEvery == 0 {
		s.Resource.Log.Debug("census",
			"tick", tick,
			"susceptible", s.statSusceptible.Load(),
			"infected", s.statInfected.Load(),
			"recovered", s.statRecovered.Load(),
			"outside_arena", s.statOutside.Load(),
		)
	}
}

// count tallies the agent table into the registry
func (s *CensusSystem) count() {
	var counts [component.StatusCount]int64
	var outside int64
	total := int64(0)

	for _, e := range s.Component.Infection.GetAllEntities() {
		inf, ok := s.Component.Infection.GetComponent(e)
		if !ok || inf.Status >= component.StatusCount {
			continue
		}
		counts[inf.Status]++
		total++

		if pos, ok := s.Component.Position.GetComponent(e); ok && !s.arena.Contains(pos.Vec2) {
			outside++
		}
	}

	infected := counts[component.StatusInfected]
	s.statTick.Store(s.Resource.Time.Tick)
	s.statSusceptible.Store(counts[component.StatusSusceptible])
	s.statInfected.Store(infected)
	s.statRecovered.Store(counts[component.StatusRecovered])
	s.statNewInfections.Store(infected - s.lastInfected)
	s.statOutside.Store(outside)
	s.lastInfected = infected

	if total > 0 {
		s.statInfectedShare.Set(float64(infected) / float64(total))
		s.statOutsideShare.Set(float64(outside) / float64(total))
	}
}
