package status

import "sync/atomic"

// Metric names published by the simulation
const (
	KeyTick              = "sim.tick"
	KeySusceptible       = "census.susceptible"
	KeyInfected          = "census.infected"
	KeyRecovered         = "census.recovered"
	KeyNewInfections     = "census.new_infections"
	KeyOutsideArena      = "census.outside_arena"
	KeyInfectedShare     = "census.infected_share"
	KeyOutsideShare      = "census.outside_share"
	KeyTransmissionRolls = "transmission.rolls"
)

// Registry is the metrics facade shared by systems and collaborators
// Systems cache pointers at construction; readers on other goroutines load atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into plain maps
func (r *Registry) Snapshot() (ints map[string]int64, floats map[string]float64) {
	ints = make(map[string]int64, r.Ints.Count())
	floats = make(map[string]float64, r.Floats.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { ints[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { floats[k] = v.Get() })
	return ints, floats
}
