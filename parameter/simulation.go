package parameter

// Simulation defaults, overridable by config file and flags
const (
	DefaultPopulation = 1000
	DefaultSpeed      = 4.0 // units per second

	// DefaultWanderStep sizes both random re-targets and boundary nudges
	DefaultWanderStep = 16.0

	DefaultArenaCenterX = 0.0
	DefaultArenaCenterY = 0.0
	DefaultArenaSide    = 200.0

	DefaultContactRadius              = 3.0
	DefaultTransmissionProbability    = 0.05 // per tick, per in-range pair
	DefaultInitialInfectedProbability = 0.01
)

// Status marker colors in unit RGB
var (
	MarkerSusceptibleUnit = [3]float64{0.1, 0.4, 0.5} // blue
	MarkerInfectedUnit    = [3]float64{0.8, 0.0, 0.0} // red
	MarkerRecoveredUnit   = [3]float64{0.3, 0.4, 0.3} // green
)
