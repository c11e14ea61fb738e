package parameter

import "time"

// Simulation Loop & Engine Timing
const (
	// TickInterval is the default simulation step; also the dt handed to systems
	TickInterval = 50 * time.Millisecond

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = EventQueueSize - 1

	// CensusLogEvery is the tick cadence of debug census log lines
	CensusLogEvery = 100
)
