package parameter

// System Execution Priorities (lower runs first)
// Transmission must observe positions already moved and boundary-adjusted this tick
const (
	PriorityMotion       = 10
	PriorityBoundary     = 20  // After motion, reads the moved position
	PriorityTransmission = 30  // After boundary, last mutating system
	PriorityCensus       = 900 // After all mutation, telemetry collection
)
