package engine

// System is one stage of the tick pipeline
type System interface {
	// Update runs the system once over the full agent set
	// Called with the world update lock held
	Update()

	// Priority orders systems; lower runs first
	Priority() int

	Name() string
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: w.Components,
	}
}
