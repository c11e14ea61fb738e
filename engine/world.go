package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/event"
)

// World is the agent table plus the ordered system pipeline
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resource   Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world around the given resources
func NewWorld(res Resource) *World {
	return &World{
		nextEntityID: 1,
		Resource:     res,
		Components:   newComponentStore(),
		systems:      make([]System, 0, 4),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clear()
}

// AddSystem adds a system and keeps the pipeline sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs one complete tick
// Readers using RunSafe or Snapshot never observe a partially applied tick
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs one tick assuming the caller already holds updateMutex
func (w *World) UpdateLocked(dt time.Duration) {
	w.Resource.Time.Advance(dt)

	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent stamps and enqueues an event for collaborators
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resource.Event == nil || w.Resource.Event.Queue == nil {
		return
	}
	w.Resource.Event.Queue.Push(event.SimEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Resource.Time.Tick,
	})
}

// AgentCount returns the population size
func (w *World) AgentCount() int {
	return w.Components.Position.CountEntities()
}
