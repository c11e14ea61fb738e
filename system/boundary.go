package system

import (
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// BoundarySystem biases the target of agents outside the arena back inward
// Position is never touched; the correction plays out over following motion ticks
type BoundarySystem struct {
	engine.SystemBase

	arena vmath.Arena
	step  float64
}

// NewBoundarySystem creates the soft containment system
func NewBoundarySystem(world *engine.World) engine.System {
	s := &BoundarySystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.arena = s.Resource.Config.Arena
	s.step = s.Resource.Config.WanderStep
	return s
}

func (s *BoundarySystem) Name() string {
	return "boundary"
}

func (s *BoundarySystem) Priority() int {
	return parameter.PriorityBoundary
}

func (s *BoundarySystem) Update() {
	lo, hi := s.arena.Min(), s.arena.Max()

	for _, e := range s.Component.Mover.GetAllEntities() {
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}
		mover, ok := s.Component.Mover.GetComponent(e)
		if !ok {
			continue
		}

		dx := nudge(pos.X, lo.X, hi.X, s.step)
		dy := nudge(pos.Y, lo.Y, hi.Y, s.step)
		if dx == 0 && dy == 0 {
			continue
		}

		mover.Target.X += dx
		mover.Target.Y += dy
		s.Component.Mover.SetComponent(e, mover)
	}
}

// nudge returns the per-axis target correction for coordinate v
func nudge(v, lo, hi, step float64) float64 {
	switch {
	case v < lo:
		return step
	case v > hi:
		return -step
	default:
		return 0
	}
}
