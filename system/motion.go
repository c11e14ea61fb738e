package system

import (
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// MotionSystem walks every agent toward its target at constant speed
// and picks a fresh random waypoint for agents sitting exactly on theirs
type MotionSystem struct {
	engine.SystemBase

	step float64
}

// NewMotionSystem creates the random-waypoint motion controller
func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.step = s.Resource.Config.WanderStep
	return s
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update() {
	dt := s.Resource.Time.DeltaTime.Seconds()
	rng := s.Resource.Rand
	half := s.step / 2

	for _, e := range s.Component.Mover.GetAllEntities() {
		mover, ok := s.Component.Mover.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := s.Component.Position.GetComponent(e)
		if !ok {
			continue
		}

		toTarget := vmath.V2Sub(mover.Target, pos.Vec2)
		distance := vmath.V2Mag(toTarget)
		travel := mover.Speed * dt

		switch {
		case distance == 0:
			// Arrived: re-target before any normalize; x then y from the stream
			offset := vmath.Vec2{
				X: rng.Range(-half, half),
				Y: rng.Range(-half, half),
			}
			mover.Target = vmath.V2Add(pos.Vec2, offset)
			s.Component.Mover.SetComponent(e, mover)

		case distance <= travel:
			// Snap so the next tick sees exact equality
			pos.Vec2 = mover.Target
			s.Component.Position.SetComponent(e, pos)

		default:
			pos.Vec2 = vmath.V2Add(pos.Vec2, vmath.V2Scale(vmath.V2Normalize(toTarget), travel))
			s.Component.Position.SetComponent(e, pos)
		}
	}
}
