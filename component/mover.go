package component

import (
	"github.com/lixenwraith/contagion/vmath"
)

// MoverComponent is target-seeking steering state
type MoverComponent struct {
	// Speed is constant and strictly positive for the agent's lifetime
	Speed float64
	// Target is the point the agent walks toward; motion owns it, boundary nudges it
	Target vmath.Vec2
}
