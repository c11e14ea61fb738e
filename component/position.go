package component

import (
	"github.com/lixenwraith/contagion/vmath"
)

// PositionComponent is an agent's location in arena units
type PositionComponent struct {
	vmath.Vec2
}
