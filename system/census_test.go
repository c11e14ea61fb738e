package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/contagion/component"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/vmath"
)

func TestCensus_Counts(t *testing.T) {
	cfg := testConfig()
	cfg.Arena.Side = 10
	w := engine.NewTestWorld(cfg)

	engine.PlaceAgent(w, vmath.Vec2{}, vmath.Vec2{}, component.StatusSusceptible)
	engine.PlaceAgent(w, vmath.Vec2{X: 20}, vmath.Vec2{}, component.StatusSusceptible)
	engine.PlaceAgent(w, vmath.Vec2{X: 1}, vmath.Vec2{}, component.StatusInfected)
	engine.PlaceAgent(w, vmath.Vec2{X: 2}, vmath.Vec2{}, component.StatusRecovered)

	s := NewCensusSystem(w)
	reg := w.Resource.Status

	assert.Equal(t, int64(2), reg.Ints.Get(status.KeySusceptible).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyInfected).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyRecovered).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyOutsideArena).Load())
	assert.Equal(t, int64(0), reg.Ints.Get(status.KeyNewInfections).Load())
	assert.InDelta(t, 0.25, reg.Floats.Get(status.KeyInfectedShare).Get(), 1e-12)
	assert.InDelta(t, 0.25, reg.Floats.Get(status.KeyOutsideShare).Get(), 1e-12)

	// Flip one agent and recount
	e := w.Components.Infection.GetAllEntities()[0]
	inf, _ := w.Components.Infection.GetComponent(e)
	inf.Transition(component.StatusInfected)
	w.Components.Infection.SetComponent(e, inf)

	runSystem(w, s)
	assert.Equal(t, int64(2), reg.Ints.Get(status.KeyInfected).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyNewInfections).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyTick).Load())
}
