package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/contagion/core"
)

func TestStore_InsertionOrderAndUpdate(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(core.Entity(3), 30)
	s.SetComponent(core.Entity(1), 10)
	s.SetComponent(core.Entity(2), 20)

	// Updating an existing entity keeps its slot
	s.SetComponent(core.Entity(3), 33)

	assert.Equal(t, []core.Entity{3, 1, 2}, s.GetAllEntities())
	assert.Equal(t, 3, s.CountEntities())

	v, ok := s.GetComponent(core.Entity(3))
	require.True(t, ok)
	assert.Equal(t, 33, v)

	_, ok = s.GetComponent(core.Entity(9))
	assert.False(t, ok)
	assert.False(t, s.HasEntity(core.Entity(9)))
}

func TestStore_GetAllEntitiesIsCopy(t *testing.T) {
	s := NewStore[string]()
	s.SetComponent(core.Entity(1), "a")

	list := s.GetAllEntities()
	list[0] = 99

	assert.Equal(t, []core.Entity{1}, s.GetAllEntities())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(core.Entity(1), 1)
	s.ClearAllComponents()

	assert.Zero(t, s.CountEntities())
	assert.False(t, s.HasEntity(core.Entity(1)))
}
