package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/contagion/core"
	"github.com/lixenwraith/contagion/parameter"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 1; i <= 3; i++ {
		q.Push(SimEvent{Type: EventInfection, Payload: InfectionPayload{Target: core.Entity(i)}, Tick: int64(i)})
	}
	require.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	for i, ev := range got {
		assert.Equal(t, int64(i+1), ev.Tick)
		assert.Equal(t, core.Entity(i+1), ev.Payload.(InfectionPayload).Target)
	}

	assert.Nil(t, q.Consume())
	assert.Zero(t, q.Len())
}

func TestQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(SimEvent{Type: EventInfection, Tick: int64(i)})
	}

	got := q.Consume()
	require.Len(t, got, parameter.EventQueueSize)
	assert.Equal(t, int64(10), got[0].Tick)
	assert.Equal(t, int64(total-1), got[len(got)-1].Tick)
	assert.Equal(t, uint64(10), q.Dropped())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "infection", EventInfection.String())
	assert.Equal(t, "unknown", EventType(0).String())
}
