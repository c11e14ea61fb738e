package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
)

// TestBlipperGracefulDegradation verifies a blipper without a speaker is inert
func TestBlipperGracefulDegradation(t *testing.T) {
	b := NewBlipper()

	assert.NotPanics(t, func() {
		assert.Zero(t, b.Blip(3))
		assert.Zero(t, b.Consume([]event.SimEvent{{Type: event.EventInfection}}))
		b.Close()
	})
	assert.Zero(t, b.Played())
}

// TestBlipperConsumeCaps counts infection events and caps the batch
func TestBlipperConsumeCaps(t *testing.T) {
	b := NewBlipper()
	b.initialized = true // mixer only, no device

	events := make([]event.SimEvent, 0, parameter.BlipMaxPerTick+3)
	for i := 0; i < parameter.BlipMaxPerTick+3; i++ {
		events = append(events, event.SimEvent{Type: event.EventInfection, Tick: int64(i)})
	}
	events = append(events, event.SimEvent{Type: event.EventType(99)})

	got := b.Consume(events)
	assert.Equal(t, parameter.BlipMaxPerTick, got)
	assert.Equal(t, parameter.BlipMaxPerTick, b.mixer.Len())
	assert.Equal(t, int64(parameter.BlipMaxPerTick), b.Played())

	assert.Zero(t, b.Consume(nil))
}

// TestBlipLength verifies a blip drains after its configured duration
func TestBlipLength(t *testing.T) {
	s := newBlip(0)
	require.NotNil(t, s)

	want := sampleRate.N(parameter.BlipDuration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	sine := beep.Take(64, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	}))

	buf := make([][2]float64, 64)
	n, _ := newVolume(sine, 0).Stream(buf)
	require.Equal(t, 64, n)
	for _, s := range buf {
		assert.Zero(t, s[0])
	}
}
