package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/contagion/event"
	"github.com/lixenwraith/contagion/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Blipper plays a short tone for each infection event
// All methods are safe to call without an initialized speaker
type Blipper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int64
}

// NewBlipper creates a silent blipper; call Initialize to attach the speaker
func NewBlipper() *Blipper {
	return &Blipper{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer
func (b *Blipper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close stops playback and releases the device
func (b *Blipper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// Consume plays one blip per infection event, capped per batch
// Returns the number of blips queued
func (b *Blipper) Consume(events []event.SimEvent) int {
	n := 0
	for _, ev := range events {
		if ev.Type == event.EventInfection {
			n++
		}
	}
	return b.Blip(n)
}

// Blip queues up to n tones, capped at parameter.BlipMaxPerTick
func (b *Blipper) Blip(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || n <= 0 {
		return 0
	}
	n = min(n, parameter.BlipMaxPerTick)

	speaker.Lock()
	for i := 0; i < n; i++ {
		if s := newBlip(i); s != nil {
			b.mixer.Add(s)
		}
	}
	speaker.Unlock()

	b.played += int64(n)
	return n
}

// Played returns the total blips queued since creation
func (b *Blipper) Played() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played
}

// newBlip builds one tone; successive blips in a batch step up a semitone
func newBlip(index int) beep.Streamer {
	freq := parameter.BlipFrequency * math.Pow(2, float64(index)/12)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	tone := beep.Take(sampleRate.N(parameter.BlipDuration), sine)
	return newVolume(tone, parameter.BlipVolume)
}

// newVolume wraps s in a linear gain; Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
