package parameter

import "time"

// Infection blip
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
	BlipFrequency       = 880.0
	BlipDuration        = 40 * time.Millisecond
	BlipVolume          = 0.25

	// BlipMaxPerTick caps blips queued in one tick so an outbreak does not saturate the mixer
	BlipMaxPerTick = 4
)
