package parameter

import "time"

// Audio synthesis
const (
	AudioSampleRate = 44100

	// SpeakerBufferDiv sizes the speaker buffer as a fraction of a second
	SpeakerBufferDiv = 10
)

// Effect cues
const (
	EatToneFreq     = 880.0
	EatToneDuration = 60 * time.Millisecond

	DeathToneFreq     = 110.0
	DeathToneDuration = 400 * time.Millisecond

	EffectAttack  = 5 * time.Millisecond
	EffectRelease = 30 * time.Millisecond
)
