package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/serpent/parameter"
)

// Player owns the speaker and plays the game's effect cues. A disabled
// or failed-to-initialize player is a silent no-op, so the game can run
// without sound.
type Player struct {
	rate  beep.SampleRate
	ready bool
	muted atomic.Bool
}

// NewPlayer initializes the speaker. The returned error is advisory;
// the Player is still usable (silently) on failure.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{rate: beep.SampleRate(parameter.AudioSampleRate)}
	if !enabled {
		p.muted.Store(true)
		return p, nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/parameter.SpeakerBufferDiv)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return p, nil
}

// ToggleMute flips the mute state and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted returns the current mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Eat plays the food consumption cue
func (p *Player) Eat() {
	p.play(parameter.EatToneFreq, parameter.EatToneDuration, WaveSine)
}

// Death plays the game over cue
func (p *Player) Death() {
	p.play(parameter.DeathToneFreq, parameter.DeathToneDuration, WaveSquare)
}

func (p *Player) play(freq float64, duration time.Duration, wave WaveType) {
	if !p.ready || p.muted.Load() {
		return
	}
	tone := newOscillator(freq, duration, wave, p.rate)
	shaped := newEnvelope(tone, duration, parameter.EffectAttack, parameter.EffectRelease, p.rate)
	speaker.Play(shaped)
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}
