package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/serpent/parameter"
)

// Loop is the frame driver: it measures the wall-clock delta between
// successive ticks, feeds it to the world, tracks a smoothed
// frames-per-second statistic, and gates updates on pause. Pause is
// purely a gate on calling the world update; timing and FPS bookkeeping
// run regardless.
type Loop struct {
	world *World
	clock TimeProvider

	started   bool
	lastFrame time.Time

	paused atomic.Bool

	// FPS window accumulation. Advisory only; simulation timing always
	// uses the raw per-frame delta.
	fpsElapsed time.Duration
	fpsFrames  int
	fps        float64
}

// NewLoop creates a loop driving the given world from the given clock
func NewLoop(world *World, clock TimeProvider) *Loop {
	return &Loop{
		world: world,
		clock: clock,
	}
}

// Tick runs one frame: measure delta, update FPS bookkeeping, and (when
// not paused) advance the simulation. Returns whether any entity
// reported a change, so the caller can decide to re-render. The first
// tick only establishes the timing baseline.
func (l *Loop) Tick() bool {
	now := l.clock.Now()
	if !l.started {
		l.started = true
		l.lastFrame = now
		return false
	}

	dt := now.Sub(l.lastFrame)
	l.lastFrame = now

	l.fpsElapsed += dt
	l.fpsFrames++
	if l.fpsElapsed >= parameter.FPSSampleWindow {
		l.fps = float64(l.fpsFrames) / l.fpsElapsed.Seconds()
		l.fpsElapsed = 0
		l.fpsFrames = 0
	}

	if l.paused.Load() {
		return false
	}
	return l.world.Update(dt)
}

// Run drives Tick on a fixed ticker until the context is cancelled.
// Cancellation is the teardown path; it stops the ticker so no callback
// chain outlives the caller. onFrame receives each tick's changed flag.
func (l *Loop) Run(ctx context.Context, interval time.Duration, onFrame func(changed bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onFrame(l.Tick())
		}
	}
}

// Pause stops simulation updates; the loop keeps ticking
func (l *Loop) Pause() {
	l.paused.Store(true)
}

// Resume re-enables simulation updates
func (l *Loop) Resume() {
	l.paused.Store(false)
}

// TogglePause flips the pause gate and returns the new state
func (l *Loop) TogglePause() bool {
	for {
		old := l.paused.Load()
		if l.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused returns the current pause state
func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// FPS returns the most recent smoothed frames-per-second sample
func (l *Loop) FPS() float64 {
	return l.fps
}

// World returns the world the loop drives
func (l *Loop) World() *World {
	return l.world
}
