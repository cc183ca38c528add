package engine

import (
	"context"
	"testing"
	"time"
)

func newTestLoop() (*Loop, *World, *MockTimeProvider) {
	w := newTestWorld()
	clock := NewMockTimeProvider(time.Unix(0, 0))
	return NewLoop(w, clock), w, clock
}

func TestFirstTickEstablishesBaseline(t *testing.T) {
	l, w, _ := newTestLoop()
	counter := &stubEntity{}
	w.AddEntity(counter)

	if l.Tick() {
		t.Errorf("baseline tick reported changed")
	}
	if counter.updates != 0 {
		t.Errorf("baseline tick updated entities")
	}
}

func TestTickFeedsMeasuredDelta(t *testing.T) {
	l, w, clock := newTestLoop()
	spy := &dtSpy{}
	w.AddEntity(spy)

	l.Tick()
	clock.Advance(16 * time.Millisecond)
	l.Tick()

	if spy.last != 16*time.Millisecond {
		t.Errorf("measured delta = %v, want 16ms", spy.last)
	}
}

type dtSpy struct {
	registration
	last time.Duration
}

func (d *dtSpy) Kind() Kind { return KindFood }

func (d *dtSpy) Update(dt time.Duration, w *World) bool {
	d.last = dt
	return false
}

func TestPauseGatesUpdateButKeepsTiming(t *testing.T) {
	l, w, clock := newTestLoop()
	counter := &stubEntity{}
	w.AddEntity(counter)

	l.Tick()
	l.Pause()
	if !l.IsPaused() {
		t.Fatalf("loop not paused")
	}

	// Paused ticks skip the simulation but keep FPS bookkeeping alive
	for i := 0; i < 10; i++ {
		clock.Advance(16 * time.Millisecond)
		if l.Tick() {
			t.Errorf("paused tick reported changed")
		}
	}
	if counter.updates != 0 {
		t.Errorf("paused loop updated entities %d times", counter.updates)
	}
	if l.FPS() == 0 {
		t.Errorf("FPS statistic not maintained while paused")
	}

	l.Resume()
	clock.Advance(16 * time.Millisecond)
	l.Tick()
	if counter.updates != 1 {
		t.Errorf("resumed loop updated entities %d times, want 1", counter.updates)
	}
}

func TestTogglePause(t *testing.T) {
	l, _, _ := newTestLoop()
	if !l.TogglePause() {
		t.Errorf("first toggle did not pause")
	}
	if l.TogglePause() {
		t.Errorf("second toggle did not resume")
	}
}

func TestFPSWindowAggregation(t *testing.T) {
	l, _, clock := newTestLoop()
	l.Tick()

	// 10 frames at 20ms each: window closes at >=100ms with 50 FPS
	for i := 0; i < 10; i++ {
		clock.Advance(20 * time.Millisecond)
		l.Tick()
	}
	if fps := l.FPS(); fps < 49 || fps > 51 {
		t.Errorf("FPS = %v, want ~50", fps)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	l, _, _ := newTestLoop()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond, func(bool) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("loop did not stop on context cancellation")
	}
}
