package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	var p TimeProvider = NewMonotonicTimeProvider()

	t1 := p.Now()
	time.Sleep(10 * time.Millisecond)
	if diff := p.Now().Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("expected at least 10ms, got %v", diff)
	}
}

// Scoring reads a TimeProvider; a paused GameClock must freeze it while wall time moves on
func TestGameClockAsTimeProviderFreezesWhilePaused(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewGameClock(epoch)
	var p TimeProvider = clock

	clock.Advance(250 * time.Millisecond)
	before := p.Now()
	clock.Pause()
	clock.Advance(time.Second)
	if got := p.Now(); !got.Equal(before) {
		t.Errorf("paused clock moved from %v to %v", before, got)
	}

	clock.Resume()
	clock.Advance(250 * time.Millisecond)
	if got := p.Now().Sub(epoch); got != 500*time.Millisecond {
		t.Errorf("expected 500ms of game time, got %v", got)
	}
}
