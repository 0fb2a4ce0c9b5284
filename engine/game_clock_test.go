package engine

import (
	"testing"
	"time"
)

func TestGameClockAdvance(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewGameClock(epoch)

	if got := clock.Advance(16 * time.Millisecond); got != 16*time.Millisecond {
		t.Errorf("expected effective delta 16ms, got %v", got)
	}
	if !clock.Now().Equal(epoch.Add(16 * time.Millisecond)) {
		t.Errorf("unexpected now %v", clock.Now())
	}
	if clock.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", clock.Frame())
	}
}

func TestGameClockPause(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewGameClock(epoch)
	clock.Advance(time.Second)

	clock.Pause()
	if got := clock.Advance(time.Second); got != 0 {
		t.Errorf("paused advance should return 0, got %v", got)
	}
	if !clock.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("time moved while paused: %v", clock.Now())
	}
	if clock.GetTotalPauseDuration() != time.Second {
		t.Errorf("expected 1s paused, got %v", clock.GetTotalPauseDuration())
	}

	if clock.TogglePause() {
		t.Error("toggle from paused should resume")
	}
	clock.Advance(500 * time.Millisecond)
	if clock.Elapsed() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s elapsed, got %v", clock.Elapsed())
	}
	if clock.Frame() != 3 {
		t.Errorf("paused frames still count, expected 3 got %d", clock.Frame())
	}
}

func TestGameClockIgnoresNegativeDelta(t *testing.T) {
	clock := NewGameClock(time.Time{})
	if got := clock.Advance(-time.Second); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if clock.Elapsed() != 0 {
		t.Errorf("expected no elapsed time, got %v", clock.Elapsed())
	}
}
