package engine

import "time"

// GameClock is deterministic game time advanced explicitly by the frame loop
// Pausing freezes Now; paused frames are counted but add no game time
type GameClock struct {
	epoch   time.Time
	elapsed time.Duration
	frame   int64

	paused      bool
	pausedSpent time.Duration // Real delta swallowed while paused
}

// NewGameClock creates a clock whose game time starts at epoch
func NewGameClock(epoch time.Time) *GameClock {
	return &GameClock{epoch: epoch}
}

// Now returns current game time (frozen while paused)
func (c *GameClock) Now() time.Time {
	return c.epoch.Add(c.elapsed)
}

// Advance moves game time forward by dt and returns the effective delta
// Returns 0 while paused or for negative input
func (c *GameClock) Advance(dt time.Duration) time.Duration {
	c.frame++
	if dt <= 0 {
		return 0
	}
	if c.paused {
		c.pausedSpent += dt
		return 0
	}
	c.elapsed += dt
	return dt
}

// Frame returns the number of Advance calls
func (c *GameClock) Frame() int64 {
	return c.frame
}

// Elapsed returns total unpaused game time
func (c *GameClock) Elapsed() time.Duration {
	return c.elapsed
}

// Pause stops game time advancement
func (c *GameClock) Pause() {
	c.paused = true
}

// Resume continues game time advancement
func (c *GameClock) Resume() {
	c.paused = false
}

// TogglePause flips pause state and returns the new state
func (c *GameClock) TogglePause() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// IsPaused returns current pause state
func (c *GameClock) IsPaused() bool {
	return c.paused
}

// GetTotalPauseDuration returns cumulative delta swallowed by pauses
func (c *GameClock) GetTotalPauseDuration() time.Duration {
	return c.pausedSpent
}
