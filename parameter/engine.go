package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the variable-rate update and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsStep is the fixed physics interval (50 Hz)
	PhysicsStep = 20 * time.Millisecond

	// MaxPhysicsStepsPerFrame bounds catch-up after a stall
	MaxPhysicsStepsPerFrame = 5

	// MaxFrameDelta clamps a single update delta
	MaxFrameDelta = 100 * time.Millisecond
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat event
	KeyHoldWindow = 150 * time.Millisecond

	// KeyHoldWindowInitial covers the terminal's initial auto-repeat delay
	KeyHoldWindowInitial = 550 * time.Millisecond

	// KeySteerAmount is the steer command of a held steering key
	KeySteerAmount = 1.0
)
