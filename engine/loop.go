package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/kart-drift/parameter"
)

// Updater runs once per frame with the variable frame delta in seconds
type Updater interface {
	Update(dt float64)
}

// FixedUpdater runs zero or more times per frame with the fixed physics step in seconds
type FixedUpdater interface {
	FixedUpdate(dt float64)
}

// FrameStamper receives the frame number before any phase runs (the event bus)
type FrameStamper interface {
	SetFrame(frame int64)
}

// LoopConfig controls frame pacing
type LoopConfig struct {
	FrameInterval   time.Duration `toml:"frame_interval"`
	PhysicsStep     time.Duration `toml:"physics_step"`
	MaxPhysicsSteps int           `toml:"max_physics_steps"`
	MaxFrameDelta   time.Duration `toml:"max_frame_delta"`
}

// DefaultLoopConfig returns pacing from parameter defaults
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FrameInterval:   parameter.FrameUpdateInterval,
		PhysicsStep:     parameter.PhysicsStep,
		MaxPhysicsSteps: parameter.MaxPhysicsStepsPerFrame,
		MaxFrameDelta:   parameter.MaxFrameDelta,
	}
}

// ErrInvalidLoopConfig wraps pacing validation failures
var ErrInvalidLoopConfig = errors.New("engine: invalid loop config")

// Validate rejects pacing that would stall or spin the loop
func (c LoopConfig) Validate() error {
	var errs []error
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: frame_interval must be > 0", ErrInvalidLoopConfig))
	}
	if c.PhysicsStep <= 0 {
		errs = append(errs, fmt.Errorf("%w: physics_step must be > 0", ErrInvalidLoopConfig))
	}
	if c.MaxPhysicsSteps <= 0 {
		errs = append(errs, fmt.Errorf("%w: max_physics_steps must be > 0", ErrInvalidLoopConfig))
	}
	if c.MaxFrameDelta < 0 {
		errs = append(errs, fmt.Errorf("%w: max_frame_delta %v < 0", ErrInvalidLoopConfig, c.MaxFrameDelta))
	}
	return errors.Join(errs...)
}

// Loop drives the two per-frame phases in order:
// every Updater once with the frame delta, then every FixedUpdater per accumulated physics step
// The physics phase of a frame always observes values written by the same frame's update phase
type Loop struct {
	cfg     LoopConfig
	clock   *GameClock
	stamper FrameStamper
	logger  *slog.Logger

	updaters      []Updater
	fixedUpdaters []FixedUpdater

	accumulator time.Duration
	dropped     int64
}

// NewLoop creates a loop over clock; stamper may be nil
func NewLoop(cfg LoopConfig, clock *GameClock, stamper FrameStamper, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PhysicsStep <= 0 {
		cfg.PhysicsStep = parameter.PhysicsStep
	}
	if cfg.MaxPhysicsSteps <= 0 {
		cfg.MaxPhysicsSteps = parameter.MaxPhysicsStepsPerFrame
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = parameter.FrameUpdateInterval
	}
	return &Loop{cfg: cfg, clock: clock, stamper: stamper, logger: logger}
}

// AddUpdater appends to the update phase, executed in registration order
func (l *Loop) AddUpdater(u Updater) {
	l.updaters = append(l.updaters, u)
}

// AddFixedUpdater appends to the physics phase, executed in registration order
func (l *Loop) AddFixedUpdater(f FixedUpdater) {
	l.fixedUpdaters = append(l.fixedUpdaters, f)
}

// Clock returns the game clock driven by the loop
func (l *Loop) Clock() *GameClock {
	return l.clock
}

// DroppedSteps returns physics steps discarded by the per-frame cap
func (l *Loop) DroppedSteps() int64 {
	return l.dropped
}

// Step runs one frame with the given real delta and returns the number of physics steps executed
func (l *Loop) Step(frameDelta time.Duration) int {
	if l.cfg.MaxFrameDelta > 0 && frameDelta > l.cfg.MaxFrameDelta {
		frameDelta = l.cfg.MaxFrameDelta
	}

	dt := l.clock.Advance(frameDelta)
	if l.stamper != nil {
		l.stamper.SetFrame(l.clock.Frame())
	}
	if dt <= 0 {
		return 0
	}

	seconds := dt.Seconds()
	for _, u := range l.updaters {
		u.Update(seconds)
	}

	l.accumulator += dt
	step := l.cfg.PhysicsStep
	stepSeconds := step.Seconds()
	steps := 0
	for l.accumulator >= step {
		if steps >= l.cfg.MaxPhysicsSteps {
			lost := int64(l.accumulator / step)
			l.dropped += lost
			l.accumulator -= time.Duration(lost) * step
			l.logger.Debug("physics steps dropped", "count", lost, "frame", l.clock.Frame())
			break
		}
		for _, f := range l.fixedUpdaters {
			f.FixedUpdate(stepSeconds)
		}
		l.accumulator -= step
		steps++
	}
	return steps
}

// Run paces frames on a ticker until ctx is cancelled
// beforeFrame and afterFrame may be nil; afterFrame runs even while paused so the screen keeps refreshing
func (l *Loop) Run(ctx context.Context, real TimeProvider, beforeFrame, afterFrame func()) error {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	ticker := time.NewTicker(l.cfg.FrameInterval)
	defer ticker.Stop()

	last := real.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := real.Now()
			delta := now.Sub(last)
			last = now

			if beforeFrame != nil {
				beforeFrame()
			}
			l.Step(delta)
			if afterFrame != nil {
				afterFrame()
			}
		}
	}
}
