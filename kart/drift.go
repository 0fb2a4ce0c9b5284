package kart

import (
	_ "embed"
	"math"
	"time"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/engine/fsm"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

//go:embed drift.toml
var driftGraph []byte

const (
	stateIdle     = "Idle"
	stateDrifting = "Drifting"
)

// newDriftMachine builds the Idle/Drifting machine over the controller
func newDriftMachine(c *Controller) (*fsm.Machine[*Controller], error) {
	m := fsm.NewMachine[*Controller]()
	m.RegisterGuard("DriftStartAllowed", (*Controller).driftStartAllowed)
	m.RegisterAction("BeginDrift", func(c *Controller, _ map[string]any) { c.beginDrift() })
	m.RegisterAction("UpdateDrift", func(c *Controller, _ map[string]any) { c.updateDrift() })
	m.RegisterAction("FinishDrift", func(c *Controller, _ map[string]any) { c.finishDrift() })

	if err := m.LoadConfig(driftGraph); err != nil {
		return nil, err
	}
	if err := m.Init(c); err != nil {
		return nil, err
	}
	return m, nil
}

// DriftAngleFor maps a steer amount to the requested drift angle in degrees
func (c *Controller) DriftAngleFor(steer float64) float64 {
	return math.Abs(steer) * c.cfg.MinimumDriftAngle
}

// ValidDriftAngle reports whether steer reaches the minimum start angle
// Always true when angle control is disabled
func (c *Controller) ValidDriftAngle(steer float64) bool {
	if !c.cfg.AngleControl {
		return true
	}
	return c.DriftAngleFor(steer) >= c.requiredDriftAngle()-vmath.Epsilon
}

func (c *Controller) requiredDriftAngle() float64 {
	return c.cfg.MinimumDriftAngle * c.cfg.DriftAngleThreshold
}

// driftStartAllowed guards Idle -> Drifting: a non-zero steer this frame at a valid angle
func (c *Controller) driftStartAllowed() bool {
	return c.frameSteer != 0 && c.ValidDriftAngle(c.frameSteer)
}

// reportSuppressedStart notes a jump press that steered but fell short of the start angle
// Called once per rejected press edge
func (c *Controller) reportSuppressedStart() {
	if c.frameSteer == 0 || c.ValidDriftAngle(c.frameSteer) {
		return
	}
	angle := c.DriftAngleFor(c.frameSteer)
	c.logger.Debug("drift angle too small, drift not started",
		"angle", angle, "required", c.requiredDriftAngle())
	c.emit(event.EventDriftSuppressed, &event.DriftSuppressedPayload{
		Angle:    angle,
		Required: c.requiredDriftAngle(),
	})
}

func (c *Controller) beginDrift() {
	c.drifting = true
	c.driftDirection = vmath.Sign(c.frameSteer)
	c.driftStartTime = c.clock.Now()
	c.driftStartPos = c.position
	c.driftElapsed = 0
	c.driftDistance = 0
	c.particleTint = core.TintClear

	// Complete any pivot return still running
	if c.pivotTween.Active() {
		c.pivotTween.Stop()
		c.setPivotYaw(c.pivotTween.To)
	}

	c.logger.Info("drift started", "direction", c.driftDirection, "steer", c.frameSteer)
	c.emit(event.EventDriftStart, &event.DriftStartPayload{
		Direction: c.driftDirection,
		Position:  c.position,
	})
	if c.scorer != nil {
		c.scorer.StartDrift()
	}
}

// updateDrift runs every drifting frame, including the frame the drift started
func (c *Controller) updateDrift() {
	steer := c.frameSteer

	c.rotate = steer * c.cfg.Steering * c.cfg.DriftSteerFactor
	c.driftPower += c.PowerControl(steer)
	c.updateTelemetry()
	c.latchBoostTiers()

	if c.scorer != nil {
		c.scorer.UpdateDriftScore(c.body.Velocity().Len(), c.ControlQuality(steer))
	}
}

// ControlQuality remaps steer into [0, 2], mirrored by drift direction
// Pushing into the drift yields high control for either direction
func (c *Controller) ControlQuality(steer float64) float64 {
	if c.driftDirection >= 0 {
		return vmath.Remap(steer, -1, 1, 0, 2)
	}
	return vmath.Remap(steer, -1, 1, 2, 0)
}

// PowerControl remaps steer into [0.2, 1], mirrored by drift direction
func (c *Controller) PowerControl(steer float64) float64 {
	if c.driftDirection >= 0 {
		return vmath.Remap(steer, -1, 1, 0.2, 1)
	}
	return vmath.Remap(steer, -1, 1, 1, 0.2)
}

// latchBoostTiers walks the threshold table once, latching each tier the first time power exceeds it
func (c *Controller) latchBoostTiers() {
	for i, threshold := range c.cfg.PowerThresholds {
		if c.tierLatched[i] || c.driftPower <= threshold {
			continue
		}
		c.tierLatched[i] = true
		tier := i + 1
		if tier > c.boostTier {
			c.boostTier = tier
		}
		c.particleTint = core.TurboTint(tier)

		c.logger.Debug("boost tier reached", "tier", tier, "power", c.driftPower)
		c.emit(event.EventBoostTierReached, &event.BoostTierPayload{
			Tier:  tier,
			Power: c.driftPower,
			Tint:  c.particleTint,
		})
	}
}

func (c *Controller) updateTelemetry() {
	c.driftAngle = vmath.AngleBetween(c.body.Velocity(), c.Forward())
	c.driftElapsed = c.clock.Now().Sub(c.driftStartTime)
	c.driftDistance = c.position.Sub(c.driftStartPos).Len()
}

func (c *Controller) finishDrift() {
	summary := &event.DriftEndPayload{
		Direction:  c.driftDirection,
		Power:      c.driftPower,
		BoostTiers: c.boostTier,
		Duration:   c.driftElapsed,
		Distance:   c.driftDistance,
	}

	c.boost()
	if c.scorer != nil {
		c.scorer.EndDrift()
	}

	c.logger.Info("drift ended",
		"direction", summary.Direction,
		"power", summary.Power,
		"tiers", summary.BoostTiers,
		"angle", c.driftAngle,
		"duration", summary.Duration,
		"distance", summary.Distance)
	c.emit(event.EventDriftEnd, summary)
}

// boost releases the drift: a speed override decaying from a multiple of currentSpeed back to it
// No override when no tier was reached
func (c *Controller) boost() {
	c.drifting = false

	if c.boostTier > 0 {
		duration := c.cfg.BoostSecondsPerTier * float64(c.boostTier)
		c.boostTween = vmath.NewTween(c.currentSpeed*c.cfg.BoostSpeedMultiplier, c.currentSpeed, duration, vmath.EaseOutQuad)

		payload := &event.BoostStartPayload{
			Tiers:      c.boostTier,
			Multiplier: c.cfg.BoostSpeedMultiplier,
			Duration:   secondsToDuration(duration),
		}
		if c.cfg.PostProcessing {
			payload.ChromaticIntensity = c.cfg.ChromaticIntensity
			payload.ChromaticDuration = secondsToDuration(c.cfg.ChromaticSeconds)
		}
		c.emit(event.EventBoostStart, payload)
	}

	c.driftPower = 0
	c.boostTier = 0
	for i := range c.tierLatched {
		c.tierLatched[i] = false
	}
	c.particleTint = core.TintClear

	pivot := vmath.NormalizeAngle(c.rig.Pivot.LocalEuler()[1])
	c.pivotTween = vmath.NewTween(pivot, 0, parameter.DriftPivotResetSeconds, vmath.EaseOutBack)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
