package kart

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/engine/fsm"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/status"
	"github.com/lixenwraith/kart-drift/vmath"
)

// Deps are the external collaborators of a Controller
// Body, Probe and every Rig transform are required
type Deps struct {
	Body   RigidBody
	Probe  SurfaceProbe
	Rig    Rig
	Scorer Scorer              // Optional
	Events event.Emitter       // Optional
	Clock  engine.TimeProvider // Optional, defaults to wall time
	Status *status.Registry    // Optional
	Logger *slog.Logger        // Optional
}

// Controller converts per-frame commands into smoothed motion, drift state and force requests
// Update runs once per frame, FixedUpdate per physics step after it
type Controller struct {
	cfg    Config
	body   RigidBody
	probe  SurfaceProbe
	rig    Rig
	scorer Scorer
	events event.Emitter
	clock  engine.TimeProvider
	logger *slog.Logger
	fsm    *fsm.Machine[*Controller]

	cmd        Commands
	wasJumping bool
	frameSteer float64 // Steer of the frame being updated, 0 when unset
	frameDT    float64

	position mgl64.Vec3
	heading  float64 // Degrees around +Y

	speed, currentSpeed   float64
	rotate, currentRotate float64
	smoothedSteer         float64

	drifting       bool
	driftDirection int
	driftPower     float64
	boostTier      int
	tierLatched    []bool
	particleTint   core.Tint

	boostTween vmath.Tween
	pivotTween vmath.Tween
	normalUp   mgl64.Vec3

	driftAngle     float64
	driftStartTime time.Time
	driftElapsed   time.Duration
	driftStartPos  mgl64.Vec3
	driftDistance  float64

	statSpeed    *status.AtomicFloat
	statPeak     *status.AtomicFloat
	statPower    *status.AtomicFloat
	statAngle    *status.AtomicFloat
	statTier     *atomic.Int64
	statDrifting *atomic.Bool
	statBoosting *atomic.Bool
}

// New validates configuration and collaborators and builds a Controller
// Missing collaborators are fatal: the error lists every missing reference
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if isNil(deps.Body) {
		return nil, ErrMissingBody
	}
	if isNil(deps.Probe) {
		return nil, ErrMissingProbe
	}
	if err := deps.Rig.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:         cfg,
		body:        deps.Body,
		probe:       deps.Probe,
		rig:         deps.Rig,
		scorer:      deps.Scorer,
		events:      deps.Events,
		clock:       deps.Clock,
		logger:      deps.Logger,
		tierLatched: make([]bool, len(cfg.PowerThresholds)),
		normalUp:    vmath.Up,
	}
	// Optional collaborators holding a nil pointer count as absent
	if isNil(c.scorer) {
		c.scorer = nil
	}
	if isNil(c.events) {
		c.events = nil
	}
	if isNil(c.clock) {
		c.clock = engine.NewMonotonicTimeProvider()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "kart")

	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	c.statSpeed = reg.Floats.Get("kart.speed")
	c.statPeak = reg.Floats.Get("kart.peak_speed")
	c.statPower = reg.Floats.Get("kart.drift_power")
	c.statAngle = reg.Floats.Get("kart.drift_angle")
	c.statTier = reg.Ints.Get("kart.boost_tier")
	c.statDrifting = reg.Bools.Get("kart.drifting")
	c.statBoosting = reg.Bools.Get("kart.boosting")

	m, err := newDriftMachine(c)
	if err != nil {
		return nil, fmt.Errorf("kart: drift machine: %w", err)
	}
	c.fsm = m

	c.position = c.body.Position().Sub(mgl64.Vec3{0, c.cfg.VisualOffset, 0})
	return c, nil
}

// Update consumes this frame's commands and advances smoothing, drift state and pose targets
// dt is the frame delta in seconds
func (c *Controller) Update(dt float64) {
	cmd := c.cmd.take()
	c.frameDT = dt

	// Follow the body directly
	c.position = c.body.Position().Sub(mgl64.Vec3{0, c.cfg.VisualOffset, 0})

	if c.cfg.AutoAccelerate {
		c.speed = c.cfg.Acceleration * c.cfg.AutoIntensity
	} else if cmd.Accelerate.OrElse(false) {
		c.speed = c.cfg.Acceleration
	}

	steer := cmd.Steer.OrElse(0)
	c.frameSteer = steer

	c.smoothedSteer = vmath.Lerp(c.smoothedSteer, steer, dt*c.cfg.SteerResponseSpeed)
	if c.smoothedSteer != 0 && !c.drifting {
		c.rotate = c.cfg.Steering * c.smoothedSteer
	}

	// Pressed edge, drifting frame, released edge; the machine owns the order of side effects
	jumping := cmd.Jump.OrElse(false)
	changed := jumping != c.wasJumping
	if changed && jumping {
		if !c.fsm.HandleEvent(c, event.EventJumpPressed) {
			c.reportSuppressedStart()
		}
	}
	if c.drifting {
		c.fsm.Update(c)
	}
	if changed && !jumping {
		c.fsm.HandleEvent(c, event.EventJumpReleased)
	}

	c.currentSpeed = vmath.SmoothStep(c.currentSpeed, c.speed, dt*c.cfg.SpeedSmoothingRate)
	c.speed = 0
	if c.boostTween.Active() {
		c.currentSpeed = c.boostTween.Advance(dt)
	}

	rotSmoothing := c.cfg.NormalRotateSmoothing
	if c.drifting {
		rotSmoothing = c.cfg.DriftRotateSmoothing
	}
	c.currentRotate = vmath.Lerp(c.currentRotate, c.rotate, dt*rotSmoothing)
	c.rotate = 0

	c.animate(steer, dt)

	c.wasJumping = jumping
	c.publish()
}

// FixedUpdate issues force requests and aligns the ground normal
// dt is the physics step in seconds
func (c *Controller) FixedUpdate(dt float64) {
	if !c.drifting {
		c.body.AddAcceleration(c.ModelRight().Mul(-c.currentSpeed))
	} else {
		c.body.AddAcceleration(c.Forward().Mul(c.currentSpeed))
	}

	c.body.AddAcceleration(vmath.Down.Mul(c.cfg.Gravity))

	smoothing := c.cfg.NormalHeadingSmoothing
	if c.drifting {
		smoothing = c.cfg.DriftHeadingSmoothing
	}
	c.heading = vmath.Repeat(c.heading+c.currentRotate*vmath.Clamp01(dt*smoothing), 360)

	c.alignToGround(dt)
}

// alignToGround prefers the near ray, falls back to the far ray, and holds the normal when both miss
func (c *Controller) alignToGround(dt float64) {
	origin := c.position.Add(vmath.Up.Mul(groundRayLift))

	hit, ok := c.probe.Raycast(origin, vmath.Down, groundRayNear, c.cfg.GroundMask)
	if !ok {
		hit, ok = c.probe.Raycast(origin, vmath.Down, groundRayFar, c.cfg.GroundMask)
	}
	if ok && hit.Normal.Len() > vmath.Epsilon {
		up := vmath.LerpVec3(c.normalUp, hit.Normal.Normalize(), dt*c.cfg.GroundNormalAlignRate)
		if up.Len() > vmath.Epsilon {
			c.normalUp = up.Normalize()
		}
	}
	c.rig.Normal.SetRotation(vmath.AlignUp(c.normalUp, c.heading))
}

func (c *Controller) emit(et event.EventType, payload any) {
	if c.events != nil {
		c.events.Emit(et, payload)
	}
}

func (c *Controller) publish() {
	speed := c.body.Velocity().Len()
	c.statSpeed.Set(speed)
	c.statPeak.Max(speed)
	c.statPower.Set(c.driftPower)
	c.statAngle.Set(c.driftAngle)
	c.statTier.Store(int64(c.boostTier))
	c.statDrifting.Store(c.drifting)
	c.statBoosting.Store(c.boostTween.Active())
}

// === Queries ===

// IsDrifting reports whether a drift is active
func (c *Controller) IsDrifting() bool { return c.drifting }

// State returns the drift machine state name
func (c *Controller) State() string { return c.fsm.State() }

// DriftDirection returns -1 or +1 for the current or last drift
func (c *Controller) DriftDirection() int { return c.driftDirection }

// DriftPower returns power accumulated in the active drift
func (c *Controller) DriftPower() float64 { return c.driftPower }

// BoostTier returns the highest boost tier latched in the active drift
func (c *Controller) BoostTier() int { return c.boostTier }

// Boosting reports whether the post-drift speed override is running
func (c *Controller) Boosting() bool { return c.boostTween.Active() }

func (c *Controller) CurrentSpeed() float64  { return c.currentSpeed }
func (c *Controller) CurrentRotate() float64 { return c.currentRotate }
func (c *Controller) SmoothedSteer() float64 { return c.smoothedSteer }
func (c *Controller) Heading() float64       { return c.heading }
func (c *Controller) Position() mgl64.Vec3   { return c.position }
func (c *Controller) GroundUp() mgl64.Vec3   { return c.normalUp }

// ToggleAutoAccelerate flips auto-accelerate mode and returns the new state
func (c *Controller) ToggleAutoAccelerate() bool {
	c.cfg.AutoAccelerate = !c.cfg.AutoAccelerate
	c.logger.Info("auto accelerate", "enabled", c.cfg.AutoAccelerate)
	return c.cfg.AutoAccelerate
}

// ParticleTint returns the drift particle color, clear until a tier latches
func (c *Controller) ParticleTint() core.Tint { return c.particleTint }

// Forward returns the controller heading as a unit vector
func (c *Controller) Forward() mgl64.Vec3 {
	return vmath.YawForward(c.heading)
}

// ModelRight returns the world right vector of the kart model
func (c *Controller) ModelRight() mgl64.Vec3 {
	yaw := c.heading + c.rig.Pivot.LocalEuler()[1] + c.rig.Model.LocalEuler()[1]
	return vmath.YawRight(yaw)
}

// GetCurrentDriftAngle returns the angle between velocity and heading, last known when not drifting
func (c *Controller) GetCurrentDriftAngle() float64 { return c.driftAngle }

// DriftTime returns the elapsed time of the current or last drift
func (c *Controller) DriftTime() time.Duration { return c.driftElapsed }

// DriftDistance returns the straight-line distance from the drift start position
func (c *Controller) DriftDistance() float64 { return c.driftDistance }
