package physics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

// SphereConfig holds body tuning
type SphereConfig struct {
	Radius      float64 `toml:"radius"`
	Drag        float64 `toml:"drag"`
	MaxSpeed    float64 `toml:"max_speed"` // 0 = uncapped
	Restitution float64 `toml:"restitution"`
	ContactMask uint32  `toml:"contact_mask"`
}

// DefaultSphereConfig returns body tuning from parameter defaults
func DefaultSphereConfig() SphereConfig {
	return SphereConfig{
		Radius:      parameter.SphereRadius,
		Drag:        parameter.SphereDrag,
		MaxSpeed:    parameter.SphereMaxSpeed,
		Restitution: parameter.SphereRestitution,
		ContactMask: parameter.LayerGround,
	}
}

var ErrInvalidSphere = errors.New("physics: invalid sphere config")

// Validate rejects degenerate body tuning
func (c SphereConfig) Validate() error {
	var errs []error
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("%w: radius %v must be > 0", ErrInvalidSphere, c.Radius))
	}
	if c.Drag < 0 {
		errs = append(errs, fmt.Errorf("%w: drag %v < 0", ErrInvalidSphere, c.Drag))
	}
	if c.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: max_speed %v < 0", ErrInvalidSphere, c.MaxSpeed))
	}
	if c.ContactMask == 0 {
		errs = append(errs, fmt.Errorf("%w: contact_mask selects no layer", ErrInvalidSphere))
	}
	return errors.Join(errs...)
}

// Sphere is a force-driven rigid sphere integrated with semi-implicit Euler
// Accelerations accumulate between steps and are consumed by Step
type Sphere struct {
	cfg    SphereConfig
	ground kart.SurfaceProbe

	pos   mgl64.Vec3
	vel   mgl64.Vec3
	accel mgl64.Vec3
}

// NewSphere creates a body at pos resting against ground, which may be nil
func NewSphere(cfg SphereConfig, pos mgl64.Vec3, ground kart.SurfaceProbe) *Sphere {
	return &Sphere{cfg: cfg, ground: ground, pos: pos}
}

func (s *Sphere) Position() mgl64.Vec3 { return s.pos }

func (s *Sphere) Velocity() mgl64.Vec3 { return s.vel }

// AddAcceleration accumulates a mass-independent acceleration for the next Step
func (s *Sphere) AddAcceleration(a mgl64.Vec3) { s.accel = s.accel.Add(a) }

// Step integrates accumulated acceleration: v = v + a*dt; p = p + v*dt, then resolves ground contact
func (s *Sphere) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.vel = s.vel.Add(s.accel.Mul(dt))
	s.accel = mgl64.Vec3{}

	if s.cfg.Drag > 0 {
		s.vel = s.vel.Mul(vmath.Clamp01(1 - s.cfg.Drag*dt))
	}
	CapSpeed(&s.vel, s.cfg.MaxSpeed)

	s.pos = s.pos.Add(s.vel.Mul(dt))
	s.resolveGround()
}

// FixedUpdate advances the body by one physics step
func (s *Sphere) FixedUpdate(dt float64) { s.Step(dt) }

// resolveGround pushes the sphere out of the surface below and removes inbound normal velocity
func (s *Sphere) resolveGround() {
	if s.ground == nil {
		return
	}

	r := s.cfg.Radius
	origin := s.pos.Add(vmath.Up.Mul(r))
	hit, ok := s.ground.Raycast(origin, vmath.Down, 2*r+parameter.SphereContactSkin, s.cfg.ContactMask)
	if !ok {
		return
	}

	n := hit.Normal
	dist := s.pos.Sub(hit.Point).Dot(n)
	if dist > r+parameter.SphereContactSkin {
		return
	}
	if dist < r {
		s.pos = s.pos.Add(n.Mul(r - dist))
	}

	if vn := s.vel.Dot(n); vn < 0 {
		s.vel = s.vel.Sub(n.Mul(vn * (1 + s.cfg.Restitution)))
	}
}

// CapSpeed limits the velocity magnitude to maxSpeed, returns true if clamped
// Non-positive maxSpeed disables the cap
func CapSpeed(vel *mgl64.Vec3, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	mag := vel.Len()
	if mag <= maxSpeed {
		return false
	}
	*vel = vel.Mul(maxSpeed / mag)
	return true
}
