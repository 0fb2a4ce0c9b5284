package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/vmath"
)

const stepDT = 1.0 / 64

func TestSphereIntegratesAcceleration(t *testing.T) {
	cfg := DefaultSphereConfig()
	cfg.Drag = 0
	s := NewSphere(cfg, mgl64.Vec3{}, nil)

	s.AddAcceleration(mgl64.Vec3{4, 0, 0})
	s.AddAcceleration(mgl64.Vec3{4, 0, 0})
	s.Step(0.5)

	if !s.Velocity().ApproxEqualThreshold(mgl64.Vec3{4, 0, 0}, 1e-9) {
		t.Errorf("expected velocity (4,0,0), got %v", s.Velocity())
	}
	if !s.Position().ApproxEqualThreshold(mgl64.Vec3{2, 0, 0}, 1e-9) {
		t.Errorf("expected position (2,0,0), got %v", s.Position())
	}

	// Accumulator is consumed
	s.Step(0.5)
	if !s.Velocity().ApproxEqualThreshold(mgl64.Vec3{4, 0, 0}, 1e-9) {
		t.Errorf("acceleration applied twice: %v", s.Velocity())
	}
}

func TestSphereDragAndCap(t *testing.T) {
	cfg := DefaultSphereConfig()
	cfg.MaxSpeed = 10
	s := NewSphere(cfg, mgl64.Vec3{}, nil)

	s.vel = mgl64.Vec3{0, 0, 50}
	s.Step(stepDT)
	if got := s.Velocity().Len(); math.Abs(got-10) > 1e-9 {
		t.Errorf("expected capped speed 10, got %f", got)
	}

	prev := s.Velocity().Len()
	for i := 0; i < 10; i++ {
		s.Step(stepDT)
	}
	if s.Velocity().Len() >= prev {
		t.Errorf("drag should slow the body: %f -> %f", prev, s.Velocity().Len())
	}
}

func TestSphereRestsOnGround(t *testing.T) {
	s := NewSphere(DefaultSphereConfig(), mgl64.Vec3{0, 0.5, 0}, DefaultTrack())

	for i := 0; i < 128; i++ {
		s.AddAcceleration(vmath.Down.Mul(10))
		s.Step(stepDT)
	}

	if math.Abs(s.Position().Y()-0.5) > 1e-6 {
		t.Errorf("expected to rest at radius height, got %f", s.Position().Y())
	}
	if math.Abs(s.Velocity().Y()) > 1e-9 {
		t.Errorf("expected no vertical velocity at rest, got %f", s.Velocity().Y())
	}
}

func TestSphereFallsWithoutGround(t *testing.T) {
	s := NewSphere(DefaultSphereConfig(), mgl64.Vec3{0, 10, 0}, DefaultTrack())
	s.AddAcceleration(vmath.Down.Mul(10))
	s.Step(stepDT)
	if s.Position().Y() >= 10 {
		t.Errorf("expected to fall, got y=%f", s.Position().Y())
	}
}

func TestSphereKeepsHorizontalSpeedOnContact(t *testing.T) {
	cfg := DefaultSphereConfig()
	cfg.Drag = 0
	s := NewSphere(cfg, mgl64.Vec3{0, 0.5, 0}, DefaultTrack())
	s.vel = mgl64.Vec3{3, -2, 0}
	s.Step(stepDT)

	if math.Abs(s.Velocity().X()-3) > 1e-9 {
		t.Errorf("horizontal speed changed: %v", s.Velocity())
	}
	if s.Velocity().Y() < 0 {
		t.Errorf("inbound normal velocity should be removed: %v", s.Velocity())
	}
}

func TestSphereSatisfiesRigidBody(t *testing.T) {
	var body kart.RigidBody = NewSphere(DefaultSphereConfig(), mgl64.Vec3{}, nil)
	var probe kart.SurfaceProbe = DefaultTrack()
	_, _ = body, probe
}

func TestSphereConfigValidate(t *testing.T) {
	if err := DefaultSphereConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	cfg := DefaultSphereConfig()
	cfg.Radius = 0
	cfg.ContactMask = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSphere) {
		t.Errorf("expected ErrInvalidSphere, got %v", err)
	}
}
