package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

func TestRaycastFlatFloor(t *testing.T) {
	s := DefaultTrack()
	hit, ok := s.Raycast(mgl64.Vec3{5, 1, 5}, vmath.Down, 2, parameter.LayerGround)
	if !ok {
		t.Fatal("expected floor hit")
	}
	if math.Abs(hit.Distance-1) > 1e-9 {
		t.Errorf("expected distance 1, got %f", hit.Distance)
	}
	if !hit.Normal.ApproxEqualThreshold(vmath.Up, 1e-9) {
		t.Errorf("expected up normal, got %v", hit.Normal)
	}
}

func TestRaycastRange(t *testing.T) {
	s := DefaultTrack()
	tests := []struct {
		name    string
		origin  mgl64.Vec3
		maxDist float64
		want    bool
	}{
		{"within range", mgl64.Vec3{0, 1.5, 0}, 2, true},
		{"beyond range", mgl64.Vec3{0, 2.5, 0}, 2, false},
		{"below floor", mgl64.Vec3{0, -1, 0}, 5, false},
		{"outside bounds", mgl64.Vec3{100, 1, 0}, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := s.Raycast(tc.origin, vmath.Down, tc.maxDist, parameter.LayerGround)
			if ok != tc.want {
				t.Errorf("hit = %v, want %v", ok, tc.want)
			}
		})
	}
}

func TestRaycastMaskFiltersLayers(t *testing.T) {
	s := DefaultTrack()
	origin := mgl64.Vec3{0, 10, -30}

	ground, ok := s.Raycast(origin, vmath.Down, 20, parameter.LayerGround)
	if !ok || math.Abs(ground.Point.Y()) > 1e-9 {
		t.Fatalf("ground mask should pass through the canopy, got %+v ok=%v", ground, ok)
	}

	all, ok := s.Raycast(origin, vmath.Down, 20, parameter.LayerGround|parameter.LayerDecor)
	if !ok || math.Abs(all.Point.Y()-6) > 1e-9 {
		t.Fatalf("combined mask should stop at the canopy, got %+v ok=%v", all, ok)
	}
}

func TestRaycastRampNearestWins(t *testing.T) {
	s := DefaultTrack()
	hit, ok := s.Raycast(mgl64.Vec3{0, 5, 26}, vmath.Down, 10, parameter.LayerGround)
	if !ok {
		t.Fatal("expected ramp hit")
	}
	// Ramp rises 0.25 per unit of Z from z=20
	if math.Abs(hit.Point.Y()-1.5) > 1e-9 {
		t.Errorf("expected ramp height 1.5, got %f", hit.Point.Y())
	}
	if hit.Normal.Y() >= 1 || hit.Normal.Z() >= 0 {
		t.Errorf("expected tilted normal facing -Z, got %v", hit.Normal)
	}
	if math.Abs(hit.Normal.Len()-1) > 1e-9 {
		t.Errorf("normal not normalized: %v", hit.Normal)
	}
}

func TestHeightAt(t *testing.T) {
	s := DefaultTrack()
	if h, ok := s.HeightAt(0, 38, parameter.LayerGround); !ok || math.Abs(h-3) > 1e-9 {
		t.Errorf("plateau height: %f ok=%v", h, ok)
	}
	if _, ok := s.HeightAt(500, 500, parameter.LayerGround); ok {
		t.Error("expected no height outside the track")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := DefaultTrack().Bounds()
	if lo != (mgl64.Vec2{-60, -60}) || hi != (mgl64.Vec2{60, 60}) {
		t.Errorf("unexpected bounds %v %v", lo, hi)
	}
	lo, hi = NewSurfaces().Bounds()
	if lo != (mgl64.Vec2{}) || hi != (mgl64.Vec2{}) {
		t.Error("empty surfaces should have zero bounds")
	}
}
