package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

// Patch is a bounded plane: the set of plane points whose XZ projection lies in [Min, Max]
type Patch struct {
	Name   string
	Origin mgl64.Vec3 // Any point on the plane
	Normal mgl64.Vec3 // Normalized on Add
	Min    mgl64.Vec2 // XZ bounds
	Max    mgl64.Vec2
	Layer  uint32
}

// Contains reports whether the XZ projection of p lies inside the patch bounds
func (p *Patch) Contains(point mgl64.Vec3) bool {
	return point.X() >= p.Min.X() && point.X() <= p.Max.X() &&
		point.Z() >= p.Min.Y() && point.Z() <= p.Max.Y()
}

// HeightAt returns the plane height at x, z; vertical planes report ok=false
func (p *Patch) HeightAt(x, z float64) (float64, bool) {
	n := p.Normal
	if math.Abs(n.Y()) < vmath.Epsilon {
		return 0, false
	}
	// n . (q - origin) = 0 solved for q.y
	y := p.Origin.Y() - (n.X()*(x-p.Origin.X())+n.Z()*(z-p.Origin.Z()))/n.Y()
	return y, true
}

// raycast intersects the ray with the patch plane, ignoring back faces
func (p *Patch) raycast(origin, dir mgl64.Vec3, maxDist float64) (kart.Hit, bool) {
	denom := dir.Dot(p.Normal)
	if denom > -vmath.Epsilon {
		return kart.Hit{}, false
	}
	t := p.Origin.Sub(origin).Dot(p.Normal) / denom
	if t < 0 || t > maxDist {
		return kart.Hit{}, false
	}
	point := origin.Add(dir.Mul(t))
	if !p.Contains(point) {
		return kart.Hit{}, false
	}
	return kart.Hit{Point: point, Normal: p.Normal, Distance: t}, true
}

// Surfaces is a set of layered plane patches answering raycasts
// Read-only after construction; safe for concurrent raycasts
type Surfaces struct {
	patches []Patch
}

// NewSurfaces creates an empty surface set
func NewSurfaces() *Surfaces {
	return &Surfaces{}
}

// Add appends a patch; a zero normal defaults to up
func (s *Surfaces) Add(p Patch) {
	if p.Normal.Len() < vmath.Epsilon {
		p.Normal = vmath.Up
	}
	p.Normal = p.Normal.Normalize()
	if p.Layer == 0 {
		p.Layer = parameter.LayerGround
	}
	s.patches = append(s.patches, p)
}

// Raycast returns the nearest hit within maxDist among patches whose layer intersects mask
func (s *Surfaces) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (kart.Hit, bool) {
	if dir.Len() < vmath.Epsilon || maxDist <= 0 {
		return kart.Hit{}, false
	}
	dir = dir.Normalize()

	var best kart.Hit
	found := false
	for i := range s.patches {
		p := &s.patches[i]
		if p.Layer&mask == 0 {
			continue
		}
		hit, ok := p.raycast(origin, dir, maxDist)
		if ok && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	return best, found
}

// HeightAt returns the highest ground height at x, z among patches matching mask
func (s *Surfaces) HeightAt(x, z float64, mask uint32) (float64, bool) {
	best := math.Inf(-1)
	found := false
	probe := mgl64.Vec3{x, 0, z}
	for i := range s.patches {
		p := &s.patches[i]
		if p.Layer&mask == 0 || !p.Contains(probe) {
			continue
		}
		if h, ok := p.HeightAt(x, z); ok && h > best {
			best = h
			found = true
		}
	}
	return best, found
}

// Bounds returns the XZ extent of every patch, zero when empty
func (s *Surfaces) Bounds() (lo, hi mgl64.Vec2) {
	for i, p := range s.patches {
		if i == 0 {
			lo, hi = p.Min, p.Max
			continue
		}
		lo = mgl64.Vec2{math.Min(lo.X(), p.Min.X()), math.Min(lo.Y(), p.Min.Y())}
		hi = mgl64.Vec2{math.Max(hi.X(), p.Max.X()), math.Max(hi.Y(), p.Max.Y())}
	}
	return lo, hi
}

// DefaultTrack returns the demo arena: a flat floor, a banked ramp up to a plateau
// and a decor canopy on a non-ground layer
func DefaultTrack() *Surfaces {
	s := NewSurfaces()
	s.Add(Patch{
		Name:   "floor",
		Origin: mgl64.Vec3{0, 0, 0},
		Normal: vmath.Up,
		Min:    mgl64.Vec2{-60, -60},
		Max:    mgl64.Vec2{60, 60},
	})
	// Rises 3 units over 12 along +Z
	s.Add(Patch{
		Name:   "ramp",
		Origin: mgl64.Vec3{0, 0, 20},
		Normal: mgl64.Vec3{0, 12, -3},
		Min:    mgl64.Vec2{-8, 20},
		Max:    mgl64.Vec2{8, 32},
	})
	s.Add(Patch{
		Name:   "plateau",
		Origin: mgl64.Vec3{0, 3, 32},
		Normal: vmath.Up,
		Min:    mgl64.Vec2{-8, 32},
		Max:    mgl64.Vec2{8, 44},
	})
	s.Add(Patch{
		Name:   "canopy",
		Origin: mgl64.Vec3{0, 6, -30},
		Normal: vmath.Up,
		Min:    mgl64.Vec2{-10, -40},
		Max:    mgl64.Vec2{10, -20},
		Layer:  parameter.LayerDecor,
	})
	return s
}
