package kart

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody is the external physics proxy driven by force requests
type RigidBody interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	// AddAcceleration applies a mass-independent force for the next integration step
	AddAcceleration(a mgl64.Vec3)
}

// Hit is a surface raycast result
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// SurfaceProbe answers raycasts against layers selected by mask
type SurfaceProbe interface {
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (Hit, bool)
}

// Scorer receives drift lifecycle calls; implemented by score.Engine
type Scorer interface {
	StartDrift()
	UpdateDriftScore(speed, controlQuality float64)
	EndDrift()
}

// isNil also catches a nil pointer wrapped in a non-nil interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
