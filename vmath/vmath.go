package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used by threshold comparisons on smoothed values
const Epsilon = 1e-9

// --- Scalar ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates a toward b by t, t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// LerpUnclamped interpolates without clamping t, used by easing curves that overshoot
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothStep interpolates from toward to using a Hermite curve on clamped t
// t=0 returns from, t>=1 returns to
func SmoothStep(from, to, t float64) float64 {
	t = Clamp01(t)
	t = t * t * (3 - 2*t)
	return to*t + from*(1-t)
}

// Remap linearly maps v from [inMin, inMax] into [outMin, outMax]
// Reversed output ranges mirror the mapping; v is not clamped
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Sign returns -1 for negative values, otherwise 1
func Sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// --- Angles (degrees) ---

// Repeat wraps t into [0, length)
func Repeat(t, length float64) float64 {
	return Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle returns the shortest signed difference between two angles in degrees
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// NormalizeAngle wraps degrees into (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = Repeat(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// LerpAngle interpolates degrees along the shortest arc, t clamped to [0, 1]
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// --- Vectors (Y up, yaw in degrees around +Y, yaw 0 faces +Z) ---

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// YawForward returns the unit forward vector for a yaw angle
func YawForward(yawDeg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yawDeg)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

// YawRight returns the unit right vector for a yaw angle
func YawRight(yawDeg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yawDeg)
	return mgl64.Vec3{math.Cos(r), 0, -math.Sin(r)}
}

// YawRotation returns the quaternion rotating by yaw degrees around +Y
func YawRotation(yawDeg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up)
}

// LerpVec3 interpolates component-wise with clamped t
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

// AngleBetween returns the unsigned angle in degrees between two vectors
// Zero-length input yields 0
func AngleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	cos := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// AlignUp returns the rotation taking +Y onto up, followed by a yaw around the new up
func AlignUp(up mgl64.Vec3, yawDeg float64) mgl64.Quat {
	if up.Len() < Epsilon {
		up = Up
	}
	tilt := mgl64.QuatBetweenVectors(Up, up.Normalize())
	return tilt.Mul(YawRotation(yawDeg))
}
