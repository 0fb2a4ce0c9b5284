package parameter

// Kart Motion
const (
	// KartAcceleration is the target forward acceleration while throttling
	KartAcceleration = 30.0

	// KartSteering is the rotation delta (degrees) at full steer
	KartSteering = 80.0

	// KartGravity is the constant downward acceleration applied each physics step
	KartGravity = 10.0

	// KartVisualOffset is the vertical offset between rigid body center and kart root
	KartVisualOffset = 0.4

	// KartSpeedSmoothingRate scales dt for the SmoothStep throttle filter
	KartSpeedSmoothingRate = 12.0

	// KartSteerResponseSpeed is the low-pass rate of raw steer input
	KartSteerResponseSpeed = 2.0

	// KartAutoIntensity is the throttle fraction used by auto acceleration
	KartAutoIntensity = 1.0
)

// Rotation Smoothing
const (
	// KartNormalRotateSmoothing converges currentRotate while driving
	KartNormalRotateSmoothing = 3.0

	// KartDriftRotateSmoothing converges currentRotate while drifting
	KartDriftRotateSmoothing = 2.0

	// KartNormalHeadingSmoothing converges heading while driving
	KartNormalHeadingSmoothing = 5.0

	// KartDriftHeadingSmoothing converges heading while drifting, slower for the slide feel
	KartDriftHeadingSmoothing = 2.0
)

// Drift
const (
	// DriftSteerFactor softens steering while drifting
	DriftSteerFactor = 0.5

	// DriftMinimumAngle is the reference angle (degrees) for a full steer drift start
	DriftMinimumAngle = 15.0

	// DriftAngleThreshold is the fraction of DriftMinimumAngle a start request must reach
	DriftAngleThreshold = 0.8

	// DriftVisualSmoothing is the per-frame lerp factor of the model yaw while driving
	DriftVisualSmoothing = 0.2

	// DriftRotationSpeed is the pivot yaw convergence rate while drifting
	DriftRotationSpeed = 1.0

	// DriftPivotMaxYaw is the model pivot yaw (degrees) per unit of visual control
	DriftPivotMaxYaw = 15.0

	// DriftPivotResetSeconds is the duration of the pivot return after a drift
	DriftPivotResetSeconds = 0.5
)

// DriftPowerThresholds are the accumulated power levels that latch boost tiers
var DriftPowerThresholds = [3]float64{50, 100, 150}

// Boost
const (
	// BoostSpeedMultiplier is the speed multiple at boost start
	BoostSpeedMultiplier = 3.0

	// BoostSecondsPerTier is the decay duration contributed by each reached tier
	BoostSecondsPerTier = 0.3

	// BoostChromaticIntensity is the peak chromatic pulse reported to presentation
	BoostChromaticIntensity = 0.5

	// BoostChromaticSeconds is the duration of each half of the chromatic pulse
	BoostChromaticSeconds = 0.5
)

// Ground Alignment
const (
	// GroundRayLift raises ray origins above the kart root
	GroundRayLift = 0.1

	// GroundRayNear is the length of the short ground probe
	GroundRayNear = 1.1

	// GroundRayFar is the length of the long ground probe
	GroundRayFar = 2.0

	// GroundNormalAlignRate is the convergence rate of the ground normal
	GroundNormalAlignRate = 8.0
)

// Presentation Angles
const (
	// ModelBaseYaw is the rest yaw of the kart model relative to the root
	ModelBaseYaw = 90.0

	// WheelSteerYaw is the front wheel yaw at full steer
	WheelSteerYaw = 15.0

	// SteeringWheelRoll is the steering wheel roll at full steer
	SteeringWheelRoll = 45.0

	// SteeringWheelPitch and SteeringWheelYaw are the fixed steering wheel angles
	SteeringWheelPitch = -25.0
	SteeringWheelYaw   = 90.0
)
