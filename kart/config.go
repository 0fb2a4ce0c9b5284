package kart

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/parameter"
)

var (
	ErrMissingBody      = errors.New("kart: missing rigid body")
	ErrMissingProbe     = errors.New("kart: missing surface probe")
	ErrMissingTransform = errors.New("kart: missing rig transform")
	ErrInvalidConfig    = errors.New("kart: invalid config")
)

// Config holds motion, drift and boost tuning
type Config struct {
	Acceleration float64 `toml:"acceleration"`
	Steering     float64 `toml:"steering"`
	Gravity      float64 `toml:"gravity"`
	VisualOffset float64 `toml:"visual_offset"`

	SpeedSmoothingRate float64 `toml:"speed_smoothing_rate"`
	SteerResponseSpeed float64 `toml:"steer_response_speed"`

	AutoAccelerate bool    `toml:"auto_accelerate"`
	AutoIntensity  float64 `toml:"auto_intensity"`

	NormalRotateSmoothing  float64 `toml:"normal_rotate_smoothing"`
	DriftRotateSmoothing   float64 `toml:"drift_rotate_smoothing"`
	NormalHeadingSmoothing float64 `toml:"normal_heading_smoothing"`
	DriftHeadingSmoothing  float64 `toml:"drift_heading_smoothing"`

	DriftSteerFactor     float64 `toml:"drift_steer_factor"`
	AngleControl         bool    `toml:"angle_control"`
	MinimumDriftAngle    float64 `toml:"minimum_drift_angle"`
	DriftAngleThreshold  float64 `toml:"drift_angle_threshold"`
	DriftVisualSmoothing float64 `toml:"drift_visual_smoothing"`
	DriftRotationSpeed   float64 `toml:"drift_rotation_speed"`

	// PowerThresholds latch boost tiers 1..n, one turbo color per tier
	PowerThresholds []float64 `toml:"power_thresholds"`

	BoostSpeedMultiplier float64 `toml:"boost_speed_multiplier"`
	BoostSecondsPerTier  float64 `toml:"boost_seconds_per_tier"`
	PostProcessing       bool    `toml:"post_processing"`
	ChromaticIntensity   float64 `toml:"chromatic_intensity"`
	ChromaticSeconds     float64 `toml:"chromatic_seconds"`

	GroundMask            uint32  `toml:"ground_mask"`
	GroundNormalAlignRate float64 `toml:"ground_normal_align_rate"`
}

// DefaultConfig returns tuning from parameter defaults
func DefaultConfig() Config {
	return Config{
		Acceleration:           parameter.KartAcceleration,
		Steering:               parameter.KartSteering,
		Gravity:                parameter.KartGravity,
		VisualOffset:           parameter.KartVisualOffset,
		SpeedSmoothingRate:     parameter.KartSpeedSmoothingRate,
		SteerResponseSpeed:     parameter.KartSteerResponseSpeed,
		AutoIntensity:          parameter.KartAutoIntensity,
		NormalRotateSmoothing:  parameter.KartNormalRotateSmoothing,
		DriftRotateSmoothing:   parameter.KartDriftRotateSmoothing,
		NormalHeadingSmoothing: parameter.KartNormalHeadingSmoothing,
		DriftHeadingSmoothing:  parameter.KartDriftHeadingSmoothing,
		DriftSteerFactor:       parameter.DriftSteerFactor,
		AngleControl:           true,
		MinimumDriftAngle:      parameter.DriftMinimumAngle,
		DriftAngleThreshold:    parameter.DriftAngleThreshold,
		DriftVisualSmoothing:   parameter.DriftVisualSmoothing,
		DriftRotationSpeed:     parameter.DriftRotationSpeed,
		PowerThresholds:        parameter.DriftPowerThresholds[:],
		BoostSpeedMultiplier:   parameter.BoostSpeedMultiplier,
		BoostSecondsPerTier:    parameter.BoostSecondsPerTier,
		PostProcessing:         true,
		ChromaticIntensity:     parameter.BoostChromaticIntensity,
		ChromaticSeconds:       parameter.BoostChromaticSeconds,
		GroundMask:             parameter.LayerGround,
		GroundNormalAlignRate:  parameter.GroundNormalAlignRate,
	}
}

// Validate reports every out-of-range field
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Acceleration >= 0, "acceleration %v < 0", c.Acceleration)
	check(c.SpeedSmoothingRate > 0, "speed_smoothing_rate must be > 0")
	check(c.SteerResponseSpeed > 0, "steer_response_speed must be > 0")
	check(c.AutoIntensity >= 0 && c.AutoIntensity <= 1, "auto_intensity %v outside [0, 1]", c.AutoIntensity)
	check(c.NormalRotateSmoothing > 0 && c.DriftRotateSmoothing > 0, "rotate smoothing must be > 0")
	check(c.NormalHeadingSmoothing > 0 && c.DriftHeadingSmoothing > 0, "heading smoothing must be > 0")
	check(c.MinimumDriftAngle >= 0, "minimum_drift_angle %v < 0", c.MinimumDriftAngle)
	check(c.DriftAngleThreshold >= 0 && c.DriftAngleThreshold <= 1, "drift_angle_threshold %v outside [0, 1]", c.DriftAngleThreshold)
	check(c.BoostSpeedMultiplier >= 1, "boost_speed_multiplier %v < 1", c.BoostSpeedMultiplier)
	check(c.BoostSecondsPerTier >= 0, "boost_seconds_per_tier %v < 0", c.BoostSecondsPerTier)
	check(c.GroundNormalAlignRate > 0, "ground_normal_align_rate must be > 0")

	check(len(c.PowerThresholds) == len(core.TurboColors),
		"power_thresholds needs %d entries, got %d", len(core.TurboColors), len(c.PowerThresholds))
	for i := 1; i < len(c.PowerThresholds); i++ {
		check(c.PowerThresholds[i] > c.PowerThresholds[i-1], "power_thresholds must be ascending")
	}

	return errors.Join(errs...)
}
