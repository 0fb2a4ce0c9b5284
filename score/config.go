package score

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/kart-drift/parameter"
)

var ErrInvalidThresholds = errors.New("score: thresholds must be non-negative and ascending")

// Config holds scoring multipliers, combo band and tier thresholds
type Config struct {
	BasePerSecond     float64 `toml:"base_per_second"`
	SpeedMultiplier   float64 `toml:"speed_multiplier"`
	ControlMultiplier float64 `toml:"control_multiplier"`
	ComboMultiplier   float64 `toml:"combo_multiplier"`

	// ReferenceSpeed is the speed earning the full speed bonus
	ReferenceSpeed float64 `toml:"reference_speed"`

	// Combo increments above ComboRaise, resets below ComboBreak, holds in between
	ComboRaise float64 `toml:"combo_raise"`
	ComboBreak float64 `toml:"combo_break"`

	SilverThreshold  float64 `toml:"silver_threshold"`
	GoldenThreshold  float64 `toml:"golden_threshold"`
	DiamondThreshold float64 `toml:"diamond_threshold"`

	TickInterval time.Duration `toml:"tick_interval"`
}

// DefaultConfig returns scoring from parameter defaults
func DefaultConfig() Config {
	return Config{
		BasePerSecond:     parameter.ScoreBasePerSecond,
		SpeedMultiplier:   parameter.ScoreSpeedMultiplier,
		ControlMultiplier: parameter.ScoreControlMultiplier,
		ComboMultiplier:   parameter.ScoreComboMultiplier,
		ReferenceSpeed:    parameter.ScoreReferenceSpeed,
		ComboRaise:        parameter.ScoreComboRaise,
		ComboBreak:        parameter.ScoreComboBreak,
		SilverThreshold:   parameter.ScoreSilverThreshold,
		GoldenThreshold:   parameter.ScoreGoldenThreshold,
		DiamondThreshold:  parameter.ScoreDiamondThreshold,
		TickInterval:      parameter.ScoreTickInterval,
	}
}

// Validate reports every out-of-range field
func (c Config) Validate() error {
	var errs []error
	if c.BasePerSecond < 0 || c.SpeedMultiplier < 0 || c.ControlMultiplier < 0 || c.ComboMultiplier < 0 {
		errs = append(errs, fmt.Errorf("score: multipliers must be non-negative"))
	}
	if c.ReferenceSpeed <= 0 {
		errs = append(errs, fmt.Errorf("score: reference_speed must be > 0, got %v", c.ReferenceSpeed))
	}
	if c.ComboBreak > c.ComboRaise {
		errs = append(errs, fmt.Errorf("score: combo_break %v above combo_raise %v", c.ComboBreak, c.ComboRaise))
	}
	if err := validateThresholds(c.SilverThreshold, c.GoldenThreshold, c.DiamondThreshold); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateThresholds(silver, golden, diamond float64) error {
	if silver < 0 || golden < silver || diamond < golden {
		return fmt.Errorf("%w: silver=%v golden=%v diamond=%v", ErrInvalidThresholds, silver, golden, diamond)
	}
	return nil
}
