package parameter

import "time"

// Drift Score
const (
	ScoreBasePerSecond     = 10.0
	ScoreSpeedMultiplier   = 1.5
	ScoreControlMultiplier = 2.0
	ScoreComboMultiplier   = 1.2

	// ScoreReferenceSpeed normalizes speed into [0, 1] for the speed bonus
	ScoreReferenceSpeed = 30.0

	// ScoreComboRaise increments combo when control quality is above it
	ScoreComboRaise = 0.7

	// ScoreComboBreak resets combo when control quality is below it
	ScoreComboBreak = 0.3

	// ScoreTickInterval is the minimum game time between score tick cues
	ScoreTickInterval = 500 * time.Millisecond
)

// Drift Level Thresholds
const (
	ScoreSilverThreshold  = 1000.0
	ScoreGoldenThreshold  = 5000.0
	ScoreDiamondThreshold = 15000.0
)

// HUD animation
const (
	// ScoreDisplaySeconds is the ease duration of the displayed total score
	ScoreDisplaySeconds = 0.1
)

// HUD effects
const (
	// HUDFlashSeconds is the fade of the tier flash shown when a boost tier latches
	HUDFlashSeconds = 0.25

	// HUDBarWidth is the cell width of the speed and power bars
	HUDBarWidth = 30

	// HUDSpeedScale is the speed shown as a full speed bar
	HUDSpeedScale = 90.0

	// HUDTrackScale is track view cells per world unit horizontally; rows use half
	HUDTrackScale = 1.0
)
