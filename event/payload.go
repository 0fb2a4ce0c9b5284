package event

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/core"
)

// GameEvent is a single notification delivered through the Bus
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// DriftStartPayload describes a drift that just began
type DriftStartPayload struct {
	Direction int        `toml:"direction"` // -1 left, +1 right
	Position  mgl64.Vec3 `toml:"position"`
}

// DriftEndPayload summarizes a finished drift
type DriftEndPayload struct {
	Direction  int           `toml:"direction"`
	Power      float64       `toml:"power"`
	BoostTiers int           `toml:"boost_tiers"`
	Duration   time.Duration `toml:"duration"`
	Distance   float64       `toml:"distance"`
}

// DriftSuppressedPayload reports a start rejected for insufficient angle
type DriftSuppressedPayload struct {
	Angle    float64 `toml:"angle"`
	Required float64 `toml:"required"`
}

// BoostTierPayload reports a latched boost tier and its turbo color
type BoostTierPayload struct {
	Tier  int       `toml:"tier"`
	Power float64   `toml:"power"`
	Tint  core.Tint `toml:"tint"`
}

// BoostStartPayload describes the boost applied at drift end
// Chromatic pulse rises to ChromaticIntensity over ChromaticDuration and falls back over the same span
type BoostStartPayload struct {
	Tiers              int           `toml:"tiers"`
	Multiplier         float64       `toml:"multiplier"`
	Duration           time.Duration `toml:"duration"`
	ChromaticIntensity float64       `toml:"chromatic_intensity"`
	ChromaticDuration  time.Duration `toml:"chromatic_duration"`
}

// DriftUIPayload identifies the drift session shown by the widget
type DriftUIPayload struct {
	SessionID string  `toml:"session_id"`
	Score     float64 `toml:"score"` // Final session score on end, 0 on start
}

// CurrentScorePayload carries the running accumulator of the active drift
type CurrentScorePayload struct {
	SessionID string  `toml:"session_id"`
	Current   float64 `toml:"current"`
	Combo     int     `toml:"combo"`
}

// ScorePayload carries the committed session total
type ScorePayload struct {
	Total float64 `toml:"total"`
}

// LevelUpPayload carries the tier transition
type LevelUpPayload struct {
	From core.Tier `toml:"from"`
	To   core.Tier `toml:"to"`
}

// ParticleColorPayload carries the tier color for drift particles
type ParticleColorPayload struct {
	Tier  core.Tier `toml:"tier"`
	Color core.RGB  `toml:"color"`
}

// ScoreTickPayload carries the running score at tick time
type ScoreTickPayload struct {
	Current float64 `toml:"current"`
}
