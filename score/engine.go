package score

import (
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/status"
	"github.com/lixenwraith/kart-drift/vmath"
)

// Deps are the optional collaborators of an Engine
type Deps struct {
	Clock  engine.TimeProvider // Defaults to wall time
	Events event.Emitter
	Status *status.Registry
	Logger *slog.Logger
}

// Engine accumulates drift score per session and promotes tiers on the running total
// Notifications are delivered synchronously before each call returns
type Engine struct {
	cfg    Config
	clock  engine.TimeProvider
	events event.Emitter
	logger *slog.Logger

	isDrifting    bool
	sessionID     string
	driftStart    time.Time
	lastScoreTime time.Time
	lastTick      time.Time

	current float64
	total   float64
	combo   int
	tier    core.Tier

	statTotal   *status.AtomicFloat
	statCurrent *status.AtomicFloat
	statCombo   *atomic.Int64
	statTier    *atomic.Int64
	statSession *status.AtomicString
}

// New validates cfg and creates an Engine at Bronze with zero totals
func New(cfg Config, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		clock:  deps.Clock,
		events: deps.Events,
		logger: deps.Logger,
		tier:   core.TierBronze,
	}
	if e.clock == nil {
		e.clock = engine.NewMonotonicTimeProvider()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With("component", "score")

	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	e.statTotal = reg.Floats.Get("score.total")
	e.statCurrent = reg.Floats.Get("score.current")
	e.statCombo = reg.Ints.Get("score.combo")
	e.statTier = reg.Ints.Get("score.tier")
	e.statSession = reg.Strings.Get("score.session")

	return e, nil
}

// Announce emits the current total and tier color, for presentation attached after construction
func (e *Engine) Announce() {
	e.emit(event.EventScoreChanged, &event.ScorePayload{Total: e.total})
	e.emitParticleColor()
}

// StartDrift opens a scoring session; no-op while a session is active
func (e *Engine) StartDrift() {
	if e.isDrifting {
		return
	}
	now := e.clock.Now()

	e.isDrifting = true
	e.sessionID = uuid.NewString()
	e.driftStart = now
	e.lastScoreTime = now
	e.lastTick = now
	e.combo = 0
	e.current = 0

	e.logger.Debug("drift scoring started", "session", e.sessionID)
	e.emit(event.EventDriftUIStart, &event.DriftUIPayload{SessionID: e.sessionID})
	e.publish()
}

// UpdateDriftScore integrates score for the time since the previous call; no-op when not drifting
// speed is normalized by the reference speed, controlQuality is clamped to [0, 1]
func (e *Engine) UpdateDriftScore(speed, controlQuality float64) {
	if !e.isDrifting {
		return
	}
	now := e.clock.Now()
	elapsed := now.Sub(e.lastScoreTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	control := vmath.Clamp01(finite(controlQuality))
	e.current += e.FrameScore(elapsed, finite(speed), control)

	// Hysteresis band leaves combo unchanged
	if control > e.cfg.ComboRaise {
		e.combo++
	} else if control < e.cfg.ComboBreak {
		e.combo = 0
	}
	e.lastScoreTime = now

	e.emit(event.EventCurrentScoreChanged, &event.CurrentScorePayload{
		SessionID: e.sessionID,
		Current:   e.current,
		Combo:     e.combo,
	})

	if e.cfg.TickInterval > 0 && now.Sub(e.lastTick) >= e.cfg.TickInterval {
		e.lastTick = now
		e.emit(event.EventScoreTick, &event.ScoreTickPayload{Current: e.current})
	}
	e.publish()
}

// FrameScore computes the increment for elapsed seconds at the current combo
func (e *Engine) FrameScore(elapsed, speed, control float64) float64 {
	base := e.cfg.BasePerSecond * elapsed
	speedBonus := vmath.Clamp01(speed/e.cfg.ReferenceSpeed) * e.cfg.SpeedMultiplier
	controlBonus := vmath.Clamp01(control) * e.cfg.ControlMultiplier
	comboBonus := 1 + float64(e.combo)*e.cfg.ComboMultiplier
	return base * (1 + speedBonus + controlBonus) * comboBonus
}

// EndDrift folds the session score into the total and evaluates promotion; no-op when not drifting
func (e *Engine) EndDrift() {
	if !e.isDrifting {
		return
	}
	e.isDrifting = false

	session := e.current
	e.total += session
	e.evaluateTier()

	e.emit(event.EventScoreChanged, &event.ScorePayload{Total: e.total})
	e.emit(event.EventDriftUIEnd, &event.DriftUIPayload{SessionID: e.sessionID, Score: session})
	e.current = 0

	e.logger.Info("drift scored",
		"session", e.sessionID,
		"score", session,
		"total", e.total,
		"duration", e.clock.Now().Sub(e.driftStart))
	e.publish()
}

// evaluateTier walks the thresholds from highest to lowest once
// The first satisfied tier wins, applied only when above the current tier
func (e *Engine) evaluateTier() {
	for _, step := range e.tierTable() {
		if e.total < step.threshold {
			continue
		}
		if step.tier > e.tier {
			e.levelUp(step.tier)
		}
		return
	}
}

type tierStep struct {
	tier      core.Tier
	threshold float64
}

func (e *Engine) tierTable() [3]tierStep {
	return [3]tierStep{
		{core.TierDiamond, e.cfg.DiamondThreshold},
		{core.TierGolden, e.cfg.GoldenThreshold},
		{core.TierSilver, e.cfg.SilverThreshold},
	}
}

func (e *Engine) levelUp(to core.Tier) {
	from := e.tier
	e.tier = to

	e.logger.Info("level up", "from", from.String(), "to", to.String())
	e.emit(event.EventLevelUp, &event.LevelUpPayload{From: from, To: to})
	e.emitParticleColor()
}

func (e *Engine) emitParticleColor() {
	e.emit(event.EventParticleColorChange, &event.ParticleColorPayload{
		Tier:  e.tier,
		Color: e.tier.Color(),
	})
}

// ResetScore clears the running and total score, combo and tier
// An active drift stays active with an empty accumulator
func (e *Engine) ResetScore() {
	e.current = 0
	e.total = 0
	e.combo = 0
	e.tier = core.TierBronze

	e.logger.Info("score reset")
	e.emit(event.EventScoreChanged, &event.ScorePayload{Total: 0})
	e.emitParticleColor()
	e.emit(event.EventScoreReset, nil)
	e.publish()
}

// SetScoreMultipliers replaces the scoring multipliers; negative values become 0
func (e *Engine) SetScoreMultipliers(base, speed, control, combo float64) {
	e.cfg.BasePerSecond = math.Max(base, 0)
	e.cfg.SpeedMultiplier = math.Max(speed, 0)
	e.cfg.ControlMultiplier = math.Max(control, 0)
	e.cfg.ComboMultiplier = math.Max(combo, 0)
}

// SetLevelThresholds replaces tier thresholds, taking effect at the next EndDrift
// The current tier is kept even if the new thresholds place the total lower
func (e *Engine) SetLevelThresholds(silver, golden, diamond float64) error {
	if err := validateThresholds(silver, golden, diamond); err != nil {
		return err
	}
	e.cfg.SilverThreshold = silver
	e.cfg.GoldenThreshold = golden
	e.cfg.DiamondThreshold = diamond
	return nil
}

func (e *Engine) emit(et event.EventType, payload any) {
	if e.events != nil {
		e.events.Emit(et, payload)
	}
}

func (e *Engine) publish() {
	e.statTotal.Set(e.total)
	e.statCurrent.Set(e.current)
	e.statCombo.Store(int64(e.combo))
	e.statTier.Store(int64(e.tier))
	e.statSession.Store(e.sessionID)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// === Queries ===

func (e *Engine) IsDrifting() bool { return e.isDrifting }

// GetCurrentScore returns the running session score, 0 between drifts
func (e *Engine) GetCurrentScore() float64 { return e.current }

func (e *Engine) GetTotalScore() float64 { return e.total }

func (e *Engine) GetComboCount() int { return e.combo }

func (e *Engine) GetCurrentLevel() core.Tier { return e.tier }

// SessionID returns the id of the current or last drift session
func (e *Engine) SessionID() string { return e.sessionID }

// Config returns the active configuration including runtime overrides
func (e *Engine) Config() Config { return e.cfg }
