package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/vmath"
)

// HUD is the presentation state driven by drift and score notifications
// Not safe for concurrent use; updated and drawn on the frame loop
type HUD struct {
	driftUIVisible bool
	sessionID      string
	current        float64
	combo          int
	lastSession    float64

	total        float64
	totalDisplay vmath.Tween

	tier          core.Tier
	particleColor core.RGB

	flash      vmath.Tween
	flashColor core.RGB

	// Chromatic pulse rises to its peak then falls back over the same span
	pulseRise  vmath.Tween
	pulseFall  vmath.Tween
	pulseColor core.RGB
}

// NewHUD creates a HUD at Bronze with a zero total
func NewHUD() *HUD {
	return &HUD{
		tier:          core.TierBronze,
		particleColor: core.TierBronze.Color(),
	}
}

// EventTypes implements event.Handler
func (h *HUD) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDriftUIStart,
		event.EventDriftUIEnd,
		event.EventCurrentScoreChanged,
		event.EventScoreChanged,
		event.EventLevelUp,
		event.EventParticleColorChange,
		event.EventBoostTierReached,
		event.EventBoostStart,
	}
}

// HandleEvent implements event.Handler
func (h *HUD) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.DriftUIPayload:
		if ev.Type == event.EventDriftUIStart {
			h.driftUIVisible = true
			h.sessionID = p.SessionID
			h.current = 0
			h.combo = 0
		} else {
			h.driftUIVisible = false
			h.lastSession = p.Score
		}
	case *event.CurrentScorePayload:
		h.current = p.Current
		h.combo = p.Combo
	case *event.ScorePayload:
		h.setTotal(p.Total)
	case *event.LevelUpPayload:
		h.tier = p.To
	case *event.ParticleColorPayload:
		h.tier = p.Tier
		h.particleColor = p.Color
	case *event.BoostTierPayload:
		h.flashColor = p.Tint.Color
		h.flash = vmath.NewTween(1, 0, parameter.HUDFlashSeconds, vmath.EaseOutQuad)
	case *event.BoostStartPayload:
		h.startPulse(p)
	}
}

// setTotal eases the displayed total from its current value toward total
func (h *HUD) setTotal(total float64) {
	from := h.DisplayedTotal()
	h.total = total
	h.totalDisplay = vmath.NewTween(from, total, parameter.ScoreDisplaySeconds, vmath.EaseOutQuad)
}

func (h *HUD) startPulse(p *event.BoostStartPayload) {
	if p.ChromaticIntensity <= 0 || p.ChromaticDuration <= 0 {
		return
	}
	secs := p.ChromaticDuration.Seconds()
	h.pulseColor = core.TurboTint(p.Tiers).Color
	h.pulseRise = vmath.NewTween(0, p.ChromaticIntensity, secs, vmath.EaseOutQuad)
	h.pulseFall = vmath.Tween{}
}

// Update advances display animations by dt seconds
func (h *HUD) Update(dt float64) {
	h.totalDisplay.Advance(dt)
	h.flash.Advance(dt)

	if h.pulseRise.Active() {
		h.pulseRise.Advance(dt)
		if !h.pulseRise.Active() {
			h.pulseFall = vmath.NewTween(h.pulseRise.To, 0, h.pulseRise.Duration, vmath.EaseInQuad)
		}
		return
	}
	h.pulseFall.Advance(dt)
}

// DisplayedTotal returns the eased total shown on screen
func (h *HUD) DisplayedTotal() float64 {
	if !h.totalDisplay.Active() {
		return h.total
	}
	return h.totalDisplay.Value()
}

// ScoreLabel returns the drift score during a drift, the total otherwise
func (h *HUD) ScoreLabel() string {
	if h.driftUIVisible {
		return fmt.Sprintf("Drift Score: %d", int(math.Round(h.current)))
	}
	return fmt.Sprintf("Total Score: %d", int(math.Round(h.DisplayedTotal())))
}

// LevelLabel returns the display name of the current drift level
func (h *HUD) LevelLabel() string {
	return h.tier.DisplayName()
}

func (h *HUD) DriftUIVisible() bool { return h.driftUIVisible }

func (h *HUD) Tier() core.Tier { return h.tier }

func (h *HUD) Combo() int { return h.combo }

func (h *HUD) SessionID() string { return h.sessionID }

func (h *HUD) LastSessionScore() float64 { return h.lastSession }

func (h *HUD) ParticleColor() core.RGB { return h.particleColor }

// Flash returns the boost tier flash color and its remaining strength in [0, 1]
func (h *HUD) Flash() (core.RGB, float64) {
	if !h.flash.Active() {
		return h.flashColor, 0
	}
	return h.flashColor, h.flash.Value()
}

// ChromaticPulse returns the boost pulse color and current intensity
func (h *HUD) ChromaticPulse() (core.RGB, float64) {
	switch {
	case h.pulseRise.Active():
		return h.pulseColor, h.pulseRise.Value()
	case h.pulseFall.Active():
		return h.pulseColor, h.pulseFall.Value()
	}
	return h.pulseColor, 0
}
