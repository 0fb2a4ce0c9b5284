package render

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/event"
)

func hudWithBus() (*HUD, *event.Bus) {
	h := NewHUD()
	bus := event.NewBus()
	bus.Register(h)
	return h, bus
}

func TestScoreLabelSwitchesWithDriftUI(t *testing.T) {
	h, bus := hudWithBus()
	if got := h.ScoreLabel(); got != "Total Score: 0" {
		t.Fatalf("initial label %q", got)
	}

	bus.Emit(event.EventDriftUIStart, &event.DriftUIPayload{SessionID: "s1"})
	bus.Emit(event.EventCurrentScoreChanged, &event.CurrentScorePayload{SessionID: "s1", Current: 44.6, Combo: 2})
	if got := h.ScoreLabel(); got != "Drift Score: 45" {
		t.Errorf("drift label %q", got)
	}
	if !h.DriftUIVisible() || h.Combo() != 2 || h.SessionID() != "s1" {
		t.Error("drift UI state not applied")
	}

	bus.Emit(event.EventScoreChanged, &event.ScorePayload{Total: 45})
	bus.Emit(event.EventDriftUIEnd, &event.DriftUIPayload{SessionID: "s1", Score: 45})
	if h.DriftUIVisible() {
		t.Error("drift UI should hide at drift end")
	}
	if h.LastSessionScore() != 45 {
		t.Errorf("expected last session 45, got %f", h.LastSessionScore())
	}
}

func TestDisplayedTotalEases(t *testing.T) {
	h, bus := hudWithBus()
	bus.Emit(event.EventScoreChanged, &event.ScorePayload{Total: 1000})

	if got := h.DisplayedTotal(); got != 0 {
		t.Fatalf("display should start from the previous total, got %f", got)
	}

	h.Update(0.05)
	mid := h.DisplayedTotal()
	if mid <= 500 || mid >= 1000 {
		t.Errorf("ease-out should be past halfway at half time, got %f", mid)
	}

	h.Update(0.05)
	if got := h.DisplayedTotal(); got != 1000 {
		t.Errorf("expected 1000 after 0.1s, got %f", got)
	}
	if got := h.ScoreLabel(); got != "Total Score: 1000" {
		t.Errorf("label %q", got)
	}
}

func TestLevelAndParticleColor(t *testing.T) {
	h, bus := hudWithBus()
	if h.LevelLabel() != "Bronze Drift" {
		t.Fatalf("initial level %q", h.LevelLabel())
	}

	bus.Emit(event.EventLevelUp, &event.LevelUpPayload{From: core.TierBronze, To: core.TierGolden})
	bus.Emit(event.EventParticleColorChange, &event.ParticleColorPayload{Tier: core.TierGolden, Color: core.TierGolden.Color()})

	if h.LevelLabel() != "Golden Drift" {
		t.Errorf("level %q", h.LevelLabel())
	}
	if h.ParticleColor() != core.TierGolden.Color() {
		t.Errorf("particle color %+v", h.ParticleColor())
	}
}

func TestBoostFlashFades(t *testing.T) {
	h, bus := hudWithBus()
	bus.Emit(event.EventBoostTierReached, &event.BoostTierPayload{Tier: 1, Tint: core.TurboTint(1)})

	color, strength := h.Flash()
	if strength != 1 || color != core.TurboColors[0] {
		t.Fatalf("expected full flash of tier 1 color, got %+v %f", color, strength)
	}
	h.Update(1)
	if _, strength := h.Flash(); strength != 0 {
		t.Errorf("flash should fade out, got %f", strength)
	}
}

func TestChromaticPulseRiseAndFall(t *testing.T) {
	h, bus := hudWithBus()
	bus.Emit(event.EventBoostStart, &event.BoostStartPayload{
		Tiers:              3,
		ChromaticIntensity: 0.5,
		ChromaticDuration:  500 * time.Millisecond,
	})

	if _, v := h.ChromaticPulse(); v != 0 {
		t.Fatalf("pulse should start at 0, got %f", v)
	}

	h.Update(0.5)
	color, peak := h.ChromaticPulse()
	if math.Abs(peak-0.5) > 1e-9 {
		t.Errorf("expected peak 0.5 after rise, got %f", peak)
	}
	if color != core.TurboColors[2] {
		t.Errorf("expected tier 3 color, got %+v", color)
	}

	h.Update(0.25)
	if _, v := h.ChromaticPulse(); v <= 0 || v >= 0.5 {
		t.Errorf("expected falling pulse, got %f", v)
	}

	h.Update(0.25)
	if _, v := h.ChromaticPulse(); v != 0 {
		t.Errorf("pulse should end at 0, got %f", v)
	}
}

func TestChromaticPulseDisabled(t *testing.T) {
	h, bus := hudWithBus()
	bus.Emit(event.EventBoostStart, &event.BoostStartPayload{Tiers: 1})
	h.Update(0.1)
	if _, v := h.ChromaticPulse(); v != 0 {
		t.Errorf("no pulse without intensity, got %f", v)
	}
}
