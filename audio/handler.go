package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/kart-drift/event"
)

// CueHandler turns drift and score notifications into sound cues
type CueHandler struct {
	cfg   Config
	sink  Sink
	muted bool
}

// NewCueHandler creates a handler that plays into sink
func NewCueHandler(cfg Config, sink Sink) *CueHandler {
	return &CueHandler{cfg: cfg, sink: sink}
}

// EventTypes implements event.Handler
func (h *CueHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelUp,
		event.EventScoreTick,
		event.EventBoostTierReached,
		event.EventBoostStart,
	}
}

// HandleEvent implements event.Handler
func (h *CueHandler) HandleEvent(ev event.GameEvent) {
	if !h.cfg.Enabled || h.muted || h.sink == nil {
		return
	}

	var s beep.Streamer
	switch p := ev.Payload.(type) {
	case *event.LevelUpPayload:
		s = CreateLevelUpSound(p.To, h.cfg)
	case *event.ScoreTickPayload:
		s = CreateTickSound(h.cfg)
	case *event.BoostTierPayload:
		s = CreateFlashSound(p.Tier, h.cfg)
	case *event.BoostStartPayload:
		s = CreateWhooshSound(p.Duration, h.cfg)
	}
	if s != nil {
		h.sink.Play(s)
	}
}

// ToggleMute flips muting and returns the new state
func (h *CueHandler) ToggleMute() bool {
	h.muted = !h.muted
	return h.muted
}
