package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the implicit per-frame trigger used by state machines
	EventTick EventType = iota

	// === Kart Input Edge Event ===

	// EventJumpPressed marks the false->true edge of the held jump command
	// Trigger: kart.Controller | Consumer: drift FSM | Payload: nil
	EventJumpPressed

	// EventJumpReleased marks the true->false edge of the held jump command
	// Trigger: kart.Controller | Consumer: drift FSM | Payload: nil
	EventJumpReleased

	// === Drift Event ===

	// EventDriftStart signals a drift began
	// Trigger: drift FSM enter Drifting | Consumer: HUD, logging | Payload: *DriftStartPayload
	EventDriftStart

	// EventDriftEnd signals a drift ended
	// Trigger: drift FSM exit Drifting | Consumer: HUD | Payload: *DriftEndPayload
	EventDriftEnd

	// EventDriftSuppressed signals a drift start rejected by the angle gate
	// Trigger: DriftAngleValid guard | Consumer: debug overlay | Payload: *DriftSuppressedPayload
	EventDriftSuppressed

	// EventBoostTierReached signals drift power crossed a boost threshold
	// Trigger: kart.Controller | Consumer: AudioHandler, HUD | Payload: *BoostTierPayload
	EventBoostTierReached

	// EventBoostStart signals a boost applied at drift end
	// Trigger: kart.Controller | Consumer: AudioHandler, HUD | Payload: *BoostStartPayload
	EventBoostStart

	// === Score Event ===

	// EventDriftUIStart shows the drift score widget
	// Trigger: score.Engine.StartDrift | Consumer: HUD | Payload: *DriftUIPayload
	EventDriftUIStart

	// EventDriftUIEnd hides the drift score widget
	// Trigger: score.Engine.EndDrift | Consumer: HUD | Payload: *DriftUIPayload
	EventDriftUIEnd

	// EventCurrentScoreChanged carries the running drift score
	// Trigger: score.Engine.UpdateDriftScore | Consumer: HUD | Payload: *CurrentScorePayload
	EventCurrentScoreChanged

	// EventScoreChanged carries the committed total
	// Trigger: score.Engine.EndDrift, ResetScore | Consumer: HUD | Payload: *ScorePayload
	EventScoreChanged

	// EventLevelUp signals a tier promotion
	// Trigger: score.Engine.EndDrift | Consumer: AudioHandler, HUD | Payload: *LevelUpPayload
	EventLevelUp

	// EventParticleColorChange carries the particle color for the current tier
	// Trigger: score.Engine promotion, ResetScore | Consumer: HUD | Payload: *ParticleColorPayload
	EventParticleColorChange

	// EventScoreTick is the periodic scoring blip
	// Trigger: score.Engine.UpdateDriftScore | Consumer: AudioHandler | Payload: *ScoreTickPayload
	EventScoreTick

	// EventScoreReset signals the session score was cleared
	// Trigger: score.Engine.ResetScore | Consumer: HUD | Payload: nil
	EventScoreReset

	eventTypeCount
)
