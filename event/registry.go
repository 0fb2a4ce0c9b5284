package event

import (
	"strings"
	"sync"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// registerType maps a string name to an EventType in both directions
func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
// "Tick" resolves case-insensitively to EventTick
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		registerType("JumpPressed", EventJumpPressed)
		registerType("JumpReleased", EventJumpReleased)

		registerType("DriftStart", EventDriftStart)
		registerType("DriftEnd", EventDriftEnd)
		registerType("DriftSuppressed", EventDriftSuppressed)
		registerType("BoostTierReached", EventBoostTierReached)
		registerType("BoostStart", EventBoostStart)

		registerType("DriftUIStart", EventDriftUIStart)
		registerType("DriftUIEnd", EventDriftUIEnd)
		registerType("CurrentScoreChanged", EventCurrentScoreChanged)
		registerType("ScoreChanged", EventScoreChanged)
		registerType("LevelUp", EventLevelUp)
		registerType("ParticleColorChange", EventParticleColorChange)
		registerType("ScoreTick", EventScoreTick)
		registerType("ScoreReset", EventScoreReset)
	})
}
