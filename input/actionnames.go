package input

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// Driving controls
	"accelerate":  {BehaviorControl, ControlAccelerate, IntentNone},
	"steer_left":  {BehaviorControl, ControlSteerLeft, IntentNone},
	"steer_right": {BehaviorControl, ControlSteerRight, IntentNone},
	"jump":        {BehaviorControl, ControlJump, IntentNone},

	// System
	"quit":  {BehaviorSystem, ControlNone, IntentQuit},
	"pause": {BehaviorSystem, ControlNone, IntentPause},

	// Debug
	"log_drift_angle": {BehaviorSystem, ControlNone, IntentLogDriftAngle},
	"log_score":       {BehaviorSystem, ControlNone, IntentLogScore},
	"reset_score":     {BehaviorSystem, ControlNone, IntentResetScore},

	// Toggles
	"toggle_mute":            {BehaviorSystem, ControlNone, IntentToggleMute},
	"toggle_auto_accelerate": {BehaviorSystem, ControlNone, IntentToggleAutoAccelerate},
	"toggle_overlay":         {BehaviorSystem, ControlNone, IntentToggleOverlay},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
