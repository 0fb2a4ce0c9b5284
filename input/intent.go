package input

// IntentType discriminates one-shot actions; held controls are not intents
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, q
	IntentPause  // p
	IntentResize // Terminal resize event

	// Debug intents
	IntentLogDriftAngle // F1
	IntentLogScore      // F2
	IntentResetScore    // F3

	// Toggles
	IntentToggleMute           // m
	IntentToggleAutoAccelerate // t
	IntentToggleOverlay        // o
)

// ControlOp identifies a held driving control
type ControlOp uint8

const (
	ControlNone ControlOp = iota
	ControlAccelerate
	ControlSteerLeft
	ControlSteerRight
	ControlJump
	controlCount
)

var controlNames = [controlCount]string{"none", "accelerate", "steer_left", "steer_right", "jump"}

func (c ControlOp) String() string {
	if c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Intent is a parsed one-shot action
type Intent struct {
	Type IntentType
}
