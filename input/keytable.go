package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorControl             // Held driving control
	BehaviorSystem              // One-shot intent
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Control    ControlOp
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, case-sensitive
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {BehaviorSystem, ControlNone, IntentQuit},
			tcell.KeyCtrlQ: {BehaviorSystem, ControlNone, IntentQuit},
			tcell.KeyF1:    {BehaviorSystem, ControlNone, IntentLogDriftAngle},
			tcell.KeyF2:    {BehaviorSystem, ControlNone, IntentLogScore},
			tcell.KeyF3:    {BehaviorSystem, ControlNone, IntentResetScore},
			tcell.KeyUp:    {BehaviorControl, ControlAccelerate, IntentNone},
			tcell.KeyLeft:  {BehaviorControl, ControlSteerLeft, IntentNone},
			tcell.KeyRight: {BehaviorControl, ControlSteerRight, IntentNone},
		},

		Runes: map[rune]KeyEntry{
			'w': {BehaviorControl, ControlAccelerate, IntentNone},
			'a': {BehaviorControl, ControlSteerLeft, IntentNone},
			'd': {BehaviorControl, ControlSteerRight, IntentNone},
			' ': {BehaviorControl, ControlJump, IntentNone},

			'q': {BehaviorSystem, ControlNone, IntentQuit},
			'p': {BehaviorSystem, ControlNone, IntentPause},
			'm': {BehaviorSystem, ControlNone, IntentToggleMute},
			't': {BehaviorSystem, ControlNone, IntentToggleAutoAccelerate},
			'o': {BehaviorSystem, ControlNone, IntentToggleOverlay},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	result := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		result.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		result.Runes[k] = v
	}
	return result
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
