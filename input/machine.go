package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kart-drift/parameter"
)

// Commander receives driving commands; implemented by kart.Controller
type Commander interface {
	Accelerate()
	Steer(amount float64)
	Jump()
}

// Machine parses terminal events into one-shot intents and held controls
// Terminals deliver key presses and repeats but no releases, so a control
// stays held for a window after its most recent press: the initial window
// covers the auto-repeat delay, the shorter repeat window applies once repeats arrive
type Machine struct {
	keyTable  *KeyTable
	initial   time.Duration
	repeat    time.Duration
	lastSeen  [controlCount]time.Time
	repeating [controlCount]bool
}

// NewMachine creates a machine with the given bindings; nil uses the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		keyTable: kt,
		initial:  parameter.KeyHoldWindowInitial,
		repeat:   parameter.KeyHoldWindow,
	}
}

// SetHoldWindows changes how long a control stays held after a first press and after a repeat
func (m *Machine) SetHoldWindows(initial, repeat time.Duration) {
	if initial > 0 {
		m.initial = initial
	}
	if repeat > 0 {
		m.repeat = repeat
	}
}

// Process parses a terminal event observed at now
// Returns nil for control keys, unbound keys and ignored events
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		entry, ok := m.keyTable.Lookup(ev)
		if !ok {
			return nil
		}
		switch entry.Behavior {
		case BehaviorControl:
			m.repeating[entry.Control] = m.Held(entry.Control, now)
			m.lastSeen[entry.Control] = now
		case BehaviorSystem:
			return &Intent{Type: entry.IntentType}
		}
	}
	return nil
}

// Held reports whether control op is held at now
func (m *Machine) Held(op ControlOp, now time.Time) bool {
	if op == ControlNone || op >= controlCount {
		return false
	}
	seen := m.lastSeen[op]
	if seen.IsZero() {
		return false
	}
	window := m.initial
	if m.repeating[op] {
		window = m.repeat
	}
	return now.Sub(seen) < window
}

// Release drops every held control
func (m *Machine) Release() {
	m.lastSeen = [controlCount]time.Time{}
	m.repeating = [controlCount]bool{}
}

// Apply issues the commands of every control held at now
// With both steer keys held the most recent press wins; no steer key leaves steer unset
func (m *Machine) Apply(now time.Time, cmd Commander) {
	if m.Held(ControlAccelerate, now) {
		cmd.Accelerate()
	}

	left := m.Held(ControlSteerLeft, now)
	right := m.Held(ControlSteerRight, now)
	switch {
	case left && right:
		if m.lastSeen[ControlSteerLeft].After(m.lastSeen[ControlSteerRight]) {
			cmd.Steer(-parameter.KeySteerAmount)
		} else {
			cmd.Steer(parameter.KeySteerAmount)
		}
	case left:
		cmd.Steer(-parameter.KeySteerAmount)
	case right:
		cmd.Steer(parameter.KeySteerAmount)
	}

	if m.Held(ControlJump, now) {
		cmd.Jump()
	}
}
