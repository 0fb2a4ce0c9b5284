package fsm

import (
	"fmt"

	"github.com/lixenwraith/kart-drift/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialID]
	if !ok {
		return ErrNotLoaded
	}
	m.activeID = node.ID
	runActions(ctx, node.OnEnter)
	return nil
}

// Update runs OnUpdate actions, then evaluates Tick transitions
func (m *Machine[T]) Update(ctx T) {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return
	}
	runActions(ctx, node.OnUpdate)
	m.fire(ctx, node, event.EventTick)
}

// HandleEvent routes an event to the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	return m.fire(ctx, node, et)
}

// fire evaluates the guards of matching transitions in order, each at most once per call
// Guards must be pure; side effects belong in actions
func (m *Machine[T]) fire(ctx T, node *Node[T], et event.EventType) bool {
	for _, trans := range node.Transitions {
		if trans.Event != et {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition runs OnExit of the current state, then OnEnter of the target
// Self-transitions are ignored
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}
	if current, ok := m.nodes[m.activeID]; ok {
		runActions(ctx, current.OnExit)
	}
	// Active state switches before OnEnter so actions observe the new state
	m.activeID = targetID
	runActions(ctx, target.OnEnter)
}

// State returns the active state name, empty before Init
func (m *Machine[T]) State() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// StateID returns the active state ID
func (m *Machine[T]) StateID() StateID {
	return m.activeID
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}
