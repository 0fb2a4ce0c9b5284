package fsm

import (
	"errors"

	"github.com/lixenwraith/kart-drift/event"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

var (
	ErrUnknownState  = errors.New("fsm: unknown state")
	ErrUnknownGuard  = errors.New("fsm: unknown guard")
	ErrUnknownAction = errors.New("fsm: unknown action")
	ErrUnknownEvent  = errors.New("fsm: unknown event")
	ErrNotLoaded     = errors.New("fsm: no initial state")
)

// Machine is a generic flat finite state machine
// T is the context type passed to actions and guards (e.g., *kart.Controller)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	InitialID StateID

	// Runtime state
	activeID StateID

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated every Update
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
