package fsm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/kart-drift/event"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events); unknown keys are rejected
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("FSM config has unknown keys: %s", strings.Join(keys, ", "))
	}
	return m.LoadRootConfig(&config)
}

// LoadRootConfig builds the graph from an already decoded config
func (m *Machine[T]) LoadRootConfig(config *RootConfig) error {
	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeID = StateNone

	// Sort names for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	// First pass: nodes
	for i, name := range names {
		m.AddState(StateID(i+1), name)
	}

	// Second pass: actions and transitions
	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			continue
		}
		node := m.nodes[m.nameToID[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	initialID, ok := m.nameToID[config.InitialState]
	if !ok {
		return fmt.Errorf("%w: initial state %q", ErrUnknownState, config.InitialState)
	}
	m.InitialID = initialID
	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, cfg.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: cfg.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("%w: target %q", ErrUnknownState, cfg.Target)
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEvent, cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			guard, ok = m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownGuard, cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
		})
	}
	return nil
}
