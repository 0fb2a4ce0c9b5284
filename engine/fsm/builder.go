package fsm

// AddState adds a node to the machine manually
// Useful for constructing the graph programmatically or during TOML load
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	m.nameToID[name] = id
	return node
}
