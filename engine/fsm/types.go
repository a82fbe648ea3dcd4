package fsm

import "github.com/lixenwraith/horde/event"

// StateID is a unique identifier for a state
type StateID int

// StateNone is the zero state of an uninitialized machine
const StateNone StateID = 0

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on entry or exit
type ActionFunc[T any] func(ctx T)

// Node is a state with its lifecycle actions and outgoing transitions
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions are evaluated in insertion order; first passing guard wins
	Transitions []Transition[T]
}

// Transition links states on an event
// Event == event.EventNone makes it a tick transition evaluated by Update
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType
	Guard    GuardFunc[T] // nil = always true
}
