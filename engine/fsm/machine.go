package fsm

import (
	"fmt"

	"github.com/lixenwraith/horde/event"
)

// Machine is a flat event-driven state machine
// T is the context passed to actions and guards
type Machine[T any] struct {
	nodes   map[StateID]*Node[T]
	initial StateID

	active       StateID
	ticksInState int64
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{nodes: make(map[StateID]*Node[T])}
}

// AddState registers a state; the first registered state is the initial one
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	if id == StateNone {
		panic("fsm: StateNone cannot be registered")
	}
	n := &Node[T]{ID: id, Name: name}
	m.nodes[id] = n
	if m.initial == StateNone {
		m.initial = id
	}
	return n
}

// AddTransition links from -> to on ev, gated by guard
func (m *Machine[T]) AddTransition(from StateID, ev event.EventType, to StateID, guard GuardFunc[T]) {
	n, ok := m.nodes[from]
	if !ok {
		panic(fmt.Sprintf("fsm: transition from unknown state %d", from))
	}
	if _, ok := m.nodes[to]; !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state %d", to))
	}
	n.Transitions = append(n.Transitions, Transition[T]{TargetID: to, Event: ev, Guard: guard})
}

// OnEnter appends an entry action
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	m.nodes[id].OnEnter = append(m.nodes[id].OnEnter, fn)
}

// OnExit appends an exit action
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	m.nodes[id].OnExit = append(m.nodes[id].OnExit, fn)
}

// OnUpdate appends a per-tick action for a state
func (m *Machine[T]) OnUpdate(id StateID, fn ActionFunc[T]) {
	m.nodes[id].OnUpdate = append(m.nodes[id].OnUpdate, fn)
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initial]
	if !ok {
		return fmt.Errorf("fsm has no states")
	}
	m.active = node.ID
	m.ticksInState = 0
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Update advances one tick: runs OnUpdate actions then the first passing tick transition
func (m *Machine[T]) Update(ctx T) {
	node, ok := m.nodes[m.active]
	if !ok {
		return
	}
	m.ticksInState++
	for _, fn := range node.OnUpdate {
		fn(ctx)
	}
	for _, tr := range node.Transitions {
		if tr.Event == event.EventNone && (tr.Guard == nil || tr.Guard(ctx)) {
			m.transition(ctx, tr.TargetID)
			return
		}
	}
}

// HandleEvent routes an event to the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, ev event.EventType) bool {
	node, ok := m.nodes[m.active]
	if !ok || ev == event.EventNone {
		return false
	}
	for _, tr := range node.Transitions {
		if tr.Event == ev && (tr.Guard == nil || tr.Guard(ctx)) {
			m.transition(ctx, tr.TargetID)
			return true
		}
	}
	return false
}

func (m *Machine[T]) transition(ctx T, target StateID) {
	if target == m.active {
		return
	}
	for _, fn := range m.nodes[m.active].OnExit {
		fn(ctx)
	}
	m.active = target
	m.ticksInState = 0
	for _, fn := range m.nodes[target].OnEnter {
		fn(ctx)
	}
}

// Reset jumps back to the initial state without running exit actions
func (m *Machine[T]) Reset(ctx T) error {
	return m.Init(ctx)
}

// State returns the active state id
func (m *Machine[T]) State() StateID {
	return m.active
}

// StateName returns the active state's name
func (m *Machine[T]) StateName() string {
	if n, ok := m.nodes[m.active]; ok {
		return n.Name
	}
	return ""
}

// TicksInState returns Update calls since the last transition
func (m *Machine[T]) TicksInState() int64 {
	return m.ticksInState
}
