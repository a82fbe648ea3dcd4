package fsm

import (
	"testing"

	"github.com/lixenwraith/horde/event"
)

const (
	stateIdle StateID = iota + 1
	stateBusy
	stateDone
)

type counter struct {
	enters, exits, updates int
	allow                  bool
}

func build() *Machine[*counter] {
	m := NewMachine[*counter]()
	m.AddState(stateIdle, "idle")
	m.AddState(stateBusy, "busy")
	m.AddState(stateDone, "done")
	m.AddTransition(stateIdle, event.EventBossIncoming, stateBusy, func(c *counter) bool { return c.allow })
	m.AddTransition(stateBusy, event.EventNone, stateDone, func(c *counter) bool { return c.updates >= 3 })
	m.OnEnter(stateBusy, func(c *counter) { c.enters++ })
	m.OnExit(stateBusy, func(c *counter) { c.exits++ })
	m.OnUpdate(stateBusy, func(c *counter) { c.updates++ })
	return m
}

func TestGuardBlocksTransition(t *testing.T) {
	m := build()
	c := &counter{}
	if err := m.Init(c); err != nil {
		t.Fatal(err)
	}
	if m.HandleEvent(c, event.EventBossIncoming) {
		t.Fatal("Guard should block the transition")
	}
	if m.State() != stateIdle {
		t.Errorf("Expected idle, got %s", m.StateName())
	}

	c.allow = true
	if !m.HandleEvent(c, event.EventBossIncoming) {
		t.Fatal("Expected transition once guard passes")
	}
	if m.State() != stateBusy || c.enters != 1 {
		t.Errorf("Expected busy with one entry, got %s enters=%d", m.StateName(), c.enters)
	}
}

func TestTickTransition(t *testing.T) {
	m := build()
	c := &counter{allow: true}
	if err := m.Init(c); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(c, event.EventBossIncoming)

	for i := 0; i < 3; i++ {
		m.Update(c)
	}
	if m.State() != stateDone {
		t.Fatalf("Expected done after 3 updates, got %s", m.StateName())
	}
	if c.exits != 1 {
		t.Errorf("Expected one exit action, got %d", c.exits)
	}
	if m.TicksInState() != 0 {
		t.Errorf("Ticks in state must reset on transition, got %d", m.TicksInState())
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	m := build()
	c := &counter{}
	if err := m.Init(c); err != nil {
		t.Fatal(err)
	}
	if m.HandleEvent(c, event.EventGameOver) || m.HandleEvent(c, event.EventNone) {
		t.Error("Unmatched events must not transition")
	}
}

func TestResetReturnsToInitial(t *testing.T) {
	m := build()
	c := &counter{allow: true}
	if err := m.Init(c); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(c, event.EventBossIncoming)
	_ = m.Reset(c)
	if m.State() != stateIdle {
		t.Errorf("Expected idle after reset, got %s", m.StateName())
	}
}

func TestEmptyMachineInitFails(t *testing.T) {
	m := NewMachine[*counter]()
	if err := m.Init(&counter{}); err == nil {
		t.Error("Expected error for machine without states")
	}
}
