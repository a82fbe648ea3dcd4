package event

import "github.com/lixenwraith/horde/parameter"

// EventQueue is a fixed ring buffer of notifications
// Owned by the tick goroutine: Push during the tick, Consume once per frame by presentation
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // read index
	tail   uint64 // write index
	lost   uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest unread one when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.lost++
	}
}

// Emit is Push for a typed payload
func (eq *EventQueue) Emit(t EventType, payload any, tick int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Consume returns pending events in FIFO order and clears them
// Each event is observed exactly once
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		out = append(out, eq.events[i&parameter.EventBufferMask])
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Lost returns how many events were overwritten before being consumed
func (eq *EventQueue) Lost() uint64 {
	return eq.lost
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	for i := eq.head; i < eq.tail; i++ {
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
}
