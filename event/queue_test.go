package event

import (
	"testing"

	"github.com/lixenwraith/horde/parameter"
)

func TestQueueFIFOAndOneShot(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventLevelUp, &LevelPayload{Level: 2}, 1)
	q.Emit(EventBossIncoming, nil, 2)

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventLevelUp || got[1].Type != EventBossIncoming {
		t.Fatalf("Unexpected order: %+v", got)
	}
	if p, ok := got[0].Payload.(*LevelPayload); !ok || p.Level != 2 {
		t.Errorf("Payload lost: %+v", got[0].Payload)
	}
	if again := q.Consume(); again != nil {
		t.Errorf("Events must be cleared once read, got %+v", again)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 5
	for i := 0; i < total; i++ {
		q.Emit(EventEnemyKilled, nil, int64(i))
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Tick != 5 {
		t.Errorf("Expected oldest surviving tick 5, got %d", got[0].Tick)
	}
	if q.Lost() != 5 {
		t.Errorf("Expected 5 lost, got %d", q.Lost())
	}
}

func TestQueueClear(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventGameOver, nil, 0)
	q.Clear()
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("Clear must drop pending events")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventHordeRequested.String() != "horde_requested" {
		t.Errorf("Unexpected name %q", EventHordeRequested.String())
	}
	if EventType(9999).String() != "unknown" {
		t.Error("Unknown types must name as unknown")
	}
}
