package events

import (
	"sync"
	"testing"
)

func TestQueueFIFOOrder(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < 5; i++ {
		eq.Push(GameEvent{Type: EventRotationCommitted, Payload: i})
	}

	got := eq.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Payload.(int) != i {
			t.Errorf("Expected payload %d at index %d, got %v", i, i, ev.Payload)
		}
	}
	if eq.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < QueueSize+8; i++ {
		eq.Push(GameEvent{Type: EventTimerAlert, Payload: i})
	}
	if eq.Len() != QueueSize {
		t.Fatalf("Expected len capped at %d, got %d", QueueSize, eq.Len())
	}
	got := eq.Consume()
	if len(got) == 0 || got[0].Payload.(int) != 8 {
		t.Errorf("Expected the oldest surviving event to be 8, got %v", got[0].Payload)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()
	var wg sync.WaitGroup
	const producers, perProducer = 4, 8

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(GameEvent{Type: EventPhaseChanged})
			}
		}()
	}
	wg.Wait()

	if got := len(eq.Consume()); got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}

// countingHandler counts deliveries for the types it declares
type countingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *countingHandler) HandleEvent(_ struct{}, ev GameEvent) {
	h.seen = append(h.seen, ev)
}

func (h *countingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchesByType(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[struct{}](eq)

	rotations := &countingHandler{types: []EventType{EventRotationCommitted}}
	alerts := &countingHandler{types: []EventType{EventTimerAlert}}
	r.Register(rotations)
	r.Register(alerts)

	eq.Push(GameEvent{Type: EventRotationCommitted})
	eq.Push(GameEvent{Type: EventTimerAlert})
	eq.Push(GameEvent{Type: EventRotationCommitted})
	r.DispatchAll(struct{}{})

	if len(rotations.seen) != 2 {
		t.Errorf("Expected 2 rotation events, got %d", len(rotations.seen))
	}
	if len(alerts.seen) != 1 {
		t.Errorf("Expected 1 alert event, got %d", len(alerts.seen))
	}
	if !r.HasHandlers(EventRotationCommitted) {
		t.Error("Expected a registered rotation handler")
	}
	if r.HasHandlers(EventUndoApplied) {
		t.Error("Expected no undo handler")
	}
}
