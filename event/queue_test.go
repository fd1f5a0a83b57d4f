package event

import "testing"

// TestQueueFIFO verifies consume order and emptying
func TestQueueFIFO(t *testing.T) {
	q := NewQueue(2)
	q.Push(Event{Type: GoalScored, Frame: 3, Value: 2})
	q.Push(Event{Type: BasketFired, Frame: 5})
	q.Push(Event{Type: HamsterWoke, Frame: 9})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, want := range []Type{GoalScored, BasketFired, HamsterWoke} {
		if got[i].Type != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, got[i].Type)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected nil after draining")
	}
	if q.Total() != 3 {
		t.Errorf("Expected total 3, got %d", q.Total())
	}
}

// TestConsumeIsolated verifies a consumed slice is not overwritten by later pushes
func TestConsumeIsolated(t *testing.T) {
	q := NewQueue(4)
	q.Push(Event{Type: GoalScored, Frame: 1})
	first := q.Consume()
	q.Push(Event{Type: BasketFired, Frame: 2})

	if first[0].Type != GoalScored {
		t.Errorf("Expected consumed event to stay goal_scored, got %s", first[0].Type)
	}
}

func TestTypeString(t *testing.T) {
	if GoalScored.String() != "goal_scored" {
		t.Errorf("Expected goal_scored, got %s", GoalScored)
	}
	if Type(99).String() != "event(99)" {
		t.Errorf("Expected event(99), got %s", Type(99))
	}
}
