package sim

import (
	"sync"
	"testing"
)

func TestCommandQueuePushPop(t *testing.T) {
	q := newCommandQueue(4)

	if err := q.Push(Command{Type: CmdSetGoal, GoalQ: 1}); err != nil {
		t.Fatalf("Push: %v", err)
	}

	cmd, ok := q.Pop()
	if !ok {
		t.Fatal("Pop: expected a command")
	}
	if cmd.GoalQ != 1 {
		t.Fatalf("expected GoalQ 1, got %d", cmd.GoalQ)
	}

	if _, ok := q.Pop(); ok {
		t.Fatal("Pop: expected empty queue")
	}
}

func TestCommandQueueFull(t *testing.T) {
	q := newCommandQueue(2) // rounds to power-of-2 capacity 2: holds 2-1 = 1

	if err := q.Push(Command{}); err != nil {
		t.Fatalf("Push 1: %v", err)
	}
	if err := q.Push(Command{}); err != ErrQueueFull {
		t.Fatalf("Push 2: expected ErrQueueFull, got %v", err)
	}
	if err := q.Push(Command{}); err != ErrQueueFull {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestCommandQueueConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 200

	q := newCommandQueue(4096)
	var wg sync.WaitGroup
	wg.Add(producers)

	for p := 0; p < producers; p++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				for q.Push(Command{Type: CmdSetGoal, GoalQ: int32(id)}) != nil {
					// retry until the slot frees up
				}
			}
		}(p)
	}
	wg.Wait()

	count := 0
	for {
		_, ok := q.Pop()
		if !ok {
			break
		}
		count++
	}
	if count != producers*perProducer {
		t.Fatalf("expected %d commands, popped %d", producers*perProducer, count)
	}
}

func TestEventQueuePushPop(t *testing.T) {
	q := newEventQueue(2) // capacity 2: holds 2-1 = 1

	if !q.Push(Event{Type: EventStuck, Q: 3}) {
		t.Fatal("Push 1 should have succeeded")
	}
	if q.Push(Event{Type: EventStuck, Q: 4}) {
		t.Fatal("Push 2 should have failed: queue full")
	}
	if q.Push(Event{Type: EventStuck, Q: 5}) {
		t.Fatal("Push 3 should have failed: queue full")
	}

	evt, ok := q.Pop()
	if !ok || evt.Q != 3 {
		t.Fatalf("expected first event Q=3, got %+v ok=%v", evt, ok)
	}
}
