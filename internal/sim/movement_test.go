package sim

import "testing"

func TestAdvanceMovementAccumulatesProgress(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	events := newEventQueue(4)
	stats := &Stats{}

	id := agents.allocate()
	agent := agents.get(id)
	agent.PosQ, agent.PosR = 0, 0
	agent.NextQ, agent.NextR = 1, 0
	agent.TargetQ, agent.TargetR = 1, 0
	agent.Speed = MaxProgress / 2
	agent.State = StateMoving

	advanceMovement(grid, agents, events, stats, agent)
	if agent.State != StateMoving {
		t.Fatalf("expected still Moving before progress fills, got %v", agent.State)
	}
	if agent.PosQ != 0 {
		t.Fatal("position must not change before arrival")
	}
}

func TestAdvanceMovementArrivesAndPublishesReservation(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	events := newEventQueue(4)
	stats := &Stats{}

	id := agents.allocate()
	agent := agents.get(id)
	agent.PosQ, agent.PosR = 0, 0
	agent.NextQ, agent.NextR = 1, 0
	agent.TargetQ, agent.TargetR = 2, 0 // not yet at final target
	agent.Speed = MaxProgress
	agent.State = StateMoving
	grid.ReservationSet(0, 0, occupiedWord(id.Index()))

	advanceMovement(grid, agents, events, stats, agent)

	if agent.PosQ != 1 || agent.PosR != 0 {
		t.Fatalf("expected agent at (1,0), got (%d,%d)", agent.PosQ, agent.PosR)
	}
	if agent.Progress != 0 {
		t.Fatalf("expected progress reset to 0, got %d", agent.Progress)
	}
	if agent.State != StateCalculating {
		t.Fatalf("expected StateCalculating (not at final target), got %v", agent.State)
	}
	if !wordIsEmpty(grid.ReservationGet(0, 0)) {
		t.Fatal("expected old position reservation cleared")
	}
	word := grid.ReservationGet(1, 0)
	if !wordIsOccupied(word) || wordAgentIndex(word) != id.Index() {
		t.Fatalf("expected new position occupied by agent, got %#x", word)
	}
}

func TestAdvanceMovementArrivesAtFinalTargetEmitsReachedGoal(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	events := newEventQueue(4)
	stats := &Stats{}

	id := agents.allocate()
	agent := agents.get(id)
	agent.PosQ, agent.PosR = 0, 0
	agent.NextQ, agent.NextR = 1, 0
	agent.TargetQ, agent.TargetR = 1, 0
	agent.Speed = MaxProgress
	agent.State = StateMoving

	advanceMovement(grid, agents, events, stats, agent)

	if agent.State != StateIdle {
		t.Fatalf("expected StateIdle on arrival at target, got %v", agent.State)
	}
	evt, ok := events.Pop()
	if !ok || evt.Type != EventReachedGoal {
		t.Fatalf("expected EventReachedGoal, got %+v ok=%v", evt, ok)
	}
	if stats.EventsEmitted != 1 {
		t.Fatalf("expected EventsEmitted 1, got %d", stats.EventsEmitted)
	}
}

func TestAdvanceMovementBlockedByLiveOccupantReverts(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	events := newEventQueue(4)
	stats := &Stats{}

	moverID := agents.allocate()
	mover := agents.get(moverID)
	mover.PosQ, mover.PosR = 0, 0
	mover.NextQ, mover.NextR = 1, 0
	mover.TargetQ, mover.TargetR = 1, 0
	mover.Speed = MaxProgress
	mover.State = StateMoving
	mover.Collision.CollisionMask = 0b1

	occupantID := agents.allocate()
	occupant := agents.get(occupantID)
	occupant.Collision.Layer = 0b1
	grid.ReservationSet(1, 0, occupiedWord(occupantID.Index()))

	advanceMovement(grid, agents, events, stats, mover)

	if mover.State != StateCalculating {
		t.Fatalf("expected StateCalculating after a blocked arrival, got %v", mover.State)
	}
	if mover.Progress != 0 {
		t.Fatalf("expected progress reset to 0, got %d", mover.Progress)
	}
	word := grid.ReservationGet(0, 0)
	if !wordIsOccupied(word) || wordAgentIndex(word) != moverID.Index() {
		t.Fatalf("expected old position restored as occupied, got %#x", word)
	}
	if stats.BlockedMoves != 1 {
		t.Fatalf("expected BlockedMoves 1, got %d", stats.BlockedMoves)
	}
}
