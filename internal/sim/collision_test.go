package sim

import "testing"

func TestCanEnter(t *testing.T) {
	a := &Agent{Collision: CollisionData{CollisionMask: 0b010}}
	b := &Agent{Collision: CollisionData{Layer: 0b010}}
	if canEnter(a, b) {
		t.Fatal("expected collision: mask intersects layer")
	}

	c := &Agent{Collision: CollisionData{Layer: 0b100}}
	if !canEnter(a, c) {
		t.Fatal("expected no collision: mask does not intersect layer")
	}
}

func TestShouldAttack(t *testing.T) {
	attacker := &Agent{Side: 0, Collision: CollisionData{AggressionMask: 0b001}}
	enemy := &Agent{Side: 1, Collision: CollisionData{Layer: 0b001}}
	ally := &Agent{Side: 0, Collision: CollisionData{Layer: 0b001}}
	neutral := &Agent{Side: 1, Collision: CollisionData{Layer: 0b010}}

	if !shouldAttack(attacker, enemy) {
		t.Fatal("expected attack: different side, aggression mask intersects layer")
	}
	if shouldAttack(attacker, ally) {
		t.Fatal("expected no attack: same side")
	}
	if shouldAttack(attacker, neutral) {
		t.Fatal("expected no attack: aggression mask does not intersect layer")
	}
}

func TestTryReserveEmptyTileSucceeds(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	id := agents.allocate()
	agent := agents.get(id)

	if !tryReserve(grid, agents, agent, 1, 1) {
		t.Fatal("expected reservation of an empty walkable tile to succeed")
	}
	word := grid.ReservationGet(1, 1)
	if !wordIsReserved(word) || wordAgentIndex(word) != id.Index() {
		t.Fatalf("expected tile reserved for agent index %d, got %#x", id.Index(), word)
	}
}

func TestTryReserveOutOfBoundsFails(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	agent := agents.get(agents.allocate())

	if tryReserve(grid, agents, agent, 99, 99) {
		t.Fatal("expected out-of-bounds reservation to fail")
	}
}

func TestTryReserveBlockedTileFails(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	grid.TileSetState(2, 2, 1)
	agents := newAgentPool(4)
	agent := agents.get(agents.allocate())

	if tryReserve(grid, agents, agent, 2, 2) {
		t.Fatal("expected reservation of a blocked tile to fail")
	}
}

func TestTryReserveOccupiedTileAlwaysFails(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	occupantID := agents.allocate()
	occupant := agents.get(occupantID)
	grid.ReservationSet(1, 1, occupiedWord(occupantID.Index()))

	mover := agents.get(agents.allocate())
	occupant.Collision.Layer = 0 // no collision at all, canEnter(mover, occupant) is true

	if tryReserve(grid, agents, mover, 1, 1) {
		t.Fatal("expected reservation of a live-occupied tile to fail regardless of canEnter")
	}
}

func TestTryReserveStaleOccupantTreatedAsEmpty(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	agents := newAgentPool(4)
	stale := agents.allocate()
	grid.ReservationSet(1, 1, occupiedWord(stale.Index()))
	agents.free(stale) // slot now inactive; the word still points at it

	mover := agents.get(agents.allocate())
	if !tryReserve(grid, agents, mover, 1, 1) {
		t.Fatal("expected a stale occupant to be treated as empty")
	}
}

func TestClearReservation(t *testing.T) {
	grid := NewGrid(GridRect, 4, 4)
	grid.ReservationSet(0, 0, reservedWord(3))

	clearReservation(grid, 0, 0, 4) // wrong index: must not clear
	if wordIsEmpty(grid.ReservationGet(0, 0)) {
		t.Fatal("clearReservation must not clear a reservation held by another index")
	}

	clearReservation(grid, 0, 0, 3)
	if !wordIsEmpty(grid.ReservationGet(0, 0)) {
		t.Fatal("expected reservation cleared for the matching index")
	}
}
