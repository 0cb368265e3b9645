package sim

// canEnter reports whether a may enter a tile occupied by b, per spec.md
// §4.7: true means a's collision_mask does not intersect b's layer.
//
// Ported from original_source/src/patika_collision.c's can_agent_enter,
// inverted to a same-sense boolean (the C helper returns nonzero = blocked;
// idiomatic Go here returns true = "may enter").
func canEnter(a, b *Agent) bool {
	return a.Collision.CollisionMask&b.Collision.Layer == 0
}

// shouldAttack reports whether a should attack b: a's aggression_mask
// intersects b's layer, and they are on different sides.
//
// Ported from original_source/src/patika_collision.c's should_agent_attack
// (again sense-inverted to a straightforward boolean).
func shouldAttack(a, b *Agent) bool {
	if a.Collision.AggressionMask&b.Collision.Layer == 0 {
		return false
	}
	return a.Side != b.Side
}

// tryReserve attempts to claim (q, r) for agent. Ported from
// original_source/src/patika_collision.c's try_reserve_tile.
func tryReserve(grid *Grid, agents *agentPool, agent *Agent, q, r int32) bool {
	if !grid.InBounds(q, r) {
		return false
	}
	if !grid.IsWalkable(q, r) {
		return false
	}

	word := grid.ReservationGet(q, r)
	if wordIsEmpty(word) {
		grid.ReservationSet(q, r, reservedWord(agent.ID.Index()))
		return true
	}

	occupantIndex := wordAgentIndex(word)
	occupant := agents.getByIndex(occupantIndex)
	if occupant == nil || occupant == agent {
		// Stale entry (the slot was freed, or has since been reused by this
		// very agent): treat as empty and proceed, per patika_collision.c.
		grid.ReservationSet(q, r, reservedWord(agent.ID.Index()))
		return true
	}

	if canEnter(agent, occupant) {
		// The original still returns "fail" here (try_reserve_tile always
		// returns 1 once a tile is occupied by a live agent) — reservation
		// is exclusive even when the mover is physically allowed to enter;
		// the actual hand-off happens at arrival time in movement.go.
		return false
	}

	return false
}

// clearReservation clears (q, r)'s reservation word only if it is currently
// reserved by the agent at agentIndex, per original_source/src/patika_collision.c's
// clear_tile_reservation.
func clearReservation(grid *Grid, q, r int32, agentIndex uint32) {
	word := grid.ReservationGet(q, r)
	if wordIsReserved(word) && wordAgentIndex(word) == agentIndex {
		grid.ReservationClear(q, r)
	}
}
