package sim

// hexDirs are the six axial hex neighbor offsets, in the fixed order used
// for deterministic tie iteration. Ported verbatim from
// original_source/src/patika_pathfinding.c's HEX_DIRS.
var hexDirs = [6][2]int32{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// computeNextStep runs the greedy one-hop pathfinder for agent, per spec.md
// §4.8. Ported from original_source/src/patika_pathfinding.c's
// compute_next_step.
func computeNextStep(grid *Grid, rng *RNG, events *eventQueue, stats *Stats, agent *Agent) {
	if agent.PosQ == agent.TargetQ && agent.PosR == agent.TargetR {
		agent.State = StateIdle
		emitEvent(events, stats, Event{Type: EventReachedGoal, AgentID: agent.ID, Q: agent.PosQ, R: agent.PosR})
		return
	}

	var candidates [6]int
	count := 0
	bestDistSq := int64(-1)

	for i, d := range hexDirs {
		nq := agent.PosQ + d[0]
		nr := agent.PosR + d[1]

		if !grid.InBounds(nq, nr) || !grid.IsWalkable(nq, nr) {
			continue
		}

		dq := int64(agent.TargetQ - nq)
		dr := int64(agent.TargetR - nr)
		distSq := dq*dq + dr*dr

		switch {
		case bestDistSq < 0 || distSq < bestDistSq:
			bestDistSq = distSq
			candidates[0] = i
			count = 1
		case distSq == bestDistSq:
			candidates[count] = i
			count++
		}
	}

	if count > 0 {
		choice := candidates[rng.Intn(count)]
		agent.NextQ = agent.PosQ + hexDirs[choice][0]
		agent.NextR = agent.PosR + hexDirs[choice][1]
		agent.State = StateMoving
		return
	}

	agent.State = StateIdle
	emitEvent(events, stats, Event{Type: EventStuck, AgentID: agent.ID, Q: agent.PosQ, R: agent.PosR})
}

// computePatrol runs the patrol-restricted variant: candidates are limited
// to neighbors within the owning barrack's patrol radius. Ported from
// original_source/src/patika_pathfinding.c's compute_patrol.
//
// If the agent has no live owning barrack, it is marked PendingRemoval per
// spec.md §4.8's "If the agent has no owning barrack (stale), mark the
// agent PendingRemoval" (the original's STATE_REMOVE_QUEUE).
func computePatrol(grid *Grid, rng *RNG, barracks *barrackPool, agent *Agent) {
	barrack := barracks.get(agent.ParentBarrack)
	if barrack == nil {
		agent.State = StatePendingRemoval
		return
	}

	var candidates [6]int
	count := 0

	for i, d := range hexDirs {
		nq := agent.PosQ + d[0]
		nr := agent.PosR + d[1]

		if !grid.InBounds(nq, nr) || !grid.IsWalkable(nq, nr) {
			continue
		}

		if HexDistance(nq, nr, barrack.PosQ, barrack.PosR) <= barrack.PatrolRadius {
			candidates[count] = i
			count++
		}
	}

	if count == 0 {
		return
	}

	choice := candidates[rng.Intn(count)]
	agent.NextQ = agent.PosQ + hexDirs[choice][0]
	agent.NextR = agent.PosR + hexDirs[choice][1]
	agent.State = StateMoving
}
