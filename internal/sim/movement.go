package sim

import "sync/atomic"

// advanceMovement runs one tick of the movement engine for agent, per
// spec.md §4.9. Ported from original_source/src/patika_movement.c's
// movement_advance.
func advanceMovement(grid *Grid, agents *agentPool, events *eventQueue, stats *Stats, agent *Agent) {
	agent.Progress += agent.Speed
	if agent.Progress < MaxProgress {
		return
	}

	index := agent.ID.Index()
	grid.ReservationClear(agent.PosQ, agent.PosR)

	destWord := grid.ReservationGet(agent.NextQ, agent.NextR)
	if wordIsOccupied(destWord) {
		occupant := agents.getByIndex(wordAgentIndex(destWord))
		if occupant != nil && !canEnter(agent, occupant) {
			// Protocol violation: the destination is occupied by a live agent
			// this one may not enter. Restore the old slot, reset progress,
			// and go back to planning.
			grid.ReservationSet(agent.PosQ, agent.PosR, occupiedWord(index))
			agent.Progress = 0
			agent.State = StateCalculating
			atomic.AddUint64(&stats.BlockedMoves, 1)
			return
		}
		if occupant != nil && shouldAttack(agent, occupant) {
			agent.Interaction = AgentInteraction{Kind: InteractionAttack, TargetID: occupant.ID}
		}
	}

	grid.ReservationSet(agent.NextQ, agent.NextR, occupiedWord(index))
	agent.PosQ, agent.PosR = agent.NextQ, agent.NextR
	agent.Progress = 0

	if agent.PosQ == agent.TargetQ && agent.PosR == agent.TargetR {
		agent.State = StateIdle
		emitEvent(events, stats, Event{Type: EventReachedGoal, AgentID: agent.ID, Q: agent.PosQ, R: agent.PosR})
		return
	}

	agent.State = StateCalculating
}
