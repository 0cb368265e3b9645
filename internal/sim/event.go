package sim

import "sync/atomic"

// EventType classifies an Event, per spec.md §6.
type EventType uint8

const (
	EventReachedGoal EventType = iota
	EventStuck
	EventBlocked
	EventReplanNeeded
	EventAgentRemoved
)

// String returns a human-readable event type, matching the register of
// internal/game/event.go's EventType.String().
func (t EventType) String() string {
	switch t {
	case EventReachedGoal:
		return "reached_goal"
	case EventStuck:
		return "stuck"
	case EventBlocked:
		return "blocked"
	case EventReplanNeeded:
		return "replan_needed"
	case EventAgentRemoved:
		return "agent_removed"
	default:
		return "unknown"
	}
}

// Event is the fixed-shape record described by spec.md §6: (type, agent_id, q, r).
type Event struct {
	Type    EventType
	AgentID AgentID
	Q, R    int32
}

// emitEvent pushes evt onto the queue and accounts it in stats, counting a
// full queue as a drop rather than silently discarding it (spec.md §4.3:
// "drops are accounted in stats").
func emitEvent(events *eventQueue, stats *Stats, evt Event) {
	if events.Push(evt) {
		atomic.AddUint64(&stats.EventsEmitted, 1)
	} else {
		atomic.AddUint64(&stats.EventsDropped, 1)
	}
}
