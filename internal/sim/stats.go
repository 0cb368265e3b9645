package sim

import "sync/atomic"

// Stats mirrors spec.md §4.13's stats struct, plus EventsDropped (the
// resolution of spec.md §9's SPSC-overflow open question: a dedicated
// counter rather than folding drops into events_emitted).
//
// Every field is written only from the single simulation goroutine during
// a tick, but spec.md §5/§6 allows a reader to call Stats concurrently with
// Tick, so every write goes through sync/atomic (matching the original
// BlockedMoves treatment) and every read in Snapshot does too.
type Stats struct {
	TotalTicks        uint64
	CommandsProcessed uint64
	EventsEmitted     uint64
	EventsDropped     uint64
	BlockedMoves      uint64
	ReplanCount       uint64
	ActiveAgents      uint32
	ActiveBarracks    uint32
}

// Snapshot returns a point-in-time copy safe to read from any goroutine.
func (s *Stats) Snapshot() Stats {
	return Stats{
		TotalTicks:        atomic.LoadUint64(&s.TotalTicks),
		CommandsProcessed: atomic.LoadUint64(&s.CommandsProcessed),
		EventsEmitted:     atomic.LoadUint64(&s.EventsEmitted),
		EventsDropped:     atomic.LoadUint64(&s.EventsDropped),
		BlockedMoves:      atomic.LoadUint64(&s.BlockedMoves),
		ReplanCount:       atomic.LoadUint64(&s.ReplanCount),
		ActiveAgents:      atomic.LoadUint32(&s.ActiveAgents),
		ActiveBarracks:    atomic.LoadUint32(&s.ActiveBarracks),
	}
}
