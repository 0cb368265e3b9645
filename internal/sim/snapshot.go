package sim

import "sync/atomic"

// AgentSnapshot is one agent's published subset of fields, per spec.md
// §4.11.
type AgentSnapshot struct {
	ID            AgentID
	ParentBarrack BarrackID
	State         AgentState
	Behavior      AgentBehavior
	Faction       uint8
	Side          uint8
	PosQ, PosR    int32
	NextQ, NextR  int32
	TargetQ, TargetR int32
}

// BarrackSnapshot is one barrack's published subset of fields.
type BarrackSnapshot struct {
	ID           BarrackID
	Faction      uint8
	Side         uint8
	State        AgentState
	PosQ, PosR   int32
	PatrolRadius int32
	AgentCount   uint16
}

// Snapshot is a fully-assembled, read-only point-in-time view, per spec.md
// §4.11: "Readers that must retain data beyond the next tick must copy."
type Snapshot struct {
	Agents   []AgentSnapshot
	Barracks []BarrackSnapshot
	Version  uint64
}

// snapshotBuffer is one of the two alternately-written instances sized to
// pool capacities, ported from internal/game/game_snapshot.go's
// preallocated, slice-reset-on-reuse SnapshotPool texture.
type snapshotBuffer struct {
	agents   []AgentSnapshot
	barracks []BarrackSnapshot
}

// snapshotPublisher owns the two buffers plus the atomic published index and
// monotonic version counter, per spec.md §4.11 / §4.13. Grounded on
// original_source/src/patika_snapshot.c's double-buffer protocol.
type snapshotPublisher struct {
	buffers  [2]snapshotBuffer
	index    atomic.Uint32 // which of buffers[] is currently published
	version  atomic.Uint64
}

func newSnapshotPublisher(agentCapacity, barrackCapacity int) *snapshotPublisher {
	sp := &snapshotPublisher{}
	for i := range sp.buffers {
		sp.buffers[i].agents = make([]AgentSnapshot, 0, agentCapacity)
		sp.buffers[i].barracks = make([]BarrackSnapshot, 0, barrackCapacity)
	}
	return sp
}

// update walks the active slots of both pools in slot order, copies the
// published subset of fields into the non-published buffer, bumps the
// version, and publishes the new index with release semantics.
func (sp *snapshotPublisher) update(agents *agentPool, barracks *barrackPool) {
	writeIndex := 1 - sp.index.Load()
	buf := &sp.buffers[writeIndex]

	buf.agents = buf.agents[:0]
	agents.forEachActive(func(a *Agent) {
		buf.agents = append(buf.agents, AgentSnapshot{
			ID:            a.ID,
			ParentBarrack: a.ParentBarrack,
			State:         a.State,
			Behavior:      a.Behavior,
			Faction:       a.Faction,
			Side:          a.Side,
			PosQ:          a.PosQ,
			PosR:          a.PosR,
			NextQ:         a.NextQ,
			NextR:         a.NextR,
			TargetQ:       a.TargetQ,
			TargetR:       a.TargetR,
		})
	})

	buf.barracks = buf.barracks[:0]
	barracks.forEachActive(func(b *Barrack) {
		buf.barracks = append(buf.barracks, BarrackSnapshot{
			ID:           b.ID,
			Faction:      b.Faction,
			Side:         b.Side,
			State:        b.State,
			PosQ:         b.PosQ,
			PosR:         b.PosR,
			PatrolRadius: b.PatrolRadius,
			AgentCount:   b.AgentCount,
		})
	})

	sp.version.Add(1)
	sp.index.Store(writeIndex)
}

// latest loads the published index with acquire semantics and returns a
// reference valid until the next update call.
func (sp *snapshotPublisher) latest() Snapshot {
	index := sp.index.Load()
	buf := &sp.buffers[index]
	return Snapshot{
		Agents:   buf.agents,
		Barracks: buf.barracks,
		Version:  sp.version.Load(),
	}
}
