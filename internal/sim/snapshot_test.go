package sim

import "testing"

func TestSnapshotPublisherUpdateAndLatest(t *testing.T) {
	agents := newAgentPool(4)
	barracks := newBarrackPool(2)

	id := agents.allocate()
	agent := agents.get(id)
	agent.PosQ, agent.PosR = 1, 2
	agent.State = StateMoving

	sp := newSnapshotPublisher(4, 2)
	before := sp.latest()
	if before.Version != 0 {
		t.Fatalf("expected initial version 0, got %d", before.Version)
	}

	sp.update(agents, barracks)
	snap := sp.latest()

	if snap.Version != 1 {
		t.Fatalf("expected version 1 after first update, got %d", snap.Version)
	}
	if len(snap.Agents) != 1 {
		t.Fatalf("expected 1 agent snapshot, got %d", len(snap.Agents))
	}
	if snap.Agents[0].PosQ != 1 || snap.Agents[0].PosR != 2 {
		t.Fatalf("expected snapshot pos (1,2), got (%d,%d)", snap.Agents[0].PosQ, snap.Agents[0].PosR)
	}
}

func TestSnapshotPublisherSwapsBuffers(t *testing.T) {
	agents := newAgentPool(4)
	barracks := newBarrackPool(2)
	sp := newSnapshotPublisher(4, 2)

	sp.update(agents, barracks)
	firstIndex := sp.index.Load()

	agents.allocate()
	sp.update(agents, barracks)
	secondIndex := sp.index.Load()

	if firstIndex == secondIndex {
		t.Fatal("expected the publisher to alternate buffers on each update")
	}
	if len(sp.latest().Agents) != 1 {
		t.Fatalf("expected the latest snapshot to reflect the new agent")
	}
}

func TestSnapshotReflectsRemoval(t *testing.T) {
	agents := newAgentPool(4)
	barracks := newBarrackPool(2)
	sp := newSnapshotPublisher(4, 2)

	id := agents.allocate()
	sp.update(agents, barracks)
	if len(sp.latest().Agents) != 1 {
		t.Fatal("expected 1 agent before free")
	}

	agents.free(id)
	sp.update(agents, barracks)
	if len(sp.latest().Agents) != 0 {
		t.Fatal("expected 0 agents after free and a subsequent update")
	}
}
