package sim

import "testing"

// =============================================================================
// BENCHMARK SUITE: CRITICAL PATH PERFORMANCE TESTS
// Run with: go test -bench=. -benchmem ./internal/sim/...
// =============================================================================

func BenchmarkTick_100Agents(b *testing.B)  { benchmarkTick(b, 100) }
func BenchmarkTick_1000Agents(b *testing.B) { benchmarkTick(b, 1000) }
func BenchmarkTick_5000Agents(b *testing.B) { benchmarkTick(b, 5000) }

func benchmarkTick(b *testing.B, agentCount uint32) {
	ctx, err := NewContext(Config{
		GridType:             GridHex,
		MaxAgents:            agentCount,
		MaxBarracks:          16,
		GridWidth:            128,
		GridHeight:           128,
		CommandQueueCapacity: 4096,
		EventQueueCapacity:   4096,
		Seed:                 1,
	})
	if err != nil {
		b.Fatalf("Create: %v", err)
	}

	radius := int32(128)
	for i := uint32(0); i < agentCount; i++ {
		q := int32(i%uint32(radius)) - radius/2
		r := int32(i/uint32(radius)) - radius/2
		if !ctx.Grid.InBounds(q, r) {
			continue
		}
		var id AgentID
		ctx.AddAgentSync(q, r, 0, 0, InvalidBarrackID, &id)
		ctx.Tick()
		ctx.Submit(Command{Type: CmdSetGoal, AgentID: id, GoalQ: 0, GoalR: 0})
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ctx.Tick()
	}
}

func BenchmarkCommandQueuePush(b *testing.B) {
	q := newCommandQueue(4096)
	cmd := Command{Type: CmdSetGoal}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if q.Push(cmd) != nil {
			q.Pop()
			q.Push(cmd)
		}
	}
}

func BenchmarkSnapshotUpdate(b *testing.B) {
	agents := newAgentPool(2000)
	barracks := newBarrackPool(16)
	for i := 0; i < 2000; i++ {
		agents.allocate()
	}
	sp := newSnapshotPublisher(2000, 16)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sp.update(agents, barracks)
	}
}
