package sim

import "sync/atomic"

// Context is the public handle: configuration, queues, pools, the map, the
// snapshot publisher, the RNG, and the stats struct, per spec.md §4.13.
// Ported from original_source/src/patika_core.c's PatikaContext, generalized
// per internal/game/engine.go's Engine — with one deliberate deviation:
// no mutex guards Context's fields, because every cross-goroutine
// interaction already goes through a lock-free queue or atomic snapshot
// index by construction; a RWMutex here would only add contention spec.md
// never asks for.
type Context struct {
	Config Config

	commands *commandQueue
	Events   *eventQueue

	Agents   *agentPool
	Barracks *barrackPool
	Grid     *Grid

	snapshots *snapshotPublisher

	rng   RNG
	stats Stats
}

// NewContext allocates a context with the configured capacities and seed,
// per spec.md §6's create(config). Ported from patika_core.c's
// patika_create.
func NewContext(cfg Config) (*Context, error) {
	if cfg.MaxAgents == 0 {
		cfg.MaxAgents = 1
	}
	ctx := &Context{
		Config:    cfg,
		commands:  newCommandQueue(cfg.CommandQueueCapacity),
		Events:    newEventQueue(cfg.EventQueueCapacity),
		Agents:    newAgentPool(cfg.MaxAgents),
		Barracks:  newBarrackPool(cfg.MaxBarracks),
		Grid:      NewGrid(cfg.GridType, cfg.GridWidth, cfg.GridHeight),
		snapshots: newSnapshotPublisher(int(cfg.MaxAgents), int(cfg.MaxBarracks)),
		rng:       NewRNG(cfg.Seed),
	}
	return ctx, nil
}

// Close tears a context down. Go's garbage collector reclaims the backing
// slices; Close exists so embedders have the same create/destroy pairing
// the original API exposes, and as a hook for future resources (file
// handles, OS threads) that do need explicit teardown.
func (ctx *Context) Close() {}

// Submit enqueues a single command. Many producer goroutines may call this
// concurrently; it never blocks.
func (ctx *Context) Submit(cmd Command) error {
	return ctx.commands.Push(cmd)
}

// SubmitBatch enqueues a batch, stopping at the first failure. Per
// SPEC_FULL.md's resolution of spec.md §9's open question: the prefix that
// succeeded remains enqueued; submitted reports how many commands were
// accepted before err (if any) occurred.
func (ctx *Context) SubmitBatch(cmds []Command) (submitted int, err error) {
	for i, cmd := range cmds {
		if pushErr := ctx.commands.Push(cmd); pushErr != nil {
			return i, pushErr
		}
	}
	return len(cmds), nil
}

// AddAgentSync is the convenience described in spec.md §6: it allocates a
// payload and enqueues an ADD_AGENT, writing the minted id back through
// outID once the command is processed by a subsequent Tick.
func (ctx *Context) AddAgentSync(q, r int32, faction, side uint8, parentBarrack BarrackID, outID *AgentID) error {
	return ctx.Submit(Command{
		Type: CmdAddAgent,
		AddAgent: &AddAgentPayload{
			StartQ:        q,
			StartR:        r,
			Faction:       faction,
			Side:          side,
			ParentBarrack: parentBarrack,
			OutAgentID:    outID,
		},
	})
}

// PollEvents drains up to len(out) events into out, returning the count
// copied, per spec.md §6's poll_events.
func (ctx *Context) PollEvents(out []Event) int {
	n := 0
	for n < len(out) {
		evt, ok := ctx.Events.Pop()
		if !ok {
			break
		}
		out[n] = evt
		n++
	}
	return n
}

// Snapshot returns the currently published snapshot, per spec.md §6.
func (ctx *Context) Snapshot() Snapshot {
	return ctx.snapshots.latest()
}

// Stats returns a by-value stats snapshot, per spec.md §6.
func (ctx *Context) Stats() Stats {
	return ctx.stats.Snapshot()
}

// Tick runs one simulation step, per spec.md §4.12. Must be called only
// from the single simulation goroutine.
func (ctx *Context) Tick() {
	for {
		cmd, ok := ctx.commands.Pop()
		if !ok {
			break
		}
		processCommand(ctx, &cmd)
	}

	ctx.Agents.forEachActive(func(agent *Agent) {
		switch agent.State {
		case StateCalculating:
			if agent.Behavior == BehaviorPatrol {
				computePatrol(ctx.Grid, &ctx.rng, ctx.Barracks, agent)
			} else {
				computeNextStep(ctx.Grid, &ctx.rng, ctx.Events, &ctx.stats, agent)
			}
		case StateMoving:
			advanceMovement(ctx.Grid, ctx.Agents, ctx.Events, &ctx.stats, agent)
		default:
			// Idle, Interacting, PendingRemoval: no-op this pass.
		}
	})

	ctx.snapshots.update(ctx.Agents, ctx.Barracks)

	atomic.AddUint64(&ctx.stats.TotalTicks, 1)
	atomic.StoreUint32(&ctx.stats.ActiveAgents, ctx.Agents.activeCount)
	atomic.StoreUint32(&ctx.stats.ActiveBarracks, uint32(ctx.Barracks.nextID))
}
