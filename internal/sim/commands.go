package sim

import (
	"log"
	"sync/atomic"
)

// CommandType discriminates a Command, mirroring every CMD_* discriminant in
// original_source/include/patika/enums.h (21 variants; spec.md §4.10 names
// the first 8 concretely and groups the rest as "reserved").
type CommandType uint8

const (
	CmdAddAgent CommandType = iota
	CmdAddAgentWithBehavior
	CmdRemoveAgent
	CmdSetGoal
	CmdSetBehavior
	CmdComputeNext
	CmdBindBarrack
	CmdAgentAddGuardTile
	CmdAgentAddGuardTiles
	CmdAgentRemoveGuardTile
	CmdAgentClearGuardTiles
	CmdAddBarrack
	CmdRemoveBarrack
	CmdBarrackAddGuardTile
	CmdBarrackAddGuardTiles
	CmdBarrackRemoveGuardTile
	CmdBarrackClearGuardTiles
	CmdAddBuilding
	CmdRemoveBuilding
	CmdSetTileState
	CmdDebugDumpState
)

// PatrolParams seeds a spawned agent's PatrolData.
type PatrolParams struct {
	CenterQ, CenterR int32
	Radius           int32
}

// ExploreParams seeds a spawned agent's ExploreData.
type ExploreParams struct {
	Mode int32
}

// AddAgentPayload is CMD_ADD_AGENT's out-of-line payload, per
// original_source/include/patika/commands/agent.h's AddAgentPayload.
// OutAgentID, when non-nil, receives the minted id once the command is
// processed (spec.md §4.10's write-back contract).
type AddAgentPayload struct {
	StartQ, StartR int32
	Faction, Side  uint8
	ParentBarrack  BarrackID
	Collision      CollisionData
	OutAgentID     *AgentID
}

// AddAgentWithBehaviorPayload is CMD_ADD_AGENT_WITH_BEHAVIOR's payload.
type AddAgentWithBehaviorPayload struct {
	AddAgentPayload
	InitialBehavior AgentBehavior
	Patrol          PatrolParams
	Explore         ExploreParams
}

// AddBarrackPayload is CMD_ADD_BARRACK's out-of-line payload.
type AddBarrackPayload struct {
	PosQ, PosR   int32
	Faction, Side uint8
	PatrolRadius int32
	MaxAgents    uint16
	Behavior     AgentBehavior
	OutBarrackID *BarrackID
}

// Command is a single tagged union value copied by value into the command
// queue, per spec.md §6's "command carrier": small fields are inlined, large
// payloads are referenced through a pointer the core takes ownership of once
// the command is dispatched.
type Command struct {
	Type CommandType

	AgentID   AgentID   // RemoveAgent, SetGoal, SetBehavior, BindBarrack, agent guard ops
	BarrackID BarrackID // RemoveBarrack, BindBarrack target, barrack guard ops

	GoalQ, GoalR int32 // SetGoal
	Behavior     AgentBehavior
	TileQ, TileR int32
	TileState    uint8
	GuardTile    AxialCoord
	GuardTiles   []AxialCoord

	AddAgent             *AddAgentPayload
	AddAgentWithBehavior *AddAgentWithBehaviorPayload
	AddBarrack           *AddBarrackPayload
}

// processCommand dispatches a single command, per spec.md §4.10. Ported
// from original_source/src/patika_commands.c's process_command. Dispatch is
// total: every branch (including the reserved/unimplemented ones) increments
// CommandsProcessed exactly once, matching spec.md's accounting rule.
func processCommand(ctx *Context, cmd *Command) {
	switch cmd.Type {
	case CmdAddAgent:
		dispatchAddAgent(ctx, cmd.AddAgent)
	case CmdAddAgentWithBehavior:
		dispatchAddAgentWithBehavior(ctx, cmd.AddAgentWithBehavior)
	case CmdRemoveAgent:
		dispatchRemoveAgent(ctx, cmd.AgentID)
	case CmdSetGoal:
		dispatchSetGoal(ctx, cmd.AgentID, cmd.GoalQ, cmd.GoalR)
	case CmdAddBarrack:
		dispatchAddBarrack(ctx, cmd.AddBarrack)
	case CmdSetTileState:
		dispatchSetTileState(ctx, cmd.TileQ, cmd.TileR, cmd.TileState)
	default:
		log.Printf("patika: command type %d unimplemented, counted as processed", cmd.Type)
	}
	atomic.AddUint64(&ctx.stats.CommandsProcessed, 1)
}

func dispatchAddAgent(ctx *Context, payload *AddAgentPayload) {
	if payload == nil {
		log.Print("patika: ADD_AGENT: nil payload")
		return
	}
	spawnAgent(ctx, payload, BehaviorIdle, nil)
}

func dispatchAddAgentWithBehavior(ctx *Context, payload *AddAgentWithBehaviorPayload) {
	if payload == nil {
		log.Print("patika: ADD_AGENT_WITH_BEHAVIOR: nil payload")
		return
	}
	spawnAgent(ctx, &payload.AddAgentPayload, payload.InitialBehavior, payload)
}

// spawnAgent implements the shared body of ADD_AGENT / ADD_AGENT_WITH_BEHAVIOR.
func spawnAgent(ctx *Context, payload *AddAgentPayload, behavior AgentBehavior, withBehavior *AddAgentWithBehaviorPayload) {
	if !ctx.Grid.InBounds(payload.StartQ, payload.StartR) {
		log.Printf("patika: ADD_AGENT: (%d, %d) out of bounds", payload.StartQ, payload.StartR)
		return
	}
	if !ctx.Grid.IsWalkable(payload.StartQ, payload.StartR) {
		log.Printf("patika: ADD_AGENT: (%d, %d) not walkable", payload.StartQ, payload.StartR)
		return
	}

	id := ctx.Agents.allocate()
	if id == InvalidAgentID {
		log.Print("patika: ADD_AGENT: agent pool full")
		return
	}
	agent := ctx.Agents.get(id)

	if !tryReserve(ctx.Grid, ctx.Agents, agent, payload.StartQ, payload.StartR) {
		ctx.Agents.free(id)
		log.Printf("patika: ADD_AGENT: (%d, %d) already occupied", payload.StartQ, payload.StartR)
		return
	}

	agent.PosQ, agent.PosR = payload.StartQ, payload.StartR
	agent.NextQ, agent.NextR = payload.StartQ, payload.StartR
	agent.TargetQ, agent.TargetR = payload.StartQ, payload.StartR
	agent.Faction = payload.Faction
	agent.Side = payload.Side
	agent.ParentBarrack = payload.ParentBarrack
	agent.Collision = payload.Collision
	agent.Behavior = behavior
	agent.State = StateIdle

	if withBehavior != nil {
		switch behavior {
		case BehaviorIdle:
			agent.State = StateIdle
		case BehaviorPatrol:
			agent.Patrol = PatrolData{
				CenterQ: withBehavior.Patrol.CenterQ,
				CenterR: withBehavior.Patrol.CenterR,
				Radius:  withBehavior.Patrol.Radius,
			}
			agent.State = StateCalculating
		case BehaviorExplore:
			agent.Explore = ExploreData{
				Mode:        withBehavior.Explore.Mode,
				LastTargetQ: agent.PosQ,
				LastTargetR: agent.PosR,
			}
			agent.State = StateCalculating
		case BehaviorGuard:
			log.Print("patika: ADD_AGENT_WITH_BEHAVIOR: GUARD not implemented, falling back to IDLE")
			agent.Behavior = BehaviorIdle
			agent.State = StateIdle
		case BehaviorFlee:
			log.Print("patika: ADD_AGENT_WITH_BEHAVIOR: FLEE not implemented, falling back to IDLE")
			agent.Behavior = BehaviorIdle
			agent.State = StateIdle
		default:
			log.Printf("patika: ADD_AGENT_WITH_BEHAVIOR: unknown behavior %d, falling back to IDLE", behavior)
			agent.Behavior = BehaviorIdle
			agent.State = StateIdle
		}
	}

	if payload.OutAgentID != nil {
		*payload.OutAgentID = agent.ID
	}

	atomic.AddUint32(&ctx.stats.ActiveAgents, 1)
}

func dispatchRemoveAgent(ctx *Context, id AgentID) {
	agent := ctx.Agents.get(id)
	if agent == nil {
		log.Printf("patika: REMOVE_AGENT: %d not found or inactive", id)
		return
	}

	ctx.Grid.ReservationClear(agent.PosQ, agent.PosR)
	ctx.Agents.free(id)
	emitEvent(ctx.Events, &ctx.stats, Event{Type: EventAgentRemoved, AgentID: id})

	atomic.AddUint32(&ctx.stats.ActiveAgents, ^uint32(0))
}

func dispatchSetGoal(ctx *Context, id AgentID, goalQ, goalR int32) {
	agent := ctx.Agents.get(id)
	if agent == nil {
		log.Printf("patika: SET_GOAL: %d not found", id)
		return
	}
	if !ctx.Grid.InBounds(goalQ, goalR) {
		log.Printf("patika: SET_GOAL: (%d, %d) out of bounds", goalQ, goalR)
		return
	}

	agent.TargetQ, agent.TargetR = goalQ, goalR
	agent.State = StateCalculating
}

func dispatchAddBarrack(ctx *Context, payload *AddBarrackPayload) {
	if payload == nil {
		log.Print("patika: ADD_BARRACK: nil payload")
		return
	}
	if !ctx.Grid.InBounds(payload.PosQ, payload.PosR) {
		log.Printf("patika: ADD_BARRACK: (%d, %d) out of bounds", payload.PosQ, payload.PosR)
		return
	}

	id := ctx.Barracks.allocate()
	if id == InvalidBarrackID {
		log.Print("patika: ADD_BARRACK: barrack pool full")
		return
	}
	barrack := ctx.Barracks.get(id)

	barrack.PosQ, barrack.PosR = payload.PosQ, payload.PosR
	barrack.Faction = payload.Faction
	barrack.Side = payload.Side
	barrack.PatrolRadius = payload.PatrolRadius
	barrack.MaxAgents = payload.MaxAgents
	barrack.Behavior = payload.Behavior

	if payload.OutBarrackID != nil {
		*payload.OutBarrackID = id
	}

	atomic.AddUint32(&ctx.stats.ActiveBarracks, 1)
}

func dispatchSetTileState(ctx *Context, q, r int32, state uint8) {
	if !ctx.Grid.InBounds(q, r) {
		log.Printf("patika: SET_TILE_STATE: (%d, %d) out of bounds", q, r)
		return
	}
	ctx.Grid.TileSetState(q, r, state)
}
