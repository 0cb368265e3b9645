// Command patikastats drives a headless stress run and writes an HTML
// dashboard of the collected per-tick statistics, for offline load analysis
// without the HTTP embedder.
package main

import (
	"flag"
	"log"
	"os"

	"patika/internal/dashboard"
	"patika/internal/sim"
)

type spawn struct {
	id   sim.AgentID
	q, r int32
}

func main() {
	ticks := flag.Int("ticks", 2000, "number of ticks to run")
	agents := flag.Int("agents", 500, "number of agents to spawn")
	radius := flag.Int("radius", 30, "hex grid radius")
	sampleEvery := flag.Int("sample-every", 10, "record a sample every N ticks")
	out := flag.String("out", "stats.html", "output HTML path")
	flag.Parse()

	ctx, err := sim.NewContext(sim.Config{
		GridType:             sim.GridHex,
		MaxAgents:            uint32(*agents) + 1,
		MaxBarracks:          16,
		GridWidth:            int32(*radius),
		CommandQueueCapacity: 4096,
		EventQueueCapacity:   4096,
		Seed:                 1,
	})
	if err != nil {
		log.Fatalf("patikastats: sim.Create: %v", err)
	}

	r := int32(*radius)
	spawns := make([]spawn, 0, *agents)
	for q := -r; q <= r && len(spawns) < *agents; q++ {
		for rr := -r; rr <= r && len(spawns) < *agents; rr++ {
			if !ctx.Grid.InBounds(q, rr) {
				continue
			}
			var id sim.AgentID
			if err := ctx.AddAgentSync(q, rr, uint8(len(spawns)%4), 0, sim.InvalidBarrackID, &id); err != nil {
				continue
			}
			spawns = append(spawns, spawn{id: id, q: q, r: rr})
		}
	}

	// One tick mints the queued ADD_AGENT commands and writes their ids back
	// through the outID pointers above, before goals can reference them.
	ctx.Tick()
	for _, s := range spawns {
		ctx.Submit(sim.Command{Type: sim.CmdSetGoal, AgentID: s.id, GoalQ: -s.r, GoalR: -s.q})
	}

	samples := make([]dashboard.Sample, 0, *ticks / *sampleEvery+1)
	for i := 1; i < *ticks; i++ {
		ctx.Tick()
		if i%*sampleEvery == 0 {
			samples = append(samples, dashboard.Sample{
				Tick:  uint64(i),
				Stats: ctx.Stats(),
			})
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("patikastats: create %s: %v", *out, err)
	}
	defer f.Close()

	if err := dashboard.Render(f, samples); err != nil {
		log.Fatalf("patikastats: Render: %v", err)
	}

	log.Printf("patikastats: wrote %s (%d agents, %d ticks, %d samples)", *out, len(spawns), *ticks, len(samples))
}
