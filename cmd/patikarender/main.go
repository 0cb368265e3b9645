// Command patikarender runs a short simulation and writes the final
// snapshot to a PNG file, for offline debugging without the HTTP embedder.
package main

import (
	"flag"
	"log"
	"os"

	"patika/internal/render"
	"patika/internal/sim"
)

func main() {
	ticks := flag.Int("ticks", 50, "number of ticks to run before rendering")
	agents := flag.Int("agents", 40, "number of agents to spawn")
	radius := flag.Int("radius", 12, "hex grid radius")
	out := flag.String("out", "snapshot.png", "output PNG path")
	flag.Parse()

	ctx, err := sim.NewContext(sim.Config{
		GridType:             sim.GridHex,
		MaxAgents:            uint32(*agents) + 1,
		MaxBarracks:          4,
		GridWidth:            int32(*radius),
		CommandQueueCapacity: 1024,
		EventQueueCapacity:   1024,
		Seed:                 1,
	})
	if err != nil {
		log.Fatalf("patikarender: sim.Create: %v", err)
	}

	r := int32(*radius)
	spawned := 0
	for q := -r; q <= r && spawned < *agents; q++ {
		for rr := -r; rr <= r && spawned < *agents; rr++ {
			if !ctx.Grid.InBounds(q, rr) {
				continue
			}
			var id sim.AgentID
			if err := ctx.AddAgentSync(q, rr, uint8(spawned%4), 0, sim.InvalidBarrackID, &id); err != nil {
				continue
			}
			ctx.Tick()
			ctx.Submit(sim.Command{Type: sim.CmdSetGoal, AgentID: id, GoalQ: 0, GoalR: 0})
			spawned++
		}
	}

	for i := 0; i < *ticks; i++ {
		ctx.Tick()
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("patikarender: create %s: %v", *out, err)
	}
	defer f.Close()

	opts := render.DefaultOptions()
	opts.GridType = sim.GridHex
	if err := render.WritePNG(f, ctx.Snapshot(), opts); err != nil {
		log.Fatalf("patikarender: WritePNG: %v", err)
	}

	log.Printf("patikarender: wrote %s (%d agents, %d ticks)", *out, spawned, *ticks)
}
