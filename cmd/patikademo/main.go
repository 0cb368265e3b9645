// Command patikademo is a reference HTTP+WebSocket embedder around
// patika/internal/sim, grounded on cmd/server/main.go's structure: load
// .env, load config, wire dependencies, start background loops, serve, wait
// for a signal, shut down.
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"patika/internal/metrics"
	"patika/internal/sim"
	"patika/internal/simconfig"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("patikademo: no .env file found, using environment variables only")
	}

	serverCfg := simconfig.ServerFromEnv()
	simCfg := simconfig.SimFromEnv()

	ctx, err := sim.NewContext(simCfg)
	if err != nil {
		log.Fatalf("patikademo: sim.Create: %v", err)
	}

	log.Printf("patikademo: starting (port=%d tick_rate=%d grid=%v %dx%d agents=%d barracks=%d)",
		serverCfg.Port, serverCfg.TickRate, simCfg.GridType, simCfg.GridWidth, simCfg.GridHeight,
		simCfg.MaxAgents, simCfg.MaxBarracks)

	hub := newSnapshotHub()
	go hub.run()

	recorder := metrics.NewRecorder()
	stopTick := make(chan struct{})
	go runTickLoop(ctx, hub, recorder, serverCfg.TickRate, stopTick)

	limiter := NewIPRateLimiter(DefaultRateLimitConfig)
	router := newRouter(ctx, hub, limiter)

	addr := ":" + strconv.Itoa(serverCfg.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Printf("patikademo: listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("patikademo: ListenAndServe: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("patikademo: shutting down")
	close(stopTick)
	ctx.Close()
}

// runTickLoop drives the single simulation goroutine at tickRate Hz, pushing
// each tick's snapshot to the WebSocket hub and recording metrics.
func runTickLoop(ctx *sim.Context, hub *snapshotHub, recorder *metrics.Recorder, tickRate int, stop <-chan struct{}) {
	if tickRate <= 0 {
		tickRate = 20
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			start := time.Now()
			ctx.Tick()
			metrics.ObserveTickDuration(time.Since(start).Seconds())

			recorder.Observe(ctx.Stats())

			select {
			case hub.broadcast <- ctx.Snapshot():
			default:
				// Hub is backed up; drop this frame rather than block the tick.
			}
		}
	}
}
