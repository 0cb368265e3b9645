package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"patika/internal/metrics"
	"patika/internal/sim"
)

// addAgentRequest is the JSON body for POST /agents.
type addAgentRequest struct {
	Q, R          int32
	Faction, Side uint8
	ParentBarrack uint16
}

// setGoalRequest is the JSON body for POST /agents/{id}/goal.
type setGoalRequest struct {
	Q, R int32
}

func newRouter(ctx *sim.Context, hub *snapshotHub, limiter *IPRateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(limiter.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Get("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ctx.Snapshot())
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ctx.Stats())
	})

	r.Post("/agents", func(w http.ResponseWriter, r *http.Request) {
		var req addAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var id sim.AgentID
		err := ctx.AddAgentSync(req.Q, req.R, req.Faction, req.Side, sim.BarrackID(req.ParentBarrack), &id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]uint32{"agent_id": uint32(id)})
	})

	r.Post("/agents/{id}/goal", func(w http.ResponseWriter, r *http.Request) {
		idParam, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			http.Error(w, "invalid agent id", http.StatusBadRequest)
			return
		}

		var req setGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = ctx.Submit(sim.Command{
			Type:    sim.CmdSetGoal,
			AgentID: sim.AgentID(idParam),
			GoalQ:   req.Q,
			GoalR:   req.R,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})

	r.Get("/ws", hub.serveWS)

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
