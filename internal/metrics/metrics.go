// Package metrics exports sim.Stats as Prometheus series for the demo
// embedder. Grounded on internal/api/observability.go's promauto gauge/
// counter style.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patika/internal/sim"
)

var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patika_tick_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
	})

	totalTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_ticks_total",
		Help: "Total simulation ticks run",
	})

	commandsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_commands_processed_total",
		Help: "Total commands drained from the command queue",
	})

	eventsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_events_emitted_total",
		Help: "Total events pushed onto the event queue",
	})

	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_events_dropped_total",
		Help: "Total events dropped because the event queue was full",
	})

	blockedMoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_blocked_moves_total",
		Help: "Total arrivals rejected by a collision check after reservation",
	})

	replanCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "patika_replan_count_total",
		Help: "Total times an agent was forced back into Calculating",
	})

	activeAgents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "patika_active_agents",
		Help: "Current number of live agents",
	})

	activeBarracks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "patika_active_barracks",
		Help: "Current number of live barracks",
	})
)

// lastTotals tracks the previous Stats snapshot so the counters above (which
// are cumulative Prometheus counters) can be advanced by a delta against
// sim.Stats' own cumulative fields, rather than re-observing the same total
// repeatedly.
type lastTotals struct {
	ticks, commands, emitted, dropped, blocked, replans uint64
}

// Recorder turns periodic sim.Stats snapshots into Prometheus observations.
type Recorder struct {
	prev lastTotals
}

// NewRecorder returns a Recorder ready to observe its first snapshot.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe records the delta between this snapshot and the last one seen.
func (r *Recorder) Observe(stats sim.Stats) {
	totalTicks.Add(float64(stats.TotalTicks - r.prev.ticks))
	commandsProcessed.Add(float64(stats.CommandsProcessed - r.prev.commands))
	eventsEmitted.Add(float64(stats.EventsEmitted - r.prev.emitted))
	eventsDropped.Add(float64(stats.EventsDropped - r.prev.dropped))
	blockedMoves.Add(float64(stats.BlockedMoves - r.prev.blocked))
	replanCount.Add(float64(stats.ReplanCount - r.prev.replans))

	activeAgents.Set(float64(stats.ActiveAgents))
	activeBarracks.Set(float64(stats.ActiveBarracks))

	r.prev = lastTotals{
		ticks:     stats.TotalTicks,
		commands:  stats.CommandsProcessed,
		emitted:   stats.EventsEmitted,
		dropped:   stats.EventsDropped,
		blocked:   stats.BlockedMoves,
		replans:   stats.ReplanCount,
	}
}

// ObserveTickDuration records how long a single Tick call took.
func ObserveTickDuration(seconds float64) {
	tickDuration.Observe(seconds)
}

// Handler returns the /metrics HTTP handler for mounting on a router.
func Handler() http.Handler {
	return promhttp.Handler()
}
