// Package dashboard renders a time series of sim.Stats snapshots into a
// self-contained HTML chart, for the patikastats CLI. Grounded on the
// go-echarts/go-echarts/v2 dependency carried in the pack (no source
// example shipped with it; wired here from the library's documented line
// chart API).
package dashboard

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"patika/internal/sim"
)

// Sample is one time-stamped stats observation.
type Sample struct {
	Tick  uint64
	Stats sim.Stats
}

// Render writes a self-contained HTML page to w holding one line chart with
// a series per tracked stat (active agents, commands processed, events
// emitted/dropped, blocked moves).
func Render(w io.Writer, samples []Sample) error {
	ticks := make([]string, len(samples))
	agents := make([]opts.LineData, len(samples))
	commands := make([]opts.LineData, len(samples))
	events := make([]opts.LineData, len(samples))
	dropped := make([]opts.LineData, len(samples))
	blocked := make([]opts.LineData, len(samples))

	for i, s := range samples {
		ticks[i] = fmt.Sprintf("%d", s.Tick)
		agents[i] = opts.LineData{Value: s.Stats.ActiveAgents}
		commands[i] = opts.LineData{Value: s.Stats.CommandsProcessed}
		events[i] = opts.LineData{Value: s.Stats.EventsEmitted}
		dropped[i] = opts.LineData{Value: s.Stats.EventsDropped}
		blocked[i] = opts.LineData{Value: s.Stats.BlockedMoves}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "patika simulation stats"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "tick"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(ticks).
		AddSeries("active_agents", agents).
		AddSeries("commands_processed", commands).
		AddSeries("events_emitted", events).
		AddSeries("events_dropped", dropped).
		AddSeries("blocked_moves", blocked).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
