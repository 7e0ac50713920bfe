package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/tick"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	EventsPerTick int
	Seed          uint64
	Render        bool

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Stages         []tick.StageStats
	Statistics     drawstate.Statistics
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	for _, sample := range s.Samples {
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P99 = sorted[len(sorted)*99/100]
}

// EventCounts lists the recorded event counts in Kind order, skipping kinds
// that never occurred.
func (r *Report) EventCounts() []EventCount {
	var counts []EventCount
	for k := event.KindUnknown; k <= event.KindGameOver; k++ {
		if n := r.Statistics.Events[k]; n > 0 {
			counts = append(counts, EventCount{Kind: k, Count: n})
		}
	}
	return counts
}

type EventCount struct {
	Kind  event.Kind
	Count int
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stackview Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Events Per Tick:** {{.EventsPerTick}}
- **Seed:** {{.Seed}}
- **Render Tiles:** {{.Render}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
  - **P99:** {{.TickTime.P99}}

## Stages
{{range .Stages}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Events Applied
{{range .EventCounts}}- {{.Kind}}: {{.Count}}
{{end}}- Lines Cleared: {{.Statistics.Lines}}
- Garbage Received: {{.Statistics.GarbageReceived}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
