package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/tick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorBatchesApplyCleanly(t *testing.T) {
	state := drawstate.New()
	scheduler := tick.NewScheduler()
	scheduler.Register(newGenerator(7, 8))
	scheduler.Register(&drawstate.AdvanceStage{State: state})
	scheduler.Register(&drawstate.StatisticsStage{State: state})

	assert.NotPanics(t, func() {
		for range 5000 {
			scheduler.Once(1.0 / 60.0)
		}
	})

	stats := state.Statistics
	assert.Positive(t, stats.Events[event.KindPieceFalling])
	assert.Positive(t, stats.Events[event.KindGarbageAdded])
	assert.Positive(t, stats.Events[event.KindEndOfLineClearDelay])
	assert.Zero(t, stats.Events[event.KindUnknown])
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{}
	for i := 100; i >= 1; i-- {
		s.Samples = append(s.Samples, time.Duration(i)*time.Millisecond)
	}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 50500*time.Microsecond, s.Avg)
	assert.Equal(t, 100*time.Millisecond, s.P99)
	assert.Equal(t, 100*time.Millisecond, s.Samples[0], "samples keep their order")
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:      time.Second,
		EventsPerTick: 4,
		TotalTicks:    10,
		Stages:        []tick.StageStats{{Name: "AdvanceStage", ExecutionCount: 10}},
		Statistics:    drawstate.NewStatistics(),
	}
	r.Statistics.Events[event.KindGarbageAdded] = 3

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Total Ticks:** 10")
	assert.Contains(t, out, "- AdvanceStage: avg 0s, max 0s over 10 runs")
	assert.Contains(t, out, "- GarbageAdded: 3")
	assert.NotContains(t, out, "PieceFalling")
}
