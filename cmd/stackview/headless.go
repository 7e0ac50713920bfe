package main

import (
	"context"
	"fmt"
	"io"

	"github.com/plus3/stackview/render"
)

// runHeadless ticks without pacing until the script finishes, cfg.Ticks
// ticks have run or ctx is cancelled, then prints the board and totals.
func runHeadless(ctx context.Context, cfg *Config, v *viewer, out io.Writer) error {
	dt := 1 / float64(cfg.TPS)

	for v.scheduler.Ticks() < uint64(cfg.Ticks) && !v.producer.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.scheduler.Once(dt)
	}

	stats := &v.state.Statistics
	v.logger.Info("headless run finished",
		"ticks", v.scheduler.Ticks(),
		"state", fmt.Sprintf("%T", v.state.State()),
		"pieces", stats.Pieces,
		"lines", stats.Lines,
		"tetrises", stats.Tetrises,
		"perfect_clears", stats.PerfectClears,
		"max_combo", stats.MaxCombo,
		"garbage_received", stats.GarbageReceived,
	)
	for _, st := range v.scheduler.Stats().Stages {
		v.logger.Debug("stage", "name", st.Name, "runs", st.ExecutionCount, "avg", st.AvgDuration, "max", st.MaxDuration)
	}

	_, err := io.WriteString(out, render.Text(v.state))
	return err
}
