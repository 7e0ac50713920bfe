// Command stackview-stress measures how long the board viewer takes to apply
// a tick of random engine events.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/internal/logging"
	"github.com/plus3/stackview/render"
	"github.com/plus3/stackview/tick"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	eventsPerTick := flag.Int("events", 4, "The number of events generated per tick.")
	seed := flag.Uint64("seed", 1, "Seed for the event generator.")
	withRender := flag.Bool("render", false, "Also build the render tile list every tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stackview-stress: %v\n", err)
		os.Exit(2)
	}
	if *eventsPerTick < 1 {
		fmt.Fprintf(os.Stderr, "stackview-stress: events must be positive, got %d\n", *eventsPerTick)
		os.Exit(2)
	}

	logger.Info("starting stress test", "duration", *duration, "events", *eventsPerTick, "seed", *seed)

	state := drawstate.New(drawstate.WithLogger(logger))
	scheduler := tick.NewScheduler()
	scheduler.RegisterNamed("Generator", newGenerator(*seed, *eventsPerTick))
	scheduler.Register(&drawstate.AdvanceStage{State: state})
	scheduler.Register(&drawstate.StatisticsStage{State: state})
	if *withRender {
		tiles := make([]render.Tile, 0, render.TileCount+8)
		scheduler.RegisterNamed("Render", tick.StageFunc(func(*tick.Frame) {
			tiles = render.AppendTiles(tiles[:0], state)
		}))
	}

	report := &Report{
		Duration:       *duration,
		EventsPerTick:  *eventsPerTick,
		Seed:           *seed,
		Render:         *withRender,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	report.TotalTicks = runUntil(ctx, scheduler, &report.TickTime)
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Statistics = state.Statistics
	report.Stages = scheduler.Stats().Stages

	logger.Info("simulation finished", "ticks", report.TotalTicks)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// runUntil ticks as fast as possible until ctx is done, recording the
// duration of every tick.
func runUntil(ctx context.Context, scheduler *tick.Scheduler, samples *Stats) int64 {
	var ticks int64
	lastFrameTime := time.Now()

	for ctx.Err() == nil {
		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		tickStart := time.Now()
		scheduler.Once(deltaTime.Seconds())
		samples.Samples = append(samples.Samples, time.Since(tickStart))
		ticks++
	}

	slog.Debug("tick loop stopped", "ticks", ticks)
	return ticks
}
