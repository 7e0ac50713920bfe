package main

import (
	"log/slog"
	"time"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/script"
	"github.com/plus3/stackview/tick"
)

// restartDelay is how long the finished board stays up before the demo
// script starts over.
const restartDelay = 90

// viewer wires the demo producer to a DrawState through a scheduler. Extra
// stages registered after newViewer run once the tick's events are applied.
type viewer struct {
	state     *drawstate.DrawState
	producer  *script.Producer
	scheduler *tick.Scheduler
	logger    *slog.Logger

	loop    bool
	idle    int
	started time.Time
}

func newViewer(logger *slog.Logger, loop bool) (*viewer, error) {
	producer, err := script.NewProducer(script.Demo(), script.DefaultConfig())
	if err != nil {
		return nil, err
	}

	v := &viewer{
		state:     drawstate.New(drawstate.WithLogger(logger)),
		producer:  producer,
		scheduler: tick.NewScheduler(),
		logger:    logger,
		loop:      loop,
		started:   time.Now(),
	}

	v.scheduler.Register(producer)
	v.scheduler.Register(&drawstate.AdvanceStage{State: v.state})
	v.scheduler.Register(&drawstate.StatisticsStage{State: v.state})
	v.scheduler.RegisterNamed("Restart", tick.StageFunc(v.restart))
	return v, nil
}

// restart starts the script over once the producer has been done for
// restartDelay ticks. The reset runs after every stage so renderers never see
// a half-reset board.
func (v *viewer) restart(frame *tick.Frame) {
	if !v.loop || !v.producer.Done() {
		return
	}
	v.idle++
	if v.idle < restartDelay {
		return
	}
	v.idle = 0

	frame.Commands.Defer(func() {
		v.logger.Info("demo finished, restarting",
			"tick", frame.Tick,
			"pieces", v.state.Statistics.Pieces,
			"lines", v.state.Statistics.Lines,
			"elapsed", time.Since(v.started).Round(time.Millisecond),
		)
		v.producer.Reset()
		*v.state = *drawstate.New(drawstate.WithLogger(v.logger))
		v.started = time.Now()
	})
}
