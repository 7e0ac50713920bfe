package tick

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/stackview/event"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	StageCount int
	Ticks      uint64
	LastTick   time.Duration
	Stages     []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered stages once per tick, in order.
type Scheduler struct {
	stages     []Stage
	stageStats []*stageStatsInternal

	ticks    uint64
	lastTick time.Duration
	events   []event.Event
	commands *Commands
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		stages:   make([]Stage, 0),
		commands: newCommands(),
	}
}

// Register appends a stage. The stage's type name is used in stats.
func (s *Scheduler) Register(stage Stage) {
	s.RegisterNamed(stageName(stage), stage)
}

// RegisterNamed appends a stage under an explicit stats name.
func (s *Scheduler) RegisterNamed(name string, stage Stage) {
	s.stages = append(s.stages, stage)
	s.stageStats = append(s.stageStats, &stageStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func stageName(stage Stage) string {
	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}
	return stageType.Name()
}

// Once runs a single tick with the given delta time. The event batch is
// reused between ticks; stages must not retain frame.Events.
func (s *Scheduler) Once(dt float64) {
	tickStart := time.Now()

	s.ticks++
	frame := newFrame(s.ticks, dt, s.events, s.commands)

	for i, stage := range s.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := s.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush()

	clear(frame.Events)
	s.events = frame.Events[:0]
	s.lastTick = time.Since(tickStart)
}

// Run ticks at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Stats returns statistics about stage execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.stages),
		Ticks:      s.ticks,
		LastTick:   s.lastTick,
		Stages:     make([]StageStats, len(s.stageStats)),
	}

	for i, internal := range s.stageStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
