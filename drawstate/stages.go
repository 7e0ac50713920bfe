package drawstate

import "github.com/plus3/stackview/tick"

// AdvanceStage feeds each tick's event batch into a DrawState.
type AdvanceStage struct {
	State *DrawState
}

func (s *AdvanceStage) Execute(frame *tick.Frame) {
	s.State.Advance(frame.Events)
}

// StatisticsStage records each tick's event batch into the DrawState's
// statistics.
type StatisticsStage struct {
	State *DrawState
}

func (s *StatisticsStage) Execute(frame *tick.Frame) {
	s.State.Statistics.RecordAll(frame.Events)
}
