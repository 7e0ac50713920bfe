package drawstate_test

import (
	"testing"

	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/tick"
	"github.com/stretchr/testify/assert"
)

func TestStages(t *testing.T) {
	d := drawstate.New()

	batches := [][]event.Event{
		{event.PieceSpawned{Shape: event.ShapeT}, event.PieceFalling{Piece: pieceT, Ghost: ghostT}},
		{event.PiecePlaced{Piece: ghostT}},
		{event.GarbageAdded{Columns: []int{0}}},
	}

	scheduler := tick.NewScheduler()
	scheduler.Register(tick.StageFunc(func(frame *tick.Frame) {
		frame.Emit(batches[frame.Tick-1]...)
	}))
	scheduler.Register(&drawstate.AdvanceStage{State: d})
	scheduler.Register(&drawstate.StatisticsStage{State: d})

	var seen []drawstate.State
	scheduler.Register(tick.StageFunc(func(frame *tick.Frame) {
		frame.Commands.Defer(func() { seen = append(seen, d.State()) })
	}))

	for range batches {
		scheduler.Once(1.0 / 60.0)
	}

	assert.Equal(t, []drawstate.State{
		drawstate.Falling{Piece: pieceT, Ghost: ghostT},
		drawstate.Idle{},
		drawstate.Idle{},
	}, seen)
	assert.Equal(t, uint64(3), d.Ticks())
	assert.Equal(t, 1, d.Statistics.Pieces)
	assert.Equal(t, 1, d.Statistics.GarbageReceived)
	assert.Equal(t, board.GarbageRow(0), d.Board().Row(0))
	assert.Equal(t, board.T, d.Cell(4, 2), "placed piece shifted up by the garbage row")
}
