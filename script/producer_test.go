package script_test

import (
	"testing"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/script"
	"github.com/plus3/stackview/tick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchRecorder struct {
	batches [][]event.Event
}

func (r *batchRecorder) Execute(frame *tick.Frame) {
	r.batches = append(r.batches, append([]event.Event(nil), frame.Events...))
}

func run(t *testing.T, s script.Script, cfg script.Config) (*script.Producer, *drawstate.DrawState, *batchRecorder) {
	t.Helper()

	producer, err := script.NewProducer(s, cfg)
	require.NoError(t, err)

	d := drawstate.New()
	recorder := &batchRecorder{}

	scheduler := tick.NewScheduler()
	scheduler.Register(producer)
	scheduler.Register(&drawstate.AdvanceStage{State: d})
	scheduler.Register(&drawstate.StatisticsStage{State: d})
	scheduler.Register(recorder)

	for i := 0; !producer.Done(); i++ {
		require.Less(t, i, 10000, "script did not finish")
		scheduler.Once(1.0 / 60.0)
	}
	return producer, d, recorder
}

func TestDemoScript(t *testing.T) {
	cfg := script.DefaultConfig()
	producer, d, recorder := run(t, script.Demo(), cfg)

	stats := d.Statistics
	assert.Equal(t, 16, stats.Pieces)
	assert.Equal(t, 8, stats.Lines)
	assert.Equal(t, 2, stats.Doubles)
	assert.Equal(t, 1, stats.Tetrises)
	assert.Equal(t, 2, stats.PerfectClears)
	assert.Equal(t, 2, stats.MaxCombo)
	assert.Equal(t, 6, stats.GarbageReceived)
	assert.Equal(t, 16, stats.Events[event.KindPieceSpawned])
	assert.Equal(t, 3, stats.Events[event.KindEndOfLineClearDelay])
	assert.Zero(t, stats.Events[event.KindGameOver])

	assert.Equal(t, producer.Board(), d.Board(), "viewer and producer agree on the board")
	assert.Equal(t, drawstate.Idle{}, d.State())

	// Every clearing placement is followed by the end of the delay exactly
	// ClearDelay+1 ticks later.
	for i, batch := range recorder.batches {
		for _, ev := range batch {
			placed, ok := ev.(event.PiecePlaced)
			if !ok || len(placed.ClearedLines) == 0 {
				continue
			}
			end := i + cfg.ClearDelay + 1
			require.Less(t, end, len(recorder.batches))
			assert.Equal(t, []event.Event{event.EndOfLineClearDelay{}}, recorder.batches[end])
			for _, between := range recorder.batches[i+1 : end] {
				assert.Empty(t, between)
			}
		}
	}
}

func TestProducerFalls(t *testing.T) {
	s := script.Script{{Shape: event.ShapeO, Column: 4}}
	_, d, recorder := run(t, s, script.Config{FallTicks: 2})

	require.NotEmpty(t, recorder.batches)
	first := recorder.batches[0]
	require.Len(t, first, 2)
	assert.Equal(t, event.PieceSpawned{Shape: event.ShapeO}, first[0])

	falling := first[1].(event.PieceFalling)
	assert.Equal(t, script.SpawnRow, falling.Piece.Cells[2].Y)
	assert.Equal(t, 0, falling.Ghost.Cells[2].Y)

	// Two ticks per row for SpawnRow rows, one tick to lock.
	var placedAt int
	for i, batch := range recorder.batches {
		for _, ev := range batch {
			if _, ok := ev.(event.PiecePlaced); ok {
				placedAt = i
			}
		}
	}
	assert.Equal(t, 2*script.SpawnRow+1, placedAt)
	assert.Equal(t, 1, d.Statistics.Pieces)
}

func TestProducerTopsOut(t *testing.T) {
	var s script.Script
	for range 12 {
		s = append(s, script.Step{Shape: event.ShapeO, Column: 0})
	}

	producer, d, _ := run(t, s, script.Config{FallTicks: 1})

	assert.True(t, producer.Done())
	assert.Equal(t, 1, d.Statistics.Events[event.KindGameOver])
	assert.Equal(t, 10, d.Statistics.Pieces)
}

func TestProducerReset(t *testing.T) {
	s := script.Script{{Shape: event.ShapeI, Column: 0}}
	producer, _, _ := run(t, s, script.Config{FallTicks: 1})
	require.True(t, producer.Done())

	producer.Reset()
	assert.False(t, producer.Done())
	assert.Equal(t, drawstate.New().Board(), producer.Board())
}

func TestNewProducerValidation(t *testing.T) {
	tests := []struct {
		name   string
		script script.Script
		cfg    script.Config
	}{
		{"zero fall ticks", script.Demo(), script.Config{}},
		{"negative delay", script.Demo(), script.Config{FallTicks: 1, ClearDelay: -1}},
		{"piece off the right edge", script.Script{{Shape: event.ShapeI, Column: 7}}, script.DefaultConfig()},
		{"negative column", script.Script{{Shape: event.ShapeT, Column: -1}}, script.DefaultConfig()},
		{"unknown shape", script.Script{{Shape: event.Shape(9)}}, script.DefaultConfig()},
		{"hole out of range", script.Script{{Garbage: []int{3, 10}}}, script.DefaultConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := script.NewProducer(tt.script, tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}

	_, err := script.NewProducer(script.Demo(), script.Config{})
	assert.ErrorIs(t, err, script.ErrInvalidConfig)
}
