// Package drawstate turns the engine's per-tick event batches into the
// board and overlay a renderer draws.
//
// A DrawState has a single writer. Advance is called once per tick from the
// control loop; renderers may read between calls but never during one.
package drawstate

import (
	"log/slog"
	"slices"

	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/event"
)

// DrawState owns the visible board and the current overlay.
type DrawState struct {
	board board.Buffer
	state State
	ticks uint64

	logger *slog.Logger

	// Statistics is storage for the application's running totals. DrawState
	// never updates it; see Statistics.Record.
	Statistics Statistics
}

// Option configures a DrawState.
type Option func(*DrawState)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DrawState) {
		d.logger = logger
	}
}

// New returns a DrawState with an empty board in the Idle state.
func New(opts ...Option) *DrawState {
	d := &DrawState{
		board:      board.NewBuffer(),
		state:      Idle{},
		Statistics: NewStatistics(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	return d
}

// Advance consumes one tick's events in order. A running line clear
// animation moves forward one frame first, even for an empty batch. Each
// event may replace the state; the last one in the batch wins.
func (d *DrawState) Advance(events []event.Event) {
	d.ticks++

	if lc, ok := d.state.(LineClearing); ok {
		lc.Frame++
		d.state = lc
	}

	for _, ev := range events {
		d.apply(ev)
	}
}

func (d *DrawState) apply(ev event.Event) {
	switch ev := ev.(type) {
	case event.PiecePlaced:
		color := ev.Piece.Color()
		for _, c := range ev.Piece.Cells {
			d.board.Set(c.Y, c.X, color)
		}
		if len(ev.ClearedLines) == 0 {
			d.state = Idle{}
			return
		}
		d.state = LineClearing{Lines: slices.Clone(ev.ClearedLines)}
		d.logger.Debug("line clear started", "tick", d.ticks, "lines", ev.ClearedLines)

	case event.PieceFalling:
		d.state = Falling{Piece: ev.Piece, Ghost: ev.Ghost}

	case event.EndOfLineClearDelay:
		d.state = Idle{}
		removed := d.board.RetainNonFull()
		d.logger.Debug("line clear finished", "tick", d.ticks, "removed", removed)

	case event.GarbageAdded:
		d.board.PrependGarbage(ev.Columns)
		d.logger.Debug("garbage added", "tick", d.ticks, "rows", len(ev.Columns))
	}
}

// State returns the current overlay. A LineClearing overlay carries its own
// copy of the cleared lines.
func (d *DrawState) State() State {
	if lc, ok := d.state.(LineClearing); ok {
		lc.Lines = slices.Clone(lc.Lines)
		return lc
	}
	return d.state
}

// Board returns a copy of the board buffer.
func (d *DrawState) Board() board.Buffer {
	return d.board
}

// Cell returns the color of the static board at column x, row y.
func (d *DrawState) Cell(x, y int) board.CellColor {
	return d.board.Cell(x, y)
}

// Ticks returns how many times Advance has been called.
func (d *DrawState) Ticks() uint64 {
	return d.ticks
}
