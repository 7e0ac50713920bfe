package drawstate_test

import (
	"fmt"

	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
)

func describe(s drawstate.State) string {
	switch s := s.(type) {
	case drawstate.Idle:
		return "idle"
	case drawstate.Falling:
		return fmt.Sprintf("falling %v", s.Piece.Shape)
	case drawstate.LineClearing:
		return fmt.Sprintf("clearing %v frame %d", s.Lines, s.Frame)
	}
	return "unknown"
}

// ExampleDrawState_Advance follows a single line clear from placement to
// gravity.
func ExampleDrawState_Advance() {
	d := drawstate.New()

	row := []event.Event{
		event.PiecePlaced{Piece: horizontalI(0, 0)},
		event.PiecePlaced{Piece: horizontalI(4, 0)},
	}
	d.Advance(row)
	fmt.Println(describe(d.State()))

	d.Advance([]event.Event{event.PieceFalling{Piece: pieceT, Ghost: ghostT}})
	fmt.Println(describe(d.State()))

	last := event.Piece{
		Shape: event.ShapeO,
		Cells: [4]event.Cell{{X: 8, Y: 0}, {X: 9, Y: 0}, {X: 8, Y: 1}, {X: 9, Y: 1}},
	}
	d.Advance([]event.Event{event.PiecePlaced{Piece: last, ClearedLines: []int{0}}})
	d.Advance(nil)
	d.Advance(nil)
	fmt.Println(describe(d.State()))

	d.Advance([]event.Event{event.EndOfLineClearDelay{}})
	fmt.Println(describe(d.State()), d.Cell(8, 0))

	// Output:
	// idle
	// falling T
	// clearing [0] frame 2
	// idle O
}
