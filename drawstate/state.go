package drawstate

import "github.com/plus3/stackview/event"

// State is the overlay drawn on top of the static board. It is exactly one
// of Idle, Falling or LineClearing.
type State interface {
	isState()
}

// Idle means nothing is drawn over the board.
type Idle struct{}

// Falling shows an airborne piece and its ghost.
type Falling struct {
	Piece event.Piece
	Ghost event.Piece
}

// LineClearing flashes the cleared rows. Frame counts the Advance calls
// since the clear began.
type LineClearing struct {
	Lines []int
	Frame int
}

func (Idle) isState()         {}
func (Falling) isState()      {}
func (LineClearing) isState() {}
