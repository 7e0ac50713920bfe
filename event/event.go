// Package event defines the batch of gameplay events the game engine emits
// once per tick. Only a handful of kinds change what is drawn; the rest are
// carried so that statistics can count them.
package event

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind tags the concrete type of an Event.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPiecePlaced
	KindPieceFalling
	KindEndOfLineClearDelay
	KindGarbageAdded
	KindPieceSpawned
	KindPieceHeld
	KindGarbageSent
	KindGameOver
)

// Event is a single gameplay event. Types outside this package may implement
// it; consumers ignore kinds they do not know.
type Event interface {
	Kind() Kind
}

// PiecePlaced reports that a piece locked into the board. ClearedLines holds
// the indices of the rows it completed, bottom row first, and is empty when
// nothing was cleared.
type PiecePlaced struct {
	Piece        Piece
	ClearedLines []int
	Combo        int
	PerfectClear bool
}

// PieceFalling carries the airborne piece and its ghost for this tick.
type PieceFalling struct {
	Piece Piece
	Ghost Piece
}

// EndOfLineClearDelay marks the end of the line clear animation window.
type EndOfLineClearDelay struct{}

// GarbageAdded injects garbage from below, one row per hole column. The
// bottom-most row's hole is listed last.
type GarbageAdded struct {
	Columns []int
}

// PieceSpawned reports a new piece entering the field.
type PieceSpawned struct {
	Shape Shape
}

// PieceHeld reports a piece being swapped into hold.
type PieceHeld struct {
	Shape Shape
}

// GarbageSent reports attack sent to an opponent.
type GarbageSent struct {
	Lines int
}

// GameOver reports that the engine topped out.
type GameOver struct{}

func (PiecePlaced) Kind() Kind         { return KindPiecePlaced }
func (PieceFalling) Kind() Kind        { return KindPieceFalling }
func (EndOfLineClearDelay) Kind() Kind { return KindEndOfLineClearDelay }
func (GarbageAdded) Kind() Kind        { return KindGarbageAdded }
func (PieceSpawned) Kind() Kind        { return KindPieceSpawned }
func (PieceHeld) Kind() Kind           { return KindPieceHeld }
func (GarbageSent) Kind() Kind         { return KindGarbageSent }
func (GameOver) Kind() Kind            { return KindGameOver }
