package event

import "github.com/plus3/stackview/board"

//go:generate go tool stringer -type=Shape -trimprefix=Shape

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// Shapes lists every shape in declaration order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}

var shapeColors = [...]board.CellColor{
	ShapeI: board.I,
	ShapeO: board.O,
	ShapeT: board.T,
	ShapeL: board.L,
	ShapeJ: board.J,
	ShapeS: board.S,
	ShapeZ: board.Z,
}

// Color returns the board color a locked piece of this shape leaves behind.
func (s Shape) Color() board.CellColor {
	return shapeColors[s]
}

// Cell is a board coordinate; Y counts up from the bottom row.
type Cell struct {
	X, Y int
}

// Piece is a tetromino at a fixed position on the board.
type Piece struct {
	Shape Shape
	Cells [4]Cell
}

// Color is shorthand for p.Shape.Color().
func (p Piece) Color() board.CellColor {
	return p.Shape.Color()
}

// Translate returns the piece moved by dx, dy.
func (p Piece) Translate(dx, dy int) Piece {
	for i := range p.Cells {
		p.Cells[i].X += dx
		p.Cells[i].Y += dy
	}
	return p
}
