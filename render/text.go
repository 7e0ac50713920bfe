package render

import (
	"strings"

	"github.com/plus3/stackview/board"
)

var cellRunes = [...]byte{
	board.Empty:       '.',
	board.Garbage:     '#',
	board.Unclearable: '@',
	board.I:           'I',
	board.O:           'O',
	board.T:           'T',
	board.L:           'L',
	board.J:           'J',
	board.S:           'S',
	board.Z:           'Z',
}

// Text draws the visible board as plain text, top row first. Ghost cells are
// '+', the falling piece is its lower-case letter and flashing rows are '='.
func Text(src Source) string {
	var grid [board.VisibleRows][board.Width]byte

	for _, t := range AppendTiles(make([]Tile, 0, TileCount+board.Width*4), src) {
		if !t.Visible() {
			continue
		}
		var r byte
		switch t.Kind {
		case TileCell:
			r = '?'
			if int(t.Cell) < len(cellRunes) {
				r = cellRunes[t.Cell]
			}
		case TileGhost:
			r = '+'
		case TilePiece:
			r = cellRunes[t.Cell] + ('a' - 'A')
		case TileFlash:
			r = '='
		}
		grid[t.Y][t.X] = r
	}

	var sb strings.Builder
	sb.Grow(board.VisibleRows * (board.Width + 1))
	for y := board.VisibleRows - 1; y >= 0; y-- {
		sb.Write(grid[y][:])
		sb.WriteByte('\n')
	}
	return sb.String()
}
