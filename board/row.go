package board

import "fmt"

// Width is the number of columns in every row.
const Width = 10

// Row is one horizontal line of the board.
type Row [Width]CellColor

// EmptyRow is a row with every cell Empty.
var EmptyRow Row

// GarbageRow returns a row filled with Garbage except for the hole column.
func GarbageRow(hole int) Row {
	if hole < 0 || hole >= Width {
		panic(fmt.Sprintf("board: garbage hole %d out of range [0,%d)", hole, Width))
	}
	var r Row
	for x := range r {
		if x != hole {
			r[x] = Garbage
		}
	}
	return r
}

// Set overwrites the color of column x.
func (r *Row) Set(x int, c CellColor) {
	r[x] = c
}

// Cell returns the color of column x.
func (r Row) Cell(x int) CellColor {
	return r[x]
}

// IsFull reports whether no cell in the row is Empty.
func (r Row) IsFull() bool {
	for _, c := range r {
		if c == Empty {
			return false
		}
	}
	return true
}
