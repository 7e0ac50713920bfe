// Package board holds the visible board model: colored rows stacked in a
// fixed-capacity buffer with row 0 at the bottom.
package board

//go:generate go tool stringer -type=CellColor

// CellColor is the color category of a single board cell.
type CellColor uint8

const (
	Empty CellColor = iota
	Garbage
	Unclearable
	I
	O
	T
	L
	J
	S
	Z
)

// Filled reports whether the cell is occupied.
func (c CellColor) Filled() bool {
	return c != Empty
}
