package board

import (
	"fmt"
	"iter"
)

const (
	// Capacity is the number of rows the buffer always holds.
	Capacity = 40

	// VisibleRows is how many rows, counted from the bottom, a renderer draws.
	// The rows above it are headroom for garbage bursts.
	VisibleRows = 21
)

// Buffer is a fixed-capacity stack of rows with row 0 at the bottom.
//
// Rows live in a fixed array with an explicit logical length so that the
// per-tick operations never allocate. Between operations the length is
// always Capacity; it only dips below while rows are being removed or
// inserted. A Buffer is a plain value: assigning it copies the board.
type Buffer struct {
	rows [Capacity]Row
	n    int
}

// NewBuffer returns a buffer of Capacity empty rows.
func NewBuffer() Buffer {
	return Buffer{n: Capacity}
}

// Len returns the number of rows in the buffer.
func (b Buffer) Len() int {
	return b.n
}

// Row returns a copy of the row at index y.
func (b Buffer) Row(y int) Row {
	b.checkRow(y)
	return b.rows[y]
}

// Cell returns the color at column x of row y.
func (b Buffer) Cell(x, y int) CellColor {
	b.checkRow(y)
	return b.rows[y][x]
}

// Set overwrites the color at column col of row row.
func (b *Buffer) Set(row, col int, c CellColor) {
	b.checkRow(row)
	if col < 0 || col >= Width {
		panic(fmt.Sprintf("board: column %d out of range [0,%d)", col, Width))
	}
	b.rows[row][col] = c
}

// IsFull reports whether row y has no Empty cell.
func (b Buffer) IsFull(y int) bool {
	b.checkRow(y)
	return b.rows[y].IsFull()
}

// Rows iterates a snapshot of the rows from the bottom up.
func (b Buffer) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for y := 0; y < b.n; y++ {
			if !yield(y, b.rows[y]) {
				return
			}
		}
	}
}

// RetainNonFull removes every full row, keeping the survivors in order, then
// pads the top with empty rows back to Capacity. Rows above a removed row
// drop by the number of rows removed below them. It returns the number of
// rows removed.
func (b *Buffer) RetainNonFull() int {
	kept := 0
	for y := 0; y < b.n; y++ {
		if b.rows[y].IsFull() {
			continue
		}
		b.rows[kept] = b.rows[y]
		kept++
	}
	removed := b.n - kept
	b.n = kept
	for b.n < Capacity {
		b.push(EmptyRow)
	}
	return removed
}

// PrependGarbage pushes one garbage row per hole in from the bottom. The top
// len(holes) rows fall off the buffer and each hole is inserted at row 0 in
// order, so the last hole ends up bottom-most. The height is unchanged.
//
// More than Capacity holes keeps only the last Capacity of them; the rest
// would have been pushed off the top by the same call.
func (b *Buffer) PrependGarbage(holes []int) {
	for _, hole := range holes {
		if hole < 0 || hole >= Width {
			panic(fmt.Sprintf("board: garbage hole %d out of range [0,%d)", hole, Width))
		}
	}
	if len(holes) > Capacity {
		holes = holes[len(holes)-Capacity:]
	}
	b.truncate(Capacity - len(holes))
	for _, hole := range holes {
		b.insertBottom(GarbageRow(hole))
	}
}

func (b *Buffer) push(r Row) {
	if b.n == Capacity {
		panic("board: push on full buffer")
	}
	b.rows[b.n] = r
	b.n++
}

func (b *Buffer) truncate(n int) {
	if n < b.n {
		b.n = n
	}
}

func (b *Buffer) insertBottom(r Row) {
	if b.n == Capacity {
		panic("board: insert on full buffer")
	}
	copy(b.rows[1:b.n+1], b.rows[:b.n])
	b.rows[0] = r
	b.n++
}

func (b Buffer) checkRow(y int) {
	if y < 0 || y >= b.n {
		panic(fmt.Sprintf("board: row %d out of range [0,%d)", y, b.n))
	}
}
