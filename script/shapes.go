package script

import (
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/event"
)

var shapeGrids = [...][4][4]bool{
	event.ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	event.ShapeO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	event.ShapeT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	event.ShapeL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	event.ShapeJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	event.ShapeS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	event.ShapeZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
}

func rotateGrid(grid [4][4]bool) [4][4]bool {
	var rotated [4][4]bool
	for i := range 4 {
		for j := range 4 {
			rotated[j][3-i] = grid[i][j]
		}
	}
	return rotated
}

// shapePiece returns the shape after rotation clockwise quarter turns,
// normalized so its lowest cell sits on row 0 and its leftmost on column 0.
// It also returns the piece width.
func shapePiece(shape event.Shape, rotation int) (event.Piece, int) {
	grid := shapeGrids[shape]
	for range ((rotation % 4) + 4) % 4 {
		grid = rotateGrid(grid)
	}

	minX, maxX, maxRow := 4, -1, -1
	for i := range 4 {
		for j := range 4 {
			if grid[i][j] {
				minX = min(minX, j)
				maxX = max(maxX, j)
				maxRow = max(maxRow, i)
			}
		}
	}

	// Grid rows grow downwards; board rows grow upwards.
	p := event.Piece{Shape: shape}
	n := 0
	for i := range 4 {
		for j := range 4 {
			if grid[i][j] {
				p.Cells[n] = event.Cell{X: j - minX, Y: maxRow - i}
				n++
			}
		}
	}
	return p, maxX - minX + 1
}

func canPlace(b *board.Buffer, p event.Piece) bool {
	for _, c := range p.Cells {
		if c.X < 0 || c.X >= board.Width || c.Y < 0 || c.Y >= board.Capacity {
			return false
		}
		if b.Cell(c.X, c.Y) != board.Empty {
			return false
		}
	}
	return true
}

// landing returns p moved straight down as far as it fits.
func landing(b *board.Buffer, p event.Piece) event.Piece {
	for {
		next := p.Translate(0, -1)
		if !canPlace(b, next) {
			return p
		}
		p = next
	}
}
