// Package render describes a frame as a list of atlas tiles placed on the
// board grid. Backends only need to draw tiles; they never look at events or
// the animation state directly.
package render

import (
	"image/color"

	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
)

// Source is the read-only view of a board a frame is built from.
type Source interface {
	Cell(x, y int) board.CellColor
	State() drawstate.State
}

// TileKind says which layer a tile belongs to.
type TileKind uint8

const (
	TileCell TileKind = iota
	TileGhost
	TilePiece
	TileFlash
)

// Tile is one sprite drawn at grid cell (X, Y), with Y counted up from the
// bottom row.
type Tile struct {
	X, Y   int
	Kind   TileKind
	Sprite Sprite
	Color  color.RGBA

	// Cell is the board color for TileCell tiles and the piece color for
	// TileGhost and TilePiece tiles.
	Cell board.CellColor
}

// TileCount is the number of static tiles in every frame.
const TileCount = board.VisibleRows * board.Width

// AppendTiles appends the frame for src to dst: the visible board first, then
// the overlay. Later tiles draw over earlier ones.
func AppendTiles(dst []Tile, src Source) []Tile {
	for y := 0; y < board.VisibleRows; y++ {
		for x := 0; x < board.Width; x++ {
			c := src.Cell(x, y)
			sprite := SpriteBlock
			if c == board.Empty {
				sprite = SpriteEmpty
			}
			dst = append(dst, Tile{X: x, Y: y, Kind: TileCell, Sprite: sprite, Color: Palette(c), Cell: c})
		}
	}

	switch s := src.State().(type) {
	case drawstate.Falling:
		c := s.Piece.Color()
		tint := Palette(c)
		for _, cell := range s.Ghost.Cells {
			dst = append(dst, Tile{X: cell.X, Y: cell.Y, Kind: TileGhost, Sprite: SpriteGhost, Color: tint, Cell: c})
		}
		for _, cell := range s.Piece.Cells {
			dst = append(dst, Tile{X: cell.X, Y: cell.Y, Kind: TilePiece, Sprite: SpriteBlock, Color: tint, Cell: c})
		}

	case drawstate.LineClearing:
		for _, y := range s.Lines {
			for x := 0; x < board.Width; x++ {
				dst = append(dst, Tile{X: x, Y: y, Kind: TileFlash, Sprite: FlashSprite(s.Frame, x), Color: White})
			}
		}
	}

	return dst
}

// Visible reports whether the tile lies on the drawn part of the board.
func (t Tile) Visible() bool {
	return t.X >= 0 && t.X < board.Width && t.Y >= 0 && t.Y < board.VisibleRows
}
