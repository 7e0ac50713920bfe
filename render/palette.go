package render

import (
	"image/color"

	"github.com/plus3/stackview/board"
)

var palette = [...]color.RGBA{
	board.Empty:       {255, 255, 255, 255},
	board.Garbage:     {160, 160, 160, 255},
	board.Unclearable: {64, 64, 64, 255},
	board.Z:           {255, 32, 32, 255},
	board.S:           {32, 255, 32, 255},
	board.O:           {255, 255, 32, 255},
	board.L:           {255, 143, 32, 255},
	board.J:           {96, 96, 255, 255},
	board.I:           {32, 255, 255, 255},
	board.T:           {143, 32, 255, 255},
}

// White is the tint for sprites drawn in their own colors.
var White = color.RGBA{255, 255, 255, 255}

// Palette returns the tint for a cell color. Empty cells are drawn untinted.
func Palette(c board.CellColor) color.RGBA {
	if int(c) >= len(palette) {
		return White
	}
	return palette[c]
}
