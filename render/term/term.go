// Package term draws render tiles into a terminal with tcell. Each board
// cell is two terminal columns wide so cells come out roughly square.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/render"
)

// CellWidth is how many terminal columns one board cell occupies.
const CellWidth = 2

const (
	glyphBlock = '█'
	glyphGhost = '░'
)

// flashRamp fades a flashing row out over the animation.
var flashRamp = []rune{'█', '▓', '▒', '░', ' '}

var emptyStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 24)).Foreground(tcell.NewRGBColor(64, 64, 64))

// Renderer draws tiles to a tcell screen.
type Renderer struct {
	Screen  tcell.Screen
	OriginX int
	OriginY int
}

// NewRenderer returns a renderer drawing at the top-left of screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{Screen: screen}
}

// Size returns the board size in terminal cells.
func (r *Renderer) Size() (int, int) {
	return board.Width * CellWidth, board.VisibleRows
}

// Position returns the terminal coordinates of the left half of board cell
// (x, y).
func (r *Renderer) Position(x, y int) (int, int) {
	return r.OriginX + x*CellWidth, r.OriginY + board.VisibleRows - 1 - y
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw draws the visible tiles in order. Tiles off the board are skipped.
func (r *Renderer) Draw(tiles []render.Tile) {
	for _, t := range tiles {
		if !t.Visible() {
			continue
		}

		glyph := glyphBlock
		style := tcell.StyleDefault.Foreground(rgb(t.Color))

		switch t.Kind {
		case render.TileCell:
			if t.Cell == board.Empty {
				glyph, style = '·', emptyStyle
			}
		case render.TileGhost:
			glyph = glyphGhost
		case render.TileFlash:
			glyph = flashGlyph(t.Sprite)
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}

		sx, sy := r.Position(t.X, t.Y)
		r.Screen.SetContent(sx, sy, glyph, nil, style)
		if glyph == '·' {
			glyph = ' '
		}
		r.Screen.SetContent(sx+1, sy, glyph, nil, style)
	}
}

// flashGlyph recovers the animation frame from a flash sprite and picks a
// glyph from the fade ramp.
func flashGlyph(s render.Sprite) rune {
	frame := (s.Col-3)/3*render.FlashRows + s.Row
	i := frame * len(flashRamp) / render.FlashFrames
	return flashRamp[min(i, len(flashRamp)-1)]
}

// DrawText writes s starting at (x, y).
func (r *Renderer) DrawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// DrawStatistics writes running totals in a column starting at (x, y).
func (r *Renderer) DrawStatistics(stats *drawstate.Statistics, x, y int) {
	lines := []string{
		fmt.Sprintf("PIECES   %d", stats.Pieces),
		fmt.Sprintf("LINES    %d", stats.Lines),
		fmt.Sprintf("TETRISES %d", stats.Tetrises),
		fmt.Sprintf("COMBO    %d", stats.MaxCombo),
		fmt.Sprintf("GARBAGE  %d", stats.GarbageReceived),
	}
	for i, line := range lines {
		r.DrawText(x, y+i, line, tcell.StyleDefault)
	}
}
