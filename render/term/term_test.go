package term_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/render"
	"github.com/plus3/stackview/render/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestRendererDraw(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)

	d := drawstate.New()
	d.Advance([]event.Event{
		event.GarbageAdded{Columns: []int{0}},
		event.PieceFalling{
			Piece: event.Piece{Shape: event.ShapeI, Cells: [4]event.Cell{{X: 3, Y: 30}, {X: 3, Y: 10}, {X: 4, Y: 10}, {X: 5, Y: 10}}},
			Ghost: event.Piece{Shape: event.ShapeI, Cells: [4]event.Cell{{X: 3, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}}},
		},
	})

	r.Draw(render.AppendTiles(nil, d))

	bottom := board.VisibleRows - 1
	assert.Equal(t, '·', runeAt(screen, 0, bottom), "hole column")
	assert.Equal(t, '█', runeAt(screen, 2, bottom))
	assert.Equal(t, '█', runeAt(screen, 3, bottom))

	assert.Equal(t, '░', runeAt(screen, 6, bottom-1))
	assert.Equal(t, '░', runeAt(screen, 7, bottom-1))

	assert.Equal(t, '█', runeAt(screen, 8, bottom-10))
	_, _, style, _ := screen.GetContent(8, bottom-10)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(32, 255, 255), fg)
}

func TestRendererFlash(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)
	r.OriginX, r.OriginY = 2, 1

	d := drawstate.New()
	d.Advance([]event.Event{event.PiecePlaced{
		Piece:        event.Piece{Shape: event.ShapeO, Cells: [4]event.Cell{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 3}}},
		ClearedLines: []int{2},
	}})

	r.Draw(render.AppendTiles(nil, d))
	x, y := r.Position(5, 2)
	assert.Equal(t, '█', runeAt(screen, x, y), "first frame is solid")

	for range 40 {
		d.Advance(nil)
	}
	r.Draw(render.AppendTiles(nil, d))
	assert.Equal(t, ' ', runeAt(screen, x, y), "held last frame is blank")
}

func TestDrawStatistics(t *testing.T) {
	screen := newScreen(t)
	r := term.NewRenderer(screen)

	stats := drawstate.NewStatistics()
	stats.Record(event.PiecePlaced{ClearedLines: []int{0, 1, 2, 3}})
	r.DrawStatistics(&stats, 22, 0)

	line := make([]rune, 0, 11)
	for x := 22; x < 33; x++ {
		line = append(line, runeAt(screen, x, 1))
	}
	assert.Equal(t, "LINES    4", string(line[:10]))
}

func TestSize(t *testing.T) {
	r := term.NewRenderer(nil)
	w, h := r.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 21, h)
}
