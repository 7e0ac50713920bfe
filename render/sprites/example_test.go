package sprites_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/render"
	"github.com/plus3/stackview/render/sprites"
)

// Game draws a DrawState every frame and feeds it one batch per update.
type Game struct {
	state    *drawstate.DrawState
	renderer *sprites.Renderer
	tiles    []render.Tile
	next     func() []event.Event
}

func (g *Game) Update() error {
	g.state.Advance(g.next())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.tiles = render.AppendTiles(g.tiles[:0], g.state)
	g.renderer.Draw(screen, g.tiles)
	g.renderer.DrawStatistics(screen, &g.state.Statistics, 340, 16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func Example() {
	renderer := sprites.NewRenderer(sprites.NewAtlas(sprites.GenerateAtlas()), 32)
	renderer.OriginX, renderer.OriginY = 8, 8

	game := &Game{
		state:    drawstate.New(),
		renderer: renderer,
		next:     func() []event.Event { return nil },
	}

	ebiten.SetWindowSize(480, 680)
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
