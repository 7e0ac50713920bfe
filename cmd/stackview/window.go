package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackview/debugui"
	debugui_ebiten "github.com/plus3/stackview/debugui/ebiten"
	"github.com/plus3/stackview/render"
	"github.com/plus3/stackview/render/sprites"
)

const (
	windowMargin = 16
	hudWidth     = 160
)

var background = color.RGBA{R: 16, G: 16, B: 16, A: 255}

// game implements ebiten.Game. Update runs one tick and Draw reads the
// result, so drawing never overlaps a tick.
type game struct {
	cfg      *Config
	viewer   *viewer
	renderer *sprites.Renderer
	tiles    []render.Tile

	imgui *debugui_ebiten.ImguiBackend
	debug *debugui.Stage

	width, height int
}

func newGame(cfg *Config, v *viewer) *game {
	renderer := sprites.NewRenderer(sprites.NewAtlas(sprites.GenerateAtlas()), cfg.Scale)
	renderer.OriginX, renderer.OriginY = windowMargin, windowMargin
	w, h := renderer.Size()

	return &game{
		cfg:      cfg,
		viewer:   v,
		renderer: renderer,
		tiles:    make([]render.Tile, 0, render.TileCount+8),
		width:    w + 2*windowMargin + hudWidth,
		height:   h + 2*windowMargin,
	}
}

func (g *game) Update() error {
	if g.cfg.Ticks > 0 && g.viewer.scheduler.Ticks() >= uint64(g.cfg.Ticks) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	g.viewer.scheduler.Once(1 / float64(g.cfg.TPS))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.tiles = render.AppendTiles(g.tiles[:0], g.viewer.state)
	g.renderer.Draw(screen, g.tiles)

	w, _ := g.renderer.Size()
	g.renderer.DrawStatistics(screen, &g.viewer.state.Statistics, float64(windowMargin+w+windowMargin), windowMargin)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func runWindow(cfg *Config, v *viewer) error {
	g := newGame(cfg, v)

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowTitle("stackview")

	if cfg.Debug {
		g.imgui = debugui_ebiten.NewImguiBackend("stackview", g.width+640, g.height)
		g.debug = &debugui.Stage{Windows: []debugui.Window{
			debugui.NewBoardInspector(v.state),
			debugui.NewPerformanceStats(v.scheduler, 120),
		}}
		v.scheduler.RegisterNamed("DebugUI", g.debug)
	} else {
		ebiten.SetWindowSize(g.width, g.height)
	}

	return ebiten.RunGame(g)
}
