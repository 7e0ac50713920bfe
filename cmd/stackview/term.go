package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackview/render"
	"github.com/plus3/stackview/render/term"
	"github.com/plus3/stackview/tick"
)

func runTerm(ctx context.Context, cfg *Config, v *viewer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	runScreen(ctx, cfg, v, screen)
	return nil
}

// runScreen draws every tick onto screen until Escape, Ctrl-C or q is
// pressed, cfg.Ticks ticks have run or ctx is cancelled.
func runScreen(ctx context.Context, cfg *Config, v *viewer, screen tcell.Screen) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := term.NewRenderer(screen)
	renderer.OriginX, renderer.OriginY = 1, 1
	width, _ := renderer.Size()

	var tiles []render.Tile
	v.scheduler.RegisterNamed("Draw", tick.StageFunc(func(frame *tick.Frame) {
		frame.Commands.Defer(func() {
			screen.Clear()
			tiles = render.AppendTiles(tiles[:0], v.state)
			renderer.Draw(tiles)
			renderer.DrawStatistics(&v.state.Statistics, renderer.OriginX+width+2, renderer.OriginY)
			screen.Show()

			if cfg.Ticks > 0 && frame.Tick >= uint64(cfg.Ticks) {
				cancel()
			}
		})
	}))

	go pollKeys(screen, cancel)

	v.scheduler.Run(ctx, time.Second/time.Duration(cfg.TPS))
}

func pollKeys(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		}
	}
}
