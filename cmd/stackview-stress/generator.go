package main

import (
	"math/rand/v2"

	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/tick"
)

// generator is a tick stage that emits random but well-formed batches: every
// cell and hole is on the board and every clear is followed by the end of its
// delay.
type generator struct {
	rng           *rand.Rand
	eventsPerTick int
	clearing      int
}

func newGenerator(seed uint64, eventsPerTick int) *generator {
	return &generator{
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		eventsPerTick: eventsPerTick,
	}
}

func (g *generator) Execute(frame *tick.Frame) {
	if g.clearing > 0 {
		g.clearing--
		if g.clearing == 0 {
			frame.Emit(event.EndOfLineClearDelay{})
		}
		return
	}

	for range g.eventsPerTick {
		switch n := g.rng.IntN(100); {
		case n < 70:
			frame.Emit(event.PieceFalling{Piece: g.piece(), Ghost: g.piece()})
		case n < 90:
			frame.Emit(event.PiecePlaced{Piece: g.piece()})
		case n < 97:
			frame.Emit(event.GarbageAdded{Columns: g.holes()})
		default:
			frame.Emit(event.PiecePlaced{Piece: g.piece(), ClearedLines: g.lines()})
			g.clearing = 1 + g.rng.IntN(40)
			return
		}
	}
}

func (g *generator) piece() event.Piece {
	shape := event.Shape(g.rng.IntN(len(event.Shapes)))
	p := event.Piece{Shape: shape}
	for i := range p.Cells {
		p.Cells[i] = event.Cell{X: g.rng.IntN(board.Width), Y: g.rng.IntN(board.Capacity)}
	}
	return p
}

func (g *generator) holes() []int {
	holes := make([]int, 1+g.rng.IntN(4))
	for i := range holes {
		holes[i] = g.rng.IntN(board.Width)
	}
	return holes
}

func (g *generator) lines() []int {
	lines := make([]int, 1+g.rng.IntN(4))
	for i := range lines {
		lines[i] = g.rng.IntN(board.VisibleRows)
	}
	return lines
}
