// Package script replays a fixed sequence of drops and garbage bursts as
// engine events. It stands in for a real game engine when running the
// viewer on its own: there is no input, no randomizer and no scoring.
package script

import (
	"errors"
	"fmt"
	"slices"

	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/tick"
)

// SpawnRow is the board row the bottom of a new piece appears on.
const SpawnRow = board.VisibleRows - 2

// Step is one entry of a script: either a piece drop or, when Garbage is
// non-empty, a garbage burst with one hole column per row.
type Step struct {
	Shape    event.Shape
	Rotation int
	Column   int
	Garbage  []int
}

// Script is an ordered list of steps.
type Script []Step

// Validate checks that every step fits on the board.
func (s Script) Validate() error {
	for i, step := range s {
		if len(step.Garbage) > 0 {
			for _, hole := range step.Garbage {
				if hole < 0 || hole >= board.Width {
					return fmt.Errorf("step %d: garbage hole %d out of range", i, hole)
				}
			}
			continue
		}
		if int(step.Shape) >= len(event.Shapes) {
			return fmt.Errorf("step %d: unknown shape %d", i, step.Shape)
		}
		_, width := shapePiece(step.Shape, step.Rotation)
		if step.Column < 0 || step.Column+width > board.Width {
			return fmt.Errorf("step %d: %v at column %d does not fit", i, step.Shape, step.Column)
		}
	}
	return nil
}

// Config sets the pacing of a Producer, in ticks.
type Config struct {
	// FallTicks is how many ticks a piece spends on each row.
	FallTicks int
	// ClearDelay is how long a line clear flashes before gravity applies.
	ClearDelay int
	// SpawnDelay is the pause between one step and the next.
	SpawnDelay int
}

// DefaultConfig lets the full flash animation play.
func DefaultConfig() Config {
	return Config{FallTicks: 1, ClearDelay: 40, SpawnDelay: 6}
}

var ErrInvalidConfig = errors.New("script: invalid config")

func (c Config) validate() error {
	if c.FallTicks < 1 {
		return fmt.Errorf("%w: FallTicks must be at least 1, got %d", ErrInvalidConfig, c.FallTicks)
	}
	if c.ClearDelay < 0 || c.SpawnDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	return nil
}

type phase uint8

const (
	phaseWaiting phase = iota
	phaseFalling
	phaseClearing
	phaseDone
)

// Producer is a tick stage that emits the events of a script, keeping its
// own copy of the board to compute landings and cleared rows.
type Producer struct {
	script Script
	cfg    Config

	board board.Buffer
	next  int
	phase phase
	wait  int

	piece     event.Piece
	ghost     event.Piece
	fallTimer int
	combo     int
}

// NewProducer validates the script and pacing and returns a producer at the
// start of the script.
func NewProducer(s Script, cfg Config) (*Producer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	p := &Producer{script: s, cfg: cfg}
	p.Reset()
	return p, nil
}

// Reset rewinds the script and clears the producer's board.
func (p *Producer) Reset() {
	p.board = board.NewBuffer()
	p.next = 0
	p.phase = phaseWaiting
	p.wait = 0
	p.fallTimer = 0
	p.combo = 0
}

// Done reports whether the script has run out or the stack topped out.
func (p *Producer) Done() bool {
	return p.phase == phaseDone
}

// Board returns the producer's view of the board.
func (p *Producer) Board() board.Buffer {
	return p.board
}

func (p *Producer) Execute(frame *tick.Frame) {
	switch p.phase {
	case phaseWaiting:
		if p.wait > 0 {
			p.wait--
			return
		}
		p.startStep(frame)

	case phaseFalling:
		if p.piece == p.ghost {
			p.place(frame)
			return
		}
		p.fallTimer++
		if p.fallTimer >= p.cfg.FallTicks {
			p.fallTimer = 0
			p.piece = p.piece.Translate(0, -1)
		}
		frame.Emit(event.PieceFalling{Piece: p.piece, Ghost: p.ghost})

	case phaseClearing:
		if p.wait > 0 {
			p.wait--
			return
		}
		p.board.RetainNonFull()
		frame.Emit(event.EndOfLineClearDelay{})
		p.phase = phaseWaiting
		p.wait = p.cfg.SpawnDelay
	}
}

func (p *Producer) startStep(frame *tick.Frame) {
	if p.next >= len(p.script) {
		p.phase = phaseDone
		return
	}
	step := p.script[p.next]
	p.next++

	if len(step.Garbage) > 0 {
		p.board.PrependGarbage(step.Garbage)
		frame.Emit(event.GarbageAdded{Columns: slices.Clone(step.Garbage)})
		p.wait = p.cfg.SpawnDelay
		return
	}

	shape, _ := shapePiece(step.Shape, step.Rotation)
	piece := shape.Translate(step.Column, SpawnRow)
	if !canPlace(&p.board, piece) {
		frame.Emit(event.GameOver{})
		p.phase = phaseDone
		return
	}

	p.piece = piece
	p.ghost = landing(&p.board, piece)
	p.fallTimer = 0
	p.phase = phaseFalling
	frame.Emit(
		event.PieceSpawned{Shape: step.Shape},
		event.PieceFalling{Piece: p.piece, Ghost: p.ghost},
	)
}

func (p *Producer) place(frame *tick.Frame) {
	color := p.piece.Color()
	for _, c := range p.piece.Cells {
		p.board.Set(c.Y, c.X, color)
	}

	var cleared []int
	for y, row := range p.board.Rows() {
		if row.IsFull() {
			cleared = append(cleared, y)
		}
	}

	placed := event.PiecePlaced{Piece: p.piece, ClearedLines: cleared}
	if len(cleared) == 0 {
		p.combo = 0
		p.phase = phaseWaiting
		p.wait = p.cfg.SpawnDelay
	} else {
		p.combo++
		placed.Combo = p.combo
		after := p.board
		after.RetainNonFull()
		placed.PerfectClear = after == board.NewBuffer()
		p.phase = phaseClearing
		p.wait = p.cfg.ClearDelay
	}
	frame.Emit(placed)
}
