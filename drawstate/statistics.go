package drawstate

import "github.com/plus3/stackview/event"

// Statistics accumulates running totals over the events a session has seen.
type Statistics struct {
	Pieces          int
	Lines           int
	Singles         int
	Doubles         int
	Triples         int
	Tetrises        int
	PerfectClears   int
	MaxCombo        int
	Holds           int
	GarbageReceived int
	GarbageSent     int

	// Events counts every event by kind, including kinds that do not affect
	// the board.
	Events map[event.Kind]int
}

func NewStatistics() Statistics {
	return Statistics{Events: make(map[event.Kind]int)}
}

// Record folds a single event into the totals.
func (s *Statistics) Record(ev event.Event) {
	if s.Events == nil {
		s.Events = make(map[event.Kind]int)
	}
	s.Events[ev.Kind()]++

	switch ev := ev.(type) {
	case event.PiecePlaced:
		s.Pieces++
		s.Lines += len(ev.ClearedLines)
		switch len(ev.ClearedLines) {
		case 1:
			s.Singles++
		case 2:
			s.Doubles++
		case 3:
			s.Triples++
		case 4:
			s.Tetrises++
		}
		if ev.PerfectClear {
			s.PerfectClears++
		}
		s.MaxCombo = max(s.MaxCombo, ev.Combo)
	case event.PieceHeld:
		s.Holds++
	case event.GarbageAdded:
		s.GarbageReceived += len(ev.Columns)
	case event.GarbageSent:
		s.GarbageSent += ev.Lines
	}
}

// RecordAll folds a batch of events into the totals.
func (s *Statistics) RecordAll(events []event.Event) {
	for _, ev := range events {
		s.Record(ev)
	}
}
