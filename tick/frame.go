package tick

import "github.com/plus3/stackview/event"

// Frame is the shared context of a single tick.
type Frame struct {
	// Tick is the 1-based index of this tick.
	Tick      uint64
	DeltaTime float64

	// Events is the batch produced so far this tick, in emission order.
	Events   []event.Event
	Commands *Commands
}

func newFrame(n uint64, dt float64, events []event.Event, commands *Commands) *Frame {
	return &Frame{
		Tick:      n,
		DeltaTime: dt,
		Events:    events[:0],
		Commands:  commands,
	}
}

// Emit appends events to this tick's batch.
func (f *Frame) Emit(events ...event.Event) {
	f.Events = append(f.Events, events...)
}
