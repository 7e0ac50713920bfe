// Package tick runs the per-tick control loop: an ordered list of stages
// that produce, consume and observe one batch of events per tick.
package tick

// Stage is one step of a tick. Stages run in registration order and may keep
// their own state between ticks.
type Stage interface {
	Execute(frame *Frame)
}

// StageFunc adapts a plain function to a Stage.
type StageFunc func(frame *Frame)

func (f StageFunc) Execute(frame *Frame) {
	f(frame)
}
