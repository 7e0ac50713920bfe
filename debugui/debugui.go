// Package debugui provides Dear ImGui inspector windows for a running
// viewer. Windows are drawn from a tick stage so they always observe a fully
// applied tick.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackview/tick"
)

// Window is an ImGui window drawn once per tick.
type Window interface {
	Render()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Stage updates InputState and defers every window's Render until the tick's
// other stages have run.
type Stage struct {
	Windows    []Window
	InputState InputState
}

// Execute records the input capture state and queues the windows.
func (s *Stage) Execute(frame *tick.Frame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range s.Windows {
		frame.Commands.Defer(w.Render)
	}
}
