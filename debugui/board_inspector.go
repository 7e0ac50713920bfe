package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackview/board"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/event"
	"github.com/plus3/stackview/render"
)

// BoardInspector shows the overlay state, statistics and visible rows of a
// DrawState.
type BoardInspector struct {
	State *drawstate.DrawState
}

func NewBoardInspector(state *drawstate.DrawState) *BoardInspector {
	return &BoardInspector{State: state}
}

// Describe summarizes an overlay state in one line.
func Describe(s drawstate.State) string {
	switch s := s.(type) {
	case drawstate.Idle:
		return "Idle"
	case drawstate.Falling:
		return fmt.Sprintf("Falling %v", s.Piece.Shape)
	case drawstate.LineClearing:
		fx, fy := render.FramePair(s.Frame)
		return fmt.Sprintf("LineClearing %v frame %d (%d,%d)", s.Lines, s.Frame, fx, fy)
	}
	return fmt.Sprintf("%T", s)
}

func (bi *BoardInspector) Render() {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Tick: %d", bi.State.Ticks()))
	imgui.Text("State: " + Describe(bi.State.State()))

	imgui.Separator()
	bi.renderStatistics()

	if imgui.TreeNodeStr("Visible Rows") {
		bi.renderRows()
		imgui.TreePop()
	}

	imgui.End()
}

func (bi *BoardInspector) renderStatistics() {
	stats := &bi.State.Statistics
	rows := []struct {
		name  string
		value int
	}{
		{"Pieces", stats.Pieces},
		{"Lines", stats.Lines},
		{"Singles", stats.Singles},
		{"Doubles", stats.Doubles},
		{"Triples", stats.Triples},
		{"Tetrises", stats.Tetrises},
		{"Perfect Clears", stats.PerfectClears},
		{"Max Combo", stats.MaxCombo},
		{"Holds", stats.Holds},
		{"Garbage Received", stats.GarbageReceived},
		{"Garbage Sent", stats.GarbageSent},
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("StatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Statistic")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, row := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.value))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Events") {
		for k := event.KindUnknown; k <= event.KindGameOver; k++ {
			imgui.BulletText(fmt.Sprintf("%v: %d", k, stats.Events[k]))
		}
		imgui.TreePop()
	}
}

func (bi *BoardInspector) renderRows() {
	b := bi.State.Board()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("RowsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Row")
	imgui.TableSetupColumn("Cells")
	imgui.TableHeadersRow()

	var sb strings.Builder
	for y := board.VisibleRows - 1; y >= 0; y-- {
		row := b.Row(y)
		sb.Reset()
		for x := range board.Width {
			sb.WriteString(cellLabel(row.Cell(x)))
		}
		if row.IsFull() {
			sb.WriteString("  full")
		}

		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", y))
		imgui.TableNextColumn()
		imgui.Text(sb.String())
	}

	imgui.EndTable()
}

func cellLabel(c board.CellColor) string {
	switch c {
	case board.Empty:
		return "."
	case board.Garbage:
		return "#"
	case board.Unclearable:
		return "@"
	}
	return c.String()
}
