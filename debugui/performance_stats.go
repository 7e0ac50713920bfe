package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackview/tick"
)

// PerformanceStats graphs tick times and lists per-stage timings.
type PerformanceStats struct {
	Scheduler *tick.Scheduler

	historyFrames int
	tickHistory   []float32
	tickIndex     int
}

func NewPerformanceStats(scheduler *tick.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		Scheduler:     scheduler,
		historyFrames: historyFrames,
		tickHistory:   make([]float32, historyFrames),
	}
}

// Push records a tick duration in milliseconds.
func (ps *PerformanceStats) Push(ms float32) {
	ps.tickHistory[ps.tickIndex] = ms
	ps.tickIndex = (ps.tickIndex + 1) % ps.historyFrames
}

// Average returns the mean of the recorded tick durations.
func (ps *PerformanceStats) Average() float32 {
	var total float32
	for _, ms := range ps.tickHistory {
		total += ms
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	stats := ps.Scheduler.Stats()
	ps.Push(float32(stats.LastTick.Seconds() * 1000))

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Stages: %d", stats.StageCount))
	imgui.Text(fmt.Sprintf("Avg Tick Time: %.3f ms", ps.Average()))

	imgui.Separator()
	imgui.Text("Tick Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##ticktime", &ps.tickHistory[0], int32(len(ps.tickHistory)))

	if imgui.TreeNodeStr("Stage Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StageStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Stage")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, stage := range stats.Stages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(stage.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stage.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(stage.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(stage.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
