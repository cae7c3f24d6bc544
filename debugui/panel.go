package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/loop"
)

const historySize = 120

// Panel shows the Performance, Field and Control windows for one animation.
type Panel struct {
	Visible bool

	anim    *animation.Animation
	history *FrameHistory
	plot    []float32
}

func NewPanel(anim *animation.Animation) *Panel {
	return &Panel{
		anim:    anim,
		history: NewFrameHistory(historySize),
	}
}

// History exposes the recorded frame times.
func (p *Panel) History() *FrameHistory {
	return p.history
}

// Toggle flips Visible.
func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

// Record adds a frame time in seconds. It runs whether or not the panel is
// visible so the history is warm when it opens.
func (p *Panel) Record(dt float64) {
	if dt > 0 {
		p.history.Push(float32(dt * 1000))
	}
}

// Render builds the windows. Call it between Backend.BeginFrame and
// Backend.EndFrame.
func (p *Panel) Render() {
	if !p.Visible {
		return
	}
	p.renderPerformance()
	p.renderField()
	p.renderControl()
}

func (p *Panel) renderPerformance() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 360), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, 0) {
		imgui.End()
		return
	}

	avg, lo, hi := p.history.Summary()
	imgui.Text(fmt.Sprintf("Avg FPS: %.1f", p.history.FPS()))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avg))
	imgui.Text(fmt.Sprintf("Min/Max: %.2f / %.2f ms", lo, hi))

	p.plot = p.history.Samples()
	if len(p.plot) > 0 && implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("frame", &p.plot[0], int32(len(p.plot)))
		implot.EndPlot()
	}

	imgui.Separator()
	renderSystemTable(p.anim.Stats())

	imgui.End()
}

func renderSystemTable(stats *loop.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d  Systems: %d", stats.FrameCount, stats.SystemCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("Systems", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Name")
	imgui.TableSetupColumn("Avg (ms)")
	imgui.TableSetupColumn("Min (ms)")
	imgui.TableSetupColumn("Max (ms)")
	imgui.TableSetupColumn("Last (ms)")
	imgui.TableHeadersRow()

	systems := stats.Systems
	if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
		spec := sortSpecs.Specs()
		sort.Slice(systems, func(i, j int) bool {
			less := systemLess(systems[i], systems[j], int(spec.ColumnIndex()))
			if spec.SortDirection() == imgui.SortDirectionDescending {
				return !less
			}
			return less
		})
	}

	for _, sys := range systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", float64(sys.LastDuration.Microseconds())/1000.0))
	}
	imgui.EndTable()
}

func systemLess(left, right loop.SystemStats, column int) bool {
	switch column {
	case 1:
		return left.AvgDuration < right.AvgDuration
	case 2:
		return left.MinDuration < right.MinDuration
	case 3:
		return left.MaxDuration < right.MaxDuration
	case 4:
		return left.LastDuration < right.LastDuration
	}
	return left.Name < right.Name
}

func (p *Panel) renderField() {
	imgui.SetNextWindowPosV(imgui.NewVec2(400, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 200), imgui.CondOnce)

	if !imgui.BeginV("Field", nil, 0) {
		imgui.End()
		return
	}

	f := p.anim.Field()
	w, h := f.Size()
	ptr := f.Pointer()
	frame := p.anim.LastFrame()

	imgui.Text(fmt.Sprintf("Size: %.0f x %.0f @ %.2fx", w, h, p.anim.DPR()))
	imgui.Text(fmt.Sprintf("Index: %s", p.anim.IndexName()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Nodes: %d", f.Len()))
	imgui.Text(fmt.Sprintf("Links: %d", frame.Links))
	imgui.Text(fmt.Sprintf("Pointer Links: %d", frame.PointerLinks))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pointer: %.1f, %.1f", ptr.X, ptr.Y))

	imgui.End()
}

func (p *Panel) renderControl() {
	imgui.SetNextWindowPosV(imgui.NewVec2(400, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 120), imgui.CondOnce)

	if !imgui.BeginV("Control", nil, 0) {
		imgui.End()
		return
	}

	if p.anim.Paused() {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			p.anim.SetPaused(false)
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.SameLine()
		if imgui.Button("Step") {
			p.anim.StepOnce()
		}

		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
		if imgui.Button("Pause") {
			p.anim.SetPaused(true)
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.End()
}
