package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

// StatsPanel shows score, piece distribution, the line clear histogram and
// per-system frame timings.
type StatsPanel struct {
	scheduler     *session.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewStatsPanel creates a panel plotting the last historyFrames frame times.
// scheduler may be nil, which hides the system table.
func NewStatsPanel(scheduler *session.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the window for the given frame.
func (p *StatsPanel) Render(frame *session.UpdateFrame) {
	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frameHistory[p.frameIndex] = float32(frame.DeltaTime * 1000.0)
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames

	s := frame.Session
	stats := s.Stats()

	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", s.Score(), s.Level(), s.Lines()))
	imgui.Text(fmt.Sprintf("Games: %d  Locks: %d  Kicks: %d  Hard drops: %d",
		stats.Games(), stats.Locks(), stats.Kicks(), stats.HardDrops()))
	imgui.Text(fmt.Sprintf("Next: %s  Fall speed: %.2f rows/s", s.Next(), s.FallSpeed()))
	if s.Paused() {
		imgui.Text("Paused")
	}
	if s.GameOver() {
		imgui.Text("Game over")
	}

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(p.historyFrames)
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	if p.scheduler != nil {
		schedulerStats := p.scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d  Lock frames: %d  Idle frames: %d",
			schedulerStats.Frames, schedulerStats.LockFrames, schedulerStats.IdleFrames))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	if imgui.TreeNodeStr("Pieces") {
		for _, t := range engine.Tetrominoes {
			imgui.BulletText(fmt.Sprintf("%s: %d", t, stats.Spawned(t)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for lines, n := range stats.ClearHistogram() {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", lines, n))
		}
		imgui.TreePop()
	}

	if p.scheduler != nil && imgui.TreeNodeStr("Systems") {
		tableFlags := imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range p.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
