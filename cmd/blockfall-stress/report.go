package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/session"
)

// Report is the data rendered by Generate.
type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Config   session.Config

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          uint64
	Pieces         uint64
	Lines          uint64
	Kicks          uint64
	Scores         ScoreStats
	Clears         [len(engine.LineClearPoints)]uint64
	Spawned        []SpawnCount
	IdleFrames     int64
	LockFrames     int64
	Systems        []session.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type SpawnCount struct {
	Tetromino engine.Tetromino
	Count     uint64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// ScoreStats summarises the final scores of finished games.
type ScoreStats struct {
	Finished int
	Best     uint64
	Avg      uint64
}

func summariseScores(scores []uint64) ScoreStats {
	out := ScoreStats{Finished: len(scores)}
	if len(scores) == 0 {
		return out
	}

	var total uint64
	for _, score := range scores {
		out.Best = max(out.Best, score)
		total += score
	}
	out.Avg = total / uint64(len(scores))
	return out
}

// collect copies the session and scheduler counters into the report.
func (r *Report) collect(s *session.Session, scheduler *session.Scheduler, scores []uint64) {
	stats := s.Stats()

	r.Seed = s.Seed()
	r.Games = stats.Games()
	r.Pieces = stats.Locks()
	r.Lines = stats.Lines()
	r.Kicks = stats.Kicks()
	r.Clears = stats.ClearHistogram()
	r.Scores = summariseScores(scores)
	schedulerStats := scheduler.GetStats()
	r.IdleFrames = schedulerStats.IdleFrames
	r.LockFrames = schedulerStats.LockFrames
	r.Systems = schedulerStats.Systems

	r.Spawned = r.Spawned[:0]
	for _, t := range engine.Tetrominoes {
		r.Spawned = append(r.Spawned, SpawnCount{Tetromino: t, Count: stats.Spawned(t)})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Start Level:** {{.Config.StartLevel}} (+1 every {{.Config.LinesPerLevel}} lines)

## Play Results
- **Games Started:** {{.Games}} ({{.Scores.Finished}} finished)
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Wall Kicks:** {{.Kicks}}
- **Score (finished games):** best {{.Scores.Best}}, avg {{.Scores.Avg}}

### Line Clears per Lock
| Rows | Locks |
|------|-------|
{{- range $rows, $n := .Clears}}
| {{$rows}} | {{$n}} |
{{- end}}

### Pieces Dealt
{{- range .Spawned}}
- {{.Tetromino}}: {{.Count}}
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}} ({{.LockFrames}} locked a piece, {{.IdleFrames}} idle)
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

### Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc | mb}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
