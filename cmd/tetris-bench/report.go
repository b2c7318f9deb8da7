package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Rows     int
	Columns  int
	Tick     time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Play           PlayStats
	Systems        []tetris.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type PlayStats struct {
	Finished  int
	Lines     int
	BestScore int
	Inputs    int64
	Applied   int64
	Dropped   uint64
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

// Collect folds the bot counters, including games still in progress, and
// the scheduler stats into the report.
func (r *Report) Collect(bots []*Bot, stats *tetris.SchedulerStats) {
	for _, b := range bots {
		r.Play.Finished += b.games
		r.Play.Lines += b.lines + b.Game.Lines()
		r.Play.BestScore = max(r.Play.BestScore, b.best, b.Game.Score())
		r.Play.Inputs += b.inputs
		r.Play.Applied += b.applied
		r.Play.Dropped += b.Game.DroppedEvents()
	}

	// One Bot and one Game are registered per game; merge them by name.
	index := make(map[string]int)
	for _, sys := range stats.Systems {
		i, ok := index[sys.Name]
		if !ok {
			index[sys.Name] = len(r.Systems)
			r.Systems = append(r.Systems, sys)
			continue
		}
		merged := &r.Systems[i]
		merged.ExecutionCount += sys.ExecutionCount
		merged.TotalDuration += sys.TotalDuration
		merged.MinDuration = min(merged.MinDuration, sys.MinDuration)
		merged.MaxDuration = max(merged.MaxDuration, sys.MaxDuration)
		merged.LastDuration = sys.LastDuration
	}
	for i := range r.Systems {
		if n := r.Systems[i].ExecutionCount; n > 0 {
			r.Systems[i].AvgDuration = r.Systems[i].TotalDuration / time.Duration(n)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Games:** {{.Games}}
- **Grid:** {{.Rows}}x{{.Columns}}
- **Tick:** {{.Tick}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}} ({{speedup .SimulatedTime .TotalTime}}x real time)
- **Update Time (all games):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Play
- **Finished Games:** {{.Play.Finished}}
- **Lines Cleared:** {{.Play.Lines}}
- **Best Score:** {{.Play.BestScore}}
- **Inputs:** {{.Play.Inputs}} ({{.Play.Applied}} applied)
- **Dropped Events:** {{.Play.Dropped}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"speedup": func(sim, real time.Duration) string {
			if real <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(sim)/float64(real))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
