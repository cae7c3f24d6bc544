package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/nodefield/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Width    float64
	Height   float64
	Nodes    int
	Index    string

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats[time.Duration]
	Links          Stats[int64]
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarises per-frame samples of a duration or a count.
type Stats[T ~int64] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Add(sample T) {
	s.Samples = append(s.Samples, sample)
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / T(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Node Field Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Surface:** {{.Width}} x {{.Height}}
- **Nodes:** {{.Nodes}}
- **Pair Scan:** {{.Index}}

## Frame Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Links per Frame:** {{.Links.Min}} to {{.Links.Max}} (avg {{.Links.Avg}})

## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage
- Heap Alloc:     {{.MemStatsStart.HeapAlloc | mb}} MB (start) -> {{.MemStatsEnd.HeapAlloc | mb}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} B
- Total Alloc:    {{.MemStatsStart.TotalAlloc | mb}} MB (start) -> {{.MemStatsEnd.TotalAlloc | mb}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} B
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
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
