package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/internal/cli"
	"github.com/plus3/nodefield/loop"
	"github.com/plus3/nodefield/render"
)

// PointerSystem sweeps the pointer around the centre of the field so the
// attraction path is exercised. The move lands on the next frame.
type PointerSystem struct {
	angle float64
}

func (p *PointerSystem) Execute(frame *loop.UpdateFrame) {
	w, h := frame.Field.Size()
	p.angle += 0.02
	r := math.Min(w, h) / 3
	frame.Commands.MovePointer(w/2+r*math.Cos(p.angle), h/2+r*math.Sin(p.angle))
}

type StepSystem struct{}

func (StepSystem) Execute(frame *loop.UpdateFrame) {
	frame.Field.Step()
}

// ScanSystem counts node and pointer links.
type ScanSystem struct {
	Links int64
}

func (s *ScanSystem) Execute(frame *loop.UpdateFrame) {
	s.Links = 0
	frame.Field.Connections(func(field.Link) { s.Links++ })
	frame.Field.PointerLinks(func(int, float64) { s.Links++ })
}

// RecordSystem renders each frame into a recorder.
type RecordSystem struct {
	Renderer *render.Renderer
	Recorder *render.Recorder
}

func (r *RecordSystem) Execute(frame *loop.UpdateFrame) {
	r.Recorder.Reset()
	r.Renderer.DrawFrame(r.Recorder, frame.Field, 1)
}

func main() {
	var ff cli.FieldFlags
	ff.Register(flag.CommandLine, 1920, 1080)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	areaPerNode := flag.Float64("area-per-node", field.DefaultConfig().AreaPerNode, "Square logical pixels per node.")
	nodeCap := flag.Int("cap", field.DefaultConfig().InitialCap, "Upper bound on the node count.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	cfg := field.DefaultConfig()
	cfg.AreaPerNode = *areaPerNode
	cfg.InitialCap = *nodeCap
	cfg.ResizeCap = *nodeCap

	report, err := bench(log, ff, cfg, *duration)
	if err != nil {
		log.Error("benchmark failed", "err", err)
		os.Exit(1)
	}
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

func bench(log *slog.Logger, ff cli.FieldFlags, cfg field.Config, duration time.Duration) (*Report, error) {
	opts, err := ff.Options()
	if err != nil {
		return nil, err
	}
	f, err := field.New(ff.Width, ff.Height, cfg, opts...)
	if err != nil {
		return nil, err
	}

	scan := &ScanSystem{}
	scheduler := loop.NewScheduler(f)
	scheduler.Register(&PointerSystem{})
	scheduler.Register(StepSystem{})
	scheduler.Register(scan)
	scheduler.Register(&RecordSystem{
		Renderer: render.NewRenderer(render.DefaultStyle()),
		Recorder: render.NewRecorder(),
	})

	report := &Report{
		Duration: duration,
		Width:    ff.Width,
		Height:   ff.Height,
		Nodes:    f.Len(),
		Index:    field.IndexName(f.Index()),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running benchmark", "duration", duration, "nodes", f.Len(), "index", report.Index)
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			frameStart := time.Now()
			if err := scheduler.Once(deltaTime.Seconds()); err != nil {
				return nil, err
			}
			report.FrameTime.Add(time.Since(frameStart))
			report.Links.Add(scan.Links)
			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.Links.Finalize()
	report.Systems = scheduler.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("benchmark finished", "frames", report.TotalFrames)
	return report, nil
}
