package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/internal/cli"
	"github.com/plus3/nodefield/render/ggsurface"
)

// point is a flag.Value for "x,y".
type point struct {
	x, y float64
	set  bool
}

func (p *point) String() string {
	if !p.set {
		return ""
	}
	return fmt.Sprintf("%g,%g", p.x, p.y)
}

func (p *point) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return err
	}
	p.x, p.y, p.set = x, y, true
	return nil
}

func main() {
	var ff cli.FieldFlags
	ff.Register(flag.CommandLine, 1280, 720)
	dpr := flag.Float64("dpr", 1, "Device pixel ratio of the output image.")
	frames := flag.Int("frames", 120, "Frames to simulate before drawing; 0 draws the spawned field.")
	out := flag.String("out", "nodefield.png", "Output PNG path.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	var ptr point
	flag.Var(&ptr, "pointer", "Pointer position as x,y in logical pixels; centre if unset.")
	flag.Parse()

	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}
	gg.SetLogger(log)

	if err := run(log, ff, *dpr, *frames, ptr, *out); err != nil {
		log.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, ff cli.FieldFlags, dpr float64, frames int, ptr point, out string) error {
	opts, err := ff.Options()
	if err != nil {
		return err
	}
	anim, err := animation.New(ff.Width, ff.Height, dpr, field.DefaultConfig(), animation.WithFieldOptions(opts...))
	if err != nil {
		return err
	}
	if ptr.set {
		anim.PointerMove(ptr.x, ptr.y)
	}

	if err := simulate(anim, frames); err != nil {
		return err
	}

	w := int(math.Ceil(ff.Width * anim.DPR()))
	h := int(math.Ceil(ff.Height * anim.DPR()))
	surface := ggsurface.New(w, h)
	defer surface.Close()

	anim.Draw(surface)
	if err := surface.Err(); err != nil {
		return fmt.Errorf("drawing: %w", err)
	}
	if err := surface.SavePNG(out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	stats := anim.LastFrame()
	log.Info("snapshot written", "path", out, "width", w, "height", h,
		"nodes", stats.Nodes, "links", stats.Links, "pointer_links", stats.PointerLinks)
	return nil
}

// simulate advances anim by frames updates. Zero or negative leaves the
// field as spawned.
func simulate(anim *animation.Animation, frames int) error {
	for range max(frames, 0) {
		if err := anim.Update(); err != nil {
			return err
		}
	}
	return nil
}
