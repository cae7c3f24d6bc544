package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/internal/cli"
	"github.com/plus3/nodefield/render/termsurface"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for node placement; 0 picks a random one.")
	index := flag.String("index", "brute", "Pair scan: brute or grid.")
	interval := flag.Duration("interval", animation.DefaultInterval, "Frame interval.")
	gain := flag.Float64("gain", 6, "Line alpha multiplier for character cells.")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	flag.Parse()

	// The screen owns stdout, so logs go to stderr and default to quiet.
	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		log.Debug("no terminal screen, nothing to draw", "err", err)
		return
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	w, h := termsurface.LogicalSize(screen)
	ff := cli.FieldFlags{Width: w, Height: h, Seed: *seed, Index: *index}
	opts, err := ff.Options()
	if err != nil {
		screen.Fini()
		log.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	anim, err := animation.New(w, h, 1, field.DefaultConfig(), animation.WithFieldOptions(opts...))
	if err != nil {
		screen.Fini()
		log.Error("creating animation", "err", err)
		os.Exit(1)
	}

	surface := termsurface.New(screen)
	surface.AlphaGain = *gain

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, screen, anim, surface, *interval, log); err != nil {
		screen.Fini()
		log.Error("terminal loop failed", "err", err)
		os.Exit(1)
	}
}

// run owns the animation: terminal events arrive on a channel and are
// turned into queued input between frames. It returns when ctx is done or
// a quit key is pressed.
func run(ctx context.Context, screen tcell.Screen, anim *animation.Animation, surface *termsurface.Surface, interval time.Duration, log *slog.Logger) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	if interval <= 0 {
		interval = animation.DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventMouse:
				col, row := ev.Position()
				anim.PointerMove(float64(col*termsurface.CellW)+termsurface.CellW/2,
					float64(row*termsurface.CellH)+termsurface.CellH/2)
			case *tcell.EventFocus:
				if !ev.Focused {
					anim.PointerLeave()
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h := termsurface.LogicalSize(screen)
				log.Debug("resize", "width", w, "height", h)
				anim.Resize(w, h, 1)
			}

		case <-ticker.C:
			if err := anim.Update(); err != nil {
				log.Warn("frame input rejected", "err", err)
			}
			anim.Draw(surface)
			surface.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
