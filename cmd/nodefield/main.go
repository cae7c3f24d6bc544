package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/debugui"
	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/internal/cli"
	"github.com/plus3/nodefield/render/ebitensurface"
)

const title = "nodefield"

func main() {
	var ff cli.FieldFlags
	ff.Register(flag.CommandLine, 1280, 720)
	debug := flag.Bool("debug", false, "Enable the ImGui debug windows (toggle with F1).")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	log, err := cli.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	opts, err := ff.Options()
	if err != nil {
		log.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	dpr := deviceScale()
	anim, err := animation.New(ff.Width, ff.Height, dpr, field.DefaultConfig(), animation.WithFieldOptions(opts...))
	if err != nil {
		log.Error("creating animation", "err", err)
		os.Exit(1)
	}

	game := newGame(anim, ebitensurface.New(), log)
	if *debug {
		game.ui = debugui.NewBackend(title, int(ff.Width), int(ff.Height))
		game.panel = debugui.NewPanel(anim)
		game.panel.Visible = true
	} else {
		ebiten.SetWindowSize(int(ff.Width), int(ff.Height))
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting", "width", ff.Width, "height", ff.Height, "dpr", dpr,
		"nodes", anim.Field().Len(), "index", anim.IndexName(), "debug", *debug)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
	log.Info("stopped", "frames", anim.Stats().FrameCount)
}
