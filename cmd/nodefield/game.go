package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/debugui"
	"github.com/plus3/nodefield/render/ebitensurface"
)

// Game adapts an Animation to ebiten. The layout is in device pixels; the
// animation works in logical pixels and draws at the monitor's scale.
type Game struct {
	anim    *animation.Animation
	surface *ebitensurface.Surface
	log     *slog.Logger

	ui    *debugui.Backend
	panel *debugui.Panel

	outW, outH int
	dpr        float64
	inside     bool
	lastX      float64
	lastY      float64
	lastUpdate time.Time
}

func newGame(anim *animation.Animation, surface *ebitensurface.Surface, log *slog.Logger) *Game {
	w, h := anim.Field().Size()
	return &Game{
		anim:    anim,
		surface: surface,
		log:     log,
		outW:    int(w),
		outH:    int(h),
		dpr:     anim.DPR(),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if !g.lastUpdate.IsZero() && g.panel != nil {
		g.panel.Record(now.Sub(g.lastUpdate).Seconds())
	}
	g.lastUpdate = now

	if g.ui != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.panel.Toggle()
		}
		g.ui.BeginFrame()
		g.panel.Render()
		g.ui.EndFrame()
	}

	g.trackPointer()

	if err := g.anim.Update(); err != nil {
		g.log.Warn("frame input rejected", "err", err)
	}
	return nil
}

// trackPointer turns cursor or touch positions into pointer moves. The
// cursor leaving the window, or the window losing focus, is a leave.
func (g *Game) trackPointer() {
	var px, py int
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		px, py = ebiten.TouchPosition(touches[0])
	} else {
		px, py = ebiten.CursorPosition()
	}
	x, y := float64(px)/g.dpr, float64(py)/g.dpr

	inside := ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < float64(g.outW) && y < float64(g.outH)
	if inside && g.ui != nil && g.panel.Visible && debugui.CurrentInput().WantCaptureMouse {
		inside = false
	}

	switch {
	case inside && (!g.inside || x != g.lastX || y != g.lastY):
		g.anim.PointerMove(x, y)
		g.lastX, g.lastY = x, y
	case !inside && g.inside:
		g.anim.PointerLeave()
	}
	g.inside = inside
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.anim.Draw(g.surface)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := deviceScale()
	if outsideWidth != g.outW || outsideHeight != g.outH || dpr != g.dpr {
		g.log.Debug("resize", "width", outsideWidth, "height", outsideHeight, "dpr", dpr)
		g.outW, g.outH, g.dpr = outsideWidth, outsideHeight, dpr
		g.anim.Resize(float64(outsideWidth), float64(outsideHeight), dpr)
	}

	w, h := int(float64(outsideWidth)*dpr), int(float64(outsideHeight)*dpr)
	if g.ui != nil {
		g.ui.Layout(w, h)
	}
	return w, h
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}
