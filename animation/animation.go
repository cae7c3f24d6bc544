// Package animation runs a node field as a frame loop: input is queued,
// applied between frames, the nodes move, and the result is drawn onto a
// render.Surface.
package animation

import (
	"context"
	"math"
	"time"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/loop"
	"github.com/plus3/nodefield/render"
)

// DefaultInterval is the frame interval Run uses when given none.
const DefaultInterval = time.Second / 60

// Animation owns one field and the two schedulers that drive it. It is not
// safe for concurrent use; input from other goroutines must be handed to
// the goroutine that calls Update.
type Animation struct {
	field  *field.Field
	update *loop.Scheduler
	draw   *loop.Scheduler

	motion *MotionSystem
	render *RenderSystem

	dpr      float64
	lastTick time.Time
	onErr    func(error)
}

type settings struct {
	fieldOpts []field.Option
	style     render.Style
	onErr     func(error)
}

// Option configures an Animation.
type Option func(*settings)

// WithFieldOptions passes opts through to field.New.
func WithFieldOptions(opts ...field.Option) Option {
	return func(s *settings) {
		s.fieldOpts = append(s.fieldOpts, opts...)
	}
}

// WithStyle replaces render.DefaultStyle.
func WithStyle(style render.Style) Option {
	return func(s *settings) {
		s.style = style
	}
}

// WithErrorHandler receives Update errors during Run.
func WithErrorHandler(fn func(error)) Option {
	return func(s *settings) {
		s.onErr = fn
	}
}

// New creates an animation over a w×h logical-pixel surface drawn at device
// pixel ratio dpr. A dpr that is not positive counts as 1.
func New(w, h, dpr float64, cfg field.Config, opts ...Option) (*Animation, error) {
	s := settings{style: render.DefaultStyle()}
	for _, opt := range opts {
		opt(&s)
	}

	f, err := field.New(w, h, cfg, s.fieldOpts...)
	if err != nil {
		return nil, err
	}

	a := &Animation{
		field:  f,
		update: loop.NewScheduler(f),
		draw:   loop.NewScheduler(f),
		motion: &MotionSystem{},
		render: &RenderSystem{Renderer: render.NewRenderer(s.style)},
		dpr:    normDPR(dpr),
		onErr:  s.onErr,
	}
	a.update.Register(a.motion)
	a.draw.Register(a.render)
	return a, nil
}

func normDPR(dpr float64) float64 {
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		return 1
	}
	return dpr
}

// Field returns the simulated field. Mutate it only through the queued
// input methods while the animation is running.
func (a *Animation) Field() *field.Field {
	return a.field
}

// DPR returns the device pixel ratio frames are drawn at.
func (a *Animation) DPR() float64 {
	return a.dpr
}

// IndexName reports the pair scan in use.
func (a *Animation) IndexName() string {
	return field.IndexName(a.field.Index())
}

// LastFrame returns what the most recent Draw painted.
func (a *Animation) LastFrame() render.FrameStats {
	return a.render.Renderer.Last()
}

// Stats merges the update and draw scheduler statistics. FrameCount counts
// updates.
func (a *Animation) Stats() *loop.SchedulerStats {
	up := a.update.Stats()
	dr := a.draw.Stats()
	up.SystemCount += dr.SystemCount
	up.Systems = append(up.Systems, dr.Systems...)
	return up
}

// PointerMove queues a pointer move to (x, y) in logical pixels.
func (a *Animation) PointerMove(x, y float64) {
	a.update.Commands().MovePointer(x, y)
}

// PointerLeave queues the pointer returning to the centre.
func (a *Animation) PointerLeave() {
	a.update.Commands().LeavePointer()
}

// Resize queues a resize to w×h logical pixels at device ratio dpr. If the
// field rejects the size, Update returns the error and both the size and
// the ratio stay as they were.
func (a *Animation) Resize(w, h, dpr float64) {
	cmds := a.update.Commands()
	cmds.Resize(w, h)
	cmds.Defer(func() {
		if fw, fh := a.field.Size(); fw == w && fh == h {
			a.dpr = normDPR(dpr)
		}
	})
}

// SetPaused stops or resumes node motion. A paused animation still applies
// input and draws.
func (a *Animation) SetPaused(paused bool) {
	a.motion.Paused = paused
}

func (a *Animation) Paused() bool {
	return a.motion.Paused
}

// StepOnce lets a paused animation advance on the next Update.
func (a *Animation) StepOnce() {
	a.motion.step = true
}

// Update applies queued input and advances the field by one frame.
func (a *Animation) Update() error {
	now := time.Now()
	dt := 0.0
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick).Seconds()
	}
	a.lastTick = now
	return a.update.Once(dt)
}

// Draw renders the current state onto s. A nil surface does nothing.
func (a *Animation) Draw(s render.Surface) {
	if s == nil {
		return
	}
	a.render.Surface = s
	a.render.DPR = a.dpr
	// Nothing is ever queued on the draw scheduler, so Once cannot fail.
	_ = a.draw.Once(0)
	a.render.Surface = nil
}

// Frame runs Update then Draw. Draw happens even when Update fails.
func (a *Animation) Frame(s render.Surface) error {
	err := a.Update()
	a.Draw(s)
	return err
}

// Run calls Frame every interval until ctx is done. Update errors go to the
// handler set with WithErrorHandler. A nil surface returns at once.
func (a *Animation) Run(ctx context.Context, s render.Surface, interval time.Duration) error {
	if s == nil {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.Frame(s); err != nil && a.onErr != nil {
				a.onErr(err)
			}
		}
	}
}
