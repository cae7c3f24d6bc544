package animation

import (
	"github.com/plus3/nodefield/loop"
	"github.com/plus3/nodefield/render"
)

// MotionSystem advances every node once per frame unless paused.
type MotionSystem struct {
	Paused bool

	step bool
}

func (m *MotionSystem) Execute(frame *loop.UpdateFrame) {
	if m.Paused && !m.step {
		return
	}
	m.step = false
	frame.Field.Step()
}

// RenderSystem draws the field onto Surface at device scale DPR. A nil
// Surface skips the frame.
type RenderSystem struct {
	Renderer *render.Renderer
	Surface  render.Surface
	DPR      float64
}

func (r *RenderSystem) Execute(frame *loop.UpdateFrame) {
	if r.Surface == nil {
		return
	}
	r.Renderer.DrawFrame(r.Surface, frame.Field, r.DPR)
}
