// Package ggsurface implements render.Surface on a gg software context, for
// rendering frames without a window.
package ggsurface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/plus3/nodefield/render"
)

// Surface wraps a *gg.Context. gg shares one brush between fill and
// stroke, so the brush is set right before every paint call. gg also has a
// single current path: fills replace it, so rectangles and circles must not
// be drawn between BeginPath and Stroke.
type Surface struct {
	dc     *gg.Context
	fill   color.NRGBA
	stroke color.NRGBA
	width  float64
	scale  float64
	err    error
}

var _ render.Surface = (*Surface)(nil)

// New creates a surface backed by a w×h device-pixel context.
func New(w, h int) *Surface {
	return Wrap(gg.NewContext(w, h))
}

// Wrap draws onto an existing context.
func Wrap(dc *gg.Context) *Surface {
	return &Surface{dc: dc, width: 1, scale: 1}
}

// Context exposes the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Err returns the first paint error since the surface was created.
func (s *Surface) Err() error {
	return s.err
}

// Close releases the context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

func (s *Surface) latch(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// setColor hands gg straight (non-premultiplied) components.
func (s *Surface) setColor(c color.NRGBA) {
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func (s *Surface) SetScale(sx, sy float64) {
	s.dc.Identity()
	s.dc.Scale(sx, sy)
	s.scale = sx
}

func (s *Surface) Clear() {
	s.dc.ClearPath()
	s.dc.Clear()
}

func (s *Surface) SetFillColor(c color.NRGBA) { s.fill = c }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.setColor(s.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.latch(s.dc.Fill())
}

func (s *Surface) FillCircle(x, y, r float64) {
	s.dc.ClearPath()
	s.setColor(s.fill)
	s.dc.DrawCircle(x, y, r)
	s.latch(s.dc.Fill())
}

func (s *Surface) SetStrokeColor(c color.NRGBA) { s.stroke = c }

func (s *Surface) SetLineWidth(w float64) { s.width = w }

func (s *Surface) BeginPath()          { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) Stroke() {
	s.setColor(s.stroke)
	// Points are transformed as they are added; the width is not.
	s.dc.SetLineWidth(s.width * s.scale)
	s.latch(s.dc.StrokePreserve())
}
