// Package ebitensurface implements render.Surface on an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/nodefield/render"
)

// Surface draws onto an *ebiten.Image with the vector package. Target it at
// the screen inside Game.Draw; the surface itself can be reused between
// frames.
type Surface struct {
	dst       *ebiten.Image
	sx, sy    float32
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float32
	path      render.Path

	// Antialias is passed to every vector call.
	Antialias bool
}

var _ render.Surface = (*Surface)(nil)

func New() *Surface {
	return &Surface{sx: 1, sy: 1, lineWidth: 1, Antialias: true}
}

// Target points the surface at dst.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) SetScale(sx, sy float64) {
	s.sx, s.sy = float32(sx), float32(sy)
}

func (s *Surface) Clear() {
	s.dst.Clear()
}

func (s *Surface) SetFillColor(c color.NRGBA) { s.fill = c }

func (s *Surface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x)*s.sx, float32(y)*s.sy, float32(w)*s.sx, float32(h)*s.sy, s.fill, s.Antialias)
}

func (s *Surface) FillCircle(x, y, r float64) {
	vector.DrawFilledCircle(s.dst, float32(x)*s.sx, float32(y)*s.sy, float32(r)*s.sx, s.fill, s.Antialias)
}

func (s *Surface) SetStrokeColor(c color.NRGBA) { s.stroke = c }

func (s *Surface) SetLineWidth(w float64) { s.lineWidth = float32(w) }

func (s *Surface) BeginPath()          { s.path.Reset() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) Stroke() {
	if s.stroke.A == 0 {
		return
	}
	width := s.lineWidth * s.sx
	for _, seg := range s.path.Segments() {
		vector.StrokeLine(s.dst,
			float32(seg.X0)*s.sx, float32(seg.Y0)*s.sy,
			float32(seg.X1)*s.sx, float32(seg.Y1)*s.sy,
			width, s.stroke, s.Antialias)
	}
}
