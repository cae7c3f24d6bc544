// Package termsurface implements render.Surface on a tcell screen. Every
// character cell stands for a CellW×CellH block of device pixels and holds
// one composited colour, which is shown as a glyph from a density ramp.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/nodefield/render"
)

const (
	CellW = 8
	CellH = 16
)

// Ramp maps cell brightness to glyphs, darkest first.
const Ramp = " .:-=+*#%@"

type cell struct {
	r, g, b float64 // premultiplied over black
}

// Surface rasterises into a cell buffer. Nothing reaches the terminal until
// Show is called.
type Surface struct {
	screen tcell.Screen
	cols   int
	rows   int
	cells  []cell

	sx, sy    float64
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float64
	path      render.Path

	// AlphaGain multiplies stroke alpha. Lines that are faint on a canvas
	// would vanish at one sample per cell.
	AlphaGain float64
}

var _ render.Surface = (*Surface)(nil)

func New(screen tcell.Screen) *Surface {
	s := &Surface{screen: screen, sx: 1, sy: 1, lineWidth: 1, AlphaGain: 6}
	s.sync()
	return s
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Size reports the buffer size in cells.
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// LogicalSize converts the screen size to the pixel size a field should use
// at scale 1.
func LogicalSize(screen tcell.Screen) (w, h float64) {
	cols, rows := screen.Size()
	return float64(cols * CellW), float64(rows * CellH)
}

func (s *Surface) sync() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

func (s *Surface) SetScale(sx, sy float64) {
	s.sx, s.sy = sx, sy
}

// Clear blanks the buffer, picking up any change in screen size.
func (s *Surface) Clear() {
	s.sync()
	clear(s.cells)
}

func (s *Surface) SetFillColor(c color.NRGBA) { s.fill = c }

func (s *Surface) FillRect(x, y, w, h float64) {
	c0, r0 := s.cellAt(x, y)
	c1, r1 := s.cellAt(x+w, y+h)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, s.cols-1), min(r1, s.rows-1)
	a := float64(s.fill.A) / 255
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.blend(col, row, s.fill, a)
		}
	}
}

// FillCircle paints the cell holding the centre. Radii are far below a
// cell, so coverage is not computed.
func (s *Surface) FillCircle(x, y, r float64) {
	col, row := s.cellAt(x, y)
	s.blend(col, row, s.fill, float64(s.fill.A)/255)
}

func (s *Surface) SetStrokeColor(c color.NRGBA) { s.stroke = c }

func (s *Surface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *Surface) BeginPath()          { s.path.Reset() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *Surface) Stroke() {
	a := math.Min(1, float64(s.stroke.A)/255*s.AlphaGain)
	if a <= 0 {
		return
	}
	for _, seg := range s.path.Segments() {
		s.line(seg, a)
	}
}

// line walks the segment in cell space, blending each cell once.
func (s *Surface) line(seg render.Segment, a float64) {
	x0, y0 := seg.X0*s.sx/CellW, seg.Y0*s.sy/CellH
	x1, y1 := seg.X1*s.sx/CellW, seg.Y1*s.sy/CellH
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	lastCol, lastRow := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Floor(x0 + (x1-x0)*t))
		row := int(math.Floor(y0 + (y1-y0)*t))
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		s.blend(col, row, s.stroke, a)
	}
}

func (s *Surface) cellAt(x, y float64) (col, row int) {
	return int(math.Floor(x * s.sx / CellW)), int(math.Floor(y * s.sy / CellH))
}

func (s *Surface) blend(col, row int, c color.NRGBA, a float64) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	p := &s.cells[row*s.cols+col]
	p.r = float64(c.R)/255*a + p.r*(1-a)
	p.g = float64(c.G)/255*a + p.g*(1-a)
	p.b = float64(c.B)/255*a + p.b*(1-a)
}

// Brightness returns the composited brightness of a cell in [0, 1].
func (s *Surface) Brightness(col, row int) float64 {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0
	}
	p := s.cells[row*s.cols+col]
	return math.Max(p.r, math.Max(p.g, p.b))
}

// Glyph picks the ramp glyph for a brightness in [0, 1].
func Glyph(v float64) rune {
	i := int(math.Round(math.Max(0, math.Min(1, v)) * float64(len(Ramp)-1)))
	return rune(Ramp[i])
}

// Show copies the buffer to the screen and flushes it.
func (s *Surface) Show() {
	for row := range s.rows {
		for col := range s.cols {
			p := s.cells[row*s.cols+col]
			v := math.Max(p.r, math.Max(p.g, p.b))
			style := tcell.StyleDefault
			if v > 0 {
				// Scale the hue up to full brightness; the glyph carries the intensity.
				style = style.Foreground(tcell.NewRGBColor(channel(p.r/v), channel(p.g/v), channel(p.b/v)))
			}
			s.screen.SetContent(col, row, Glyph(v), nil, style)
		}
	}
	s.screen.Show()
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
