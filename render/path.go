package render

// Segment is one straight piece of a path.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Path collects MoveTo/LineTo calls into segments for surfaces whose
// backend only draws single lines.
type Path struct {
	segs       []Segment
	penX, penY float64
	hasPen     bool
}

// Reset empties the path, keeping its buffer.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
	p.hasPen = false
}

func (p *Path) MoveTo(x, y float64) {
	p.penX, p.penY = x, y
	p.hasPen = true
}

// LineTo adds a segment from the pen. Without a pen it behaves as MoveTo,
// as on a canvas.
func (p *Path) LineTo(x, y float64) {
	if !p.hasPen {
		p.MoveTo(x, y)
		return
	}
	p.segs = append(p.segs, Segment{X0: p.penX, Y0: p.penY, X1: x, Y1: y})
	p.penX, p.penY = x, y
}

// Segments returns the collected segments. The slice is reused by the next
// Reset.
func (p *Path) Segments() []Segment {
	return p.segs
}
