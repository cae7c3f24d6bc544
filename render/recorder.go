package render

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpSetScale OpKind = iota
	OpClear
	OpFillRect
	OpFillCircle
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpSetScale:
		return "SetScale"
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpFillCircle:
		return "FillCircle"
	case OpStroke:
		return "Stroke"
	}
	return "Unknown"
}

// Op is one recorded operation with the style that was in effect.
type Op struct {
	Kind OpKind
	// X, Y, W, H hold the scale (X, Y), rectangle, or circle centre (X, Y)
	// and radius (W).
	X, Y, W, H float64
	Color      color.NRGBA
	LineWidth  float64
	Segments   []Segment
}

// Recorder is a Surface that keeps every paint operation instead of
// drawing it. Style setters are folded into the ops that use them.
type Recorder struct {
	Ops []Op

	fill, stroke color.NRGBA
	lineWidth    float64
	path         Path
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{lineWidth: 1}
}

// Reset drops recorded ops and restores the default state.
func (r *Recorder) Reset() {
	*r = Recorder{Ops: r.Ops[:0], lineWidth: 1}
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind k in order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) SetScale(sx, sy float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetScale, X: sx, Y: sy})
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) SetFillColor(c color.NRGBA) { r.fill = c }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: r.fill})
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: x, Y: y, W: radius, Color: r.fill})
}

func (r *Recorder) SetStrokeColor(c color.NRGBA) { r.stroke = c }

func (r *Recorder) SetLineWidth(w float64) { r.lineWidth = w }

func (r *Recorder) BeginPath()          { r.path.Reset() }
func (r *Recorder) MoveTo(x, y float64) { r.path.MoveTo(x, y) }
func (r *Recorder) LineTo(x, y float64) { r.path.LineTo(x, y) }

func (r *Recorder) Stroke() {
	segs := make([]Segment, len(r.path.Segments()))
	copy(segs, r.path.Segments())
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: r.stroke, LineWidth: r.lineWidth, Segments: segs})
}
