package render

import (
	"image/color"

	"github.com/plus3/nodefield/field"
)

// Style is the palette of a frame.
type Style struct {
	// Overlay is painted over the cleared surface each frame.
	Overlay color.NRGBA
	// Node fills every node.
	Node color.NRGBA
	// Link is the line colour; its alpha is replaced per line by
	// LinkAlpha scaled with distance falloff.
	Link      color.NRGBA
	LinkAlpha float64
	LineWidth float64
}

// DefaultStyle is a dark backdrop with pale blue nodes and cyan lines.
func DefaultStyle() Style {
	return Style{
		Overlay:   RGBA(10, 12, 15, 0.35),
		Node:      RGBA(180, 220, 255, 0.95),
		Link:      RGBA(0, 183, 255, 1),
		LinkAlpha: 0.08,
		LineWidth: 1,
	}
}

// FrameStats counts what the last frame drew.
type FrameStats struct {
	Nodes        int
	Links        int
	PointerLinks int
}

// Renderer paints a field with a fixed Style.
type Renderer struct {
	Style Style
	last  FrameStats
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Last returns the stats of the most recent DrawFrame.
func (r *Renderer) Last() FrameStats {
	return r.last
}

// DrawFrame renders f onto s at device scale dpr: clear, overlay, nodes,
// node-to-node lines, then node-to-pointer lines.
//
// Each node-to-node line is stroked on its own. Pointer lines share a
// single path that is stroked once, so the colour set for the last segment
// is the one all of them are painted with.
func (r *Renderer) DrawFrame(s Surface, f *field.Field, dpr float64) FrameStats {
	stats := FrameStats{}
	w, h := f.Size()
	cfg := f.Config()

	s.SetScale(dpr, dpr)
	s.Clear()

	s.SetFillColor(r.Style.Overlay)
	s.FillRect(0, 0, w, h)

	s.SetFillColor(r.Style.Node)
	nodes := f.Nodes()
	for i := range nodes {
		s.FillCircle(nodes[i].X, nodes[i].Y, nodes[i].R)
	}
	stats.Nodes = len(nodes)

	s.SetLineWidth(r.Style.LineWidth)
	f.Connections(func(l field.Link) {
		a, b := &nodes[l.A], &nodes[l.B]
		s.BeginPath()
		s.SetStrokeColor(WithAlpha(r.Style.Link, r.Style.LinkAlpha*field.Alpha(l.Dist, cfg.MaxDist)))
		s.MoveTo(a.X, a.Y)
		s.LineTo(b.X, b.Y)
		s.Stroke()
		stats.Links++
	})

	p := f.Pointer()
	limit := cfg.PointerLinkDist()
	s.BeginPath()
	f.PointerLinks(func(i int, dist float64) {
		s.SetStrokeColor(WithAlpha(r.Style.Link, r.Style.LinkAlpha*field.Alpha(dist, limit)))
		s.MoveTo(nodes[i].X, nodes[i].Y)
		s.LineTo(p.X, p.Y)
		stats.PointerLinks++
	})
	s.Stroke()

	r.last = stats
	return stats
}
