package render_test

import (
	"math"
	"testing"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newField(t *testing.T, w, h float64) *field.Field {
	t.Helper()
	f, err := field.New(w, h, field.DefaultConfig(), field.WithSeed(11))
	require.NoError(t, err)
	return f
}

func segLen(s render.Segment) float64 {
	return math.Hypot(s.X1-s.X0, s.Y1-s.Y0)
}

func TestDrawFrame(t *testing.T) {
	f := newField(t, 1400, 800)
	f.MovePointer(700, 400)

	rec := render.NewRecorder()
	r := render.NewRenderer(render.DefaultStyle())
	stats := r.DrawFrame(rec, f, 2)

	require.GreaterOrEqual(t, len(rec.Ops), 4)

	t.Run("prologue", func(t *testing.T) {
		assert.Equal(t, render.OpSetScale, rec.Ops[0].Kind)
		assert.Equal(t, 2.0, rec.Ops[0].X)
		assert.Equal(t, 2.0, rec.Ops[0].Y)
		assert.Equal(t, render.OpClear, rec.Ops[1].Kind)

		overlay := rec.Ops[2]
		assert.Equal(t, render.OpFillRect, overlay.Kind)
		assert.Equal(t, [4]float64{0, 0, 1400, 800}, [4]float64{overlay.X, overlay.Y, overlay.W, overlay.H})
		assert.Equal(t, render.RGBA(10, 12, 15, 0.35), overlay.Color)
	})

	t.Run("one circle per node", func(t *testing.T) {
		circles := rec.Filter(render.OpFillCircle)
		require.Len(t, circles, f.Len())
		for i, c := range circles {
			n := f.Nodes()[i]
			assert.Equal(t, n.X, c.X)
			assert.Equal(t, n.Y, c.Y)
			assert.Equal(t, n.R, c.W)
			assert.Equal(t, render.RGBA(180, 220, 255, 0.95), c.Color)
		}
		assert.Equal(t, f.Len(), stats.Nodes)
	})

	strokes := rec.Filter(render.OpStroke)
	links := 0
	f.Connections(func(field.Link) { links++ })
	require.Len(t, strokes, links+1, "one stroke per link plus one for the pointer path")

	t.Run("node lines fade with distance", func(t *testing.T) {
		assert.Equal(t, links, stats.Links)
		for _, s := range strokes[:links] {
			require.Len(t, s.Segments, 1)
			d := segLen(s.Segments[0])
			want := render.WithAlpha(render.RGBA(0, 183, 255, 1), 0.08*field.Alpha(d, 140))
			assert.InDelta(t, float64(want.A), float64(s.Color.A), 1)
			assert.Equal(t, uint8(183), s.Color.G)
			assert.Equal(t, 1.0, s.LineWidth)
		}
	})

	t.Run("pointer lines share one stroke", func(t *testing.T) {
		last := strokes[len(strokes)-1]
		assert.Equal(t, rec.Ops[len(rec.Ops)-1].Kind, render.OpStroke)
		assert.Len(t, last.Segments, stats.PointerLinks)
		require.NotZero(t, stats.PointerLinks, "pointer sits in the middle of a dense field")

		final := last.Segments[len(last.Segments)-1]
		want := render.WithAlpha(render.RGBA(0, 183, 255, 1), 0.08*field.Alpha(segLen(final), 168))
		assert.InDelta(t, float64(want.A), float64(last.Color.A), 1, "the last segment's colour paints the whole path")
		assert.Equal(t, want.B, last.Color.B)

		for _, s := range last.Segments {
			assert.Equal(t, 700.0, s.X1)
			assert.Equal(t, 400.0, s.Y1)
			assert.Less(t, segLen(s), 168.0)
		}
	})

	assert.Equal(t, stats, r.Last())
}

func TestDrawFrameEmptyPointerPath(t *testing.T) {
	f := newField(t, 400, 300)
	f.MovePointer(-5000, -5000)

	rec := render.NewRecorder()
	stats := render.NewRenderer(render.DefaultStyle()).DrawFrame(rec, f, 1)

	last := rec.Ops[len(rec.Ops)-1]
	assert.Equal(t, render.OpStroke, last.Kind)
	assert.Empty(t, last.Segments)
	assert.Zero(t, stats.PointerLinks)
}

func TestDrawFrameAfterResize(t *testing.T) {
	f := newField(t, 1400, 800)
	require.NoError(t, f.Resize(700, 400))

	rec := render.NewRecorder()
	render.NewRenderer(render.DefaultStyle()).DrawFrame(rec, f, 1)

	assert.Equal(t, 40, rec.Count(render.OpFillCircle))
	overlay := rec.Filter(render.OpFillRect)[0]
	assert.Equal(t, 700.0, overlay.W)
	assert.Equal(t, 400.0, overlay.H)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, uint8(255), render.RGBA(0, 0, 0, 1).A)
	assert.Equal(t, uint8(255), render.RGBA(0, 0, 0, 3).A)
	assert.Equal(t, uint8(0), render.RGBA(0, 0, 0, 0).A)
	assert.Equal(t, uint8(0), render.RGBA(0, 0, 0, -0.5).A)
	assert.Equal(t, uint8(0), render.RGBA(0, 0, 0, math.NaN()).A)
	assert.Equal(t, uint8(89), render.RGBA(10, 12, 15, 0.35).A)
	assert.Equal(t, uint8(20), render.WithAlpha(render.RGBA(0, 183, 255, 1), 0.08).A)
}

func TestPath(t *testing.T) {
	var p render.Path
	p.LineTo(1, 1)
	assert.Empty(t, p.Segments(), "LineTo without a pen only moves")

	p.LineTo(2, 3)
	p.MoveTo(10, 10)
	p.LineTo(11, 10)
	assert.Equal(t, []render.Segment{{1, 1, 2, 3}, {10, 10, 11, 10}}, p.Segments())

	p.Reset()
	assert.Empty(t, p.Segments())
	p.LineTo(5, 5)
	assert.Empty(t, p.Segments())
}
