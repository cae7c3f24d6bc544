package debugui

import (
	"testing"

	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := NewFrameHistory(4)
		avg, lo, hi := h.Summary()
		assert.Zero(t, avg)
		assert.Zero(t, lo)
		assert.Zero(t, hi)
		assert.Zero(t, h.FPS())
		assert.Empty(t, h.Samples())
	})

	t.Run("partial", func(t *testing.T) {
		h := NewFrameHistory(4)
		h.Push(10)
		h.Push(30)
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, []float32{10, 30}, h.Samples())

		avg, lo, hi := h.Summary()
		assert.Equal(t, float32(20), avg)
		assert.Equal(t, float32(10), lo)
		assert.Equal(t, float32(30), hi)
		assert.Equal(t, float32(50), h.FPS())
	})

	t.Run("wraps oldest first", func(t *testing.T) {
		h := NewFrameHistory(3)
		for _, ms := range []float32{1, 2, 3, 4, 5} {
			h.Push(ms)
		}
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, []float32{3, 4, 5}, h.Samples())

		_, lo, hi := h.Summary()
		assert.Equal(t, float32(3), lo)
		assert.Equal(t, float32(5), hi)
	})

	t.Run("zero size holds one sample", func(t *testing.T) {
		h := NewFrameHistory(0)
		h.Push(7)
		h.Push(8)
		assert.Equal(t, []float32{8}, h.Samples())
	})
}

func TestPanelRecord(t *testing.T) {
	a, err := animation.New(800, 600, 1, field.DefaultConfig())
	require.NoError(t, err)

	p := NewPanel(a)
	assert.False(t, p.Visible)
	p.Toggle()
	assert.True(t, p.Visible)

	p.Record(0)
	p.Record(0.016)
	require.Equal(t, 1, p.History().Len())
	assert.InDelta(t, 16, p.History().Samples()[0], 0.001)
}

func TestSystemLess(t *testing.T) {
	a := loop.SystemStats{Name: "A", AvgDuration: 3, MinDuration: 1, MaxDuration: 9, LastDuration: 2}
	b := loop.SystemStats{Name: "B", AvgDuration: 2, MinDuration: 2, MaxDuration: 8, LastDuration: 5}

	assert.True(t, systemLess(a, b, 0))
	assert.False(t, systemLess(a, b, 1))
	assert.True(t, systemLess(a, b, 2))
	assert.False(t, systemLess(a, b, 3))
	assert.True(t, systemLess(a, b, 4))
}
