// Package render draws a node field onto a 2D surface.
//
// A Surface follows the 2D canvas model: fill and stroke colours are
// state, lines are collected into a path with MoveTo/LineTo, and Stroke
// paints the whole path with the stroke colour in effect at that moment.
// Coordinates are logical pixels; SetScale maps them to device pixels.
package render

import (
	"image/color"
	"math"
)

// Surface is the drawing contract a host provides.
type Surface interface {
	// SetScale replaces the logical-to-device transform with a scale.
	SetScale(sx, sy float64)
	// Clear makes the whole surface transparent.
	Clear()

	SetFillColor(c color.NRGBA)
	FillRect(x, y, w, h float64)
	FillCircle(x, y, r float64)

	SetStrokeColor(c color.NRGBA)
	SetLineWidth(w float64)
	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke paints the current path. The path is kept until BeginPath.
	Stroke()
}

// RGBA builds a colour from 8-bit channels and a CSS-style alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alpha8(a)
	return c
}

func alpha8(a float64) uint8 {
	switch {
	case !(a > 0):
		return 0
	case a >= 1:
		return 255
	}
	return uint8(math.Round(a * 255))
}
