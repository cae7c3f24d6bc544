package field

import (
	"math"
	"math/rand/v2"
)

// Node is a single animated point.
type Node struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Pointer is the tracked cursor position and its influence radius.
type Pointer struct {
	X, Y   float64
	Radius float64
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

func spawnNode(rng *rand.Rand, w, h float64, cfg Config) Node {
	return Node{
		X:  between(rng, 0, w),
		Y:  between(rng, 0, h),
		VX: between(rng, -cfg.Speed, cfg.Speed),
		VY: between(rng, -cfg.Speed, cfg.Speed),
		R:  cfg.NodeRadius,
	}
}

// Update advances n by one frame inside a w×h plane.
//
// The bounce test runs on the moved position, so a node may sit up to one
// frame of velocity outside the plane before it turns around.
func (n *Node) Update(w, h float64, p Pointer, cfg Config) {
	n.X += n.VX
	n.Y += n.VY

	if n.X < 0 || n.X > w {
		n.VX = -n.VX
	}
	if n.Y < 0 || n.Y > h {
		n.VY = -n.VY
	}

	dx := n.X - p.X
	dy := n.Y - p.Y
	d2 := dx*dx + dy*dy
	reach := p.Radius * cfg.PointerReach
	if d2 < reach*reach {
		f := cfg.Pull * (p.Radius / (math.Sqrt(d2) + 1))
		n.X += -dx * f
		n.Y += -dy * f
	}
}

// Dist returns the euclidean distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// Alpha is the opacity of a line of length dist under threshold: 1 for
// coincident ends, falling linearly to 0 at the threshold.
func Alpha(dist, threshold float64) float64 {
	return 1 - dist/threshold
}
