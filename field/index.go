package field

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Link is a pair of nodes, A < B, closer than the link threshold.
type Link struct {
	A, B int
	Dist float64
}

// Index finds node pairs within a distance threshold. Implementations must
// visit every qualifying unordered pair exactly once, with A < B; the visit
// order is up to the implementation.
type Index interface {
	Connections(nodes []Node, maxDist float64, visit func(Link))
}

// BruteForce compares every pair of nodes. It visits pairs in (A, B)
// lexical order.
type BruteForce struct{}

func (BruteForce) Connections(nodes []Node, maxDist float64, visit func(Link)) {
	for i := 0; i < len(nodes); i++ {
		a := &nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			b := &nodes[j]
			d := Dist(a.X, a.Y, b.X, b.Y)
			if d < maxDist {
				visit(Link{A: i, B: j, Dist: d})
			}
		}
	}
}

// Grid buckets nodes into square cells one threshold wide so only the
// neighbouring cells of a node are searched. Buffers are reused across
// calls; a Grid must not be shared between goroutines.
type Grid struct {
	cells   *intmap.Map[int64, int]
	buckets [][]int
}

// NewGrid returns an empty grid index.
func NewGrid() *Grid {
	return &Grid{
		cells: intmap.New[int64, int](64),
	}
}

func cellKey(cx, cy int32) int64 {
	return int64(cx)<<32 | int64(uint32(cy))
}

func cellOf(x, y, size float64) (int32, int32) {
	return int32(math.Floor(x / size)), int32(math.Floor(y / size))
}

func (g *Grid) reset() {
	g.cells.Clear()
	g.buckets = g.buckets[:0]
}

func (g *Grid) bucket(key int64) int {
	if b, ok := g.cells.Get(key); ok {
		return b
	}
	b := len(g.buckets)
	if b < cap(g.buckets) {
		g.buckets = g.buckets[:b+1]
		g.buckets[b] = g.buckets[b][:0]
	} else {
		g.buckets = append(g.buckets, nil)
	}
	g.cells.Put(key, b)
	return b
}

func (g *Grid) Connections(nodes []Node, maxDist float64, visit func(Link)) {
	g.reset()

	for i := range nodes {
		cx, cy := cellOf(nodes[i].X, nodes[i].Y, maxDist)
		b := g.bucket(cellKey(cx, cy))
		g.buckets[b] = append(g.buckets[b], i)
	}

	for i := range nodes {
		a := &nodes[i]
		cx, cy := cellOf(a.X, a.Y, maxDist)
		for ox := int32(-1); ox <= 1; ox++ {
			for oy := int32(-1); oy <= 1; oy++ {
				b, ok := g.cells.Get(cellKey(cx+ox, cy+oy))
				if !ok {
					continue
				}
				for _, j := range g.buckets[b] {
					if j <= i {
						continue
					}
					n := &nodes[j]
					d := Dist(a.X, a.Y, n.X, n.Y)
					if d < maxDist {
						visit(Link{A: i, B: j, Dist: d})
					}
				}
			}
		}
	}
}

// IndexByName maps a command line name to an Index.
func IndexByName(name string) (Index, bool) {
	switch name {
	case "", "brute":
		return BruteForce{}, true
	case "grid":
		return NewGrid(), true
	}
	return nil, false
}

// IndexName is the inverse of IndexByName.
func IndexName(idx Index) string {
	switch idx.(type) {
	case BruteForce, *BruteForce:
		return "brute"
	case *Grid:
		return "grid"
	}
	return "custom"
}
