// Package field holds the state and rules of the node field: a set of
// points drifting inside a bounded plane, pulled gently towards a pointer,
// and the distance scans that decide which of them get connected.
package field

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Field is the complete simulation state of one animation. It is not safe
// for concurrent use.
type Field struct {
	w, h    float64
	cfg     Config
	nodes   []Node
	pointer Pointer
	rng     *rand.Rand
	index   Index
}

// Option configures a Field at construction.
type Option func(*Field)

// WithSeed makes node spawning reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Field) {
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand spawns nodes from rng.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		f.rng = rng
	}
}

// WithIndex selects the pair scan used by Connections. BruteForce is the
// default.
func WithIndex(idx Index) Option {
	return func(f *Field) {
		f.index = idx
	}
}

// New creates a w×h field populated with TargetCount(w, h, cfg.AreaPerNode,
// cfg.InitialCap) nodes and the pointer resting at the centre.
func New(w, h float64, cfg Config, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkSize(w, h); err != nil {
		return nil, err
	}

	f := &Field{
		w:     w,
		h:     h,
		cfg:   cfg,
		index: BruteForce{},
		pointer: Pointer{
			X:      w / 2,
			Y:      h / 2,
			Radius: cfg.PointerRadius,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	count := TargetCount(w, h, cfg.AreaPerNode, cfg.InitialCap)
	f.nodes = make([]Node, 0, count)
	f.grow(count)

	return f, nil
}

// TargetCount is the node count for a w×h surface: one node per
// areaPerNode square pixels, rounded, never more than limit.
func TargetCount(w, h, areaPerNode float64, limit int) int {
	return int(math.Round(math.Min(float64(limit), w*h/areaPerNode)))
}

func checkSize(w, h float64) error {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, w, h)
	}
	return nil
}

func (f *Field) grow(count int) {
	for len(f.nodes) < count {
		f.nodes = append(f.nodes, spawnNode(f.rng, f.w, f.h, f.cfg))
	}
}

// Size returns the logical surface dimensions.
func (f *Field) Size() (w, h float64) {
	return f.w, f.h
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config {
	return f.cfg
}

// Nodes returns the live node slice in construction order. Callers must
// not modify it.
func (f *Field) Nodes() []Node {
	return f.nodes
}

// Len returns the number of nodes.
func (f *Field) Len() int {
	return len(f.nodes)
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Index returns the pair scan in use.
func (f *Field) Index() Index {
	return f.index
}

// MovePointer records a pointer move.
func (f *Field) MovePointer(x, y float64) {
	f.pointer.X = x
	f.pointer.Y = y
}

// LeavePointer parks the pointer back at the centre of the surface.
func (f *Field) LeavePointer() {
	f.pointer.X = f.w / 2
	f.pointer.Y = f.h / 2
}

// Step advances every node by one frame.
func (f *Field) Step() {
	for i := range f.nodes {
		f.nodes[i].Update(f.w, f.h, f.pointer, f.cfg)
	}
}

// Resize adopts a new surface size and brings the node count to
// TargetCount(w, h, cfg.AreaPerNode, cfg.ResizeCap). New nodes are appended
// at random; surplus nodes are dropped from the end. Nodes that survive keep
// their position and velocity.
func (f *Field) Resize(w, h float64) error {
	if err := checkSize(w, h); err != nil {
		return err
	}
	f.w = w
	f.h = h

	count := TargetCount(w, h, f.cfg.AreaPerNode, f.cfg.ResizeCap)
	if count > len(f.nodes) {
		f.grow(count)
	} else if count < len(f.nodes) {
		clear(f.nodes[count:])
		f.nodes = f.nodes[:count]
	}
	return nil
}

// Connections calls visit for every pair of nodes closer than MaxDist.
func (f *Field) Connections(visit func(Link)) {
	f.index.Connections(f.nodes, f.cfg.MaxDist, visit)
}

// PointerLinks calls visit, in node order, for every node closer to the
// pointer than MaxDist*PointerLinkReach.
func (f *Field) PointerLinks(visit func(i int, dist float64)) {
	limit := f.cfg.PointerLinkDist()
	for i := range f.nodes {
		n := &f.nodes[i]
		d := Dist(n.X, n.Y, f.pointer.X, f.pointer.Y)
		if d < limit {
			visit(i, d)
		}
	}
}
