package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("field: invalid config")
	// ErrInvalidSize is returned when a field is created or resized to a
	// non-positive or non-finite surface.
	ErrInvalidSize = errors.New("field: invalid size")
)

// Config holds the tunables of a node field. Values are fixed once the
// field is created.
type Config struct {
	// MaxDist is the distance below which two nodes are linked.
	MaxDist float64
	// Speed bounds the per-axis velocity given to a freshly spawned node.
	Speed float64
	// NodeRadius is the drawn radius of every node.
	NodeRadius float64
	// PointerRadius is the influence radius of the pointer.
	PointerRadius float64

	// AreaPerNode is the surface area, in square logical pixels, that one
	// node accounts for when the node count is derived from the surface.
	AreaPerNode float64
	// InitialCap caps the node count at construction.
	InitialCap int
	// ResizeCap caps the node count after a resize. It is higher than
	// InitialCap in the default config.
	ResizeCap int

	// PointerReach multiplies PointerRadius to get the attraction range.
	PointerReach float64
	// Pull scales the attraction step towards the pointer.
	Pull float64
	// PointerLinkReach multiplies MaxDist to get the pointer line range.
	PointerLinkReach float64
}

// DefaultConfig returns the stock look of the background.
func DefaultConfig() Config {
	return Config{
		MaxDist:          140,
		Speed:            0.3,
		NodeRadius:       2.2,
		PointerRadius:    120,
		AreaPerNode:      7000,
		InitialCap:       120,
		ResizeCap:        140,
		PointerReach:     2.5,
		Pull:             0.0008,
		PointerLinkReach: 1.2,
	}
}

// Validate reports the first field of c that cannot drive a simulation.
// Every float must be finite; NaN fails each comparison below.
func (c Config) Validate() error {
	switch {
	case !positive(c.MaxDist):
		return fmt.Errorf("%w: max distance %v must be positive", ErrInvalidConfig, c.MaxDist)
	case !nonNegative(c.Speed):
		return fmt.Errorf("%w: speed %v must not be negative", ErrInvalidConfig, c.Speed)
	case !nonNegative(c.NodeRadius):
		return fmt.Errorf("%w: node radius %v must not be negative", ErrInvalidConfig, c.NodeRadius)
	case !nonNegative(c.PointerRadius):
		return fmt.Errorf("%w: pointer radius %v must not be negative", ErrInvalidConfig, c.PointerRadius)
	case !positive(c.AreaPerNode):
		return fmt.Errorf("%w: area per node %v must be positive", ErrInvalidConfig, c.AreaPerNode)
	case c.InitialCap < 0 || c.ResizeCap < 0:
		return fmt.Errorf("%w: node caps (%d, %d) must not be negative", ErrInvalidConfig, c.InitialCap, c.ResizeCap)
	case !nonNegative(c.PointerReach) || !nonNegative(c.PointerLinkReach):
		return fmt.Errorf("%w: pointer reach multipliers (%v, %v) must not be negative", ErrInvalidConfig, c.PointerReach, c.PointerLinkReach)
	case !nonNegative(c.Pull):
		return fmt.Errorf("%w: pull %v must not be negative", ErrInvalidConfig, c.Pull)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// PointerLinkDist is the distance below which a node is linked to the pointer.
func (c Config) PointerLinkDist() float64 {
	return c.MaxDist * c.PointerLinkReach
}
