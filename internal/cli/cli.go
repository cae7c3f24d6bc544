// Package cli holds the flags and logger setup shared by the commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/plus3/nodefield/field"
)

// NewLogger returns a text logger writing to w at the named level
// ("debug", "info", "warn" or "error").
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// FieldFlags are the flags that shape a field.
type FieldFlags struct {
	Width  float64
	Height float64
	Seed   uint64
	Index  string
}

// Register adds -width, -height, -seed and -index to fs with the given
// default size.
func (f *FieldFlags) Register(fs *flag.FlagSet, width, height float64) {
	fs.Float64Var(&f.Width, "width", width, "Surface width in logical pixels.")
	fs.Float64Var(&f.Height, "height", height, "Surface height in logical pixels.")
	fs.Uint64Var(&f.Seed, "seed", 0, "Seed for node placement; 0 picks a random one.")
	fs.StringVar(&f.Index, "index", "brute", "Pair scan: brute or grid.")
}

// Options converts the flags to field options.
func (f *FieldFlags) Options() ([]field.Option, error) {
	idx, ok := field.IndexByName(f.Index)
	if !ok {
		return nil, fmt.Errorf("%w: unknown index %q", field.ErrInvalidConfig, f.Index)
	}
	opts := []field.Option{field.WithIndex(idx)}
	if f.Seed != 0 {
		opts = append(opts, field.WithSeed(f.Seed))
	}
	return opts, nil
}
