package cli_test

import (
	"bytes"
	"flag"
	"testing"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := cli.NewLogger(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "nodes", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "nodes=3")

	_, err = cli.NewLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestFieldFlags(t *testing.T) {
	var ff cli.FieldFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.Register(fs, 640, 480)

	require.NoError(t, fs.Parse([]string{"-width", "300", "-seed", "9", "-index", "grid"}))
	assert.Equal(t, 300.0, ff.Width)
	assert.Equal(t, 480.0, ff.Height)

	opts, err := ff.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	f, err := field.New(ff.Width, ff.Height, field.DefaultConfig(), opts...)
	require.NoError(t, err)
	assert.Equal(t, "grid", field.IndexName(f.Index()))

	ff.Index = "quadtree"
	_, err = ff.Options()
	assert.ErrorIs(t, err, field.ErrInvalidConfig)
}
